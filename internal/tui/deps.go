package tui

import (
	"context"

	"github.com/akyairhashvil/proffy/internal/api"
	"github.com/akyairhashvil/proffy/internal/database"
	"github.com/akyairhashvil/proffy/internal/favorites"
	"github.com/akyairhashvil/proffy/internal/models"
)

// ClassSearcher is the remote classes endpoint.
//
//go:generate mockgen -source=deps.go -destination=mock_deps_test.go -package=tui
type ClassSearcher interface {
	SearchClasses(ctx context.Context, filters models.ClassFilters) ([]models.Teacher, error)
}

// FavoritesStore is the local key/value store holding the favorites value.
type FavoritesStore interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	UpdateSetting(ctx context.Context, key string, fn func(old string, found bool) (string, error)) error
}

var (
	_ ClassSearcher   = (*api.Client)(nil)
	_ FavoritesStore  = (*database.Database)(nil)
	_ favorites.Store = (FavoritesStore)(nil)
)
