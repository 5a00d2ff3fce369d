package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/proffy/internal/favorites"
	"github.com/akyairhashvil/proffy/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

type favoritesLoadedMsg struct {
	ids   favorites.IDSet
	found bool
	err   error
}

type classesLoadedMsg struct {
	seq      int
	filters  models.ClassFilters
	teachers []models.Teacher
	err      error
}

type favoriteToggledMsg struct {
	teacherID int64
	favorited bool
	err       error
}

type reportExportedMsg struct {
	path  string
	count int
	err   error
}

// --- Commands ---

func loadFavoritesCmd(ctx context.Context, store FavoritesStore) tea.Cmd {
	return func() tea.Msg {
		ids, found, err := favorites.Load(ctx, store)
		return favoritesLoadedMsg{ids: ids, found: found, err: err}
	}
}

// searchClassesCmd owns cancel and releases it once the request is done.
func searchClassesCmd(ctx context.Context, cancel context.CancelFunc, classes ClassSearcher, seq int, filters models.ClassFilters) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		teachers, err := classes.SearchClasses(ctx, filters)
		return classesLoadedMsg{seq: seq, filters: filters, teachers: teachers, err: err}
	}
}

func toggleFavoriteCmd(ctx context.Context, store FavoritesStore, teacher models.Teacher) tea.Cmd {
	return func() tea.Msg {
		favorited, err := favorites.Toggle(ctx, store, teacher)
		return favoriteToggledMsg{teacherID: teacher.ID, favorited: favorited, err: err}
	}
}

func exportReportCmd(dir string, items []ListItem, filters models.ClassFilters, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return reportExportedMsg{err: fmt.Errorf("create reports dir: %w", err)}
		}
		path := filepath.Join(dir, fmt.Sprintf("proffys_%s.pdf", now.Format("20060102_150405")))
		if err := ExportTeachersPDF(path, items, filters, now); err != nil {
			return reportExportedMsg{err: err}
		}
		return reportExportedMsg{path: path, count: len(items)}
	}
}
