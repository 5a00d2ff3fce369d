package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/proffy/internal/database"
	"github.com/golang/mock/gomock"
	tea "github.com/charmbracelet/bubbletea"
)

type testDeps struct {
	classes *MockClassSearcher
	store   *MockFavoritesStore
}

func setupMockModel(t *testing.T) (TeacherListModel, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		classes: NewMockClassSearcher(ctrl),
		store:   NewMockFavoritesStore(ctrl),
	}
	m := NewTeacherListModel(context.Background(), deps.classes, deps.store, Options{ReportsDir: t.TempDir()})
	t.Cleanup(m.Close)
	return m, deps
}

func setupStoreDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "screen.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

// collectMsgs runs cmd, expanding batches, and returns every message.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func applyMsgs(t *testing.T, m TeacherListModel, msgs ...tea.Msg) TeacherListModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		updated, ok := next.(TeacherListModel)
		if !ok {
			t.Fatalf("expected TeacherListModel, got %T", next)
		}
		m = updated
	}
	return m
}

func pressKey(t *testing.T, m TeacherListModel, msg tea.KeyMsg) (TeacherListModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(TeacherListModel)
	if !ok {
		t.Fatalf("expected TeacherListModel, got %T", next)
	}
	return updated, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
