package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/akyairhashvil/proffy/internal/api"
	"github.com/akyairhashvil/proffy/internal/favorites"
	"github.com/akyairhashvil/proffy/internal/models"
	"github.com/akyairhashvil/proffy/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m TeacherListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
			return next, cmd
		}
		if m.filters.Visible {
			return m, m.filters.Update(msg)
		}
		return m, nil
	case favoritesLoadedMsg:
		if m.closed() {
			return m, nil
		}
		m.applyFavorites(msg)
		return m, nil
	case classesLoadedMsg:
		if m.closed() {
			return m, nil
		}
		m.applyClasses(msg)
		return m, nil
	case favoriteToggledMsg:
		if m.closed() {
			return m, nil
		}
		m.applyFavoriteToggle(msg)
		return m, nil
	case reportExportedMsg:
		if msg.err != nil {
			util.LogError("export report", msg.err)
			m.status = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		util.LogInfo("export report", "wrote %d proffys to %s", msg.count, msg.path)
		m.status = "Report saved to " + msg.path
		return m, nil
	}

	// Cursor blink and other input housekeeping.
	if m.filters.Visible {
		return m, m.filters.Update(msg)
	}
	return m, nil
}

// applyFavorites replaces the set when a value is stored and leaves it
// alone when nothing is. Unreadable values fail closed to no favorites.
func (m *TeacherListModel) applyFavorites(msg favoritesLoadedMsg) {
	switch {
	case msg.err != nil:
		util.LogError("load favorites", msg.err)
		m.favorites = favorites.IDSet{}
	case msg.found:
		m.favorites = msg.ids
	}
}

// applyClasses installs a search result. Results are applied in completion
// order, so with several submits in flight the last one to complete wins.
func (m *TeacherListModel) applyClasses(msg classesLoadedMsg) {
	if msg.seq == m.searchSeq {
		m.searching = false
		m.cancelSearch = nil
	}
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return
		}
		// A newer search owns the error line.
		if msg.seq != m.searchSeq {
			util.LogError("superseded search", msg.err)
			return
		}
		util.LogError("search classes", msg.err)
		m.err = msg.err
		m.status = "Search failed: " + describeSearchError(msg.err)
		return
	}
	m.teachers = msg.teachers
	if m.teachers == nil {
		m.teachers = []models.Teacher{}
	}
	m.searched = true
	m.cursor, m.scroll = 0, 0
	m.err = nil
	m.status = fmt.Sprintf("%d proffys found", len(m.teachers))
	m.filters.Hide()
}

func (m *TeacherListModel) applyFavoriteToggle(msg favoriteToggledMsg) {
	if msg.err != nil {
		util.LogError("toggle favorite", msg.err)
		m.status = fmt.Sprintf("Could not update favorites: %v", msg.err)
		return
	}
	if m.favorites == nil {
		m.favorites = favorites.IDSet{}
	}
	if msg.favorited {
		m.favorites[msg.teacherID] = struct{}{}
		m.status = "Added to favorites"
	} else {
		delete(m.favorites, msg.teacherID)
		m.status = "Removed from favorites"
	}
}

func describeSearchError(err error) string {
	var reqErr *api.RequestError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "the server took too long to answer"
	case errors.Is(err, api.ErrInvalidResponse):
		return "the server sent an unexpected response"
	case errors.As(err, &reqErr) && reqErr.StatusCode != 0:
		return fmt.Sprintf("the server answered %d", reqErr.StatusCode)
	case errors.As(err, &reqErr):
		return "could not reach the server"
	default:
		return err.Error()
	}
}
