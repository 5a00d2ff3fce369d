package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m TeacherListModel, key string) (TeacherListModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modes       []Mode
	Priority    int
}

func (b KeyBinding) AppliesToMode(mode Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m TeacherListModel, key string) (TeacherListModel, tea.Cmd, bool) {
	mode := m.Mode()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToMode(mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForMode(mode Mode) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToMode(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForMode(mode Mode) string {
	bindings := r.GetBindingsForMode(mode)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	list := []Mode{ModeList}
	form := []Mode{ModeFilters}

	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Modes: list, Priority: 90})

	r.Register(KeyBinding{Key: "/", Handler: handleToggleFilters, Description: "filters", Modes: list, Priority: 50})
	r.Register(KeyBinding{Key: "ctrl+f", Handler: handleToggleFilters, Priority: 50})
	r.Register(KeyBinding{Key: "esc", Handler: handleToggleFilters, Description: "close", Modes: form, Priority: 50})

	r.Register(KeyBinding{Key: "enter", Handler: handleSubmit, Description: "filter", Modes: form, Priority: 40})
	r.Register(KeyBinding{Key: "tab", Handler: handleFocusNext, Description: "next field", Modes: form, Priority: 30})
	r.Register(KeyBinding{Key: "down", Handler: handleFocusNext, Modes: form, Priority: 30})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handleFocusPrev, Modes: form, Priority: 30})
	r.Register(KeyBinding{Key: "up", Handler: handleFocusPrev, Modes: form, Priority: 30})

	r.Register(KeyBinding{Key: "up", Handler: handleCursorUp, Modes: list, Priority: 20})
	r.Register(KeyBinding{Key: "k", Handler: handleCursorUp, Modes: list, Priority: 20})
	r.Register(KeyBinding{Key: "down", Handler: handleCursorDown, Modes: list, Priority: 20})
	r.Register(KeyBinding{Key: "j", Handler: handleCursorDown, Description: "move", Modes: list, Priority: 20})
	r.Register(KeyBinding{Key: "f", Handler: handleToggleFavorite, Description: "favorite", Modes: list, Priority: 10})
	r.Register(KeyBinding{Key: "p", Handler: handleExport, Description: "pdf", Modes: list, Priority: 10})
	return r
}

func handleQuit(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	m.Close()
	return m, tea.Quit, true
}

func handleToggleFilters(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	cmd := m.ToggleFilters()
	return m, cmd, true
}

func handleSubmit(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	cmd := m.SubmitFilters()
	return m, cmd, true
}

func handleFocusNext(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	return m, m.filters.FocusNext(), true
}

func handleFocusPrev(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	return m, m.filters.FocusPrev(), true
}

func handleCursorUp(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	m.moveCursor(-1)
	return m, nil, true
}

func handleCursorDown(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	m.moveCursor(1)
	return m, nil, true
}

func handleToggleFavorite(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	cmd := m.ToggleFavorite()
	return m, cmd, true
}

func handleExport(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
	cmd := m.ExportReport()
	return m, cmd, true
}
