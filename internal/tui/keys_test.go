package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/proffy/internal/models"
	"github.com/akyairhashvil/proffy/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func TestSlashOpensAndEscClosesFilters(t *testing.T) {
	m, _ := setupMockModel(t)
	m, _ = pressKey(t, m, runeKey('/'))
	if !m.FiltersVisible() || m.Mode() != ModeFilters {
		t.Fatalf("expected filters open after /")
	}
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.FiltersVisible() {
		t.Fatalf("expected filters closed after esc")
	}
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if !m.FiltersVisible() {
		t.Fatalf("expected ctrl+f to toggle filters")
	}
}

func TestTypingFillsFocusedInput(t *testing.T) {
	m, _ := setupMockModel(t)
	m, _ = pressKey(t, m, runeKey('/'))
	for _, r := range "Math" {
		m, _ = pressKey(t, m, runeKey(r))
	}
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = pressKey(t, m, runeKey('1'))
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "8:00" {
		m, _ = pressKey(t, m, runeKey(r))
	}

	want := models.ClassFilters{Subject: "Math", WeekDay: "1", Time: "8:00"}
	if got := m.Filters(); got != want {
		t.Fatalf("filters = %+v, want %+v", got, want)
	}

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.filters.Focus != FieldWeekDay {
		t.Fatalf("focus = %d, want week day", m.filters.Focus)
	}
}

func TestListKeysAreTextInFilterMode(t *testing.T) {
	m, _ := setupMockModel(t)
	m, _ = pressKey(t, m, runeKey('/'))
	for _, r := range "qjfp" {
		m, _ = pressKey(t, m, runeKey(r))
	}
	if got := m.Filters().Subject; got != "qjfp" {
		t.Fatalf("subject = %q, want typed text", got)
	}
	if m.closed() {
		t.Fatalf("q must not quit while typing")
	}
}

func TestEnterSubmitsFromForm(t *testing.T) {
	m, _ := setupMockModel(t)
	m, _ = pressKey(t, m, runeKey('/'))
	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a search command")
	}
	if !m.Searching() {
		t.Fatalf("expected searching flag")
	}
	if !strings.Contains(m.View(), "Searching...") {
		t.Fatalf("expected searching hint in form")
	}
}

func TestQuitClosesModel(t *testing.T) {
	m, _ := setupMockModel(t)
	m, cmd := pressKey(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !m.closed() {
		t.Fatalf("expected model closed on quit")
	}
}

func TestCursorMovesAndScrolls(t *testing.T) {
	m, _ := setupMockModel(t)
	m.teachers = testutil.Teachers(7)

	for i := 0; i < 10; i++ {
		m, _ = pressKey(t, m, runeKey('j'))
	}
	if m.Cursor() != 6 {
		t.Fatalf("cursor = %d, want clamped to 6", m.Cursor())
	}
	if m.scroll != 2 {
		t.Fatalf("scroll = %d, want 2", m.scroll)
	}
	if sel, ok := m.SelectedTeacher(); !ok || sel.ID != 7 {
		t.Fatalf("selected = %+v, want id 7", sel)
	}

	for i := 0; i < 10; i++ {
		m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.Cursor() != 0 || m.scroll != 0 {
		t.Fatalf("cursor/scroll = %d/%d, want 0/0", m.Cursor(), m.scroll)
	}
}

func TestCursorOnEmptyList(t *testing.T) {
	m, _ := setupMockModel(t)
	m, _ = pressKey(t, m, runeKey('j'))
	if m.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", m.Cursor())
	}
	if _, ok := m.SelectedTeacher(); ok {
		t.Fatalf("expected no selection")
	}
	if _, cmd := pressKey(t, m, runeKey('f')); cmd != nil {
		t.Fatalf("expected no favorite toggle without selection")
	}
}

func TestHelpForMode(t *testing.T) {
	r := defaultRegistry()
	list := r.HelpForMode(ModeList)
	for _, want := range []string{"[q]quit", "[/]filters", "[f]favorite", "[p]pdf"} {
		if !strings.Contains(list, want) {
			t.Fatalf("list help %q missing %q", list, want)
		}
	}
	if strings.Contains(list, "[enter]") {
		t.Fatalf("list help must not mention form keys: %q", list)
	}
	form := r.HelpForMode(ModeFilters)
	for _, want := range []string{"[enter]filter", "[esc]close", "[tab]next field"} {
		if !strings.Contains(form, want) {
			t.Fatalf("form help %q missing %q", form, want)
		}
	}
}

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewHandlerRegistry()
	var hits []string
	low := func(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
		hits = append(hits, "low")
		return m, nil, true
	}
	high := func(m TeacherListModel, _ string) (TeacherListModel, tea.Cmd, bool) {
		hits = append(hits, "high")
		return m, nil, true
	}
	r.Register(KeyBinding{Key: "x", Handler: low, Priority: 1})
	r.Register(KeyBinding{Key: "x", Handler: high, Priority: 9})

	m, _ := setupMockModel(t)
	if _, _, handled := r.Handle(m, "x"); !handled {
		t.Fatalf("expected x handled")
	}
	if len(hits) != 1 || hits[0] != "high" {
		t.Fatalf("hits = %v, want only the higher priority handler", hits)
	}
	if _, _, handled := r.Handle(m, "y"); handled {
		t.Fatalf("expected unbound key to fall through")
	}
}
