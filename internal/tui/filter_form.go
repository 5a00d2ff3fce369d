package tui

import (
	"github.com/akyairhashvil/proffy/internal/config"
	"github.com/akyairhashvil/proffy/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Filter field indexes.
const (
	FieldSubject = iota
	FieldWeekDay
	FieldTime
	fieldCount
)

var fieldLabels = [fieldCount]string{"Subject", "Week day", "Time"}

// FilterForm holds the collapsible filter panel: three free-text inputs and
// the visibility flag.
type FilterForm struct {
	Visible bool
	Inputs  [fieldCount]textinput.Model
	Focus   int
}

func NewFilterForm() *FilterForm {
	subject := textinput.New()
	subject.Placeholder = "Which subject?"
	subject.CharLimit = config.MaxSubjectLength
	subject.Width = config.InputWidth

	weekDay := textinput.New()
	weekDay.Placeholder = "Which day?"
	weekDay.CharLimit = config.MaxWeekDayLength
	weekDay.Width = config.InputWidth / 2

	timeInput := textinput.New()
	timeInput.Placeholder = "What time?"
	timeInput.CharLimit = config.MaxTimeLength
	timeInput.Width = config.InputWidth / 2

	return &FilterForm{
		Inputs: [fieldCount]textinput.Model{subject, weekDay, timeInput},
	}
}

// Toggle flips the panel visibility.
func (f *FilterForm) Toggle() tea.Cmd {
	if f.Visible {
		f.Hide()
		return nil
	}
	return f.Show()
}

func (f *FilterForm) Show() tea.Cmd {
	f.Visible = true
	return f.focusCurrent()
}

func (f *FilterForm) Hide() {
	f.Visible = false
	for i := range f.Inputs {
		f.Inputs[i].Blur()
	}
}

func (f *FilterForm) FocusNext() tea.Cmd {
	f.Focus = (f.Focus + 1) % fieldCount
	return f.focusCurrent()
}

func (f *FilterForm) FocusPrev() tea.Cmd {
	f.Focus = (f.Focus + fieldCount - 1) % fieldCount
	return f.focusCurrent()
}

func (f *FilterForm) focusCurrent() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.Inputs {
		if i == f.Focus {
			cmd = f.Inputs[i].Focus()
			continue
		}
		f.Inputs[i].Blur()
	}
	return cmd
}

// SetValues fills the three inputs.
func (f *FilterForm) SetValues(subject, weekDay, timeValue string) {
	f.Inputs[FieldSubject].SetValue(subject)
	f.Inputs[FieldWeekDay].SetValue(weekDay)
	f.Inputs[FieldTime].SetValue(timeValue)
}

// Filters returns the current input values untouched.
func (f *FilterForm) Filters() models.ClassFilters {
	return models.ClassFilters{
		Subject: f.Inputs[FieldSubject].Value(),
		WeekDay: f.Inputs[FieldWeekDay].Value(),
		Time:    f.Inputs[FieldTime].Value(),
	}
}

// Update forwards msg to the focused input.
func (f *FilterForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Inputs[f.Focus], cmd = f.Inputs[f.Focus].Update(msg)
	return cmd
}
