package tui

import (
	"strings"

	"github.com/akyairhashvil/proffy/internal/config"
	"github.com/charmbracelet/lipgloss"
)

const screenTitle = "Available Proffys"

func (m TeacherListModel) View() string {
	width := m.contentWidth()
	sections := []string{m.renderHeader(width)}
	if m.filters.Visible {
		sections = append(sections, m.renderForm(width))
	}
	if line := m.renderStatus(width); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.renderList(width), m.renderFooter(width))
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m TeacherListModel) contentWidth() int {
	w := m.width - m.theme.Base.GetHorizontalFrameSize()
	if w < config.MinItemWidth {
		w = config.MinItemWidth
	}
	return w
}

func (m TeacherListModel) renderHeader(width int) string {
	hint := "▾ filters [/]"
	if m.filters.Visible {
		hint = "▴ filters [esc]"
	}
	title := m.theme.Header.Render(screenTitle)
	right := m.theme.HeaderHint.Render(hint)
	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	filler := m.theme.HeaderHint.Padding(0).Render(strings.Repeat(" ", gap))
	return title + filler + right
}

func (m TeacherListModel) renderForm(width int) string {
	inner := width - m.theme.Form.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	field := func(idx int) string {
		label := fieldLabels[idx]
		if idx == m.filters.Focus {
			label = "› " + label
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Label.Render(label),
			m.filters.Inputs[idx].View(),
		)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(inner/2).Render(field(FieldWeekDay)),
		lipgloss.NewStyle().Width(inner-inner/2).Render(field(FieldTime)),
	)
	button := m.theme.Button.Render("Filter")
	if m.searching {
		button = m.theme.Dim.Render("Searching...")
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		field(FieldSubject),
		"",
		row,
		"",
		button+" "+m.theme.Dim.Render("[enter]"),
	)
	return m.theme.Form.Width(inner).Render(body)
}

func (m TeacherListModel) renderStatus(width int) string {
	if m.err != nil {
		return m.theme.Error.Render(truncate(m.status, width))
	}
	if m.status == "" {
		return ""
	}
	return m.theme.Status.Render(truncate(m.status, width))
}

func (m TeacherListModel) renderList(width int) string {
	items := m.Items()
	if len(items) == 0 {
		msg := "No proffys yet. Press / to filter and search."
		if m.searched {
			msg = "No proffys match these filters."
		}
		return m.theme.Dim.Render(truncate(msg, width))
	}
	end := m.scroll + m.visibleCount()
	if end > len(items) {
		end = len(items)
	}
	cards := make([]string, 0, end-m.scroll)
	for i := m.scroll; i < end; i++ {
		cards = append(cards, m.renderItem(items[i], i == m.cursor, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m TeacherListModel) renderItem(item ListItem, focused bool, width int) string {
	style := m.theme.Card
	if focused {
		style = m.theme.CardFocused
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	t := item.Teacher

	name := t.Name
	mark := ""
	if item.Favorited {
		mark = " " + m.theme.Favorite.Render("♥")
	}
	lines := []string{
		m.theme.TeacherName.Render(truncate(name, inner-lipgloss.Width(mark))) + mark,
		m.theme.Subject.Render(truncate(t.Subject, inner)),
	}
	lines = append(lines, wrapLines(t.Bio, inner, config.MaxBioLines)...)
	lines = append(lines,
		m.theme.Dim.Render("Price/hour ")+m.theme.Cost.Render(FormatCost(t.Cost)),
		m.theme.Dim.Render(truncate(FormatSchedule(t.Schedule), inner)),
	)
	return style.Width(inner).Render(strings.Join(lines, "\n"))
}

func (m TeacherListModel) renderFooter(width int) string {
	total := len(m.teachers)
	count := FormatResultCount(0, 0, 0)
	if total > 0 {
		end := m.scroll + m.visibleCount()
		if end > total {
			end = total
		}
		count = FormatResultCount(m.scroll+1, end, total)
	}
	help := m.keys.HelpForMode(m.Mode())
	return m.theme.Dim.Render(truncate(count+"  "+help, width))
}
