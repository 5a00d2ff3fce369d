package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/proffy/internal/config"
	"github.com/akyairhashvil/proffy/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// FormatCost formats an hourly price (e.g., "R$ 80.00").
func FormatCost(cost float64) string {
	return fmt.Sprintf("R$ %.2f", cost)
}

// FormatSchedule joins the availability windows of a class.
func FormatSchedule(slots []models.ScheduleSlot) string {
	if len(slots) == 0 {
		return "No schedule listed"
	}
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ", ")
}

// FormatResultCount describes how many results are shown.
func FormatResultCount(first, last, total int) string {
	if total == 0 {
		return "No proffys"
	}
	return fmt.Sprintf("%d-%d of %d proffys", first, last, total)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// wrapLines word-wraps s to width and keeps at most max lines, marking the
// cut with the truncation suffix.
func wrapLines(s string, width, max int) []string {
	if s == "" || width <= 0 || max <= 0 {
		return nil
	}
	lines := strings.Split(ansi.Wordwrap(s, width, ""), "\n")
	if len(lines) <= max {
		return lines
	}
	lines = lines[:max]
	last := lines[max-1]
	lines[max-1] = truncate(last+" "+config.TruncationSuffix, width)
	return lines
}
