package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/proffy/internal/models"
	"github.com/go-pdf/fpdf"
)

// ExportTeachersPDF writes items to an A4 report at path.
func ExportTeachersPDF(path string, items []ListItem, filters models.ClassFilters, generated time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(screenTitle, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(screenTitle))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Generated %s", generated.Format("2006-01-02 15:04"))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Filters: "+describeFilters(filters)))
	pdf.Ln(10)

	favoritedCount := 0
	for _, item := range items {
		t := item.Teacher
		name := t.Name
		if item.Favorited {
			name += " (favorite)"
			favoritedCount++
		}
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr(name))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s  -  %s per hour", t.Subject, FormatCost(t.Cost))))
		pdf.Ln(6)
		pdf.Cell(0, 6, tr(FormatSchedule(t.Schedule)))
		pdf.Ln(6)
		if t.Bio != "" {
			pdf.MultiCell(0, 5, tr(t.Bio), "", "", false)
		}
		if t.Whatsapp != "" {
			pdf.Cell(0, 6, tr("WhatsApp: "+t.Whatsapp))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%d proffys listed, %d favorited", len(items), favoritedCount)))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func describeFilters(f models.ClassFilters) string {
	var parts []string
	if f.Subject != "" {
		parts = append(parts, "subject="+f.Subject)
	}
	if f.WeekDay != "" {
		parts = append(parts, "week day="+f.WeekDay)
	}
	if f.Time != "" {
		parts = append(parts, "time="+f.Time)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
