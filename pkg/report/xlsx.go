package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"egress/pkg/analyze"
)

const sheetName = "Compliance_Report"

var requirements = []string{
	"- Doors: clear opening width >= 800 mm",
	"- Corridors: clear width >= 1300 mm AND must link to a stair via a door/opening",
	"- Stairs: clear flight width >= 1000 mm",
	"- Stair flights: must be enclosed by walls on all four sides",
}

// Write renders the results as a single-sheet .xlsx document.
func Write(w io.Writer, res *analyze.Results) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return fmt.Errorf("report: style: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"EFEFEF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("report: style: %w", err)
	}
	wrapped, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("report: style: %w", err)
	}

	set := func(cell string, value any) {
		// Cell references are generated locally; SetCellValue cannot fail.
		_ = f.SetCellValue(sheetName, cell, value)
	}

	set("A1", "Requirements")
	_ = f.SetCellStyle(sheetName, "A1", "A1", bold)
	for i, r := range requirements {
		set(fmt.Sprintf("A%d", i+2), r)
	}

	headerRow := len(requirements) + 3
	cols := []string{"Category", "Passing count", "Failing count", "Failing element IDs", "Reason for failure"}
	for i, c := range cols {
		set(fmt.Sprintf("%c%d", 'A'+i, headerRow), c)
	}
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("E%d", headerRow), header)

	row := headerRow + 1
	for _, sum := range res.Categories() {
		ids := make([]string, 0, len(sum.Failures))
		reasons := make([]string, 0, len(sum.Failures))
		for _, fail := range sum.Failures {
			id := string(fail.Element.ID)
			if fail.Name != "" {
				id = fmt.Sprintf("%s [%s]", fail.Name, fail.Element.ID)
			}
			ids = append(ids, id)
			reasons = append(reasons, fail.Reason)
		}

		set(fmt.Sprintf("A%d", row), categoryLabel(sum))
		set(fmt.Sprintf("B%d", row), sum.Passing)
		set(fmt.Sprintf("C%d", row), sum.Failing)
		set(fmt.Sprintf("D%d", row), strings.Join(ids, "\n"))
		set(fmt.Sprintf("E%d", row), strings.Join(reasons, "\n"))
		_ = f.SetCellStyle(sheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), wrapped)
		row++
	}

	widths := map[string]float64{"A": 32, "B": 16, "C": 16, "D": 36, "E": 48}
	for col, w := range widths {
		_ = f.SetColWidth(sheetName, col, col, w)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

// WriteFile renders the results to an .xlsx file on disk.
func WriteFile(path string, res *analyze.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, res)
}

func categoryLabel(sum analyze.Summary) string {
	switch sum.Category.String() {
	case "doors":
		return "Doors"
	case "corridors":
		return "Corridors"
	case "stairs":
		return "Stairs (width)"
	case "stair-flights":
		return "Stair flights (4-wall enclosure)"
	case "staircases":
		return "Staircases (group enclosure)"
	default:
		return sum.Category.String()
	}
}
