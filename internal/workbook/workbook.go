package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tourism-impact/internal/analysis"
	"tourism-impact/internal/report"
)

const (
	MetricsSheet = "Country_Metrics"
	SummarySheet = "Summary"
)

// Export writes the merged table and its summary to an .xlsx file. Absent
// fields are left as blank cells.
func Export(path string, table *analysis.Table, summary report.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MetricsSheet); err != nil {
		return err
	}
	if err := writeMetrics(f, table); err != nil {
		return fmt.Errorf("failed to write %s: %w", MetricsSheet, err)
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, summary); err != nil {
		return fmt.Errorf("failed to write %s: %w", SummarySheet, err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeMetrics(f *excelize.File, table *analysis.Table) error {
	headers := []interface{}{"Country"}
	for _, field := range analysis.Fields {
		headers = append(headers, string(field))
	}
	if err := f.SetSheetRow(MetricsSheet, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetColWidth(MetricsSheet, "A", "I", 22); err != nil {
		return err
	}

	for i, rec := range table.Records() {
		row := i + 2
		if err := f.SetCellValue(MetricsSheet, fmt.Sprintf("A%d", row), rec.Country); err != nil {
			return err
		}
		for j, field := range analysis.Fields {
			v, ok := rec.Get(field)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellFloat(MetricsSheet, cell, v, -1, 64); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummary(f *excelize.File, s report.Summary) error {
	rows := [][]interface{}{
		{"Statistic", "Country", "Value"},
		{"Average Tourism Change (%)", "", statValue(s.AverageTourismChange)},
		{"Average GDP Change (%)", "", statValue(s.AverageGDPChange)},
		{"Largest tourism decline (%)", s.LargestDecline.Country, extremeValue(s.LargestDecline)},
		{"Smallest tourism decline (%)", s.SmallestDecline.Country, extremeValue(s.SmallestDecline)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "C", 30)
}

func statValue(s report.Stat) interface{} {
	if !s.Valid {
		return "n/a"
	}
	return s.Value
}

func extremeValue(e report.Extreme) interface{} {
	if !e.Valid {
		return "n/a"
	}
	return e.Value
}
