package charts

import (
	"gonum.org/v1/plot/vg"

	"tourism-impact/internal/analysis"
)

// ReceiptsComparison draws 2019 and 2020 receipts per country in billions of US$.
func (r *Renderer) ReceiptsComparison(table *analysis.Table) (string, error) {
	p := newPlot("Tourism Receipts Comparison (2019 vs 2020)", "", "Tourism Receipts (Billion USD)")

	pair := [2]series{
		{name: analysis.BaseYear, field: analysis.Tourism2019, color: colorGain},
		{name: analysis.ComparisonYear, field: analysis.Tourism2020, color: colorLoss},
	}
	if err := groupedBars(p, table, pair, 1e9, "%.1f"); err != nil {
		return "", err
	}
	p.Y.Min = 0

	return r.save(ReceiptsComparisonFile, 12*vg.Inch, 6*vg.Inch, p)
}
