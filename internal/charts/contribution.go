package charts

import (
	"gonum.org/v1/plot/vg"

	"tourism-impact/internal/analysis"
)

// GDPContribution draws receipts as a share of GDP, keeping table order.
func (r *Renderer) GDPContribution(table *analysis.Table) (string, error) {
	p := newPlot("Tourism Contribution to GDP (2019 vs 2020)", "", "Tourism Receipts as % of GDP")

	pair := [2]series{
		{name: analysis.BaseYear, field: analysis.TourismGDPRatio2019, color: colorGain},
		{name: analysis.ComparisonYear, field: analysis.TourismGDPRatio2020, color: colorLoss},
	}
	if err := groupedBars(p, table, pair, 1, "%.1f%%"); err != nil {
		return "", err
	}
	p.Y.Min = 0

	return r.save(GDPContributionFile, 12*vg.Inch, 6*vg.Inch, p)
}
