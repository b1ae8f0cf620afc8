package charts

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"tourism-impact/internal/analysis"
)

// PercentageChanges draws Tourism_Change and GDP_Change as two horizontal
// bar charts, each sorted ascending by its own values.
func (r *Renderer) PercentageChanges(table *analysis.Table) (string, error) {
	if table.Len() == 0 {
		return "", ErrEmptyTable
	}

	tourism, err := changePlot("Tourism Receipts Change (2019-2020)", table.Column(analysis.TourismChange))
	if err != nil {
		return "", err
	}
	gdp, err := changePlot("GDP Change (2019-2020)", table.Column(analysis.GDPChange))
	if err != nil {
		return "", err
	}

	return r.save(PercentageChangesFile, 15*vg.Inch, 6*vg.Inch, tourism, gdp)
}

// sortedAscending returns a sorted copy; equal values keep table order.
func sortedAscending(points []analysis.Point) []analysis.Point {
	out := make([]analysis.Point, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out
}

func changePlot(title string, points []analysis.Point) (*plot.Plot, error) {
	p := newPlot(title, "Percentage Change (%)", "")
	p.Add(dashedGrid())

	if len(points) == 0 {
		p.Title.Text += " - no data"
		return p, nil
	}

	points = sortedAscending(points)

	negative := make(plotter.Values, len(points))
	positive := make(plotter.Values, len(points))
	names := make([]string, len(points))
	xys := make(plotter.XYs, len(points))
	labels := make([]string, len(points))

	for i, pt := range points {
		if pt.Value < 0 {
			negative[i] = pt.Value
		} else {
			positive[i] = pt.Value
		}
		names[i] = pt.Country
		xys[i] = plotter.XY{X: pt.Value, Y: float64(i)}
		labels[i] = fmt.Sprintf("%.1f%%", pt.Value)
	}

	for _, part := range []struct {
		values plotter.Values
		clr    color.Color
	}{
		{negative, colorLoss},
		{positive, colorGain},
	} {
		bars, err := plotter.NewBarChart(part.values, vg.Points(18))
		if err != nil {
			return nil, fmt.Errorf("bar chart %s: %w", title, err)
		}
		bars.Horizontal = true
		bars.Color = part.clr
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
	}

	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("labels %s: %w", title, err)
	}
	for i, pt := range points {
		valueLabels.TextStyle[i].YAlign = draw.YCenter
		valueLabels.TextStyle[i].XAlign = labelAlign(pt.Value)
	}
	p.Add(valueLabels)

	p.NominalY(names...)
	return p, nil
}

// labelAlign places a value label past the bar end, away from zero.
func labelAlign(v float64) draw.XAlignment {
	if v < 0 {
		return draw.XRight
	}
	return draw.XLeft
}
