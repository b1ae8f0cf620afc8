package charts

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"tourism-impact/internal/analysis"
)

const (
	ReceiptsComparisonFile = "tourism_receipts_comparison.png"
	PercentageChangesFile  = "percentage_changes.png"
	GDPContributionFile    = "tourism_gdp_contribution.png"
)

var ErrEmptyTable = errors.New("charts: table has no countries")

var (
	colorGain = color.RGBA{R: 46, G: 204, B: 113, A: 255} // #2ecc71
	colorLoss = color.RGBA{R: 231, G: 76, B: 60, A: 255}  // #e74c3c
)

// Renderer draws the three analysis figures into a directory.
type Renderer struct {
	dir string
	dpi int
}

func NewRenderer(dir string, dpi int) *Renderer {
	if dpi <= 0 {
		dpi = vgimg.DefaultDPI
	}
	return &Renderer{dir: dir, dpi: dpi}
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(20)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	return p
}

func dashedGrid() *plotter.Grid {
	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(3)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes
	grid.Vertical.Color = color.Gray{Y: 180}
	grid.Horizontal.Color = color.Gray{Y: 180}
	return grid
}

type series struct {
	name  string
	field analysis.Field
	color color.Color
}

// groupedBars draws a pair of bars per country in table order. Absent
// values keep their slot empty and unlabelled.
func groupedBars(p *plot.Plot, table *analysis.Table, pair [2]series, scale float64, format string) error {
	if table.Len() == 0 {
		return ErrEmptyTable
	}

	width := vg.Points(24)
	offsets := [2]vg.Length{-width / 2, width / 2}

	for s, ser := range pair {
		values := make(plotter.Values, table.Len())
		var points plotter.XYs
		var labels []string

		for i, rec := range table.Records() {
			v, ok := rec.Get(ser.field)
			if !ok {
				continue
			}
			v /= scale
			values[i] = v
			points = append(points, plotter.XY{X: float64(i), Y: v})
			labels = append(labels, fmt.Sprintf(format, v))
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("bar chart %s: %w", ser.name, err)
		}
		bars.Color = ser.color
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = offsets[s]
		p.Add(bars)
		p.Legend.Add(ser.name, bars)

		valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
		if err != nil {
			return fmt.Errorf("labels %s: %w", ser.name, err)
		}
		valueLabels.Offset = vg.Point{X: offsets[s], Y: vg.Points(2)}
		for i := range valueLabels.TextStyle {
			valueLabels.TextStyle[i].XAlign = draw.XCenter
			valueLabels.TextStyle[i].YAlign = draw.YBottom
		}
		p.Add(valueLabels)
	}

	p.NominalX(table.Countries()...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Legend.Top = true
	p.Add(dashedGrid())

	return nil
}

// save rasterizes plots side by side into one PNG under the renderer's
// directory and returns its path.
func (r *Renderer) save(name string, w, h vg.Length, plots ...*plot.Plot) (string, error) {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.dpi))
	dc := draw.New(img)

	if len(plots) == 1 {
		plots[0].Draw(dc)
	} else {
		tiles := draw.Tiles{
			Rows:      1,
			Cols:      len(plots),
			PadX:      vg.Millimeter * 10,
			PadTop:    vg.Millimeter * 2,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 2,
		}
		canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
		for i, p := range plots {
			p.Draw(canvases[0][i])
		}
	}

	path := filepath.Join(r.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}
