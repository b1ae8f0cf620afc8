package report

import (
	"fmt"
	"io"

	"tourism-impact/internal/analysis"
)

// Stat is an optional statistic. Valid is false when no country had the field.
type Stat struct {
	Value float64
	Valid bool
}

// Extreme is the country holding a min or max value.
type Extreme struct {
	Country string
	Value   float64
	Valid   bool
}

type Summary struct {
	AverageTourismChange Stat
	AverageGDPChange     Stat
	LargestDecline       Extreme
	SmallestDecline      Extreme
}

func Summarize(table *analysis.Table) Summary {
	tourism := table.Column(analysis.TourismChange)
	return Summary{
		AverageTourismChange: mean(tourism),
		AverageGDPChange:     mean(table.Column(analysis.GDPChange)),
		LargestDecline:       minimum(tourism),
		SmallestDecline:      maximum(tourism),
	}
}

func mean(points []analysis.Point) Stat {
	if len(points) == 0 {
		return Stat{}
	}
	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	return Stat{Value: total / float64(len(points)), Valid: true}
}

// minimum and maximum keep the first occurrence on ties.
func minimum(points []analysis.Point) Extreme {
	if len(points) == 0 {
		return Extreme{}
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Value < best.Value {
			best = p
		}
	}
	return Extreme{Country: best.Country, Value: best.Value, Valid: true}
}

func maximum(points []analysis.Point) Extreme {
	if len(points) == 0 {
		return Extreme{}
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Value > best.Value {
			best = p
		}
	}
	return Extreme{Country: best.Country, Value: best.Value, Valid: true}
}

func (s Stat) String() string {
	if !s.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", s.Value)
}

func (e Extreme) String() string {
	if !e.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%s (%.2f%%)", e.Country, e.Value)
}

// Print writes the summary block shown at the start of a run.
func (s Summary) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\nSummary Statistics:\n"+
		"\nAverage Tourism Change: %s\n"+
		"Average GDP Change: %s\n"+
		"\nCountry with largest tourism decline: %s\n"+
		"Country with smallest tourism decline: %s\n",
		s.AverageTourismChange, s.AverageGDPChange, s.LargestDecline, s.SmallestDecline)
	return err
}
