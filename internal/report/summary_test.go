package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-impact/internal/analysis"
	"tourism-impact/internal/dataset"
)

var header = []string{dataset.ColumnCountryName, dataset.ColumnIndicatorCode, "2019", "2020"}

func merge(rows ...[]string) *analysis.Table {
	table, _ := analysis.NewMerger(nil).Merge(dataset.New(header, rows))
	return table
}

func TestSummarizeReferenceOnly(t *testing.T) {
	s := Summarize(merge())

	require.True(t, s.AverageTourismChange.Valid)
	assert.InDelta(t, -53.97, s.AverageTourismChange.Value, 0.01)
	assert.False(t, s.AverageGDPChange.Valid, "no GDP rows means no GDP mean")

	assert.Equal(t, "Thailand", s.LargestDecline.Country)
	assert.InDelta(t, -75.21, s.LargestDecline.Value, 0.01)
	assert.Equal(t, "China", s.SmallestDecline.Country)
	assert.InDelta(t, -22.22, s.SmallestDecline.Value, 0.01)
}

func TestSummarizeExcludesMissingFields(t *testing.T) {
	s := Summarize(merge(
		[]string{"France", analysis.GDPPerCapitaIndicator, "100", "90"},
		[]string{"Spain", analysis.GDPPerCapitaIndicator, "100", "80"},
	))

	require.True(t, s.AverageGDPChange.Valid)
	assert.InDelta(t, -15.0, s.AverageGDPChange.Value, 1e-9)
}

func TestExtremesTieBreakFirstOccurrence(t *testing.T) {
	points := []analysis.Point{
		{Country: "A", Value: -5},
		{Country: "B", Value: -7},
		{Country: "C", Value: -7},
		{Country: "D", Value: 3},
		{Country: "E", Value: 3},
	}

	assert.Equal(t, Extreme{Country: "B", Value: -7, Valid: true}, minimum(points))
	assert.Equal(t, Extreme{Country: "D", Value: 3, Valid: true}, maximum(points))
}

func TestEmptySubsets(t *testing.T) {
	assert.Equal(t, Stat{}, mean(nil))
	assert.Equal(t, Extreme{}, minimum(nil))
	assert.Equal(t, Extreme{}, maximum(nil))
}

func TestPrint(t *testing.T) {
	s := Summary{
		AverageTourismChange: Stat{Value: -53.9712, Valid: true},
		LargestDecline:       Extreme{Country: "Thailand", Value: -75.2066, Valid: true},
		SmallestDecline:      Extreme{Country: "China", Value: -22.2222, Valid: true},
	}

	var buf bytes.Buffer
	require.NoError(t, s.Print(&buf))

	want := "\nSummary Statistics:\n" +
		"\nAverage Tourism Change: -53.97%\n" +
		"Average GDP Change: n/a\n" +
		"\nCountry with largest tourism decline: Thailand (-75.21%)\n" +
		"Country with smallest tourism decline: China (-22.22%)\n"
	assert.Equal(t, want, buf.String())
}
