package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name    string
		from    float64
		to      float64
		want    float64
		wantErr error
	}{
		{"decline", 65.0e9, 32.0e9, -50.76923076923077, nil},
		{"increase", 100, 125, 25, nil},
		{"unchanged", 42, 42, 0, nil},
		{"zero base", 0, 10, 0, ErrZeroDenominator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PercentChange(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestGDPShare(t *testing.T) {
	got, err := GDPShare(65.0e9, 40000)
	assert.NoError(t, err)
	assert.InDelta(t, 65.0e9/(40000*1e6)*100, got, 1e-9)

	_, err = GDPShare(65.0e9, 0)
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestCountriesIsACopy(t *testing.T) {
	c := Countries()
	c[0] = "Nowhere"
	assert.Equal(t, "France", Countries()[0])
	assert.Len(t, Countries(), 10)

	for _, country := range Countries() {
		_, ok := ReferenceReceipts(country)
		assert.True(t, ok, country)
	}
}

func TestTableAccessorsReturnCopies(t *testing.T) {
	table := newTable(2)
	a := newRecord("A")
	a.set(TourismChange, -10)
	b := newRecord("B")
	b.set(TourismChange, -20)
	b.set(GDPChange, 1)
	table.insert(a)
	table.insert(b)

	records := table.Records()
	records[0] = newRecord("Z")
	assert.Equal(t, []string{"A", "B"}, table.Countries())

	assert.Equal(t, []Point{{"A", -10}, {"B", -20}}, table.Column(TourismChange))
	assert.Equal(t, []Point{{"B", 1}}, table.Column(GDPChange))
	assert.Nil(t, table.Column(TourismGDPRatio2019))

	_, ok := table.Record("missing")
	assert.False(t, ok)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "missing_row", CategoryMissingRow.String())
	assert.Equal(t, "extraction", CategoryExtraction.String())
	assert.Equal(t, "computation", CategoryComputation.String())
	assert.Equal(t, "unknown", Category(0).String())
}

func TestClassify(t *testing.T) {
	assert.Equal(t, CategoryMissingRow, classify(ErrMissingRow))
	assert.Equal(t, CategoryExtraction, classify(&ExtractionError{Country: "X", Column: "2019", Err: ErrNotFinite}))
	assert.Equal(t, CategoryComputation, classify(&ComputationError{Country: "X", Metric: GDPChange, Err: ErrZeroDenominator}))
}
