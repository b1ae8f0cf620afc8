package analysis

import (
	"errors"

	"go.uber.org/zap"

	"tourism-impact/internal/dataset"
)

// Source is the indicator table the merger reads GDP rows from.
type Source interface {
	Find(country, indicator string) (dataset.Row, bool)
}

type Merger struct {
	logger    *zap.Logger
	countries []string
	receipts  func(country string) (Receipts, bool)
}

func NewMerger(logger *zap.Logger) *Merger {
	return newMerger(logger, Countries(), ReferenceReceipts)
}

func newMerger(logger *zap.Logger, countries []string, receipts func(string) (Receipts, bool)) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{logger: logger, countries: countries, receipts: receipts}
}

// Merge builds one record per country in list order. Failures stay local to
// their country: they are logged, returned as issues, and the record is still
// emitted with whatever fields survived.
func (m *Merger) Merge(src Source) (*Table, []Issue) {
	table := newTable(len(m.countries))
	var issues []Issue

	for _, country := range m.countries {
		rec, errs := m.mergeCountry(src, country)
		for _, err := range errs {
			issue := Issue{Country: country, Category: classify(err), Err: err}
			m.report(issue)
			issues = append(issues, issue)
		}
		table.insert(rec)
	}

	return table, issues
}

func (m *Merger) mergeCountry(src Source, country string) (Record, []error) {
	rec := newRecord(country)
	var errs []error

	gdp2019, gdp2020, err := extractGDP(src, country)
	switch {
	case errors.Is(err, ErrMissingRow):
		errs = append(errs, err)
	case err != nil:
		// An unusable GDP row leaves only the country name.
		return rec, append(errs, err)
	default:
		rec.set(GDP2019, gdp2019)
		rec.set(GDP2020, gdp2020)

		change, err := PercentChange(gdp2019, gdp2020)
		if err != nil {
			return rec, append(errs, &ComputationError{Country: country, Metric: GDPChange, Err: err})
		}
		rec.set(GDPChange, change)
	}

	receipts, ok := m.receipts(country)
	if !ok {
		return rec, errs
	}
	rec.set(Tourism2019, receipts.Year2019)
	rec.set(Tourism2020, receipts.Year2020)

	change, err := PercentChange(receipts.Year2019, receipts.Year2020)
	if err != nil {
		return rec, append(errs, &ComputationError{Country: country, Metric: TourismChange, Err: err})
	}
	rec.set(TourismChange, change)

	if !rec.Has(GDP2019) || !rec.Has(GDP2020) {
		return rec, errs
	}

	ratio2019, err := GDPShare(receipts.Year2019, gdp2019)
	if err != nil {
		return rec, append(errs, &ComputationError{Country: country, Metric: TourismGDPRatio2019, Err: err})
	}
	ratio2020, err := GDPShare(receipts.Year2020, gdp2020)
	if err != nil {
		return rec, append(errs, &ComputationError{Country: country, Metric: TourismGDPRatio2020, Err: err})
	}
	rec.set(TourismGDPRatio2019, ratio2019)
	rec.set(TourismGDPRatio2020, ratio2020)

	return rec, errs
}

func extractGDP(src Source, country string) (float64, float64, error) {
	row, ok := src.Find(country, GDPPerCapitaIndicator)
	if !ok {
		return 0, 0, ErrMissingRow
	}

	v2019, err := row.Float(BaseYear)
	if err != nil {
		return 0, 0, &ExtractionError{Country: country, Column: BaseYear, Err: err}
	}
	v2020, err := row.Float(ComparisonYear)
	if err != nil {
		return 0, 0, &ExtractionError{Country: country, Column: ComparisonYear, Err: err}
	}
	return v2019, v2020, nil
}

func (m *Merger) report(issue Issue) {
	switch issue.Category {
	case CategoryMissingRow:
		// Countries without a GDP row are expected; nothing to report.
	case CategoryExtraction:
		m.logger.Warn("Missing GDP data",
			zap.String("country", issue.Country),
			zap.Stringer("category", issue.Category),
			zap.Error(issue.Err),
		)
	default:
		m.logger.Warn("Error calculating metrics",
			zap.String("country", issue.Country),
			zap.Stringer("category", issue.Category),
			zap.Error(issue.Err),
		)
	}
}
