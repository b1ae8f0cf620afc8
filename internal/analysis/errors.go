package analysis

import (
	"errors"
	"fmt"
)

// ErrMissingRow means the dataset has no GDP per capita row for a country.
var ErrMissingRow = errors.New("no GDP per capita row")

var (
	ErrZeroDenominator = errors.New("zero denominator")
	ErrNotFinite       = errors.New("result is not finite")
)

// ExtractionError is returned when a matched row lacks a usable year value.
type ExtractionError struct {
	Country string
	Column  string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error: %s column %s: %v", e.Country, e.Column, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ComputationError is returned when a derived metric cannot be computed.
type ComputationError struct {
	Country string
	Metric  Field
	Err     error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation error: %s %s: %v", e.Country, e.Metric, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

type Category int

const (
	CategoryMissingRow Category = iota + 1
	CategoryExtraction
	CategoryComputation
)

func (c Category) String() string {
	switch c {
	case CategoryMissingRow:
		return "missing_row"
	case CategoryExtraction:
		return "extraction"
	case CategoryComputation:
		return "computation"
	}
	return "unknown"
}

// Issue is a per-country failure recorded while merging.
type Issue struct {
	Country  string
	Category Category
	Err      error
}

func classify(err error) Category {
	var extraction *ExtractionError
	var computation *ComputationError
	switch {
	case errors.Is(err, ErrMissingRow):
		return CategoryMissingRow
	case errors.As(err, &extraction):
		return CategoryExtraction
	case errors.As(err, &computation):
		return CategoryComputation
	}
	return 0
}
