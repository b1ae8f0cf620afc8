package analysis

import "math"

// PercentChange is (to - from) / from * 100.
func PercentChange(from, to float64) (float64, error) {
	if from == 0 {
		return 0, ErrZeroDenominator
	}
	return finite((to - from) / from * 100)
}

// GDPShare expresses receipts as a percentage of GDP, where GDP is
// approximated as perCapita * GDPScale.
func GDPShare(receipts, perCapita float64) (float64, error) {
	total := perCapita * GDPScale
	if total == 0 {
		return 0, ErrZeroDenominator
	}
	return finite(receipts / total * 100)
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}
