// Package progress derives the presentation progress indicator from the
// current slide index.
package progress

// Fraction returns (index+1)/total. It returns 0 when total is not positive
// or index is outside [0, total).
func Fraction(index, total int) float64 {
	if total <= 0 || index < 0 || index >= total {
		return 0
	}
	return float64(index+1) / float64(total)
}

// Percent returns Fraction expressed as a percentage
func Percent(index, total int) float64 {
	return Fraction(index, total) * 100
}
