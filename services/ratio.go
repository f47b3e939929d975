package services

// safeRatio divides num by den, resolving a zero denominator to 0 instead
// of NaN/Inf. Every percentage and rate in the core goes through here so
// the zero-denominator policy is applied in exactly one place.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// roundDiv divides n by d in integer cents with half-up rounding,
// away from zero. A zero divisor yields 0, same policy as safeRatio.
func roundDiv(n, d int64) int64 {
	if d == 0 {
		return 0
	}
	half := d / 2
	if (n < 0) != (d < 0) {
		return (n - half) / d
	}
	return (n + half) / d
}
