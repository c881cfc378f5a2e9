package calculator

import "math"

// MovingAverage computes the simple moving average of the last `window`
// values. When fewer values exist than the window it averages what is
// available instead of failing; an empty input yields 0.
func MovingAverage(values []float64, window int) float64 {
	if window <= 0 || len(values) == 0 {
		return 0
	}
	start := len(values) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, v := range values[start:] {
		sum += v
	}
	return sum / float64(len(values)-start)
}

// SampleStdDev returns the sample standard deviation (n-1 divisor).
// Fewer than two observations yield 0.
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}

// Clamp bounds n to [min, max].
func Clamp(n, min, max float64) float64 {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
