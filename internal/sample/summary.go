package sample

// Summary aggregates a list of integers.
type Summary struct {
	Total      int
	Average    float64
	Normalized []float64
}

// Summarize computes the total, the average and the values scaled by 1/100
// clamped into [0, 1].
func Summarize(values []int) Summary {
	clamp := func(value, low, high float64) float64 {
		return max(low, min(high, value))
	}

	total := 0
	for _, value := range values {
		total += value
	}

	average := 0.0
	if len(values) > 0 {
		average = float64(total) / float64(len(values))
	}

	normalized := make([]float64, len(values))
	for i, value := range values {
		normalized[i] = clamp(float64(value)/100.0, 0.0, 1.0)
	}

	return Summary{
		Total:      total,
		Average:    average,
		Normalized: normalized,
	}
}
