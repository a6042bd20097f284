package reporting

import (
	"math"
	"sort"

	"github.com/jonathan/interview-scorer/internal/types"
)

// statisticsFor summarizes one score dimension. An empty input yields the
// zero statistics rather than NaN.
func statisticsFor(scores []float64) types.ScoreStatistics {
	if len(scores) == 0 {
		return types.ScoreStatistics{}
	}

	minScore := scores[0]
	maxScore := scores[0]
	for _, s := range scores {
		if s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}

	return types.ScoreStatistics{
		Mean:   mean(scores),
		Median: median(scores),
		StdDev: stdDev(scores),
		Min:    minScore,
		Max:    maxScore,
		Range:  maxScore - minScore,
	}
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// median averages the two middle elements for even-length input.
func median(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// stdDev is the population standard deviation, defined as 0 for fewer than
// two samples.
func stdDev(scores []float64) float64 {
	if len(scores) < 2 {
		return 0
	}
	m := mean(scores)
	sumSquares := 0.0
	for _, s := range scores {
		d := s - m
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(scores)))
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
