package calculator

import "github.com/mmynk/mathproblems/internal/metrics"

// Problem represents a group of people and their average score
type Problem struct {
	// Count is the number of people in the group.
	Count uint32

	// Average is the arithmetic mean of the group's values.
	Average float64
}

// NewProblem returns a Problem for count people averaging average.
// A zero count is accepted: the group total is then zero.
func NewProblem(count uint32, average float64) Problem {
	metrics.ObserveProblem(metrics.CalculatorAverage, metrics.KindGroup)
	return Problem{Count: count, Average: average}
}

// CalculateTotal returns the sum of the group's values (average × count).
func (p Problem) CalculateTotal() float64 {
	return p.Average * float64(p.Count)
}

// IncognitoProblem represents a group that one unknown person joins,
// after which the group average becomes NewAverage.
type IncognitoProblem struct {
	Initial    Problem
	NewAverage float64
}

// NewIncognitoProblem returns an IncognitoProblem for a group of
// initialCount people averaging initialAverage that reaches newAverage
// once a newcomer joins.
func NewIncognitoProblem(initialCount uint32, initialAverage, newAverage float64) IncognitoProblem {
	metrics.ObserveProblem(metrics.CalculatorAverage, metrics.KindIncognito)
	return IncognitoProblem{
		Initial:    Problem{Count: initialCount, Average: initialAverage},
		NewAverage: newAverage,
	}
}

// CalculateNewAverage returns the value the newcomer must contribute:
// newAverage × (count + 1) − initial total.
func (p IncognitoProblem) CalculateNewAverage() float64 {
	// count+1 in float64 so MaxUint32 cannot wrap
	newTotal := p.NewAverage * (float64(p.Initial.Count) + 1)

	return newTotal - p.Initial.CalculateTotal()
}
