package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/mathproblems/internal/metrics"
)

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name    string
		count   uint32
		average float64
		want    float64
	}{
		{name: "three people averaging 90", count: 3, average: 90.0, want: 270.0},
		{name: "two people averaging 85", count: 2, average: 85.0, want: 170.0},
		{name: "empty group", count: 0, average: 90.0, want: 0},
		{name: "negative average", count: 4, average: -2.5, want: -10.0},
		{name: "single person", count: 1, average: 42.25, want: 42.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewProblem(tt.count, tt.average).CalculateTotal()
			if got != tt.want {
				t.Errorf("CalculateTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateTotalMatchesFormula(t *testing.T) {
	for _, count := range []uint32{0, 1, 7, 1000, math.MaxUint32} {
		for _, average := range []float64{0, 0.1, 33.3, -12.75, 1e9} {
			got := NewProblem(count, average).CalculateTotal()
			if want := average * float64(count); got != want {
				t.Errorf("NewProblem(%d, %v).CalculateTotal() = %v, want %v", count, average, got, want)
			}
		}
	}
}

func TestCalculateNewAverage(t *testing.T) {
	tests := []struct {
		name           string
		initialCount   uint32
		initialAverage float64
		newAverage     float64
		want           float64
	}{
		{
			// (90 * 3) - (85 * 2) = 270 - 170
			name:           "two people at 85 reach 90",
			initialCount:   2,
			initialAverage: 85.0,
			newAverage:     90.0,
			want:           100.0,
		},
		{
			// (75 * 4) - (70 * 3) = 300 - 210
			name:           "three people at 70 reach 75",
			initialCount:   3,
			initialAverage: 70.0,
			newAverage:     75.0,
			want:           90.0,
		},
		{
			name:           "unchanged average means newcomer matches it",
			initialCount:   5,
			initialAverage: 60.0,
			newAverage:     60.0,
			want:           60.0,
		},
		{
			name:           "lower average means newcomer pulls it down",
			initialCount:   4,
			initialAverage: 80.0,
			newAverage:     70.0,
			want:           30.0,
		},
		{
			name:           "empty group newcomer is the new average",
			initialCount:   0,
			initialAverage: 50.0,
			newAverage:     12.5,
			want:           12.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewIncognitoProblem(tt.initialCount, tt.initialAverage, tt.newAverage)
			if got := p.CalculateNewAverage(); got != tt.want {
				t.Errorf("CalculateNewAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateNewAverageMatchesFormula(t *testing.T) {
	cases := []struct {
		count    uint32
		initial  float64
		newTotal float64
	}{
		{1, 10, 20},
		{10, 7.5, 8.25},
		{99, 0.3, 0.1},
		{12345, -4, 3},
	}

	for _, c := range cases {
		got := NewIncognitoProblem(c.count, c.initial, c.newTotal).CalculateNewAverage()
		want := c.newTotal*float64(c.count+1) - c.initial*float64(c.count)
		if got != want {
			t.Errorf("NewIncognitoProblem(%d, %v, %v).CalculateNewAverage() = %v, want %v",
				c.count, c.initial, c.newTotal, got, want)
		}
	}
}

func TestCalculateNewAverageMaxCount(t *testing.T) {
	p := NewIncognitoProblem(math.MaxUint32, 1, 1)
	if got := p.CalculateNewAverage(); got != 1 {
		t.Errorf("CalculateNewAverage() = %v, want 1", got)
	}
}

func TestNewIncognitoProblemWrapsInitialGroup(t *testing.T) {
	p := NewIncognitoProblem(3, 70.0, 75.0)

	if p.Initial != NewProblem(3, 70.0) {
		t.Errorf("Initial = %+v, want {Count:3 Average:70}", p.Initial)
	}
	if p.NewAverage != 75.0 {
		t.Errorf("NewAverage = %v, want 75", p.NewAverage)
	}
}

func TestAverageDerivationsAreRepeatable(t *testing.T) {
	total := NewProblem(3, 90.0)
	if first, second := total.CalculateTotal(), total.CalculateTotal(); first != second {
		t.Errorf("CalculateTotal() returned %v then %v", first, second)
	}

	incognito := NewIncognitoProblem(2, 85.0, 90.0)
	if first, second := incognito.CalculateNewAverage(), incognito.CalculateNewAverage(); first != second {
		t.Errorf("CalculateNewAverage() returned %v then %v", first, second)
	}
}

func TestAverageConstructionsAreCounted(t *testing.T) {
	beforeGroup := metrics.ProblemCount(metrics.CalculatorAverage, metrics.KindGroup)
	beforeIncognito := metrics.ProblemCount(metrics.CalculatorAverage, metrics.KindIncognito)

	group := NewProblem(3, 90.0)
	incognito := NewIncognitoProblem(2, 85.0, 90.0)
	NewIncognitoProblem(3, 70.0, 75.0)

	if got := metrics.ProblemCount(metrics.CalculatorAverage, metrics.KindGroup) - beforeGroup; got != 1 {
		t.Errorf("group problems = %v, want 1", got)
	}
	if got := metrics.ProblemCount(metrics.CalculatorAverage, metrics.KindIncognito) - beforeIncognito; got != 2 {
		t.Errorf("incognito problems = %v, want 2", got)
	}

	// derivations leave the counters alone
	group.CalculateTotal()
	incognito.CalculateNewAverage()
	if got := metrics.ProblemCount(metrics.CalculatorAverage, metrics.KindGroup) - beforeGroup; got != 1 {
		t.Errorf("group problems after derivation = %v, want 1", got)
	}
	if got := metrics.ProblemCount(metrics.CalculatorAverage, metrics.KindIncognito) - beforeIncognito; got != 2 {
		t.Errorf("incognito problems after derivation = %v, want 2", got)
	}
}
