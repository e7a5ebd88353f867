// Package metrics holds the Prometheus collectors for the calculators.
//
// Collectors are registered on Registry, not prometheus.DefaultRegisterer.
// A caller that wants to expose the counters can serve Registry with
// promhttp.HandlerFor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "mathproblems"

// Calculator label values.
const (
	CalculatorAverage = "average"
	CalculatorPricing = "pricing"
)

// Problem kinds
const (
	KindGroup            = "group"
	KindIncognito        = "incognito"
	KindPriceInfo        = "price_info"
	KindProfitCalculator = "profit_calculator"
)

// Validation failure reasons
const (
	ReasonZeroPercentage = "zero_percentage"
	ReasonNegativeMargin = "negative_margin"
)

// Registry is the registry every collector in this package is registered on.
var Registry = prometheus.NewRegistry()

var (
	problems = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "problems_total",
			Help:      "Number of problems constructed, by calculator and kind.",
		},
		[]string{"calculator", "kind"},
	)

	validationFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Number of rejected constructor inputs, by calculator and reason.",
		},
		[]string{"calculator", "reason"},
	)
)

// ObserveProblem records one successfully constructed problem.
// Derivation methods stay pure; only constructors report here.
func ObserveProblem(calculator, kind string) {
	problems.WithLabelValues(calculator, kind).Inc()
}

// ObserveValidationFailure records one rejected construction.
func ObserveValidationFailure(calculator, reason string) {
	validationFailures.WithLabelValues(calculator, reason).Inc()
}

// ProblemCount returns the current value of the problems counter
func ProblemCount(calculator, kind string) float64 {
	return counterValue(problems.WithLabelValues(calculator, kind))
}

// ValidationFailureCount returns the current value of the validation
// failures counter.
func ValidationFailureCount(calculator, reason string) float64 {
	return counterValue(validationFailures.WithLabelValues(calculator, reason))
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
