// Package calculator solves two families of textbook word problems.
//
// # Averages
//
// Problem holds a group size and its average; IncognitoProblem adds the
// average the group reaches once one more person joins and solves for
// that person's value:
//
//	newcomer = newAverage × (count + 1) − average × count
//
// Averages use float64.
//
// # Pricing
//
// PriceInfo recovers an original price from a sale made at a fraction of
// it, and ProfitCalculator projects the selling price that yields a given
// margin over that original:
//
//	original = salePrice / percentagePaid
//	selling  = original × (1 + margin)
//
// Pricing uses shopspring/decimal so currency values stay exact. Invalid
// inputs (a zero percentage, a negative margin) are reported as
// ErrZeroPercentage and ErrNegativeMargin from the constructors.
//
// All types are immutable values; derivation methods are safe to call
// repeatedly and concurrently.
package calculator
