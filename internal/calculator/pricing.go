package calculator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/mathproblems/internal/metrics"
)

var (
	// ErrZeroPercentage is returned when the fraction paid is zero, since
	// the original price is recovered by dividing by it.
	ErrZeroPercentage = errors.New("percentage cannot be zero")

	// ErrNegativeMargin is returned when the desired profit margin is negative.
	ErrNegativeMargin = errors.New("profit margin cannot be negative")
)

// PriceInfo describes a sale made at a fraction of the original price.
//
// Example: a bicycle sold for 280.00 at 70% of what was paid for it.
type PriceInfo struct {
	salePrice      decimal.Decimal
	percentagePaid decimal.Decimal
}

// NewPriceInfo returns a PriceInfo for salePrice, which is percentagePaid
// (a fraction, e.g. 0.70) of the original price. Percentages above one or
// below zero are accepted.
func NewPriceInfo(salePrice, percentagePaid decimal.Decimal) (PriceInfo, error) {
	p, err := newPriceInfo(salePrice, percentagePaid)
	if err != nil {
		return PriceInfo{}, err
	}
	metrics.ObserveProblem(metrics.CalculatorPricing, metrics.KindPriceInfo)
	return p, nil
}

func newPriceInfo(salePrice, percentagePaid decimal.Decimal) (PriceInfo, error) {
	if percentagePaid.IsZero() {
		slog.Debug("Rejected price info",
			"sale_price", salePrice.String(),
			"percentage_paid", percentagePaid.String(),
		)
		metrics.ObserveValidationFailure(metrics.CalculatorPricing, metrics.ReasonZeroPercentage)
		return PriceInfo{}, fmt.Errorf("new price info with sale price %s: %w", salePrice, ErrZeroPercentage)
	}

	return PriceInfo{
		salePrice:      salePrice,
		percentagePaid: percentagePaid,
	}, nil
}

// ParsePriceInfo is NewPriceInfo for decimal strings such as "280.00".
func ParsePriceInfo(salePrice, percentagePaid string) (PriceInfo, error) {
	sale, err := decimal.NewFromString(salePrice)
	if err != nil {
		return PriceInfo{}, fmt.Errorf("parse sale price: %w", err)
	}
	pct, err := decimal.NewFromString(percentagePaid)
	if err != nil {
		return PriceInfo{}, fmt.Errorf("parse percentage paid: %w", err)
	}
	return NewPriceInfo(sale, pct)
}

// SalePrice is the price the item was sold for
func (p PriceInfo) SalePrice() decimal.Decimal {
	return p.salePrice
}

// PercentagePaid is the fraction of the original price the sale represents
func (p PriceInfo) PercentagePaid() decimal.Decimal {
	return p.percentagePaid
}

// CalculatePrice returns the original price: salePrice / percentagePaid.
// Quotients that do not terminate are rounded to decimal.DivisionPrecision
// fractional digits.
func (p PriceInfo) CalculatePrice() decimal.Decimal {
	return p.salePrice.Div(p.percentagePaid)
}

// ProfitCalculator projects the selling price needed to realize a profit
// margin over the original price of a PriceInfo.
type ProfitCalculator struct {
	price  PriceInfo
	margin decimal.Decimal
}

// NewProfitCalculator returns a ProfitCalculator for an item sold for
// totalPaid at percentageReturn of its original price, targeting margin
// (a fraction, e.g. 0.15 for 15%).
//
// It returns ErrNegativeMargin for a negative margin and ErrZeroPercentage
// for a zero percentageReturn. The margin is checked first.
func NewProfitCalculator(totalPaid, percentageReturn, margin decimal.Decimal) (ProfitCalculator, error) {
	if margin.IsNegative() {
		slog.Debug("Rejected profit calculator",
			"total_paid", totalPaid.String(),
			"margin", margin.String(),
		)
		metrics.ObserveValidationFailure(metrics.CalculatorPricing, metrics.ReasonNegativeMargin)
		return ProfitCalculator{}, fmt.Errorf("new profit calculator with margin %s: %w", margin, ErrNegativeMargin)
	}

	price, err := newPriceInfo(totalPaid, percentageReturn)
	if err != nil {
		return ProfitCalculator{}, fmt.Errorf("new profit calculator: %w", err)
	}

	metrics.ObserveProblem(metrics.CalculatorPricing, metrics.KindProfitCalculator)
	return ProfitCalculator{
		price:  price,
		margin: margin,
	}, nil
}

// ParseProfitCalculator is NewProfitCalculator for decimal strings.
func ParseProfitCalculator(totalPaid, percentageReturn, margin string) (ProfitCalculator, error) {
	m, err := decimal.NewFromString(margin)
	if err != nil {
		return ProfitCalculator{}, fmt.Errorf("parse margin: %w", err)
	}
	paid, err := decimal.NewFromString(totalPaid)
	if err != nil {
		return ProfitCalculator{}, fmt.Errorf("parse total paid: %w", err)
	}
	pct, err := decimal.NewFromString(percentageReturn)
	if err != nil {
		return ProfitCalculator{}, fmt.Errorf("parse percentage return: %w", err)
	}
	return NewProfitCalculator(paid, pct, m)
}

// PricePaid returns the underlying PriceInfo
func (c ProfitCalculator) PricePaid() PriceInfo {
	return c.price
}

// Margin returns the desired profit margin.
func (c ProfitCalculator) Margin() decimal.Decimal {
	return c.margin
}

// ComputeSellingPrice returns the original price scaled by (1 + margin).
// The division runs last so a non-terminating quotient is rounded only once.
func (c ProfitCalculator) ComputeSellingPrice() decimal.Decimal {
	scaled := c.price.salePrice.Mul(decimal.NewFromInt(1).Add(c.margin))
	return scaled.Div(c.price.percentagePaid)
}
