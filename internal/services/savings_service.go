package services

import (
	"github.com/shopspring/decimal"

	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

const monthsPerYear = 12

var oneHundred = decimal.NewFromInt(100)

type savingsService struct {
	metrics MetricsRecorderInterface
}

// NewSavingsService creates a new SavingsServiceInterface instance.
// metrics may be nil, in which case no instrumentation is recorded.
func NewSavingsService(metrics MetricsRecorderInterface) SavingsServiceInterface {
	return &savingsService{metrics: metrics}
}

// ComputeBreakdown derives the savings view for the given spends at a single
// resolved cashback rate. Which rate applies (the active card's own, or the
// average across the ranked set) is the caller's decision; the calculator is
// agnostic.
//
// Per-category saved amounts round half-up to whole currency units. The
// monthly total is computed independently from the unrounded rate against
// the total spend, so the sum of per-category values may differ from it by
// one unit; that drift is intentional and must not be reconciled away.
func (s *savingsService) ComputeBreakdown(
	categorySpends map[string]int64,
	spendOrder []string,
	cashbackRate decimal.Decimal,
	annualFee int64,
) *models.SavingsBreakdown {
	if cashbackRate.IsNegative() {
		cashbackRate = decimal.Zero
	}

	var totalSpent int64
	entries := make([]models.CategorySavings, 0, len(spendOrder))

	for _, tag := range spendOrder {
		amount := categorySpends[tag]
		if amount < 0 {
			// No spend amount is legitimately negative; default to safe.
			amount = 0
		}

		totalSpent += amount

		// Zero and absent amounts still contribute to the total spend but
		// earn no breakdown row.
		if amount == 0 {
			continue
		}

		entries = append(entries, models.CategorySavings{
			Category:   tag,
			Label:      models.CategoryLabel(tag),
			Spent:      amount,
			Saved:      applyRate(amount, cashbackRate),
			Percentage: cashbackRate.Round(2),
		})
	}

	monthly := applyRate(totalSpent, cashbackRate)
	annual := monthly * monthsPerYear

	breakdown := &models.SavingsBreakdown{
		Categories:     entries,
		TotalSpent:     totalSpent,
		MonthlySavings: monthly,
		AnnualSavings:  annual,
		AnnualFee:      annualFee,
		// May be negative: the card costs more than it returns at this
		// spend level, which is a meaningful result in itself.
		NetSavings:   annual - annualFee,
		CashbackRate: cashbackRate,
	}

	if s.metrics != nil {
		s.metrics.RecordSavingsComputation(breakdown.IsPlaceholder())
	}

	return breakdown
}

// applyRate returns amount * rate / 100 rounded half-up to a whole currency unit
func applyRate(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Div(oneHundred).Round(0).IntPart()
}
