package models

import "github.com/shopspring/decimal"

// CategorySavings is one row of the savings breakdown: what was spent in a
// category and what the cashback rate returns for it.
type CategorySavings struct {
	Category   string          `json:"category"`
	Label      string          `json:"label"`
	Spent      int64           `json:"spent"`
	Saved      int64           `json:"saved"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SavingsBreakdown aggregates per-category savings with the monthly, annual
// and fee-adjusted totals. MonthlySavings is computed from the unrounded
// rate against TotalSpent, not by summing the rounded per-category values,
// so the sum of Categories[].Saved may differ from MonthlySavings by one
// currency unit. That drift is intentional and documented, not reconciled.
type SavingsBreakdown struct {
	Categories     []CategorySavings `json:"categories"`
	TotalSpent     int64             `json:"total_spent"`
	MonthlySavings int64             `json:"monthly_savings"`
	AnnualSavings  int64             `json:"annual_savings"`
	AnnualFee      int64             `json:"annual_fee"`
	NetSavings     int64             `json:"net_savings"`
	CashbackRate   decimal.Decimal   `json:"cashback_rate"`
}

// IsPlaceholder reports whether this is the degraded breakdown served when
// no card (and no ranked set) supplies a cashback rate
func (b *SavingsBreakdown) IsPlaceholder() bool {
	return b.CashbackRate.IsZero() && len(b.Categories) == 0
}
