package dto

import (
	"github.com/Arun-Dalakoti/CardGenius/internal/display"
	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

// Savings Request DTOs

// SavingsRequest represents the request payload for a stateless breakdown
// computation. Exactly one rate source applies: an explicit cashback_rate,
// or a card_id whose catalog rate and annual fee are used. When both are
// absent the rate is zero and the response is the documented placeholder.
type SavingsRequest struct {
	CategorySpends map[string]int64 `json:"category_spends" validate:"required,dive,keys,oneof=travel shopping food fuel,endkeys,gte=0"`
	CashbackRate   *float64         `json:"cashback_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
	CardID         string           `json:"card_id,omitempty"`
}

// Savings Response DTOs

// CategorySavingsResponse is one row of the rendered breakdown
type CategorySavingsResponse struct {
	models.CategorySavings
	SpentDisplay      string `json:"spent_display"`
	SavedDisplay      string `json:"saved_display"`
	PercentageDisplay string `json:"percentage_display"`
}

// SavingsResponse represents the full breakdown with display strings
type SavingsResponse struct {
	Categories            []CategorySavingsResponse `json:"categories"`
	TotalSpent            int64                     `json:"total_spent"`
	TotalSpentDisplay     string                    `json:"total_spent_display"`
	MonthlySavings        int64                     `json:"monthly_savings"`
	MonthlySavingsDisplay string                    `json:"monthly_savings_display"`
	AnnualSavings         int64                     `json:"annual_savings"`
	AnnualSavingsDisplay  string                    `json:"annual_savings_display"`
	AnnualFee             int64                     `json:"annual_fee"`
	AnnualFeeDisplay      string                    `json:"annual_fee_display"`
	NetSavings            int64                     `json:"net_savings"`
	NetSavingsDisplay     string                    `json:"net_savings_display"`
	CashbackRateDisplay   string                    `json:"cashback_rate_display"`
	Placeholder           bool                      `json:"placeholder"`
}

// NewSavingsResponse builds the response view of a savings breakdown.
// Placeholder signals the screens to prompt for category selection instead
// of rendering zeros as real savings.
func NewSavingsResponse(breakdown *models.SavingsBreakdown) SavingsResponse {
	categories := make([]CategorySavingsResponse, 0, len(breakdown.Categories))
	for _, entry := range breakdown.Categories {
		categories = append(categories, CategorySavingsResponse{
			CategorySavings:   entry,
			SpentDisplay:      display.Currency(entry.Spent),
			SavedDisplay:      display.Currency(entry.Saved),
			PercentageDisplay: display.Percent(entry.Percentage),
		})
	}

	return SavingsResponse{
		Categories:            categories,
		TotalSpent:            breakdown.TotalSpent,
		TotalSpentDisplay:     display.Currency(breakdown.TotalSpent),
		MonthlySavings:        breakdown.MonthlySavings,
		MonthlySavingsDisplay: display.Currency(breakdown.MonthlySavings),
		AnnualSavings:         breakdown.AnnualSavings,
		AnnualSavingsDisplay:  display.Currency(breakdown.AnnualSavings),
		AnnualFee:             breakdown.AnnualFee,
		AnnualFeeDisplay:      display.Currency(breakdown.AnnualFee),
		NetSavings:            breakdown.NetSavings,
		NetSavingsDisplay:     display.SignedCurrency(breakdown.NetSavings),
		CashbackRateDisplay:   display.Percent(breakdown.CashbackRate),
		Placeholder:           breakdown.IsPlaceholder(),
	}
}
