package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Arun-Dalakoti/CardGenius/internal/display"
	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

// Recommendation Request DTOs

// RecommendationRequest represents the request payload for a stateless
// ranking call. Category tags outside the fixed enumeration are rejected at
// this edge; the ranker itself would simply never match them. An absent or
// empty selection is the valid "nothing selected" state.
type RecommendationRequest struct {
	SelectedCategories []string         `json:"selected_categories" validate:"omitempty,dive,oneof=travel shopping food fuel"`
	CategorySpends     map[string]int64 `json:"category_spends" validate:"omitempty,dive,keys,oneof=travel shopping food fuel,endkeys,gte=0"`
}

// ToSelection converts the request into the ranker's input model
func (r *RecommendationRequest) ToSelection() models.SpendSelection {
	spends := r.CategorySpends
	if spends == nil {
		spends = map[string]int64{}
	}
	return models.SpendSelection{
		SelectedCategories: r.SelectedCategories,
		CategorySpends:     spends,
	}
}

// Recommendation Response DTOs

// RankedCardResponse is one entry of the ordered recommendation list
type RankedCardResponse struct {
	CardResponse
	Rank       int `json:"rank"`
	MatchCount int `json:"match_count"`
}

// RecommendationResponse represents the ranked result plus the savings
// teaser shown above the card carousel
type RecommendationResponse struct {
	Cards                  []RankedCardResponse `json:"cards"`
	Total                  int                  `json:"total"`
	TotalSpend             int64                `json:"total_spend"`
	TotalSpendDisplay      string               `json:"total_spend_display"`
	AverageCashback        decimal.Decimal      `json:"average_cashback"`
	AverageCashbackDisplay string               `json:"average_cashback_display"`
	MonthlySavings         int64                `json:"monthly_savings"`
	MonthlySavingsDisplay  string               `json:"monthly_savings_display"`
}

// NewRecommendationResponse builds the response view of a ranked result.
// Ranks are 1-based; match counts are relative to the request's selection.
func NewRecommendationResponse(
	ranked []models.CardRecord,
	selection models.SpendSelection,
	averageCashback decimal.Decimal,
	monthlySavings int64,
) RecommendationResponse {
	cards := make([]RankedCardResponse, 0, len(ranked))
	for i, card := range ranked {
		cards = append(cards, RankedCardResponse{
			CardResponse: NewCardResponse(card),
			Rank:         i + 1,
			MatchCount:   card.MatchCount(selection.SelectedCategories),
		})
	}

	totalSpend := selection.TotalSpend()

	return RecommendationResponse{
		Cards:                  cards,
		Total:                  len(cards),
		TotalSpend:             totalSpend,
		TotalSpendDisplay:      display.Currency(totalSpend),
		AverageCashback:        averageCashback.Round(2),
		AverageCashbackDisplay: display.Percent(averageCashback),
		MonthlySavings:         monthlySavings,
		MonthlySavingsDisplay:  display.Currency(monthlySavings),
	}
}
