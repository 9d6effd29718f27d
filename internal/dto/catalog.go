package dto

import (
	"github.com/Arun-Dalakoti/CardGenius/internal/catalog"
	"github.com/Arun-Dalakoti/CardGenius/internal/display"
	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

// Catalog Response DTOs

// CardResponse represents a single catalog card in API responses, with the
// formatted strings the screens render directly
type CardResponse struct {
	models.CardRecord
	CashbackDisplay     string `json:"cashback_display"`
	AnnualFeeDisplay    string `json:"annual_fee_display"`
	JoiningBonusDisplay string `json:"joining_bonus_display"`
}

// NewCardResponse builds the response view of one card
func NewCardResponse(card models.CardRecord) CardResponse {
	return CardResponse{
		CardRecord:          card,
		CashbackDisplay:     display.Percent(card.CashbackRate),
		AnnualFeeDisplay:    display.Currency(card.AnnualFee),
		JoiningBonusDisplay: display.Currency(card.JoiningBonus),
	}
}

// CardListResponse represents the full catalog
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
	Total int            `json:"total"`
}

// NewCardListResponse builds the response view of a card list
func NewCardListResponse(cards []models.CardRecord) CardListResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, NewCardResponse(card))
	}
	return CardListResponse{Cards: out, Total: len(out)}
}

// CategoryListResponse lists the fixed category enumeration with the
// spend-entry configuration for each
type CategoryListResponse struct {
	Categories []catalog.SpendConfig `json:"categories"`
}
