package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Arun-Dalakoti/CardGenius/internal/display"
	"github.com/Arun-Dalakoti/CardGenius/internal/models"
	"github.com/Arun-Dalakoti/CardGenius/internal/services"
)

// Session Request DTOs

// UpdateSelectionRequest replaces the session's selected categories and
// spend amounts in one write. An empty category list is valid and clears
// the recommendations.
type UpdateSelectionRequest struct {
	SelectedCategories []string         `json:"selected_categories" validate:"omitempty,dive,oneof=travel shopping food fuel"`
	CategorySpends     map[string]int64 `json:"category_spends" validate:"omitempty,dive,keys,oneof=travel shopping food fuel,endkeys,gte=0"`
}

// ToSelection converts the request into the session's selection model
func (r *UpdateSelectionRequest) ToSelection() models.SpendSelection {
	categories := r.SelectedCategories
	if categories == nil {
		categories = []string{}
	}
	spends := r.CategorySpends
	if spends == nil {
		spends = map[string]int64{}
	}
	return models.SpendSelection{
		SelectedCategories: categories,
		CategorySpends:     spends,
	}
}

// SelectCardRequest pins the savings view to a carousel position in the
// ranked result. -1 clears the selection.
type SelectCardRequest struct {
	CardIndex int `json:"card_index" validate:"gte=-1"`
}

// Session Response DTOs

// SessionResponse represents the session state the screens bind to
type SessionResponse struct {
	ID                 uuid.UUID            `json:"id"`
	SelectedCategories []string             `json:"selected_categories"`
	CategorySpends     map[string]int64     `json:"category_spends"`
	TotalSpend         int64                `json:"total_spend"`
	TotalSpendDisplay  string               `json:"total_spend_display"`
	CardIndex          int                  `json:"card_index"`
	Recommendations    []RankedCardResponse `json:"recommendations"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// NewSessionResponse builds the response view of a session
func NewSessionResponse(session *services.Session) SessionResponse {
	cards := make([]RankedCardResponse, 0, len(session.Ranked))
	for i, card := range session.Ranked {
		cards = append(cards, RankedCardResponse{
			CardResponse: NewCardResponse(card),
			Rank:         i + 1,
			MatchCount:   card.MatchCount(session.Selection.SelectedCategories),
		})
	}

	totalSpend := session.Selection.TotalSpend()

	return SessionResponse{
		ID:                 session.ID,
		SelectedCategories: session.Selection.SelectedCategories,
		CategorySpends:     session.Selection.CategorySpends,
		TotalSpend:         totalSpend,
		TotalSpendDisplay:  display.Currency(totalSpend),
		CardIndex:          session.CardIndex,
		Recommendations:    cards,
		CreatedAt:          session.CreatedAt,
		UpdatedAt:          session.UpdatedAt,
	}
}
