package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// Defaults applied when the catalog entry does not carry its own
	// rating data
	DefaultRating  = 4.5
	DefaultReviews = 2847
)

var (
	ErrCardMissingID         = errors.New("card ID is required")
	ErrCardMissingCategories = errors.New("card must reward at least one category")
	ErrCardNegativeCashback  = errors.New("cashback rate cannot be negative")
	ErrCardNegativeFee       = errors.New("annual fee cannot be negative")
	ErrCardNegativeBonus     = errors.New("joining bonus cannot be negative")
)

// CardRecord is an immutable catalog entry for a single credit card.
// CashbackRate is a percentage applied uniformly across the card's matched
// categories; differentiating the rate by category is intentionally not
// modeled.
type CardRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Bank         string          `json:"bank"`
	Categories   []string        `json:"categories"`
	CashbackRate decimal.Decimal `json:"cashback_rate"`
	AnnualFee    int64           `json:"annual_fee"`
	JoiningBonus int64           `json:"joining_bonus"`
	Rating       float64         `json:"rating"`
	Reviews      int             `json:"reviews"`
	RewardPoints string          `json:"reward_points,omitempty"`
}

// RewardsCategory reports whether the card rewards the given category tag
func (c *CardRecord) RewardsCategory(tag string) bool {
	for _, cat := range c.Categories {
		if cat == tag {
			return true
		}
	}
	return false
}

// MatchCount returns how many of the selected categories this card rewards
func (c *CardRecord) MatchCount(selected []string) int {
	count := 0
	for _, cat := range c.Categories {
		for _, sel := range selected {
			if cat == sel {
				count++
				break
			}
		}
	}
	return count
}

// ApplyDefaults fills rating fields left at their zero value
func (c *CardRecord) ApplyDefaults() {
	if c.Rating == 0 {
		c.Rating = DefaultRating
	}
	if c.Reviews == 0 {
		c.Reviews = DefaultReviews
	}
}

// Validate checks the catalog invariants for a single card
func (c *CardRecord) Validate() error {
	if c.ID == "" {
		return ErrCardMissingID
	}

	if len(c.Categories) == 0 {
		return fmt.Errorf("card %s: %w", c.ID, ErrCardMissingCategories)
	}

	for _, cat := range c.Categories {
		if !IsValidCategory(cat) {
			return fmt.Errorf("card %s: unknown category tag %q", c.ID, cat)
		}
	}

	if c.CashbackRate.IsNegative() {
		return fmt.Errorf("card %s: %w", c.ID, ErrCardNegativeCashback)
	}

	if c.AnnualFee < 0 {
		return fmt.Errorf("card %s: %w", c.ID, ErrCardNegativeFee)
	}

	if c.JoiningBonus < 0 {
		return fmt.Errorf("card %s: %w", c.ID, ErrCardNegativeBonus)
	}

	return nil
}
