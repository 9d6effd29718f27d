package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() CardRecord {
	return CardRecord{
		ID:           "test1",
		Name:         "Test Platinum",
		Bank:         "Test Bank",
		Categories:   []string{CategoryTravel, CategoryShopping},
		CashbackRate: decimal.NewFromInt(4),
		AnnualFee:    2500,
		JoiningBonus: 5000,
	}
}

func TestCardRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CardRecord)
		wantErr error
	}{
		{
			name:    "valid card",
			mutate:  func(c *CardRecord) {},
			wantErr: nil,
		},
		{
			name:    "missing ID",
			mutate:  func(c *CardRecord) { c.ID = "" },
			wantErr: ErrCardMissingID,
		},
		{
			name:    "no categories",
			mutate:  func(c *CardRecord) { c.Categories = nil },
			wantErr: ErrCardMissingCategories,
		},
		{
			name:    "negative cashback rate",
			mutate:  func(c *CardRecord) { c.CashbackRate = decimal.NewFromInt(-1) },
			wantErr: ErrCardNegativeCashback,
		},
		{
			name:    "negative annual fee",
			mutate:  func(c *CardRecord) { c.AnnualFee = -500 },
			wantErr: ErrCardNegativeFee,
		},
		{
			name:    "negative joining bonus",
			mutate:  func(c *CardRecord) { c.JoiningBonus = -1 },
			wantErr: ErrCardNegativeBonus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(&card)

			err := card.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCardRecord_Validate_UnknownCategory(t *testing.T) {
	card := validCard()
	card.Categories = []string{CategoryTravel, "groceries"}

	err := card.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groceries")
}

func TestCardRecord_RewardsCategory(t *testing.T) {
	card := validCard()

	assert.True(t, card.RewardsCategory(CategoryTravel))
	assert.True(t, card.RewardsCategory(CategoryShopping))
	assert.False(t, card.RewardsCategory(CategoryFuel))
	assert.False(t, card.RewardsCategory("groceries"))
	assert.False(t, card.RewardsCategory(""))
}

func TestCardRecord_MatchCount(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     int
	}{
		{"no selection", nil, 0},
		{"empty selection", []string{}, 0},
		{"single match", []string{CategoryTravel}, 1},
		{"both match", []string{CategoryTravel, CategoryShopping}, 2},
		{"non-rewarded category", []string{CategoryFuel}, 0},
		{"mixed matched and unmatched", []string{CategoryShopping, CategoryFood, CategoryFuel}, 1},
		{"duplicate selected tags count once per card category", []string{CategoryTravel, CategoryTravel}, 1},
		{"unknown tag never matches", []string{"groceries"}, 0},
	}

	card := validCard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, card.MatchCount(tt.selected))
		})
	}
}

func TestCardRecord_ApplyDefaults(t *testing.T) {
	card := validCard()
	require.Zero(t, card.Rating)
	require.Zero(t, card.Reviews)

	card.ApplyDefaults()

	assert.Equal(t, DefaultRating, card.Rating)
	assert.Equal(t, DefaultReviews, card.Reviews)
}

func TestCardRecord_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	card := validCard()
	card.Rating = 3.8
	card.Reviews = 120

	card.ApplyDefaults()

	assert.Equal(t, 3.8, card.Rating)
	assert.Equal(t, 120, card.Reviews)
}
