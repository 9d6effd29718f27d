// Package catalog holds the process-wide, read-only card reference data.
// The table is fixed at build time; there is no card database behind it.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

var cards = initCards()

func initCards() []models.CardRecord {
	records := []models.CardRecord{
		// HDFC Bank
		{
			ID:           "hdfc1",
			Name:         "HDFC Regalia",
			Bank:         "HDFC Bank",
			Categories:   []string{models.CategoryTravel, models.CategoryShopping},
			CashbackRate: decimal.NewFromInt(4),
			AnnualFee:    2500,
			JoiningBonus: 5000,
		},
		{
			ID:           "hdfc2",
			Name:         "HDFC Millennia",
			Bank:         "HDFC Bank",
			Categories:   []string{models.CategoryShopping, models.CategoryFood},
			CashbackRate: decimal.NewFromInt(5),
			AnnualFee:    1000,
			JoiningBonus: 1000,
		},
		{
			ID:           "hdfc3",
			Name:         "HDFC Diners Club",
			Bank:         "HDFC Bank",
			Categories:   []string{models.CategoryTravel, models.CategoryFuel},
			CashbackRate: decimal.NewFromFloat(3.3),
			AnnualFee:    10000,
			JoiningBonus: 10000,
		},
		{
			ID:           "hdfc4",
			Name:         "HDFC MoneyBack",
			Bank:         "HDFC Bank",
			Categories:   []string{models.CategoryFuel, models.CategoryShopping},
			CashbackRate: decimal.NewFromInt(2),
			AnnualFee:    500,
			JoiningBonus: 500,
		},
		{
			ID:           "hdfc5",
			Name:         "HDFC Infinia",
			Bank:         "HDFC Bank",
			Categories:   []string{models.CategoryTravel, models.CategoryShopping, models.CategoryFood},
			CashbackRate: decimal.NewFromFloat(3.3),
			AnnualFee:    12500,
			JoiningBonus: 12500,
		},

		// SBI Card
		{
			ID:           "sbi1",
			Name:         "SBI Cashback",
			Bank:         "SBI Card",
			Categories:   []string{models.CategoryShopping, models.CategoryFuel},
			CashbackRate: decimal.NewFromInt(5),
			AnnualFee:    999,
			JoiningBonus: 2000,
		},
		{
			ID:           "sbi2",
			Name:         "SBI SimplyCLICK",
			Bank:         "SBI Card",
			Categories:   []string{models.CategoryShopping, models.CategoryFood},
			CashbackRate: decimal.NewFromInt(10),
			AnnualFee:    499,
			JoiningBonus: 500,
		},
		{
			ID:           "sbi3",
			Name:         "SBI Vistara",
			Bank:         "SBI Card",
			Categories:   []string{models.CategoryTravel},
			CashbackRate: decimal.NewFromInt(4),
			AnnualFee:    3000,
			JoiningBonus: 3000,
		},
		{
			ID:           "sbi4",
			Name:         "SBI Elite",
			Bank:         "SBI Card",
			Categories:   []string{models.CategoryTravel, models.CategoryShopping},
			CashbackRate: decimal.NewFromInt(3),
			AnnualFee:    4999,
			JoiningBonus: 5000,
		},
		{
			ID:           "sbi5",
			Name:         "SBI BPCL",
			Bank:         "SBI Card",
			Categories:   []string{models.CategoryFuel},
			CashbackRate: decimal.NewFromInt(7),
			AnnualFee:    0,
			JoiningBonus: 0,
		},

		// ICICI Bank
		{
			ID:           "icici1",
			Name:         "ICICI Amazon Pay",
			Bank:         "ICICI Bank",
			Categories:   []string{models.CategoryShopping},
			CashbackRate: decimal.NewFromInt(5),
			AnnualFee:    500,
			JoiningBonus: 1000,
		},
		{
			ID:           "icici2",
			Name:         "ICICI Sapphiro",
			Bank:         "ICICI Bank",
			Categories:   []string{models.CategoryTravel, models.CategoryShopping, models.CategoryFood},
			CashbackRate: decimal.NewFromFloat(3.3),
			AnnualFee:    3500,
			JoiningBonus: 3500,
		},
		{
			ID:           "icici3",
			Name:         "ICICI HPCL",
			Bank:         "ICICI Bank",
			Categories:   []string{models.CategoryFuel},
			CashbackRate: decimal.NewFromInt(5),
			AnnualFee:    500,
			JoiningBonus: 500,
		},
		{
			ID:           "icici4",
			Name:         "ICICI Coral",
			Bank:         "ICICI Bank",
			Categories:   []string{models.CategoryShopping, models.CategoryFood},
			CashbackRate: decimal.NewFromInt(2),
			AnnualFee:    500,
			JoiningBonus: 2000,
		},
		{
			ID:           "icici5",
			Name:         "ICICI Emeralde",
			Bank:         "ICICI Bank",
			Categories:   []string{models.CategoryTravel, models.CategoryShopping},
			CashbackRate: decimal.NewFromInt(4),
			AnnualFee:    12000,
			JoiningBonus: 12000,
		},

		// Axis Bank
		{
			ID:           "axis1",
			Name:         "Axis Flipkart",
			Bank:         "Axis Bank",
			Categories:   []string{models.CategoryShopping},
			CashbackRate: decimal.NewFromInt(4),
			AnnualFee:    500,
			JoiningBonus: 500,
		},
		{
			ID:           "axis2",
			Name:         "Axis Magnus",
			Bank:         "Axis Bank",
			Categories:   []string{models.CategoryTravel, models.CategoryShopping, models.CategoryFood},
			CashbackRate: decimal.NewFromFloat(4.8),
			AnnualFee:    12500,
			JoiningBonus: 25000,
		},
		{
			ID:           "axis3",
			Name:         "Axis Vistara",
			Bank:         "Axis Bank",
			Categories:   []string{models.CategoryTravel},
			CashbackRate: decimal.NewFromInt(4),
			AnnualFee:    1500,
			JoiningBonus: 1500,
		},
		{
			ID:           "axis4",
			Name:         "Axis ACE",
			Bank:         "Axis Bank",
			Categories:   []string{models.CategoryShopping, models.CategoryFood, models.CategoryFuel},
			CashbackRate: decimal.NewFromInt(2),
			AnnualFee:    0,
			JoiningBonus: 0,
		},
		{
			ID:           "axis5",
			Name:         "Axis Select",
			Bank:         "Axis Bank",
			Categories:   []string{models.CategoryShopping, models.CategoryTravel},
			CashbackRate: decimal.NewFromInt(2),
			AnnualFee:    3000,
			JoiningBonus: 3000,
		},
	}

	for i := range records {
		records[i].ApplyDefaults()
	}

	return records
}

// Cards returns a copy of the full catalog in its canonical order. The copy
// keeps callers from mutating the shared table; card values themselves are
// treated as immutable.
func Cards() []models.CardRecord {
	out := make([]models.CardRecord, len(cards))
	copy(out, cards)
	return out
}

// Size returns the number of cards in the catalog
func Size() int {
	return len(cards)
}

// FindByID returns the card with the given ID, or false if no card has it
func FindByID(id string) (models.CardRecord, bool) {
	for _, card := range cards {
		if card.ID == id {
			return card, true
		}
	}
	return models.CardRecord{}, false
}

// Validate checks every catalog entry against the card invariants and that
// IDs are unique. Run once at startup; a broken table is a build defect,
// not a runtime condition.
func Validate() error {
	seen := make(map[string]bool, len(cards))
	for i := range cards {
		if err := cards[i].Validate(); err != nil {
			return err
		}
		if seen[cards[i].ID] {
			return fmt.Errorf("duplicate card ID %q", cards[i].ID)
		}
		seen[cards[i].ID] = true
	}
	return nil
}
