package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

// Card-program name fragments banks actually use; gofakeit covers the rest
// of the fixture (bank names, ratings, review counts).
var cardTiers = []string{
	"Platinum", "Signature", "Regalia", "Millennia", "Elite",
	"Select", "Ace", "Coral", "Magnus", "Infinite",
}

type cardGenerator struct {
	rng *rand.Rand
}

// NewCardGenerator creates a generator for synthetic catalog entries, used
// by the development sample endpoint and fixture-heavy tests
func NewCardGenerator() CardGeneratorInterface {
	return &cardGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededCardGenerator creates a generator with a fixed seed so tests get
// reproducible fixtures
func NewSeededCardGenerator(seed int64) CardGeneratorInterface {
	return &cardGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *cardGenerator) GenerateCards(count int) []models.CardRecord {
	cards := make([]models.CardRecord, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, g.generateCard(i))
	}
	return cards
}

func (g *cardGenerator) generateCard(index int) models.CardRecord {
	bank := gofakeit.Company()
	tier := cardTiers[g.rng.Intn(len(cardTiers))]

	card := models.CardRecord{
		ID:         fmt.Sprintf("gen%d", index+1),
		Name:       fmt.Sprintf("%s %s", bank, tier),
		Bank:       bank,
		Categories: g.pickCategories(),
		// Real catalog rates sit between 2% and 10% with one decimal place
		CashbackRate: decimal.NewFromInt(int64(g.rng.Intn(81)+20)).Div(decimal.NewFromInt(10)),
		AnnualFee:    int64(g.rng.Intn(26)) * 500,
		JoiningBonus: int64(g.rng.Intn(26)) * 500,
		Rating:       float64(g.rng.Intn(16)+30) / 10,
		Reviews:      gofakeit.Number(100, 10000),
	}

	return card
}

func (g *cardGenerator) pickCategories() []string {
	all := models.AllCategories()
	g.rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	count := g.rng.Intn(3) + 1
	picked := all[:count]

	// Restore enumeration order so generated cards read like catalog entries
	ordered := make([]string, 0, count)
	for _, tag := range models.AllCategories() {
		for _, p := range picked {
			if tag == p {
				ordered = append(ordered, tag)
			}
		}
	}

	return ordered
}
