package services

import (
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

const (
	// One extra recommendation slot is earned per spendPerSlot of monthly
	// spend, bounded below and above: a user spending more is shown a
	// larger comparison set, but never fewer than minRecommendations when
	// anything matches and never more than maxRecommendations.
	spendPerSlot       = 2000
	minRecommendations = 3
	maxRecommendations = 20
)

type recommendationService struct {
	metrics MetricsRecorderInterface
}

// NewRecommendationService creates a new RecommendationServiceInterface instance.
// metrics may be nil, in which case no instrumentation is recorded.
func NewRecommendationService(metrics MetricsRecorderInterface) RecommendationServiceInterface {
	return &recommendationService{metrics: metrics}
}

// Rank keeps every card whose categories intersect the selection, orders by
// match count descending with cashback rate descending as the tie-break
// (residual ties keep catalog order), and truncates by spend magnitude.
func (s *recommendationService) Rank(cards []models.CardRecord, selection models.SpendSelection) []models.CardRecord {
	start := time.Now()

	ranked := s.rank(cards, selection)

	if s.metrics != nil {
		s.metrics.RecordRanking(len(ranked), time.Since(start))
	}

	slog.Debug("ranked catalog against selection",
		"selected_categories", selection.SelectedCategories,
		"total_spend", selection.TotalSpend(),
		"matches", len(ranked))

	return ranked
}

func (s *recommendationService) rank(cards []models.CardRecord, selection models.SpendSelection) []models.CardRecord {
	// No categories selected means no recommendations, never "recommend
	// everything".
	if len(selection.SelectedCategories) == 0 {
		return []models.CardRecord{}
	}

	matched := make([]models.CardRecord, 0, len(cards))
	for _, card := range cards {
		if card.MatchCount(selection.SelectedCategories) > 0 {
			matched = append(matched, card)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		mi := matched[i].MatchCount(selection.SelectedCategories)
		mj := matched[j].MatchCount(selection.SelectedCategories)
		if mi != mj {
			return mi > mj
		}
		return matched[i].CashbackRate.GreaterThan(matched[j].CashbackRate)
	})

	limit := resultLimit(selection.TotalSpend())
	if limit < len(matched) {
		matched = matched[:limit]
	}

	return matched
}

// AverageCashback returns the arithmetic mean of the cards' cashback rates.
// Zero ranked cards must not divide by zero; the average is defined as 0.
func (s *recommendationService) AverageCashback(cards []models.CardRecord) decimal.Decimal {
	if len(cards) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, card := range cards {
		sum = sum.Add(card.CashbackRate)
	}

	return sum.Div(decimal.NewFromInt(int64(len(cards))))
}

// resultLimit is clamp(floor(totalSpend/2000), 3, 20). TotalSpend already
// clamps negative amounts to zero, so the floor of the clamp applies.
func resultLimit(totalSpend int64) int {
	limit := int(totalSpend / spendPerSlot)
	if limit < minRecommendations {
		return minRecommendations
	}
	if limit > maxRecommendations {
		return maxRecommendations
	}
	return limit
}
