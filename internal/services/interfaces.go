package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

// RecommendationServiceInterface ranks catalog cards against a spend selection
type RecommendationServiceInterface interface {
	// Rank filters the catalog to cards overlapping the selected categories
	// and orders them best-first. Deterministic for a fixed catalog and
	// selection; an empty selection yields an empty result.
	Rank(cards []models.CardRecord, selection models.SpendSelection) []models.CardRecord

	// AverageCashback returns the arithmetic mean cashback rate across the
	// given cards, zero for an empty slice.
	AverageCashback(cards []models.CardRecord) decimal.Decimal
}

// SavingsServiceInterface derives cashback savings from spend amounts and a resolved rate
type SavingsServiceInterface interface {
	// ComputeBreakdown returns per-category and aggregate savings for the
	// given spends at the given cashback rate, net of the annual fee.
	ComputeBreakdown(categorySpends map[string]int64, spendOrder []string, cashbackRate decimal.Decimal, annualFee int64) *models.SavingsBreakdown
}

// SessionServiceInterface owns the per-user transient state: one
// last-write-wins record per anonymous session
type SessionServiceInterface interface {
	Create() *Session
	Get(id uuid.UUID) (*Session, error)
	UpdateSelection(id uuid.UUID, selection models.SpendSelection) (*Session, error)
	SelectCard(id uuid.UUID, cardIndex int) (*Session, error)
	Savings(id uuid.UUID) (*models.SavingsBreakdown, error)
	Delete(id uuid.UUID) error
	Count() int

	// Stop ends the background idle sweep on shutdown.
	Stop()
}

// CardGeneratorInterface produces synthetic card records for development and tests
type CardGeneratorInterface interface {
	GenerateCards(count int) []models.CardRecord
}

// MetricsRecorderInterface abstracts the metrics backend
type MetricsRecorderInterface interface {
	RecordRanking(resultSize int, duration time.Duration)
	RecordSavingsComputation(placeholder bool)
	SetActiveSessions(count int)
	RecordSessionExpired(count int)
}
