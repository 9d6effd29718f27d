package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Arun-Dalakoti/CardGenius/internal/catalog"
	"github.com/Arun-Dalakoti/CardGenius/internal/dto"
	apierrors "github.com/Arun-Dalakoti/CardGenius/internal/errors"
	"github.com/Arun-Dalakoti/CardGenius/internal/services"
)

// RecommendationHandler serves stateless ranking requests
type RecommendationHandler struct {
	recommendationService services.RecommendationServiceInterface
	savingsService        services.SavingsServiceInterface
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(
	recommendationService services.RecommendationServiceInterface,
	savingsService services.SavingsServiceInterface,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		savingsService:        savingsService,
	}
}

// Recommend ranks the catalog against a spend selection
//
// Method: POST /api/v1/recommendations
//
// Request body:
//   - selected_categories: Array of category tags (an empty or absent array
//     is a valid "nothing selected" state and yields an empty result)
//   - category_spends: Map of category tag to monthly amount (optional)
//
// Success Response: 200 OK
//   - cards: Ordered array of ranked cards, best first, with 1-based ranks
//   - total: Integer result size
//   - average_cashback: Mean cashback rate across the result, 0 when empty
//   - monthly_savings: Savings teaser at the average rate
//
// Error Responses:
//   - 400: Unknown category tag or negative spend amount
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req dto.RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	selection := req.ToSelection()
	ranked := h.recommendationService.Rank(catalog.Cards(), selection)
	averageRate := h.recommendationService.AverageCashback(ranked)

	// The teaser above the carousel: savings at the average rate across
	// the whole result, before any specific card is picked.
	teaser := h.savingsService.ComputeBreakdown(
		selection.CategorySpends,
		selection.SpendOrder(),
		averageRate,
		0,
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewRecommendationResponse(ranked, selection, averageRate, teaser.MonthlySavings),
	})
}
