package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Arun-Dalakoti/CardGenius/internal/catalog"
	"github.com/Arun-Dalakoti/CardGenius/internal/dto"
	apierrors "github.com/Arun-Dalakoti/CardGenius/internal/errors"
	"github.com/Arun-Dalakoti/CardGenius/internal/models"
	"github.com/Arun-Dalakoti/CardGenius/internal/services"
)

// SavingsHandler serves stateless savings breakdown requests
type SavingsHandler struct {
	savingsService services.SavingsServiceInterface
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(savingsService services.SavingsServiceInterface) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// ComputeBreakdown derives per-category and aggregate savings for the given
// spends at a resolved cashback rate
//
// Method: POST /api/v1/savings/breakdown
//
// Request body:
//   - category_spends: Map of category tag to monthly amount (required)
//   - cashback_rate: Explicit rate percentage (optional)
//   - card_id: Catalog card whose rate and annual fee apply (optional)
//
// cashback_rate and card_id are mutually exclusive; with neither, the rate
// is zero and the response is the documented placeholder state.
//
// Success Response: 200 OK
//   - categories: Breakdown rows in spend-entry order, amounts > 0 only
//   - monthly_savings, annual_savings, net_savings: Aggregates; net may be
//     negative when the annual fee exceeds the annual savings
//
// Error Responses:
//   - 400: Unknown category tag, negative amount, rate out of range, or
//     both rate sources supplied
//   - 404: card_id not in the catalog
func (h *SavingsHandler) ComputeBreakdown(c echo.Context) error {
	var req dto.SavingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.CashbackRate != nil && req.CardID != "" {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails("cashback_rate and card_id are mutually exclusive"))
	}

	rate := decimal.Zero
	var annualFee int64

	switch {
	case req.CashbackRate != nil:
		rate = decimal.NewFromFloat(*req.CashbackRate)
	case req.CardID != "":
		card, ok := catalog.FindByID(req.CardID)
		if !ok {
			return SendError(c, apierrors.CatalogCardNotFound)
		}
		rate = card.CashbackRate
		annualFee = card.AnnualFee
	}

	selection := models.SpendSelection{CategorySpends: req.CategorySpends}
	breakdown := h.savingsService.ComputeBreakdown(req.CategorySpends, selection.SpendOrder(), rate, annualFee)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSavingsResponse(breakdown),
	})
}
