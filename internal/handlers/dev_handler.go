package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Arun-Dalakoti/CardGenius/internal/dto"
	apierrors "github.com/Arun-Dalakoti/CardGenius/internal/errors"
	"github.com/Arun-Dalakoti/CardGenius/internal/services"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	generator services.CardGeneratorInterface
	enabled   bool
}

// NewDevHandler creates a new development handler
func NewDevHandler(generator services.CardGeneratorInterface, enabled bool) *DevHandler {
	return &DevHandler{
		generator: generator,
		enabled:   enabled,
	}
}

// GenerateSampleCards generates realistic sample card data for UI work
//
// Method: GET /api/v1/dev/cards/sample
// Environment: Development only
//
// Query parameters:
//   - count: Number of cards to generate (default: 10, max: 50)
//
// Success Response: 200 OK
//   - data: Generated card list
//
// Error Responses:
//   - 400: Invalid count parameter
//   - 404: Not running in a development environment
func (h *DevHandler) GenerateSampleCards(c echo.Context) error {
	if !h.enabled {
		return SendError(c, apierrors.SystemEndpointDisabled)
	}

	count := 10
	if raw := c.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return SendError(c, apierrors.ValidationGeneral,
				apierrors.WithDetails("count must be a positive integer"))
		}
		count = parsed
	}
	if count > 50 {
		count = 50
	}

	cards := h.generator.GenerateCards(count)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewCardListResponse(cards),
		Message: "sample cards generated",
	})
}
