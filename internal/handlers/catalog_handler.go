package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Arun-Dalakoti/CardGenius/internal/catalog"
	"github.com/Arun-Dalakoti/CardGenius/internal/dto"
	apierrors "github.com/Arun-Dalakoti/CardGenius/internal/errors"
)

// CatalogHandler serves the read-only card reference data
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListCards returns the full card catalog
//
// Method: GET /api/v1/cards
//
// Success Response: 200 OK
//   - cards: Array of catalog cards with display strings
//   - total: Integer catalog size
func (h *CatalogHandler) ListCards(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewCardListResponse(catalog.Cards()),
	})
}

// GetCard returns a single card by its catalog ID
//
// Method: GET /api/v1/cards/:id
//
// Error Responses:
//   - 400: Missing card ID
//   - 404: No card with the given ID
func (h *CatalogHandler) GetCard(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return SendError(c, apierrors.CatalogInvalidID)
	}

	card, ok := catalog.FindByID(id)
	if !ok {
		return SendError(c, apierrors.CatalogCardNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewCardResponse(card),
	})
}

// ListCategories returns the fixed category enumeration with each
// category's spend-entry configuration
//
// Method: GET /api/v1/categories
//
// Success Response: 200 OK
//   - categories: Array of {category, label, max_amount, quick_increments}
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.CategoryListResponse{Categories: catalog.SpendConfigs()},
	})
}
