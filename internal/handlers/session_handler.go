package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Arun-Dalakoti/CardGenius/internal/dto"
	apierrors "github.com/Arun-Dalakoti/CardGenius/internal/errors"
	"github.com/Arun-Dalakoti/CardGenius/internal/services"
)

// SessionHandler serves the per-user transient state endpoints
type SessionHandler struct {
	sessionService services.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService services.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create opens a new anonymous session
//
// Method: POST /api/v1/sessions
//
// Success Response: 201 Created
//   - id: Session UUID the client passes on subsequent calls
func (h *SessionHandler) Create(c echo.Context) error {
	session := h.sessionService.Create()

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.NewSessionResponse(session),
	})
}

// Get returns the current session state including recommendations
//
// Method: GET /api/v1/sessions/:id
//
// Error Responses:
//   - 400: Malformed session ID
//   - 404: Unknown or expired session
func (h *SessionHandler) Get(c echo.Context) error {
	id, err := sessionIDFromPath(c)
	if err != nil {
		return SendError(c, apierrors.SessionInvalidID)
	}

	session, err := h.sessionService.Get(id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSessionResponse(session),
	})
}

// UpdateSelection overwrites the session's categories and spend amounts and
// recomputes the ranked recommendations in the same write
//
// Method: PUT /api/v1/sessions/:id/selection
//
// Request body:
//   - selected_categories: Array of category tags (empty clears the
//     recommendations)
//   - category_spends: Map of category tag to monthly amount
//
// Error Responses:
//   - 400: Malformed session ID, unknown tag, or negative amount
//   - 404: Unknown or expired session
func (h *SessionHandler) UpdateSelection(c echo.Context) error {
	id, err := sessionIDFromPath(c)
	if err != nil {
		return SendError(c, apierrors.SessionInvalidID)
	}

	var req dto.UpdateSelectionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.sessionService.UpdateSelection(id, req.ToSelection())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSessionResponse(session),
	})
}

// SelectCard pins the savings view to a carousel position in the ranked
// result; -1 clears the pin so savings fall back to the average rate
//
// Method: PUT /api/v1/sessions/:id/card
//
// Request body:
//   - card_index: Zero-based position into the ranked result, or -1
//
// Error Responses:
//   - 400: Malformed session ID or index below -1
//   - 404: Unknown or expired session
func (h *SessionHandler) SelectCard(c echo.Context) error {
	id, err := sessionIDFromPath(c)
	if err != nil {
		return SendError(c, apierrors.SessionInvalidID)
	}

	var req dto.SelectCardRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.sessionService.SelectCard(id, req.CardIndex)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSessionResponse(session),
	})
}

// Savings returns the breakdown for the session's current state: the pinned
// card's rate and fee when one is selected, the average rate across the
// recommendations when not, and the zero placeholder when nothing is ranked
//
// Method: GET /api/v1/sessions/:id/savings
//
// Error Responses:
//   - 400: Malformed session ID
//   - 404: Unknown or expired session
func (h *SessionHandler) Savings(c echo.Context) error {
	id, err := sessionIDFromPath(c)
	if err != nil {
		return SendError(c, apierrors.SessionInvalidID)
	}

	breakdown, err := h.sessionService.Savings(id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSavingsResponse(breakdown),
	})
}

// Delete discards the session
//
// Method: DELETE /api/v1/sessions/:id
//
// Success Response: 204 No Content
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := sessionIDFromPath(c)
	if err != nil {
		return SendError(c, apierrors.SessionInvalidID)
	}

	if err := h.sessionService.Delete(id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrSessionNotFound) {
		return SendError(c, apierrors.SessionNotFound)
	}
	return SendSystemError(c, err)
}

func sessionIDFromPath(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
