package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sellquick/internal/flow"
	"sellquick/internal/service"
)

// QuoteHandler handles quote request endpoints.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// QuoteRequestBody is the accumulated quote flow input plus target listings.
type QuoteRequestBody struct {
	Details   string   `json:"details" validate:"required"`
	Budget    string   `json:"budget" validate:"required"`
	Deadline  string   `json:"deadline" validate:"required"`
	TargetIDs []string `json:"targetIds" validate:"required,min=1"`
}

// Submit godoc
// @Summary Submit a quote request to a set of listings
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuoteRequestBody true "Quote request"
// @Success 201 {object} model.QuoteRequest
// @Failure 400 {object} errors.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) Submit(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req QuoteRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.quoteService.Submit(c.Request().Context(), claims.UserID, service.QuoteSubmission{
		Details:   req.Details,
		Budget:    req.Budget,
		Deadline:  req.Deadline,
		TargetIDs: req.TargetIDs,
	})
	if err != nil {
		if errors.Is(err, flow.ErrEmptyInput) || errors.Is(err, flow.ErrQuoteIncomplete) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, quote)
}

// ListMine godoc
// @Summary List the caller's quote requests
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.QuoteRequest
// @Router /me/quotes [get]
func (h *QuoteHandler) ListMine(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	quotes, err := h.quoteService.ListMine(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, quotes)
}
