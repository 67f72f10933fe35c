package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sellquick/internal/flow"
	"sellquick/internal/service"
)

// SearchHandler handles both search modes: direct free text and the intake
// wizard.
type SearchHandler struct {
	curationService service.CurationService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(curationService service.CurationService) *SearchHandler {
	return &SearchHandler{curationService: curationService}
}

// SearchRequest is a free-text search.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// WizardRequest carries the three wizard selections in step order.
type WizardRequest struct {
	Category string `json:"category" validate:"required"`
	Priority string `json:"priority" validate:"required"`
	Budget   string `json:"budget" validate:"required"`
}

// Search godoc
// @Summary Curated matches for a free-text need
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Free-text query"
// @Success 200 {object} service.CurationResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.curationService.CurateFreeText(c.Request().Context(), req.Query)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// SearchWizard godoc
// @Summary Curated matches for completed wizard answers
// @Tags search
// @Accept json
// @Produce json
// @Param request body WizardRequest true "Wizard selections"
// @Success 200 {object} service.CurationResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /search/wizard [post]
func (h *SearchHandler) SearchWizard(c echo.Context) error {
	var req WizardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Replay the selections so the wizard's transition rules hold
	// server-side; completion hands the answers to curation.
	wizard := flow.NewIntakeWizard()
	for _, selection := range []string{req.Category, req.Priority, req.Budget} {
		if err := wizard.Select(selection); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	answers, err := wizard.Answers()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.curationService.CurateWizard(c.Request().Context(), answers)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, result)
}
