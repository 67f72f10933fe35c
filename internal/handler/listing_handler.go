package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "sellquick/internal/errors"
	"sellquick/internal/model"
	"sellquick/internal/repository"
	"sellquick/internal/service"
)

// ListingHandler handles directory endpoints.
type ListingHandler struct {
	listingService service.ListingService
	isAdmin        func(email string) bool
}

// NewListingHandler creates a new listing handler. isAdmin gates the
// verification-level operation.
func NewListingHandler(listingService service.ListingService, isAdmin func(email string) bool) *ListingHandler {
	return &ListingHandler{listingService: listingService, isAdmin: isAdmin}
}

// CreateListingRequest represents a new listing submission.
type CreateListingRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Contact     string   `json:"contact" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Website     string   `json:"website,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// UpdateListingRequest carries the owner-editable fields; omitted fields are
// left unchanged.
type UpdateListingRequest struct {
	Name              *string       `json:"name,omitempty"`
	Description       *string       `json:"description,omitempty"`
	Contact           *string       `json:"contact,omitempty"`
	Location          *string       `json:"location,omitempty"`
	Website           *string       `json:"website,omitempty"`
	MicroNiche        *string       `json:"microNiche,omitempty"`
	BudgetRange       *model.Budget `json:"budgetRange,omitempty"`
	HasMemberDiscount *bool         `json:"hasMemberDiscount,omitempty"`
}

// SetVerificationRequest sets a listing's verification level.
type SetVerificationRequest struct {
	Level int `json:"level" validate:"required,min=1,max=3"`
}

// Create godoc
// @Summary Register a listing (AI-enriched)
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateListingRequest true "Listing data"
// @Success 201 {object} model.Listing
// @Failure 400 {object} errors.ErrorResponse
// @Router /listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.listingService.Create(c.Request().Context(), claims.UserID, service.CreateListingInput{
		Name:        req.Name,
		Description: req.Description,
		Contact:     req.Contact,
		Location:    req.Location,
		Website:     req.Website,
		Lat:         req.Lat,
		Lng:         req.Lng,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, listing)
}

// List godoc
// @Summary List listings with optional exact-match filters
// @Tags listings
// @Produce json
// @Param category query string false "Category"
// @Param microNiche query string false "Micro-niche"
// @Param budgetRange query string false "Budget tier (Low/Medium/High)"
// @Param location query string false "Location"
// @Param verificationLevel query int false "Verification level (1-3)"
// @Param limit query int false "Result cap"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {array} model.Listing
// @Router /listings [get]
func (h *ListingHandler) List(c echo.Context) error {
	filter := repository.ListingFilter{
		Category:    c.QueryParam("category"),
		MicroNiche:  c.QueryParam("microNiche"),
		BudgetRange: model.Budget(c.QueryParam("budgetRange")),
		Location:    c.QueryParam("location"),
		Cursor:      c.QueryParam("cursor"),
	}
	if v := c.QueryParam("verificationLevel"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid verificationLevel")
		}
		filter.VerificationLevel = level
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = limit
	}

	listings, err := h.listingService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// Get godoc
// @Summary Get a listing by id
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} model.Listing
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	listing, err := h.listingService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

// Update godoc
// @Summary Update an owned listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body UpdateListingRequest true "Editable fields"
// @Success 200 {object} model.Listing
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id} [patch]
func (h *ListingHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	listing, err := h.listingService.Update(c.Request().Context(), id, claims.UserID, service.UpdateListingInput{
		Name:              req.Name,
		Description:       req.Description,
		Contact:           req.Contact,
		Location:          req.Location,
		Website:           req.Website,
		MicroNiche:        req.MicroNiche,
		BudgetRange:       req.BudgetRange,
		HasMemberDiscount: req.HasMemberDiscount,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

// Vouch godoc
// @Summary Vouch for a listing
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id}/vouch [post]
func (h *ListingHandler) Vouch(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.listingService.Vouch(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "vouch recorded"})
}

// SetVerification godoc
// @Summary Set a listing's verification level (admin)
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body SetVerificationRequest true "New level"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Router /listings/{id}/verification [patch]
func (h *ListingHandler) SetVerification(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	if !h.isAdmin(claims.Email) {
		return domainError(apperrors.ErrAdminOnly)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req SetVerificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.listingService.SetVerificationLevel(c.Request().Context(), id, req.Level); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "verification level updated"})
}

// MyListings godoc
// @Summary List the caller's listings
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Listing
// @Router /me/listings [get]
func (h *ListingHandler) MyListings(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	listings, err := h.listingService.List(c.Request().Context(), repository.ListingFilter{OwnerUID: claims.UserID})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// Categories godoc
// @Summary List distinct listing categories
// @Tags listings
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (h *ListingHandler) Categories(c echo.Context) error {
	categories, err := h.listingService.Categories(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, categories)
}
