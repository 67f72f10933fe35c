package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sellquick/internal/errors"
	"sellquick/internal/service"
)

// SeedHandler exposes catalog seeding as an explicit administrative
// operation.
type SeedHandler struct {
	seedService service.SeedService
	isAdmin     func(email string) bool
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService, isAdmin func(email string) bool) *SeedHandler {
	return &SeedHandler{seedService: seedService, isAdmin: isAdmin}
}

// SeedResponse reports whether a seed batch was inserted.
type SeedResponse struct {
	Seeded  bool   `json:"seeded"`
	Message string `json:"message"`
}

// Seed godoc
// @Summary Seed the example catalog if the directory is empty (admin)
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	if !h.isAdmin(claims.Email) {
		return domainError(apperrors.ErrAdminOnly)
	}

	seeded, err := h.seedService.SeedIfEmpty(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	msg := "directory not empty, nothing seeded"
	if seeded {
		msg = "example catalog seeded"
	}
	return c.JSON(http.StatusOK, SeedResponse{Seeded: seeded, Message: msg})
}
