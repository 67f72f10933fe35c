package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sellquick/internal/auth"
	"sellquick/internal/config"
	"sellquick/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	listingHandler *handler.ListingHandler,
	searchHandler *handler.SearchHandler,
	quoteHandler *handler.QuoteHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/listings", listingHandler.List)
	api.GET("/listings/:id", listingHandler.Get)
	api.GET("/categories", listingHandler.Categories)
	api.POST("/search", searchHandler.Search)
	api.POST("/search/wizard", searchHandler.SearchWizard)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", authHandler.Me)
	secured.GET("/me/listings", listingHandler.MyListings)
	secured.GET("/me/quotes", quoteHandler.ListMine)

	secured.POST("/listings", listingHandler.Create)
	secured.PATCH("/listings/:id", listingHandler.Update)
	secured.POST("/listings/:id/vouch", listingHandler.Vouch)
	secured.PATCH("/listings/:id/verification", listingHandler.SetVerification)

	secured.POST("/quotes", quoteHandler.Submit)
	secured.POST("/seed", seedHandler.Seed)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
