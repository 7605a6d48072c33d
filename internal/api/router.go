package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pmorales/portfolio/internal/api/handler"
	"github.com/pmorales/portfolio/internal/api/middleware"
	"github.com/pmorales/portfolio/internal/core/ports"
	"github.com/pmorales/portfolio/internal/web"
)

// Deps carries everything the router needs. Services are interfaces so
// tests can run the full route table against in-memory implementations;
// DB and Redis are only used by the readiness probe and may be nil, in
// which case the probe is not registered.
type Deps struct {
	Auth     ports.AuthService
	Comments ports.CommentService
	Contacts ports.ContactService

	DB    *sql.DB
	Redis *redis.Client

	SessionSecret []byte
	SessionTTL    time.Duration
	SecureCookies bool

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))
	e.Use(middleware.LoadSession(d.Auth, d.SessionSecret))

	// --- Dependencies ---
	pageHandler := handler.NewPageHandler()
	authHandler := handler.NewAuthHandler(d.Auth, d.SessionSecret, d.SessionTTL, d.SecureCookies)
	commentHandler := handler.NewCommentHandler(d.Comments)
	contactHandler := handler.NewContactHandler(d.Contacts)

	// --- Pages ---
	e.GET("/", pageHandler.Home)
	e.GET("/about", pageHandler.About)
	e.GET("/thank-you", pageHandler.ThankYou)
	e.StaticFS("/static", web.StaticFS())

	// --- Contact form ---
	e.GET("/contact", contactHandler.Show)
	e.POST("/contact", contactHandler.Submit)

	// --- Auth ---
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout, middleware.RequireAuth())

	// --- Comment board: reads are public, writes are gated ---
	e.GET("/comments", commentHandler.List)
	e.POST("/comments", commentHandler.Create, middleware.RequireAuth())

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if d.DB != nil && d.Redis != nil {
		e.GET("/health/ready", handler.NewReadinessHandler(d.DB, d.Redis).Readiness)
	}

	return e, nil
}
