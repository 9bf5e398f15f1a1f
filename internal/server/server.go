// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"flatterer/internal/cache"
	"flatterer/internal/config"
	"flatterer/internal/database"
	"flatterer/internal/middleware"
	"flatterer/internal/models"
	"flatterer/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config           *config.Config
	db               *gorm.DB
	redis            *redis.Client
	userRepo         repository.UserRepository
	complimenteeRepo repository.ComplimenteeRepository
	themeRepo        repository.ThemeRepository
	genderRepo       repository.GenderRepository
	complimentRepo   repository.ComplimentRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewWithDB(cfg, db, cache.GetClient()), nil
}

// NewWithDB wires a server over an existing database handle. Tests use this
// with an in-memory sqlite database.
func NewWithDB(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		userRepo:         repository.NewUserRepository(db),
		complimenteeRepo: repository.NewComplimenteeRepository(db),
		themeRepo:        repository.NewThemeRepository(db),
		genderRepo:       repository.NewGenderRepository(db),
		complimentRepo:   repository.NewComplimentRepository(db),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	// Prometheus HTTP metrics
	prom := fiberprometheus.New("flatterer")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Resolve the caller identity for every request; public pages see the guest.
	app.Use(s.ResolveIdentity())
}

// SetupRoutes configures all routes for the application. Static paths are
// registered before the /:slug parameter routes so they always win.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Home)

	app.Get("/register", s.RegisterInfo)
	app.Post("/register", middleware.RateLimit(s.redis, 3, 10*time.Minute, "register"), s.Register)
	app.Get("/login", s.LoginInfo)
	app.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	app.Post("/logout", s.Logout)

	app.Get("/get_info", s.GetInfo)
	app.Post("/get_info", s.SubmitInfo)

	app.Get("/add_complimentee", s.AddComplimenteeInfo)
	app.Post("/add_complimentee", s.AddComplimentee)
	app.Get("/list_complimentees", s.ListComplimentees)
	app.Post("/list_complimentees", s.ListComplimentees)

	app.Get("/add_gender", s.ListGenders)
	app.Post("/add_gender", s.AddGender)

	app.Get("/add_compliment", s.AddComplimentInfo)
	app.Post("/add_compliment", s.AddGenderCompliment)

	app.Get("/control_panel", s.ControlPanel)
	app.Post("/control_panel", s.ControlPanel)

	app.Get("/compliment/:gender/:name", s.ComplimentsByGender)
	app.Post("/compliment/:gender/:name", s.ComplimentsByGender)
	app.Get("/compliment/:slug", s.ComplimenteePage)

	// Owner-gated slug routes, registered last.
	app.Get("/:slug/add_compliment", s.AddPersonalComplimentInfo)
	app.Post("/:slug/add_compliment", s.AddPersonalCompliment)
	app.Get("/:slug/add_theme", s.AddThemeInfo)
	app.Post("/:slug/add_theme", s.UpsertTheme)
	app.Get("/:slug/edit_theme", s.EditThemeInfo)
	app.Post("/:slug/edit_theme", s.UpsertTheme)
}

// Home handles GET / with a health payload.
func (s *Server) Home(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Flatterer",
		"user":    s.identity(c).DisplayName(),
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Flatterer API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.Error("unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("Server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}

// respondError maps an application error onto the HTTP status it implies.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
