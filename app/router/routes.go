// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/app/handlers"
	"github.com/curioapp/curio-server/app/middleware"
	"github.com/curioapp/curio-server/config"
	"github.com/curioapp/curio-server/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// Handlers bundles every handler the router wires up
type Handlers struct {
	Collection      handlers.CollectionHandlerInterface
	AdminCollection handlers.AdminCollectionHandlerInterface
	Tag             handlers.TagHandlerInterface
	AdminTag        handlers.AdminTagHandlerInterface
	Post            handlers.PostHandlerInterface
	AdminPost       handlers.AdminPostHandlerInterface
	Category        handlers.CategoryHandlerInterface
	AdminCategory   handlers.AdminCategoryHandlerInterface
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app            *fiber.App
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(h Handlers, authMiddleware *middleware.AuthMiddleware, cfg *config.Config) Router {
	app := fiber.New(fiber.Config{
		AppName:      "Curio API",
		ServerHeader: "Curio",
		ErrorHandler: errorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:            app,
		handlers:       h,
		authMiddleware: authMiddleware,
		config:         cfg,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	log.Println("Setting up routes...")

	// Global middleware
	r.setupMiddleware()

	// API routes
	api := r.app.Group("/api/v1")

	// Health check and metrics routes (no rate limiting)
	api.Get("/health", r.healthCheck)
	if r.config.Metrics.Enabled {
		r.app.Get(r.config.Metrics.Path, middleware.MetricsHandler())
	}

	// General rate limiting for all API routes
	api.Use(limiter.New(limiter.Config{
		Max:        r.config.Security.GlobalRateLimit,
		Expiration: r.config.Security.RateLimitWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
		},
		Next: func(c fiber.Ctx) bool {
			// Skip rate limiting for health checks
			return c.Path() == "/api/v1/health"
		},
	}))

	// Public read endpoints
	api.Get("/collections", r.handlers.Collection.ListItems)
	api.Get("/collections/:id", r.handlers.Collection.GetItem)
	api.Get("/tags", r.handlers.Tag.ListTags)
	api.Get("/posts", r.handlers.Post.ListPosts)
	api.Get("/posts/:id", r.handlers.Post.GetPost)
	api.Get("/categories", r.handlers.Category.ListCategories)

	// Admin endpoints behind bearer token authentication
	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate())

	admin.Get("/collections/export", r.handlers.AdminCollection.DownloadExcel)
	admin.Post("/collections", r.handlers.AdminCollection.CreateItem)
	admin.Put("/collections/:id", r.handlers.AdminCollection.UpdateItem)
	admin.Delete("/collections/:id", r.handlers.AdminCollection.DeleteItem)

	admin.Post("/tags", r.handlers.AdminTag.CreateTag)
	admin.Put("/tags/:id", r.handlers.AdminTag.UpdateTag)
	admin.Delete("/tags/:id", r.handlers.AdminTag.DeleteTag)

	admin.Post("/posts", r.handlers.AdminPost.CreatePost)
	admin.Put("/posts/:id", r.handlers.AdminPost.UpdatePost)
	admin.Delete("/posts/:id", r.handlers.AdminPost.DeletePost)

	admin.Post("/categories", r.handlers.AdminCategory.CreateCategory)
	admin.Put("/categories/:id", r.handlers.AdminCategory.UpdateCategory)
	admin.Delete("/categories/:id", r.handlers.AdminCategory.DeleteCategory)

	// Not found handler
	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000, // 1 year
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		XDNSPrefetchControl:   "off",
		XDownloadOptions:      "noopen",
		XPermittedCrossDomain: "none",
	}))

	// CORS middleware
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: r.config.Security.AllowedOrigins,
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
			"X-Request-ID",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
		},
		AllowCredentials: r.config.Security.AllowCredentials,
		MaxAge:           r.config.Security.CORSMaxAge,
	}))

	// Compression middleware for performance
	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Structured request logging
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			// Skip logging for health checks and scrapes
			return c.Path() == "/api/v1/health" || c.Path() == r.config.Metrics.Path
		},
	}))

	// Prometheus request metrics
	if r.config.Metrics.Enabled {
		r.app.Use(middleware.Metrics())
	}

	// Recovery middleware with custom error handling
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			// Log panic with request context
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": utils.UTCNow().Unix(),
		"version":   "1.0.0",
		"service":   "curio-api",
	})
}

func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: "The requested resource was not found",
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error %d: %v", code, err)

	return c.Status(code).JSON(dto.ErrorResponse{
		Error: "An internal server error occurred",
	})
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
