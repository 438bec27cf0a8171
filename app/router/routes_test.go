package router

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/curioapp/curio-server/app/middleware"
	"github.com/curioapp/curio-server/app/services"
	"github.com/curioapp/curio-server/config"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopHandlers satisfies every handler interface with empty responses
type noopHandlers struct{}

func (noopHandlers) ListItems(c fiber.Ctx) error      { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) GetItem(c fiber.Ctx) error        { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) CreateItem(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) UpdateItem(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) DeleteItem(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) DownloadExcel(c fiber.Ctx) error  { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) ListTags(c fiber.Ctx) error       { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) CreateTag(c fiber.Ctx) error      { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) UpdateTag(c fiber.Ctx) error      { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) DeleteTag(c fiber.Ctx) error      { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) ListPosts(c fiber.Ctx) error      { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) GetPost(c fiber.Ctx) error        { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) CreatePost(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) UpdatePost(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) DeletePost(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) ListCategories(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) CreateCategory(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) UpdateCategory(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
func (noopHandlers) DeleteCategory(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

func routerTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			ReadTimeout:  7 * time.Second,
			WriteTimeout: 9 * time.Second,
			IdleTimeout:  90 * time.Second,
			BodyLimit:    1024 * 1024,
		},
		Security: config.SecurityConfig{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowCredentials: true,
			CORSMaxAge:       3600,
			GlobalRateLimit:  100,
			RateLimitWindow:  time.Minute,
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) Router {
	t.Helper()

	tokenService, err := services.NewTokenService(
		"test-issuer",
		"test-audience",
		false,
		"",
		"test-secret-key-for-jwt-signing-32-chars",
	)
	require.NoError(t, err)

	stub := noopHandlers{}
	h := Handlers{
		Collection:      stub,
		AdminCollection: stub,
		Tag:             stub,
		AdminTag:        stub,
		Post:            stub,
		AdminPost:       stub,
		Category:        stub,
		AdminCategory:   stub,
	}
	return NewFiberRouter(h, middleware.NewAuthMiddleware(tokenService), cfg)
}

func TestNewFiberRouterAppliesServerConfig(t *testing.T) {
	cfg := routerTestConfig()
	r := newTestRouter(t, cfg)

	appCfg := r.GetApp().Config()
	assert.Equal(t, cfg.Server.BodyLimit, appCfg.BodyLimit)
	assert.Equal(t, cfg.Server.ReadTimeout, appCfg.ReadTimeout)
	assert.Equal(t, cfg.Server.WriteTimeout, appCfg.WriteTimeout)
	assert.Equal(t, cfg.Server.IdleTimeout, appCfg.IdleTimeout)
}

func TestMetricsEndpointFollowsMetricsConfig(t *testing.T) {
	t.Run("enabled metrics are served at the configured path", func(t *testing.T) {
		cfg := routerTestConfig()
		cfg.Metrics.Path = "/internal/metrics"
		r := newTestRouter(t, cfg)
		r.SetupRoutes()

		resp, err := r.GetApp().Test(httptest.NewRequest("GET", "/internal/metrics", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("disabled metrics expose no endpoint", func(t *testing.T) {
		cfg := routerTestConfig()
		cfg.Metrics.Enabled = false
		r := newTestRouter(t, cfg)
		r.SetupRoutes()

		resp, err := r.GetApp().Test(httptest.NewRequest("GET", "/metrics", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
