package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/curioapp/curio-server/app/dto"
	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAdminCollectionFlow records create calls and returns canned results
type stubAdminCollectionFlow struct {
	createErr error
	created   *dto.UpsertCollectionItemRequest
}

func (s *stubAdminCollectionFlow) Create(ctx context.Context, req *dto.UpsertCollectionItemRequest, metadata *businessflow.ClientMetadata) (*dto.CollectionItemScalarDTO, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = req
	return &dto.CollectionItemScalarDTO{
		ID:          "9f4b7a52-64f3-4f0e-a2a1-73c1d6f0b1aa",
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		Status:      req.Status,
		CreatedAt:   "2025-03-14T09:30:00Z",
		UpdatedAt:   "2025-03-14T09:30:00Z",
	}, nil
}

func (s *stubAdminCollectionFlow) Update(ctx context.Context, id string, req *dto.UpsertCollectionItemRequest, metadata *businessflow.ClientMetadata) (*dto.CollectionItemScalarDTO, error) {
	return nil, nil
}

func (s *stubAdminCollectionFlow) Delete(ctx context.Context, id string, metadata *businessflow.ClientMetadata) error {
	return nil
}

func (s *stubAdminCollectionFlow) DownloadCollectionExcel(ctx context.Context, metadata *businessflow.ClientMetadata) (string, []byte, error) {
	return "", nil, nil
}

func newCollectionItemTestApp(flow businessflow.AdminCollectionFlow) *fiber.App {
	app := fiber.New()
	h := NewAdminCollectionHandler(flow)
	app.Post("/api/v1/admin/collections", h.CreateItem)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestAdminCollectionHandlerCreateItem(t *testing.T) {
	validBody := dto.UpsertCollectionItemRequest{
		Name:     "Vintage Figure",
		ImageURL: "https://cdn.example.com/figure.jpg",
		Rating:   4,
		Status:   "owned",
	}

	t.Run("created item is returned with OK status", func(t *testing.T) {
		flow := &stubAdminCollectionFlow{}
		app := newCollectionItemTestApp(flow)

		status, body := postJSON(t, app, "/api/v1/admin/collections", validBody)

		assert.Equal(t, fiber.StatusOK, status)

		var item dto.CollectionItemScalarDTO
		require.NoError(t, json.Unmarshal(body, &item))
		assert.Equal(t, "Vintage Figure", item.Name)
		assert.Equal(t, "owned", item.Status)
		require.NotNil(t, flow.created)
	})

	t.Run("unknown tags are rejected with bad request", func(t *testing.T) {
		flow := &stubAdminCollectionFlow{
			createErr: businessflow.NewBusinessError("UNKNOWN_TAGS", "Some of the specified tags do not exist", businessflow.ErrUnknownTags),
		}
		app := newCollectionItemTestApp(flow)

		status, body := postJSON(t, app, "/api/v1/admin/collections", validBody)

		assert.Equal(t, fiber.StatusBadRequest, status)

		var errBody dto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errBody))
		assert.Equal(t, "One or more tags do not exist", errBody.Error)
	})

	t.Run("missing required fields are rejected before the flow runs", func(t *testing.T) {
		flow := &stubAdminCollectionFlow{}
		app := newCollectionItemTestApp(flow)

		status, _ := postJSON(t, app, "/api/v1/admin/collections", dto.UpsertCollectionItemRequest{
			Status: "owned",
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Nil(t, flow.created)
	})
}

// stubAdminTagFlow returns the requested tag as created
type stubAdminTagFlow struct{}

func (s *stubAdminTagFlow) Create(ctx context.Context, req *dto.UpsertTagRequest, metadata *businessflow.ClientMetadata) (*dto.TagDTO, error) {
	return &dto.TagDTO{
		ID:        "3d6f2c1e-9a7b-4a40-8f63-2b5c1d9e0f11",
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: "2025-03-14T09:30:00Z",
	}, nil
}

func (s *stubAdminTagFlow) Update(ctx context.Context, id string, req *dto.UpsertTagRequest, metadata *businessflow.ClientMetadata) (*dto.TagDTO, error) {
	return nil, nil
}

func (s *stubAdminTagFlow) Delete(ctx context.Context, id string, metadata *businessflow.ClientMetadata) error {
	return nil
}

func TestAdminTagHandlerCreateTagRespondsOK(t *testing.T) {
	app := fiber.New()
	h := NewAdminTagHandler(&stubAdminTagFlow{})
	app.Post("/api/v1/admin/tags", h.CreateTag)

	status, body := postJSON(t, app, "/api/v1/admin/tags", dto.UpsertTagRequest{
		Name:  "retro",
		Color: "#ff8800",
	})

	assert.Equal(t, fiber.StatusOK, status)

	var tag dto.TagDTO
	require.NoError(t, json.Unmarshal(body, &tag))
	assert.Equal(t, "retro", tag.Name)
}
