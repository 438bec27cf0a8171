package handlers

import (
	"log"

	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/gofiber/fiber/v3"
)

// CollectionHandlerInterface defines the contract for the public collection endpoints
type CollectionHandlerInterface interface {
	ListItems(c fiber.Ctx) error
	GetItem(c fiber.Ctx) error
}

// CollectionHandler handles public collection catalog HTTP requests
type CollectionHandler struct {
	collectionFlow businessflow.CollectionFlow
}

// NewCollectionHandler creates a new public collection handler
func NewCollectionHandler(collectionFlow businessflow.CollectionFlow) CollectionHandlerInterface {
	return &CollectionHandler{collectionFlow: collectionFlow}
}

// ListItems returns all collection items matching the optional filters, newest first
// @Summary List Collection Items
// @Description List collection items filtered by search text, tag IDs, and status
// @Tags Collections
// @Produce json
// @Param search query string false "Substring match on name or description"
// @Param tags query string false "Comma-separated tag IDs (an item matches if it has any of them)"
// @Param status query string false "Exact status match (owned, wishlist, sold)"
// @Success 200 {array} dto.CollectionItemDTO "Collection items"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/collections [get]
func (h *CollectionHandler) ListItems(c fiber.Ctx) error {
	search := c.Query("search")
	tags := c.Query("tags")
	status := c.Query("status")

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	items, err := h.collectionFlow.ListItems(createRequestContext(c, "/api/v1/collections"), search, tags, status, metadata)
	if err != nil {
		log.Println("List collection items failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch items")
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

// GetItem returns a single collection item with its tags
// @Summary Get Collection Item
// @Description Fetch one collection item by ID, including its tags
// @Tags Collections
// @Produce json
// @Param id path string true "Collection item ID"
// @Success 200 {object} dto.CollectionItemDTO "Collection item"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/collections/{id} [get]
func (h *CollectionHandler) GetItem(c fiber.Ctx) error {
	id := c.Params("id")

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	item, err := h.collectionFlow.GetItem(createRequestContext(c, "/api/v1/collections/:id"), id, metadata)
	if err != nil {
		if businessflow.IsItemNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Item not found")
		}
		log.Println("Get collection item failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch item")
	}

	return c.Status(fiber.StatusOK).JSON(item)
}
