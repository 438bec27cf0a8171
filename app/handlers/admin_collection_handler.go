package handlers

import (
	"log"

	"github.com/curioapp/curio-server/app/dto"
	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AdminCollectionHandlerInterface defines admin endpoints for managing collection items
type AdminCollectionHandlerInterface interface {
	CreateItem(c fiber.Ctx) error
	UpdateItem(c fiber.Ctx) error
	DeleteItem(c fiber.Ctx) error
	DownloadExcel(c fiber.Ctx) error
}

// AdminCollectionHandler implements the admin collection item endpoints
type AdminCollectionHandler struct {
	adminFlow businessflow.AdminCollectionFlow
	validator *validator.Validate
}

// NewAdminCollectionHandler creates a new admin collection handler
func NewAdminCollectionHandler(adminFlow businessflow.AdminCollectionFlow) AdminCollectionHandlerInterface {
	return &AdminCollectionHandler{
		adminFlow: adminFlow,
		validator: validator.New(),
	}
}

// CreateItem creates a collection item and links the requested tags
// @Summary Admin Create Collection Item
// @Tags Admin Collections
// @Accept json
// @Produce json
// @Param request body dto.UpsertCollectionItemRequest true "Item data"
// @Success 200 {object} dto.CollectionItemScalarDTO "Created item"
// @Failure 400 {object} dto.ErrorResponse "Validation error or unknown tags"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/collections [post]
// @Security BearerAuth
func (h *AdminCollectionHandler) CreateItem(c fiber.Ctx) error {
	var req dto.UpsertCollectionItemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	item, err := h.adminFlow.Create(createRequestContext(c, "/api/v1/admin/collections"), &req, metadata)
	if err != nil {
		if businessflow.IsUnknownTags(err) {
			return errorResponse(c, fiber.StatusBadRequest, "One or more tags do not exist")
		}
		log.Println("Admin create collection item failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create item")
	}

	return c.JSON(item)
}

// UpdateItem replaces a collection item's fields and its tag associations
// @Summary Admin Update Collection Item
// @Tags Admin Collections
// @Accept json
// @Produce json
// @Param id path string true "Collection item ID"
// @Param request body dto.UpsertCollectionItemRequest true "Item data"
// @Success 200 {object} dto.CollectionItemScalarDTO "Updated item"
// @Failure 400 {object} dto.ErrorResponse "Validation error or unknown tags"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/collections/{id} [put]
// @Security BearerAuth
func (h *AdminCollectionHandler) UpdateItem(c fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpsertCollectionItemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	item, err := h.adminFlow.Update(createRequestContext(c, "/api/v1/admin/collections/:id"), id, &req, metadata)
	if err != nil {
		if businessflow.IsItemNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Item not found")
		}
		if businessflow.IsUnknownTags(err) {
			return errorResponse(c, fiber.StatusBadRequest, "One or more tags do not exist")
		}
		log.Println("Admin update collection item failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update item")
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

// DeleteItem removes a collection item together with its tag associations
// @Summary Admin Delete Collection Item
// @Tags Admin Collections
// @Produce json
// @Param id path string true "Collection item ID"
// @Success 200 {object} dto.MessageResponse "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/collections/{id} [delete]
// @Security BearerAuth
func (h *AdminCollectionHandler) DeleteItem(c fiber.Ctx) error {
	id := c.Params("id")

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	if err := h.adminFlow.Delete(createRequestContext(c, "/api/v1/admin/collections/:id"), id, metadata); err != nil {
		if businessflow.IsItemNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Item not found")
		}
		log.Println("Admin delete collection item failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete item")
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Item deleted"})
}

// DownloadExcel returns the whole collection as an Excel workbook
// @Summary Admin Export Collection (Excel)
// @Tags Admin Collections
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "Excel file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/collections/export [get]
// @Security BearerAuth
func (h *AdminCollectionHandler) DownloadExcel(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	filename, data, err := h.adminFlow.DownloadCollectionExcel(createRequestContext(c, "/api/v1/admin/collections/export"), metadata)
	if err != nil {
		log.Println("Admin collection export failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to generate export")
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}
