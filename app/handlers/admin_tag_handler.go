package handlers

import (
	"log"

	"github.com/curioapp/curio-server/app/dto"
	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AdminTagHandlerInterface defines admin endpoints for managing tags
type AdminTagHandlerInterface interface {
	CreateTag(c fiber.Ctx) error
	UpdateTag(c fiber.Ctx) error
	DeleteTag(c fiber.Ctx) error
}

// AdminTagHandler implements the admin tag endpoints
type AdminTagHandler struct {
	adminFlow businessflow.AdminTagFlow
	validator *validator.Validate
}

// NewAdminTagHandler creates a new admin tag handler
func NewAdminTagHandler(adminFlow businessflow.AdminTagFlow) AdminTagHandlerInterface {
	return &AdminTagHandler{
		adminFlow: adminFlow,
		validator: validator.New(),
	}
}

// CreateTag creates a new tag
// @Summary Admin Create Tag
// @Tags Admin Tags
// @Accept json
// @Produce json
// @Param request body dto.UpsertTagRequest true "Tag data"
// @Success 200 {object} dto.TagDTO "Created tag"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/tags [post]
// @Security BearerAuth
func (h *AdminTagHandler) CreateTag(c fiber.Ctx) error {
	var req dto.UpsertTagRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	tag, err := h.adminFlow.Create(createRequestContext(c, "/api/v1/admin/tags"), &req, metadata)
	if err != nil {
		log.Println("Admin create tag failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create tag")
	}

	return c.JSON(tag)
}

// UpdateTag updates a tag's name and color
// @Summary Admin Update Tag
// @Tags Admin Tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param request body dto.UpsertTagRequest true "Tag data"
// @Success 200 {object} dto.TagDTO "Updated tag"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Tag not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/tags/{id} [put]
// @Security BearerAuth
func (h *AdminTagHandler) UpdateTag(c fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpsertTagRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	tag, err := h.adminFlow.Update(createRequestContext(c, "/api/v1/admin/tags/:id"), id, &req, metadata)
	if err != nil {
		if businessflow.IsTagNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Tag not found")
		}
		log.Println("Admin update tag failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update tag")
	}

	return c.Status(fiber.StatusOK).JSON(tag)
}

// DeleteTag removes a tag; items that carried it simply lose the association
// @Summary Admin Delete Tag
// @Tags Admin Tags
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} dto.MessageResponse "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Tag not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/tags/{id} [delete]
// @Security BearerAuth
func (h *AdminTagHandler) DeleteTag(c fiber.Ctx) error {
	id := c.Params("id")

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	if err := h.adminFlow.Delete(createRequestContext(c, "/api/v1/admin/tags/:id"), id, metadata); err != nil {
		if businessflow.IsTagNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Tag not found")
		}
		log.Println("Admin delete tag failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete tag")
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Tag deleted"})
}
