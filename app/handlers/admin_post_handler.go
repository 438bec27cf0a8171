package handlers

import (
	"log"

	"github.com/curioapp/curio-server/app/dto"
	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AdminPostHandlerInterface defines admin endpoints for managing blog posts
type AdminPostHandlerInterface interface {
	CreatePost(c fiber.Ctx) error
	UpdatePost(c fiber.Ctx) error
	DeletePost(c fiber.Ctx) error
}

// AdminPostHandler implements the admin blog post endpoints
type AdminPostHandler struct {
	adminFlow businessflow.AdminPostFlow
	validator *validator.Validate
}

// NewAdminPostHandler creates a new admin post handler
func NewAdminPostHandler(adminFlow businessflow.AdminPostFlow) AdminPostHandlerInterface {
	return &AdminPostHandler{
		adminFlow: adminFlow,
		validator: validator.New(),
	}
}

// CreatePost creates a post and links the requested categories
// @Summary Admin Create Post
// @Tags Admin Posts
// @Accept json
// @Produce json
// @Param request body dto.UpsertPostRequest true "Post data"
// @Success 200 {object} dto.PostScalarDTO "Created post"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/posts [post]
// @Security BearerAuth
func (h *AdminPostHandler) CreatePost(c fiber.Ctx) error {
	var req dto.UpsertPostRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	post, err := h.adminFlow.Create(createRequestContext(c, "/api/v1/admin/posts"), &req, metadata)
	if err != nil {
		log.Println("Admin create post failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create post")
	}

	return c.JSON(post)
}

// UpdatePost replaces a post's fields and its category associations
// @Summary Admin Update Post
// @Tags Admin Posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpsertPostRequest true "Post data"
// @Success 200 {object} dto.PostScalarDTO "Updated post"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/posts/{id} [put]
// @Security BearerAuth
func (h *AdminPostHandler) UpdatePost(c fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpsertPostRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	post, err := h.adminFlow.Update(createRequestContext(c, "/api/v1/admin/posts/:id"), id, &req, metadata)
	if err != nil {
		if businessflow.IsPostNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Post not found")
		}
		log.Println("Admin update post failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update post")
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost removes a post together with its category associations
// @Summary Admin Delete Post
// @Tags Admin Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.MessageResponse "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/posts/{id} [delete]
// @Security BearerAuth
func (h *AdminPostHandler) DeletePost(c fiber.Ctx) error {
	id := c.Params("id")

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	if err := h.adminFlow.Delete(createRequestContext(c, "/api/v1/admin/posts/:id"), id, metadata); err != nil {
		if businessflow.IsPostNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Post not found")
		}
		log.Println("Admin delete post failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete post")
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Post deleted"})
}
