package handlers

import (
	"log"

	"github.com/curioapp/curio-server/app/dto"
	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// CategoryHandlerInterface defines the contract for the public category endpoints
type CategoryHandlerInterface interface {
	ListCategories(c fiber.Ctx) error
}

// CategoryHandler handles public category HTTP requests
type CategoryHandler struct {
	categoryFlow businessflow.CategoryFlow
}

// NewCategoryHandler creates a new public category handler
func NewCategoryHandler(categoryFlow businessflow.CategoryFlow) CategoryHandlerInterface {
	return &CategoryHandler{categoryFlow: categoryFlow}
}

// ListCategories returns all blog categories, newest first
// @Summary List Categories
// @Tags Categories
// @Produce json
// @Success 200 {array} dto.CategoryDTO "Categories"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	categories, err := h.categoryFlow.ListCategories(createRequestContext(c, "/api/v1/categories"), metadata)
	if err != nil {
		log.Println("List categories failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}

// AdminCategoryHandlerInterface defines admin endpoints for managing categories
type AdminCategoryHandlerInterface interface {
	CreateCategory(c fiber.Ctx) error
	UpdateCategory(c fiber.Ctx) error
	DeleteCategory(c fiber.Ctx) error
}

// AdminCategoryHandler implements the admin category endpoints
type AdminCategoryHandler struct {
	adminFlow businessflow.AdminCategoryFlow
	validator *validator.Validate
}

// NewAdminCategoryHandler creates a new admin category handler
func NewAdminCategoryHandler(adminFlow businessflow.AdminCategoryFlow) AdminCategoryHandlerInterface {
	return &AdminCategoryHandler{
		adminFlow: adminFlow,
		validator: validator.New(),
	}
}

// CreateCategory creates a new blog category
// @Summary Admin Create Category
// @Tags Admin Categories
// @Accept json
// @Produce json
// @Param request body dto.UpsertCategoryRequest true "Category data"
// @Success 200 {object} dto.CategoryDTO "Created category"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/categories [post]
// @Security BearerAuth
func (h *AdminCategoryHandler) CreateCategory(c fiber.Ctx) error {
	var req dto.UpsertCategoryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	category, err := h.adminFlow.Create(createRequestContext(c, "/api/v1/admin/categories"), &req, metadata)
	if err != nil {
		log.Println("Admin create category failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create category")
	}

	return c.JSON(category)
}

// UpdateCategory renames a category
// @Summary Admin Update Category
// @Tags Admin Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpsertCategoryRequest true "Category data"
// @Success 200 {object} dto.CategoryDTO "Updated category"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/categories/{id} [put]
// @Security BearerAuth
func (h *AdminCategoryHandler) UpdateCategory(c fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpsertCategoryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	category, err := h.adminFlow.Update(createRequestContext(c, "/api/v1/admin/categories/:id"), id, &req, metadata)
	if err != nil {
		if businessflow.IsCategoryNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Category not found")
		}
		log.Println("Admin update category failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update category")
	}

	return c.Status(fiber.StatusOK).JSON(category)
}

// DeleteCategory removes a category; posts that carried it keep their other categories
// @Summary Admin Delete Category
// @Tags Admin Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.MessageResponse "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/admin/categories/{id} [delete]
// @Security BearerAuth
func (h *AdminCategoryHandler) DeleteCategory(c fiber.Ctx) error {
	id := c.Params("id")

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	if err := h.adminFlow.Delete(createRequestContext(c, "/api/v1/admin/categories/:id"), id, metadata); err != nil {
		if businessflow.IsCategoryNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Category not found")
		}
		log.Println("Admin delete category failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete category")
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Category deleted"})
}
