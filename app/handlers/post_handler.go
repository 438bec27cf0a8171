package handlers

import (
	"log"

	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/gofiber/fiber/v3"
)

// PostHandlerInterface defines the contract for the public blog endpoints
type PostHandlerInterface interface {
	ListPosts(c fiber.Ctx) error
	GetPost(c fiber.Ctx) error
}

// PostHandler handles public blog post HTTP requests
type PostHandler struct {
	postFlow businessflow.PostFlow
}

// NewPostHandler creates a new public post handler
func NewPostHandler(postFlow businessflow.PostFlow) PostHandlerInterface {
	return &PostHandler{postFlow: postFlow}
}

// ListPosts returns all posts with their categories, newest first
// @Summary List Posts
// @Tags Posts
// @Produce json
// @Success 200 {array} dto.PostDTO "Posts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/posts [get]
func (h *PostHandler) ListPosts(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	posts, err := h.postFlow.ListPosts(createRequestContext(c, "/api/v1/posts"), metadata)
	if err != nil {
		log.Println("List posts failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost returns a single post with its categories and cover image metadata
// @Summary Get Post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.PostDTO "Post"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/posts/{id} [get]
func (h *PostHandler) GetPost(c fiber.Ctx) error {
	id := c.Params("id")

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	post, err := h.postFlow.GetPost(createRequestContext(c, "/api/v1/posts/:id"), id, metadata)
	if err != nil {
		if businessflow.IsPostNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Post not found")
		}
		log.Println("Get post failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch post")
	}

	return c.Status(fiber.StatusOK).JSON(post)
}
