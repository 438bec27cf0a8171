package handlers

import (
	"log"

	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/gofiber/fiber/v3"
)

// TagHandlerInterface defines the contract for the public tag endpoints
type TagHandlerInterface interface {
	ListTags(c fiber.Ctx) error
}

// TagHandler handles public tag HTTP requests
type TagHandler struct {
	tagFlow businessflow.TagFlow
}

// NewTagHandler creates a new public tag handler
func NewTagHandler(tagFlow businessflow.TagFlow) TagHandlerInterface {
	return &TagHandler{tagFlow: tagFlow}
}

// ListTags returns all tags, newest first
// @Summary List Tags
// @Tags Tags
// @Produce json
// @Success 200 {array} dto.TagDTO "Tags"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/tags [get]
func (h *TagHandler) ListTags(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	tags, err := h.tagFlow.ListTags(createRequestContext(c, "/api/v1/tags"), metadata)
	if err != nil {
		log.Println("List tags failed:", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch tags")
	}

	return c.Status(fiber.StatusOK).JSON(tags)
}
