// Package businessflow contains the business logic for the application.
package businessflow

import (
	"strings"
	"time"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/models"
	"github.com/google/uuid"
)

// Cover image display dimensions synthesized into post projections
const (
	CoverImageWidth  = 1200
	CoverImageHeight = 630
)

// ClientMetadata holds client-related information for logging and tracing
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ParseTagIDs splits a comma-separated identifier list into UUIDs.
// Blank and unparseable entries are dropped silently so a malformed list
// degrades to fewer (or no) criteria instead of failing the request.
func ParseTagIDs(raw string) []uuid.UUID {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// DedupeIDs collapses duplicates while preserving first-seen order
func DedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ToTagDTO converts a tag model to its public shape
func ToTagDTO(tag models.Tag) dto.TagDTO {
	return dto.TagDTO{
		ID:        tag.ID.String(),
		Name:      tag.Name,
		Color:     tag.Color,
		CreatedAt: tag.CreatedAt.Format(time.RFC3339),
	}
}

// ToTagRefDTO converts a tag model to the flattened {id, name, color} shape
// embedded in item projections
func ToTagRefDTO(tag models.Tag) dto.TagRefDTO {
	return dto.TagRefDTO{
		ID:    tag.ID.String(),
		Name:  tag.Name,
		Color: tag.Color,
	}
}

// ToCollectionItemDTO flattens an item and its preloaded tags into the public
// projection. Tag order is preserved as returned by the store; no
// deduplication or resorting happens here.
func ToCollectionItemDTO(item models.CollectionItem) dto.CollectionItemDTO {
	tags := make([]dto.TagRefDTO, 0, len(item.Tags))
	for _, t := range item.Tags {
		tags = append(tags, ToTagRefDTO(*t))
	}
	return dto.CollectionItemDTO{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Rating:      item.Rating,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
		Tags:        tags,
	}
}

// ToCollectionItemScalarDTO projects an item without its tag associations,
// the shape returned by the create and update endpoints
func ToCollectionItemScalarDTO(item models.CollectionItem) dto.CollectionItemScalarDTO {
	return dto.CollectionItemScalarDTO{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Rating:      item.Rating,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCategoryRefDTO converts a category model to the flattened {id, name} shape
func ToCategoryRefDTO(category models.Category) dto.CategoryRefDTO {
	return dto.CategoryRefDTO{
		ID:   category.ID.String(),
		Name: category.Name,
	}
}

// ToCategoryDTO converts a category model to its public shape
func ToCategoryDTO(category models.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:        category.ID.String(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}

// ToPostScalarDTO projects a post without its category associations,
// the shape returned by the create and update endpoints
func ToPostScalarDTO(post models.Post) dto.PostScalarDTO {
	return dto.PostScalarDTO{
		ID:            post.ID.String(),
		Title:         post.Title,
		Content:       post.Content,
		CoverImageURL: post.CoverImageURL,
		CreatedAt:     post.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     post.UpdatedAt.Format(time.RFC3339),
	}
}

// ToPostDTO flattens a post and its preloaded categories into the public
// projection, synthesizing the cover image display descriptor
func ToPostDTO(post models.Post) dto.PostDTO {
	categories := make([]dto.CategoryRefDTO, 0, len(post.Categories))
	for _, c := range post.Categories {
		categories = append(categories, ToCategoryRefDTO(*c))
	}
	return dto.PostDTO{
		ID:      post.ID.String(),
		Title:   post.Title,
		Content: post.Content,
		CoverImage: dto.CoverImageDTO{
			URL:    post.CoverImageURL,
			Width:  CoverImageWidth,
			Height: CoverImageHeight,
		},
		CreatedAt:  post.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  post.UpdatedAt.Format(time.RFC3339),
		Categories: categories,
	}
}
