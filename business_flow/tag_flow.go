// Package businessflow contains use cases for public tag listing
package businessflow

import (
	"context"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/repository"
)

// TagFlow defines the public read operations for tags
type TagFlow interface {
	ListTags(ctx context.Context, metadata *ClientMetadata) ([]dto.TagDTO, error)
}

type TagFlowImpl struct {
	tagRepo repository.TagRepository
}

func NewTagFlow(tagRepo repository.TagRepository) TagFlow {
	return &TagFlowImpl{tagRepo: tagRepo}
}

// ListTags returns all tags ordered by creation time, newest first
func (f *TagFlowImpl) ListTags(ctx context.Context, metadata *ClientMetadata) ([]dto.TagDTO, error) {
	rows, err := f.tagRepo.ByFilter(ctx, models.TagFilter{}, "created_at DESC", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_TAGS_FAILED", "Failed to list tags", err)
	}

	tags := make([]dto.TagDTO, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, ToTagDTO(*row))
	}
	return tags, nil
}
