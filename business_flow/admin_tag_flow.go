package businessflow

import (
	"context"
	"errors"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/repository"
	"github.com/curioapp/curio-server/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminTagFlow handles admin operations on tags. Deleting a tag removes its
// item associations via the FK cascade; the items themselves stay intact.
type AdminTagFlow interface {
	Create(ctx context.Context, req *dto.UpsertTagRequest, metadata *ClientMetadata) (*dto.TagDTO, error)
	Update(ctx context.Context, id string, req *dto.UpsertTagRequest, metadata *ClientMetadata) (*dto.TagDTO, error)
	Delete(ctx context.Context, id string, metadata *ClientMetadata) error
}

type AdminTagFlowImpl struct {
	tagRepo repository.TagRepository
}

func NewAdminTagFlow(tagRepo repository.TagRepository) AdminTagFlow {
	return &AdminTagFlowImpl{tagRepo: tagRepo}
}

func (f *AdminTagFlowImpl) Create(ctx context.Context, req *dto.UpsertTagRequest, metadata *ClientMetadata) (*dto.TagDTO, error) {
	tag := models.Tag{
		ID:        uuid.New(),
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: utils.UTCNow(),
	}

	if err := f.tagRepo.Save(ctx, &tag); err != nil {
		return nil, NewBusinessError("CREATE_TAG_FAILED", "Failed to create tag", err)
	}

	resp := ToTagDTO(tag)
	return &resp, nil
}

func (f *AdminTagFlowImpl) Update(ctx context.Context, id string, req *dto.UpsertTagRequest, metadata *ClientMetadata) (*dto.TagDTO, error) {
	tagID, err := uuid.Parse(id)
	if err != nil {
		return nil, NewBusinessError("TAG_NOT_FOUND", "Tag not found", ErrTagNotFound)
	}

	tag, err := f.tagRepo.ByID(ctx, tagID)
	if err != nil {
		return nil, NewBusinessError("UPDATE_TAG_FAILED", "Failed to update tag", err)
	}
	if tag == nil {
		return nil, NewBusinessError("TAG_NOT_FOUND", "Tag not found", ErrTagNotFound)
	}

	tag.Name = req.Name
	tag.Color = req.Color
	if err := f.tagRepo.Update(ctx, tag); err != nil {
		return nil, NewBusinessError("UPDATE_TAG_FAILED", "Failed to update tag", err)
	}

	resp := ToTagDTO(*tag)
	return &resp, nil
}

func (f *AdminTagFlowImpl) Delete(ctx context.Context, id string, metadata *ClientMetadata) error {
	tagID, err := uuid.Parse(id)
	if err != nil {
		return NewBusinessError("TAG_NOT_FOUND", "Tag not found", ErrTagNotFound)
	}

	if err := f.tagRepo.Delete(ctx, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewBusinessError("TAG_NOT_FOUND", "Tag not found", ErrTagNotFound)
		}
		return NewBusinessError("DELETE_TAG_FAILED", "Failed to delete tag", err)
	}
	return nil
}
