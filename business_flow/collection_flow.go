// Package businessflow contains use cases for the public collection catalog
package businessflow

import (
	"context"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/repository"
	"github.com/curioapp/curio-server/utils"
	"github.com/google/uuid"
)

// CollectionFlow defines the public read operations for collection items
type CollectionFlow interface {
	ListItems(ctx context.Context, search, tags, status string, metadata *ClientMetadata) ([]dto.CollectionItemDTO, error)
	GetItem(ctx context.Context, id string, metadata *ClientMetadata) (*dto.CollectionItemDTO, error)
}

type CollectionFlowImpl struct {
	itemRepo repository.CollectionItemRepository
}

func NewCollectionFlow(itemRepo repository.CollectionItemRepository) CollectionFlow {
	return &CollectionFlowImpl{itemRepo: itemRepo}
}

// ListItems combines the optional search, tag and status criteria into one
// filter and returns the matching items newest first, tags flattened in.
// Malformed criteria degrade to fewer criteria, never to a failure.
func (f *CollectionFlowImpl) ListItems(ctx context.Context, search, tags, status string, metadata *ClientMetadata) ([]dto.CollectionItemDTO, error) {
	filter := models.CollectionItemFilter{}
	if search != "" {
		filter.Search = utils.ToPtr(search)
	}
	if status != "" {
		filter.Status = utils.ToPtr(status)
	}
	filter.TagIDs = ParseTagIDs(tags)

	rows, err := f.itemRepo.ListWithTags(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("LIST_ITEMS_FAILED", "Failed to list collection items", err)
	}

	items := make([]dto.CollectionItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, ToCollectionItemDTO(*row))
	}
	return items, nil
}

// GetItem returns a single item projection by ID
func (f *CollectionFlowImpl) GetItem(ctx context.Context, id string, metadata *ClientMetadata) (*dto.CollectionItemDTO, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, NewBusinessError("ITEM_NOT_FOUND", "Collection item not found", ErrItemNotFound)
	}

	row, err := f.itemRepo.ByIDWithTags(ctx, itemID)
	if err != nil {
		return nil, NewBusinessError("GET_ITEM_FAILED", "Failed to get collection item", err)
	}
	if row == nil {
		return nil, NewBusinessError("ITEM_NOT_FOUND", "Collection item not found", ErrItemNotFound)
	}

	item := ToCollectionItemDTO(*row)
	return &item, nil
}
