package repository

import (
	"context"
	"fmt"

	"github.com/curioapp/curio-server/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemTagRepositoryImpl implements ItemTagRepository interface
type ItemTagRepositoryImpl struct {
	*BaseRepository[models.ItemTag, models.ItemTagFilter]
}

// NewItemTagRepository creates a new item tag repository
func NewItemTagRepository(db *gorm.DB) ItemTagRepository {
	return &ItemTagRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ItemTag, models.ItemTagFilter](db),
	}
}

// ListByItem returns the join rows for one collection item
func (r *ItemTagRepositoryImpl) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*models.ItemTag, error) {
	db := r.getDB(ctx)
	var rows []*models.ItemTag
	if err := db.Where("collection_item_id = ?", itemID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list item tags for %s: %w", itemID, err)
	}
	return rows, nil
}

// InsertPairs creates one join row per tag ID for the item
func (r *ItemTagRepositoryImpl) InsertPairs(ctx context.Context, itemID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]*models.ItemTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, &models.ItemTag{CollectionItemID: itemID, TagID: tagID})
	}
	return r.SaveBatch(ctx, rows)
}

// DeletePairs removes the join rows for the given item/tag pairs
func (r *ItemTagRepositoryImpl) DeletePairs(ctx context.Context, itemID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Where("collection_item_id = ? AND tag_id IN ?", itemID, tagIDs).
		Delete(&models.ItemTag{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete item tag pairs for %s: %w", itemID, err)
	}

	return nil
}
