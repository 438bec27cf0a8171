package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/curioapp/curio-server/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollectionItemRepositoryImpl implements CollectionItemRepository interface
type CollectionItemRepositoryImpl struct {
	*BaseRepository[models.CollectionItem, models.CollectionItemFilter]
}

// NewCollectionItemRepository creates a new collection item repository
func NewCollectionItemRepository(db *gorm.DB) CollectionItemRepository {
	return &CollectionItemRepositoryImpl{
		BaseRepository: NewBaseRepository[models.CollectionItem, models.CollectionItemFilter](db),
	}
}

// applyFilter builds the conjunction of the present criteria.
// Absent criteria contribute no clause at all; an empty filter scans the
// whole table. Tag matching requires association with at least one of the
// given tag IDs (OR within the list, AND against the other criteria).
func (r *CollectionItemRepositoryImpl) applyFilter(query *gorm.DB, filter models.CollectionItemFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}
	if len(filter.TagIDs) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM item_tags WHERE item_tags.collection_item_id = collection_items.id AND item_tags.tag_id IN ?)",
			filter.TagIDs,
		)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves collection items based on filter criteria
func (r *CollectionItemRepositoryImpl) ByFilter(ctx context.Context, filter models.CollectionItemFilter, orderBy string, limit, offset int) ([]*models.CollectionItem, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.CollectionItem{})

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.CollectionItem
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find collection items: %w", err)
	}
	return rows, nil
}

// ListWithTags applies the filter and preloads tag associations, newest first
func (r *CollectionItemRepositoryImpl) ListWithTags(ctx context.Context, filter models.CollectionItemFilter) ([]*models.CollectionItem, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.CollectionItem{}).Preload("Tags")

	query = r.applyFilter(query, filter)
	query = query.Order("created_at DESC")

	var rows []*models.CollectionItem
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find collection items: %w", err)
	}
	return rows, nil
}

// ByIDWithTags loads a single item with its associated tags flattened in
func (r *CollectionItemRepositoryImpl) ByIDWithTags(ctx context.Context, id uuid.UUID) (*models.CollectionItem, error) {
	db := r.getDB(ctx)
	var row models.CollectionItem
	err := db.Preload("Tags").Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find collection item %s: %w", id, err)
	}
	return &row, nil
}

// Count returns the number of collection items matching the filter
func (r *CollectionItemRepositoryImpl) Count(ctx context.Context, filter models.CollectionItemFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.CollectionItem{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count collection items: %w", err)
	}
	return count, nil
}

// Exists checks if any collection item matching the filter exists
func (r *CollectionItemRepositoryImpl) Exists(ctx context.Context, filter models.CollectionItemFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
