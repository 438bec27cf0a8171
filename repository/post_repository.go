package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/curioapp/curio-server/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepositoryImpl implements PostRepository interface
type PostRepositoryImpl struct {
	*BaseRepository[models.Post, models.PostFilter]
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Post, models.PostFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query
func (r *PostRepositoryImpl) applyFilter(query *gorm.DB, filter models.PostFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Title != nil {
		query = query.Where("title = ?", *filter.Title)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves posts based on filter criteria
func (r *PostRepositoryImpl) ByFilter(ctx context.Context, filter models.PostFilter, orderBy string, limit, offset int) ([]*models.Post, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Post{})

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

	var rows []*models.Post
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	return rows, nil
}

// ListWithCategories returns all posts with categories, newest first
func (r *PostRepositoryImpl) ListWithCategories(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Post{}).Preload("Categories")

	query = r.applyFilter(query, filter)
	query = query.Order("created_at DESC")

	var rows []*models.Post
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	return rows, nil
}

// ByIDWithCategories loads a single post with its categories flattened in
func (r *PostRepositoryImpl) ByIDWithCategories(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	db := r.getDB(ctx)
	var row models.Post
	err := db.Preload("Categories").Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find post %s: %w", id, err)
	}
	return &row, nil
}

// Count returns the number of posts matching the filter
func (r *PostRepositoryImpl) Count(ctx context.Context, filter models.PostFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Post{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// Exists checks if any post matching the filter exists
func (r *PostRepositoryImpl) Exists(ctx context.Context, filter models.PostFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
