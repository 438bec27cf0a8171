package repository

import (
	"context"
	"fmt"

	"github.com/curioapp/curio-server/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostCategoryRepositoryImpl implements PostCategoryRepository interface
type PostCategoryRepositoryImpl struct {
	*BaseRepository[models.PostCategory, models.PostCategoryFilter]
}

// NewPostCategoryRepository creates a new post category repository
func NewPostCategoryRepository(db *gorm.DB) PostCategoryRepository {
	return &PostCategoryRepositoryImpl{
		BaseRepository: NewBaseRepository[models.PostCategory, models.PostCategoryFilter](db),
	}
}

// ListByPost returns the join rows for one post
func (r *PostCategoryRepositoryImpl) ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.PostCategory, error) {
	db := r.getDB(ctx)
	var rows []*models.PostCategory
	if err := db.Where("post_id = ?", postID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list post categories for %s: %w", postID, err)
	}
	return rows, nil
}

// InsertPairs creates one join row per category ID for the post
func (r *PostCategoryRepositoryImpl) InsertPairs(ctx context.Context, postID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	rows := make([]*models.PostCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		rows = append(rows, &models.PostCategory{PostID: postID, CategoryID: categoryID})
	}
	return r.SaveBatch(ctx, rows)
}

// DeletePairs removes the join rows for the given post/category pairs
func (r *PostCategoryRepositoryImpl) DeletePairs(ctx context.Context, postID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
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

	err = db.Where("post_id = ? AND category_id IN ?", postID, categoryIDs).
		Delete(&models.PostCategory{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete post category pairs for %s: %w", postID, err)
	}

	return nil
}
