// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/curioapp/curio-server/models"
	"github.com/google/uuid"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uuid.UUID) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// CollectionItemRepository defines operations for collection items
type CollectionItemRepository interface {
	Repository[models.CollectionItem, models.CollectionItemFilter]
	// ByIDWithTags loads a single item with its associated tags flattened in
	ByIDWithTags(ctx context.Context, id uuid.UUID) (*models.CollectionItem, error)
	// ListWithTags applies the filter and preloads tag associations, newest first
	ListWithTags(ctx context.Context, filter models.CollectionItemFilter) ([]*models.CollectionItem, error)
}

// TagRepository defines operations for tags
type TagRepository interface {
	Repository[models.Tag, models.TagFilter]
	// CountByIDs returns how many of the given tag IDs exist
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// ItemTagRepository defines operations for the item/tag join table
type ItemTagRepository interface {
	// ListByItem returns the join rows for one collection item
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*models.ItemTag, error)
	// InsertPairs creates one join row per tag ID for the item
	InsertPairs(ctx context.Context, itemID uuid.UUID, tagIDs []uuid.UUID) error
	// DeletePairs removes the join rows for the given item/tag pairs
	DeletePairs(ctx context.Context, itemID uuid.UUID, tagIDs []uuid.UUID) error
}

// PostRepository defines operations for blog posts
type PostRepository interface {
	Repository[models.Post, models.PostFilter]
	// ByIDWithCategories loads a single post with its categories flattened in
	ByIDWithCategories(ctx context.Context, id uuid.UUID) (*models.Post, error)
	// ListWithCategories returns all posts with categories, newest first
	ListWithCategories(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
}

// CategoryRepository defines operations for post categories
type CategoryRepository interface {
	Repository[models.Category, models.CategoryFilter]
}

// PostCategoryRepository defines operations for the post/category join table
type PostCategoryRepository interface {
	// ListByPost returns the join rows for one post
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*models.PostCategory, error)
	// InsertPairs creates one join row per category ID for the post
	InsertPairs(ctx context.Context, postID uuid.UUID, categoryIDs []uuid.UUID) error
	// DeletePairs removes the join rows for the given post/category pairs
	DeletePairs(ctx context.Context, postID uuid.UUID, categoryIDs []uuid.UUID) error
}
