package models

import (
	"github.com/google/uuid"
)

// PostCategory is the join row pairing one post with one category
// Table: post_categories
// Same set invariant as item_tags: composite primary key, cascading FKs
type PostCategory struct {
	PostID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"postId"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"categoryId"`
}

func (PostCategory) TableName() string { return "post_categories" }

// PostCategoryFilter represents filter criteria for post category queries
type PostCategoryFilter struct {
	PostID     *uuid.UUID
	CategoryID *uuid.UUID
}
