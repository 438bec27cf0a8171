package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a blog article
// Table: posts
// Categories are attached through the post_categories join table
type Post struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null;index:idx_posts_title" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	CoverImageURL string    `gorm:"size:2048;not null" json:"coverImageURL"`
	CreatedAt     time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_posts_created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updatedAt"`

	Categories []*Category `gorm:"many2many:post_categories;joinForeignKey:PostID;joinReferences:CategoryID" json:"categories,omitempty"`
}

func (Post) TableName() string { return "posts" }

// PostFilter represents filter criteria for post queries
type PostFilter struct {
	ID            *uuid.UUID
	Title         *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
