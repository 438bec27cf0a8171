package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a blog post category
// Table: categories
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index:idx_categories_name" json:"name"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_categories_created_at" json:"createdAt"`
}

func (Category) TableName() string { return "categories" }

// CategoryFilter represents filter criteria for category queries
type CategoryFilter struct {
	ID   *uuid.UUID
	Name *string
}
