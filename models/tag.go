package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag represents a label attached to collection items
// Table: tags
// Independent lifecycle from items; deleting a tag cascades its item_tags rows
type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index:idx_tags_name" json:"name"`
	Color     string    `gorm:"size:50;not null" json:"color"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_tags_created_at" json:"createdAt"`
}

func (Tag) TableName() string { return "tags" }

// TagFilter represents filter criteria for tag queries
type TagFilter struct {
	ID            *uuid.UUID
	Name          *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
