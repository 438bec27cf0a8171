package models

import (
	"github.com/google/uuid"
)

// ItemTag is the join row pairing one collection item with one tag
// Table: item_tags
// Composite primary key enforces at most one row per (item, tag) pair
// Both foreign keys cascade on parent deletion
type ItemTag struct {
	CollectionItemID uuid.UUID `gorm:"type:uuid;primaryKey" json:"collectionItemId"`
	TagID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"tagId"`
}

func (ItemTag) TableName() string { return "item_tags" }

// ItemTagFilter represents filter criteria for item tag queries
type ItemTagFilter struct {
	CollectionItemID *uuid.UUID
	TagID            *uuid.UUID
}
