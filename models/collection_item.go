// Package models contains domain entities and business models for the content management system
package models

import (
	"time"

	"github.com/google/uuid"
)

// Collection item status values
const (
	ItemStatusOwned    = "owned"
	ItemStatusWishlist = "wishlist"
	ItemStatusSold     = "sold"
)

// CollectionItem represents a single entry in the personal collection catalog
// Table: collection_items
// Tags are attached through the item_tags join table (set semantics)
// Timestamps default to UTC at DB level
type CollectionItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;index:idx_collection_items_name" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `gorm:"size:2048;not null" json:"imageURL"`
	Rating      int       `gorm:"not null;default:0" json:"rating"`
	Status      string    `gorm:"size:20;not null;index:idx_collection_items_status" json:"status"`
	CreatedAt   time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_collection_items_created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updatedAt"`

	Tags []*Tag `gorm:"many2many:item_tags;joinForeignKey:CollectionItemID;joinReferences:TagID" json:"tags,omitempty"`
}

func (CollectionItem) TableName() string {
	return "collection_items"
}

// CollectionItemFilter represents filter criteria for collection item queries
// Search matches name OR description case-insensitively; TagIDs require
// association with at least one of the given tags; present criteria are ANDed
type CollectionItemFilter struct {
	ID            *uuid.UUID
	Search        *string
	Status        *string
	TagIDs        []uuid.UUID
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
