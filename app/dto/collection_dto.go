package dto

// TagRefDTO is the flattened tag shape embedded in item projections
type TagRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CollectionItemDTO is the public projection of a collection item with its
// flattened tag list
type CollectionItemDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageURL"`
	Rating      int         `json:"rating"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
	Tags        []TagRefDTO `json:"tags"`
}

// CollectionItemScalarDTO is the item shape returned by the create and update
// endpoints: scalar fields only, no flattened tags
type CollectionItemScalarDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
	Rating      int    `json:"rating"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// UpsertCollectionItemRequest is the body of the item create and update endpoints
type UpsertCollectionItemRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description" validate:"max=10000"`
	ImageURL    string   `json:"imageURL" validate:"required,max=2048"`
	Rating      int      `json:"rating"`
	Status      string   `json:"status" validate:"required,oneof=owned wishlist sold"`
	TagIDs      []string `json:"tagIds" validate:"omitempty,dive,uuid"`
}
