package dto

// TagDTO is the public projection of a tag
type TagDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
}

// UpsertTagRequest is the body of the tag create and update endpoints
type UpsertTagRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Color string `json:"color" validate:"required,max=50"`
}
