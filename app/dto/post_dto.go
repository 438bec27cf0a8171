package dto

// CoverImageDTO is the synthesized cover image display descriptor
type CoverImageDTO struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// CategoryRefDTO is the flattened category shape embedded in post projections
type CategoryRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostDTO is the public projection of a blog post
type PostDTO struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	CoverImage CoverImageDTO    `json:"coverImage"`
	CreatedAt  string           `json:"createdAt"`
	UpdatedAt  string           `json:"updatedAt"`
	Categories []CategoryRefDTO `json:"categories"`
}

// PostScalarDTO is the post shape returned by the create and update
// endpoints: scalar fields only, no cover image descriptor or categories
type PostScalarDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	CoverImageURL string `json:"coverImageURL"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// UpsertPostRequest is the body of the post create and update endpoints
type UpsertPostRequest struct {
	Title         string   `json:"title" validate:"required,max=255"`
	Content       string   `json:"content" validate:"required"`
	CoverImageURL string   `json:"coverImageURL" validate:"required,max=2048"`
	CategoryIDs   []string `json:"categoryIds" validate:"omitempty,dive,uuid"`
}

// CategoryDTO is the public projection of a category
type CategoryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// UpsertCategoryRequest is the body of the category create and update endpoints
type UpsertCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}
