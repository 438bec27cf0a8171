// Package businessflow contains use cases for the public blog surface
package businessflow

import (
	"context"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/repository"
	"github.com/google/uuid"
)

// PostFlow defines the public read operations for blog posts
type PostFlow interface {
	ListPosts(ctx context.Context, metadata *ClientMetadata) ([]dto.PostDTO, error)
	GetPost(ctx context.Context, id string, metadata *ClientMetadata) (*dto.PostDTO, error)
}

type PostFlowImpl struct {
	postRepo repository.PostRepository
}

func NewPostFlow(postRepo repository.PostRepository) PostFlow {
	return &PostFlowImpl{postRepo: postRepo}
}

// ListPosts returns all posts newest first with categories flattened in
func (f *PostFlowImpl) ListPosts(ctx context.Context, metadata *ClientMetadata) ([]dto.PostDTO, error) {
	rows, err := f.postRepo.ListWithCategories(ctx, models.PostFilter{})
	if err != nil {
		return nil, NewBusinessError("LIST_POSTS_FAILED", "Failed to list posts", err)
	}

	posts := make([]dto.PostDTO, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, ToPostDTO(*row))
	}
	return posts, nil
}

// GetPost returns a single post projection with its synthesized cover image
// descriptor, or a not-found error
func (f *PostFlowImpl) GetPost(ctx context.Context, id string, metadata *ClientMetadata) (*dto.PostDTO, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, NewBusinessError("POST_NOT_FOUND", "Post not found", ErrPostNotFound)
	}

	row, err := f.postRepo.ByIDWithCategories(ctx, postID)
	if err != nil {
		return nil, NewBusinessError("GET_POST_FAILED", "Failed to get post", err)
	}
	if row == nil {
		return nil, NewBusinessError("POST_NOT_FOUND", "Post not found", ErrPostNotFound)
	}

	post := ToPostDTO(*row)
	return &post, nil
}
