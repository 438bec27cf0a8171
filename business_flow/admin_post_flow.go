package businessflow

import (
	"context"
	"errors"
	"strings"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/repository"
	"github.com/curioapp/curio-server/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminPostFlow handles admin operations on blog posts. Category
// associations follow the same reconciliation mechanism as item tags, but
// without existence pre-validation: a dangling category ID surfaces as a
// store-level FK failure instead of a validation error.
type AdminPostFlow interface {
	Create(ctx context.Context, req *dto.UpsertPostRequest, metadata *ClientMetadata) (*dto.PostScalarDTO, error)
	Update(ctx context.Context, id string, req *dto.UpsertPostRequest, metadata *ClientMetadata) (*dto.PostScalarDTO, error)
	Delete(ctx context.Context, id string, metadata *ClientMetadata) error
}

type AdminPostFlowImpl struct {
	postRepo         repository.PostRepository
	postCategoryRepo repository.PostCategoryRepository
	db               *gorm.DB
}

func NewAdminPostFlow(
	postRepo repository.PostRepository,
	postCategoryRepo repository.PostCategoryRepository,
	db *gorm.DB,
) AdminPostFlow {
	return &AdminPostFlowImpl{
		postRepo:         postRepo,
		postCategoryRepo: postCategoryRepo,
		db:               db,
	}
}

// requestedCategoryIDs parses and de-duplicates the category IDs of a
// request body, dropping unparseable entries
func requestedCategoryIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return DedupeIDs(ids)
}

func (f *AdminPostFlowImpl) Create(ctx context.Context, req *dto.UpsertPostRequest, metadata *ClientMetadata) (*dto.PostScalarDTO, error) {
	categoryIDs := requestedCategoryIDs(req.CategoryIDs)

	now := utils.UTCNow()
	post := models.Post{
		ID:            uuid.New(),
		Title:         req.Title,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.postRepo.Save(txCtx, &post); err != nil {
			return err
		}
		return f.postCategoryRepo.InsertPairs(txCtx, post.ID, categoryIDs)
	})
	if err != nil {
		return nil, NewBusinessError("CREATE_POST_FAILED", "Failed to create post", err)
	}

	resp := ToPostScalarDTO(post)
	return &resp, nil
}

func (f *AdminPostFlowImpl) Update(ctx context.Context, id string, req *dto.UpsertPostRequest, metadata *ClientMetadata) (*dto.PostScalarDTO, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, NewBusinessError("POST_NOT_FOUND", "Post not found", ErrPostNotFound)
	}

	categoryIDs := requestedCategoryIDs(req.CategoryIDs)

	var post *models.Post
	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		var err error
		post, err = f.postRepo.ByID(txCtx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}

		post.Title = req.Title
		post.Content = req.Content
		post.CoverImageURL = req.CoverImageURL
		post.UpdatedAt = utils.UTCNow()
		if err := f.postRepo.Update(txCtx, post); err != nil {
			return err
		}

		return f.reconcilePostCategories(txCtx, postID, categoryIDs)
	})
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, NewBusinessError("POST_NOT_FOUND", "Post not found", err)
		}
		return nil, NewBusinessError("UPDATE_POST_FAILED", "Failed to update post", err)
	}

	resp := ToPostScalarDTO(*post)
	return &resp, nil
}

// reconcilePostCategories applies the set difference between the current and
// desired category associations inside the caller's transaction
func (f *AdminPostFlowImpl) reconcilePostCategories(ctx context.Context, postID uuid.UUID, desired []uuid.UUID) error {
	rows, err := f.postCategoryRepo.ListByPost(ctx, postID)
	if err != nil {
		return err
	}
	current := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		current = append(current, row.CategoryID)
	}

	toAdd, toRemove := diffAssociations(current, desired)
	if err := f.postCategoryRepo.DeletePairs(ctx, postID, toRemove); err != nil {
		return err
	}
	return f.postCategoryRepo.InsertPairs(ctx, postID, toAdd)
}

func (f *AdminPostFlowImpl) Delete(ctx context.Context, id string, metadata *ClientMetadata) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return NewBusinessError("POST_NOT_FOUND", "Post not found", ErrPostNotFound)
	}

	if err := f.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewBusinessError("POST_NOT_FOUND", "Post not found", ErrPostNotFound)
		}
		return NewBusinessError("DELETE_POST_FAILED", "Failed to delete post", err)
	}
	return nil
}
