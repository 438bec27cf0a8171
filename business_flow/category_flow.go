package businessflow

import (
	"context"
	"errors"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/repository"
	"github.com/curioapp/curio-server/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryFlow defines the public read operations for categories
type CategoryFlow interface {
	ListCategories(ctx context.Context, metadata *ClientMetadata) ([]dto.CategoryDTO, error)
}

type CategoryFlowImpl struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryFlow(categoryRepo repository.CategoryRepository) CategoryFlow {
	return &CategoryFlowImpl{categoryRepo: categoryRepo}
}

// ListCategories returns all categories, newest first
func (f *CategoryFlowImpl) ListCategories(ctx context.Context, metadata *ClientMetadata) ([]dto.CategoryDTO, error) {
	rows, err := f.categoryRepo.ByFilter(ctx, models.CategoryFilter{}, "created_at DESC", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_CATEGORIES_FAILED", "Failed to list categories", err)
	}

	categories := make([]dto.CategoryDTO, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, ToCategoryDTO(*row))
	}
	return categories, nil
}

// AdminCategoryFlow handles admin operations on categories. Deleting a
// category removes its post associations via the FK cascade; posts stay
// intact.
type AdminCategoryFlow interface {
	Create(ctx context.Context, req *dto.UpsertCategoryRequest, metadata *ClientMetadata) (*dto.CategoryDTO, error)
	Update(ctx context.Context, id string, req *dto.UpsertCategoryRequest, metadata *ClientMetadata) (*dto.CategoryDTO, error)
	Delete(ctx context.Context, id string, metadata *ClientMetadata) error
}

type AdminCategoryFlowImpl struct {
	categoryRepo repository.CategoryRepository
}

func NewAdminCategoryFlow(categoryRepo repository.CategoryRepository) AdminCategoryFlow {
	return &AdminCategoryFlowImpl{categoryRepo: categoryRepo}
}

func (f *AdminCategoryFlowImpl) Create(ctx context.Context, req *dto.UpsertCategoryRequest, metadata *ClientMetadata) (*dto.CategoryDTO, error) {
	category := models.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: utils.UTCNow(),
	}

	if err := f.categoryRepo.Save(ctx, &category); err != nil {
		return nil, NewBusinessError("CREATE_CATEGORY_FAILED", "Failed to create category", err)
	}

	resp := ToCategoryDTO(category)
	return &resp, nil
}

func (f *AdminCategoryFlowImpl) Update(ctx context.Context, id string, req *dto.UpsertCategoryRequest, metadata *ClientMetadata) (*dto.CategoryDTO, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, NewBusinessError("CATEGORY_NOT_FOUND", "Category not found", ErrCategoryNotFound)
	}

	category, err := f.categoryRepo.ByID(ctx, categoryID)
	if err != nil {
		return nil, NewBusinessError("UPDATE_CATEGORY_FAILED", "Failed to update category", err)
	}
	if category == nil {
		return nil, NewBusinessError("CATEGORY_NOT_FOUND", "Category not found", ErrCategoryNotFound)
	}

	category.Name = req.Name
	if err := f.categoryRepo.Update(ctx, category); err != nil {
		return nil, NewBusinessError("UPDATE_CATEGORY_FAILED", "Failed to update category", err)
	}

	resp := ToCategoryDTO(*category)
	return &resp, nil
}

func (f *AdminCategoryFlowImpl) Delete(ctx context.Context, id string, metadata *ClientMetadata) error {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return NewBusinessError("CATEGORY_NOT_FOUND", "Category not found", ErrCategoryNotFound)
	}

	if err := f.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewBusinessError("CATEGORY_NOT_FOUND", "Category not found", ErrCategoryNotFound)
		}
		return NewBusinessError("DELETE_CATEGORY_FAILED", "Failed to delete category", err)
	}
	return nil
}
