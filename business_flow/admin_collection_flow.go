package businessflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/curioapp/curio-server/app/dto"
	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/repository"
	"github.com/curioapp/curio-server/utils"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// AdminCollectionFlow handles admin operations on collection items.
// Create and update keep the item_tags join table exactly equal to the
// requested tag set; update applies the set difference inside one
// transaction so readers never observe an intermediate empty tag set.
type AdminCollectionFlow interface {
	Create(ctx context.Context, req *dto.UpsertCollectionItemRequest, metadata *ClientMetadata) (*dto.CollectionItemScalarDTO, error)
	Update(ctx context.Context, id string, req *dto.UpsertCollectionItemRequest, metadata *ClientMetadata) (*dto.CollectionItemScalarDTO, error)
	Delete(ctx context.Context, id string, metadata *ClientMetadata) error
	DownloadCollectionExcel(ctx context.Context, metadata *ClientMetadata) (string, []byte, error)
}

type AdminCollectionFlowImpl struct {
	itemRepo    repository.CollectionItemRepository
	tagRepo     repository.TagRepository
	itemTagRepo repository.ItemTagRepository
	db          *gorm.DB
}

func NewAdminCollectionFlow(
	itemRepo repository.CollectionItemRepository,
	tagRepo repository.TagRepository,
	itemTagRepo repository.ItemTagRepository,
	db *gorm.DB,
) AdminCollectionFlow {
	return &AdminCollectionFlowImpl{
		itemRepo:    itemRepo,
		tagRepo:     tagRepo,
		itemTagRepo: itemTagRepo,
		db:          db,
	}
}

// requestedTagIDs parses and de-duplicates the tag IDs of a request body.
// Unparseable entries count as unknown tags: the whole operation is rejected
// rather than silently narrowing the requested set.
func requestedTagIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, ErrUnknownTags
		}
		ids = append(ids, id)
	}
	return DedupeIDs(ids), nil
}

// verifyTagsExist returns ErrUnknownTags unless every given tag ID exists
func (f *AdminCollectionFlowImpl) verifyTagsExist(ctx context.Context, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	count, err := f.tagRepo.CountByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	if count != int64(len(tagIDs)) {
		return ErrUnknownTags
	}
	return nil
}

// Create validates the requested tag set, then creates the item and its join
// rows in a single transaction. Any unknown tag rejects the whole operation
// with nothing persisted.
func (f *AdminCollectionFlowImpl) Create(ctx context.Context, req *dto.UpsertCollectionItemRequest, metadata *ClientMetadata) (*dto.CollectionItemScalarDTO, error) {
	if req == nil {
		return nil, NewBusinessError("ITEM_VALIDATION_FAILED", "Create collection item validation failed", ErrInvalidItemBody)
	}

	tagIDs, err := requestedTagIDs(req.TagIDs)
	if err != nil {
		return nil, NewBusinessError("UNKNOWN_TAGS", "Some of the specified tags do not exist", err)
	}

	now := utils.UTCNow()
	item := models.CollectionItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rating:      NormalizeRating(req.Rating),
		Status:      req.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.verifyTagsExist(txCtx, tagIDs); err != nil {
			return err
		}
		if err := f.itemRepo.Save(txCtx, &item); err != nil {
			return err
		}
		return f.itemTagRepo.InsertPairs(txCtx, item.ID, tagIDs)
	})
	if err != nil {
		if errors.Is(err, ErrUnknownTags) {
			return nil, NewBusinessError("UNKNOWN_TAGS", "Some of the specified tags do not exist", err)
		}
		return nil, NewBusinessError("CREATE_ITEM_FAILED", "Failed to create collection item", err)
	}

	resp := ToCollectionItemScalarDTO(item)
	return &resp, nil
}

// Update persists the scalar fields and reconciles the item's tag
// associations to exactly the requested set. Unknown tags are rejected the
// same way create rejects them.
func (f *AdminCollectionFlowImpl) Update(ctx context.Context, id string, req *dto.UpsertCollectionItemRequest, metadata *ClientMetadata) (*dto.CollectionItemScalarDTO, error) {
	if req == nil {
		return nil, NewBusinessError("ITEM_VALIDATION_FAILED", "Update collection item validation failed", ErrInvalidItemBody)
	}

	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, NewBusinessError("ITEM_NOT_FOUND", "Collection item not found", ErrItemNotFound)
	}

	tagIDs, err := requestedTagIDs(req.TagIDs)
	if err != nil {
		return nil, NewBusinessError("UNKNOWN_TAGS", "Some of the specified tags do not exist", err)
	}

	var item *models.CollectionItem
	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		var err error
		item, err = f.itemRepo.ByID(txCtx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrItemNotFound
		}
		if err := f.verifyTagsExist(txCtx, tagIDs); err != nil {
			return err
		}

		item.Name = req.Name
		item.Description = req.Description
		item.ImageURL = req.ImageURL
		item.Rating = NormalizeRating(req.Rating)
		item.Status = req.Status
		item.UpdatedAt = utils.UTCNow()
		if err := f.itemRepo.Update(txCtx, item); err != nil {
			return err
		}

		return f.reconcileItemTags(txCtx, itemID, tagIDs)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound):
			return nil, NewBusinessError("ITEM_NOT_FOUND", "Collection item not found", err)
		case errors.Is(err, ErrUnknownTags):
			return nil, NewBusinessError("UNKNOWN_TAGS", "Some of the specified tags do not exist", err)
		default:
			return nil, NewBusinessError("UPDATE_ITEM_FAILED", "Failed to update collection item", err)
		}
	}

	resp := ToCollectionItemScalarDTO(*item)
	return &resp, nil
}

// reconcileItemTags makes the join rows for the item exactly equal to the
// desired set by applying the difference: stale pairs are deleted and missing
// pairs inserted, nothing else is touched.
func (f *AdminCollectionFlowImpl) reconcileItemTags(ctx context.Context, itemID uuid.UUID, desired []uuid.UUID) error {
	rows, err := f.itemTagRepo.ListByItem(ctx, itemID)
	if err != nil {
		return err
	}
	current := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		current = append(current, row.TagID)
	}

	toAdd, toRemove := diffAssociations(current, desired)
	if err := f.itemTagRepo.DeletePairs(ctx, itemID, toRemove); err != nil {
		return err
	}
	return f.itemTagRepo.InsertPairs(ctx, itemID, toAdd)
}

// diffAssociations computes the IDs to insert and to delete so that current
// becomes desired. Both inputs are treated as sets.
func diffAssociations(current, desired []uuid.UUID) (toAdd, toRemove []uuid.UUID) {
	currentSet := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	desiredSet := make(map[uuid.UUID]struct{}, len(desired))
	for _, id := range desired {
		desiredSet[id] = struct{}{}
	}

	for _, id := range desired {
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if _, ok := desiredSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

// Delete removes the item; its join rows follow via the FK cascade
func (f *AdminCollectionFlowImpl) Delete(ctx context.Context, id string, metadata *ClientMetadata) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return NewBusinessError("ITEM_NOT_FOUND", "Collection item not found", ErrItemNotFound)
	}

	if err := f.itemRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewBusinessError("ITEM_NOT_FOUND", "Collection item not found", ErrItemNotFound)
		}
		return NewBusinessError("DELETE_ITEM_FAILED", "Failed to delete collection item", err)
	}
	return nil
}

// DownloadCollectionExcel renders the whole catalog as an .xlsx workbook
func (f *AdminCollectionFlowImpl) DownloadCollectionExcel(ctx context.Context, metadata *ClientMetadata) (string, []byte, error) {
	rows, err := f.itemRepo.ListWithTags(ctx, models.CollectionItemFilter{})
	if err != nil {
		return "", nil, NewBusinessError("EXPORT_COLLECTION_FAILED", "Failed to export collection", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	const sheet = "Collection"
	idx, err := xl.NewSheet(sheet)
	if err != nil {
		return "", nil, NewBusinessError("EXPORT_COLLECTION_FAILED", "Failed to export collection", err)
	}
	_ = xl.DeleteSheet("Sheet1")
	xl.SetActiveSheet(idx)

	headers := []string{"Name", "Description", "Status", "Rating", "Image URL", "Tags", "Created At"}
	for ci, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(ci+1, 1)
		_ = xl.SetCellValue(sheet, cell, h)
	}

	for ri, item := range rows {
		tagNames := make([]string, 0, len(item.Tags))
		for _, t := range item.Tags {
			tagNames = append(tagNames, t.Name)
		}
		values := []any{
			item.Name,
			item.Description,
			item.Status,
			item.Rating,
			item.ImageURL,
			strings.Join(tagNames, ", "),
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for ci, v := range values {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			_ = xl.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXPORT_COLLECTION_FAILED", "Failed to export collection", err)
	}

	fileName := fmt.Sprintf("collection_%s.xlsx", utils.UTCNow().Format("20060102_150405"))
	return fileName, buf.Bytes(), nil
}
