package businessflow

import (
	"testing"
	"time"

	"github.com/curioapp/curio-server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagIDs(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	tests := []struct {
		name     string
		input    string
		expected []uuid.UUID
	}{
		{"empty string", "", nil},
		{"single id", a.String(), []uuid.UUID{a}},
		{"multiple ids", a.String() + "," + b.String(), []uuid.UUID{a, b}},
		{"whitespace around entries", " " + a.String() + " , " + b.String() + " ", []uuid.UUID{a, b}},
		{"blank entries dropped", "," + a.String() + ",,", []uuid.UUID{a}},
		{"unparseable entries dropped", "garbage," + a.String(), []uuid.UUID{a}},
		{"all garbage", "x,y,z", []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTagIDs(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDedupeIDs(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	t.Run("preserves first seen order", func(t *testing.T) {
		got := DedupeIDs([]uuid.UUID{b, a, b, c, a})
		assert.Equal(t, []uuid.UUID{b, a, c}, got)
	})

	t.Run("no duplicates", func(t *testing.T) {
		got := DedupeIDs([]uuid.UUID{a, b})
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, DedupeIDs(nil))
	})
}

func TestDiffAssociations(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	tests := []struct {
		name     string
		current  []uuid.UUID
		desired  []uuid.UUID
		toAdd    []uuid.UUID
		toRemove []uuid.UUID
	}{
		{"identical sets", []uuid.UUID{a, b}, []uuid.UUID{a, b}, nil, nil},
		{"full replacement", []uuid.UUID{a}, []uuid.UUID{b, c}, []uuid.UUID{b, c}, []uuid.UUID{a}},
		{"partial overlap", []uuid.UUID{a, b}, []uuid.UUID{b, c}, []uuid.UUID{c}, []uuid.UUID{a}},
		{"clear all", []uuid.UUID{a, b}, nil, nil, []uuid.UUID{a, b}},
		{"from empty", nil, []uuid.UUID{a}, []uuid.UUID{a}, nil},
		{"both empty", nil, nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := diffAssociations(tt.current, tt.desired)
			assert.ElementsMatch(t, tt.toAdd, toAdd)
			assert.ElementsMatch(t, tt.toRemove, toRemove)
		})
	}
}

func TestRequestedTagIDs(t *testing.T) {
	a := uuid.New()

	t.Run("valid ids are deduped", func(t *testing.T) {
		got, err := requestedTagIDs([]string{a.String(), a.String()})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a}, got)
	})

	t.Run("unparseable id rejects the request", func(t *testing.T) {
		_, err := requestedTagIDs([]string{a.String(), "garbage"})
		assert.ErrorIs(t, err, ErrUnknownTags)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := requestedTagIDs(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestToCollectionItemDTO(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	tag := models.Tag{ID: uuid.New(), Name: "toys", Color: "#ff0000", CreatedAt: now}
	item := models.CollectionItem{
		ID:          uuid.New(),
		Name:        "Figure",
		Description: "A figure",
		ImageURL:    "https://img.example.com/fig.jpg",
		Rating:      4,
		Status:      models.ItemStatusOwned,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        []*models.Tag{&tag},
	}

	got := ToCollectionItemDTO(item)
	assert.Equal(t, item.ID.String(), got.ID)
	assert.Equal(t, "2025-03-14T09:30:00Z", got.CreatedAt)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, tag.ID.String(), got.Tags[0].ID)
	assert.Equal(t, "toys", got.Tags[0].Name)
	assert.Equal(t, "#ff0000", got.Tags[0].Color)

	t.Run("no tags yields empty non nil slice", func(t *testing.T) {
		item.Tags = nil
		got := ToCollectionItemDTO(item)
		assert.NotNil(t, got.Tags)
		assert.Empty(t, got.Tags)
	})
}

func TestToPostDTO(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	category := models.Category{ID: uuid.New(), Name: "news", CreatedAt: now}
	post := models.Post{
		ID:            uuid.New(),
		Title:         "Hello",
		Content:       "World",
		CoverImageURL: "https://img.example.com/cover.jpg",
		CreatedAt:     now,
		UpdatedAt:     now,
		Categories:    []*models.Category{&category},
	}

	got := ToPostDTO(post)
	assert.Equal(t, "https://img.example.com/cover.jpg", got.CoverImage.URL)
	assert.Equal(t, CoverImageWidth, got.CoverImage.Width)
	assert.Equal(t, CoverImageHeight, got.CoverImage.Height)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "news", got.Categories[0].Name)

	t.Run("no categories yields empty non nil slice", func(t *testing.T) {
		post.Categories = nil
		got := ToPostDTO(post)
		assert.NotNil(t, got.Categories)
		assert.Empty(t, got.Categories)
	})
}

func TestBusinessErrorUnwrap(t *testing.T) {
	err := NewBusinessError("UNKNOWN_TAGS", "Some of the specified tags do not exist", ErrUnknownTags)
	assert.True(t, IsUnknownTags(err))
	assert.Equal(t, "UNKNOWN_TAGS", err.Code)
	assert.Contains(t, err.Error(), "tags do not exist")

	wrapped := NewBusinessError("ITEM_NOT_FOUND", "Collection item not found", ErrItemNotFound)
	assert.True(t, IsItemNotFound(wrapped))
	assert.False(t, IsUnknownTags(wrapped))
}
