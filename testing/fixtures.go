// Package testing provides test utilities and database setup for integration testing
package testing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/utils"
	"github.com/google/uuid"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestTag creates a tag with the given name
func (tf *TestFixtures) CreateTestTag(name string) (*models.Tag, error) {
	tag := &models.Tag{
		ID:        uuid.New(),
		Name:      name,
		Color:     fmt.Sprintf("#%06x", rand.Intn(0xffffff)),
		CreatedAt: utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(tag).Error; err != nil {
		return nil, fmt.Errorf("failed to create test tag %s: %w", name, err)
	}

	return tag, nil
}

// CreateTestItem creates a collection item and links it to the given tags
func (tf *TestFixtures) CreateTestItem(name, status string, tags ...*models.Tag) (*models.CollectionItem, error) {
	now := utils.UTCNow()
	item := &models.CollectionItem{
		ID:          uuid.New(),
		Name:        name,
		Description: fmt.Sprintf("Description of %s", name),
		ImageURL:    fmt.Sprintf("https://img.example.com/%s.jpg", uuid.NewString()),
		Rating:      rand.Intn(6),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := tf.DB.DB.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create test item %s: %w", name, err)
	}

	for _, tag := range tags {
		link := &models.ItemTag{CollectionItemID: item.ID, TagID: tag.ID}
		if err := tf.DB.DB.Create(link).Error; err != nil {
			return nil, fmt.Errorf("failed to link tag %s to item %s: %w", tag.Name, name, err)
		}
	}

	return item, nil
}

// CreateTestItemAt creates a collection item with an explicit creation time,
// used to verify ordering behavior
func (tf *TestFixtures) CreateTestItemAt(name, status string, createdAt time.Time) (*models.CollectionItem, error) {
	item := &models.CollectionItem{
		ID:          uuid.New(),
		Name:        name,
		Description: fmt.Sprintf("Description of %s", name),
		ImageURL:    fmt.Sprintf("https://img.example.com/%s.jpg", uuid.NewString()),
		Rating:      rand.Intn(6),
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	if err := tf.DB.DB.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create test item %s: %w", name, err)
	}

	return item, nil
}

// CreateTestCategory creates a category with the given name
func (tf *TestFixtures) CreateTestCategory(name string) (*models.Category, error) {
	category := &models.Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create test category %s: %w", name, err)
	}

	return category, nil
}

// CreateTestPost creates a post and links it to the given categories
func (tf *TestFixtures) CreateTestPost(title string, categories ...*models.Category) (*models.Post, error) {
	now := utils.UTCNow()
	post := &models.Post{
		ID:            uuid.New(),
		Title:         title,
		Content:       fmt.Sprintf("Content of %s", title),
		CoverImageURL: fmt.Sprintf("https://img.example.com/%s.jpg", uuid.NewString()),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := tf.DB.DB.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create test post %s: %w", title, err)
	}

	for _, category := range categories {
		link := &models.PostCategory{PostID: post.ID, CategoryID: category.ID}
		if err := tf.DB.DB.Create(link).Error; err != nil {
			return nil, fmt.Errorf("failed to link category %s to post %s: %w", category.Name, title, err)
		}
	}

	return post, nil
}
