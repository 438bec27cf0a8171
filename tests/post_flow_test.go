package tests

import (
	"testing"

	"github.com/curioapp/curio-server/app/dto"
	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/curioapp/curio-server/repository"
	testingutil "github.com/curioapp/curio-server/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postFlows(testDB *testingutil.TestDB) (businessflow.PostFlow, businessflow.AdminPostFlow) {
	postRepo := repository.NewPostRepository(testDB.DB)
	postCategoryRepo := repository.NewPostCategoryRepository(testDB.DB)

	return businessflow.NewPostFlow(postRepo),
		businessflow.NewAdminPostFlow(postRepo, postCategoryRepo, testDB.DB)
}

func TestAdminPostFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow, adminFlow := postFlows(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		news, err := fixtures.CreateTestCategory("news")
		require.NoError(t, err)
		reviews, err := fixtures.CreateTestCategory("reviews")
		require.NoError(t, err)

		var postID string

		t.Run("CreateWithCategories", func(t *testing.T) {
			created, err := adminFlow.Create(ctx, &dto.UpsertPostRequest{
				Title:         "First Post",
				Content:       "Hello world",
				CoverImageURL: "https://img.example.com/cover.jpg",
				CategoryIDs:   []string{news.ID.String(), reviews.ID.String()},
			}, metadata)
			require.NoError(t, err)
			postID = created.ID

			got, err := flow.GetPost(ctx, postID, metadata)
			require.NoError(t, err)
			assert.Len(t, got.Categories, 2)
			assert.Equal(t, "https://img.example.com/cover.jpg", got.CoverImage.URL)
			assert.Equal(t, businessflow.CoverImageWidth, got.CoverImage.Width)
			assert.Equal(t, businessflow.CoverImageHeight, got.CoverImage.Height)
		})

		t.Run("UnparseableCategoryIDsAreDropped", func(t *testing.T) {
			created, err := adminFlow.Create(ctx, &dto.UpsertPostRequest{
				Title:         "Loose Post",
				Content:       "Content",
				CoverImageURL: "https://img.example.com/loose.jpg",
				CategoryIDs:   []string{"garbage", news.ID.String()},
			}, metadata)
			require.NoError(t, err)

			got, err := flow.GetPost(ctx, created.ID, metadata)
			require.NoError(t, err)
			assert.Len(t, got.Categories, 1)
		})

		t.Run("UpdateReplacesCategories", func(t *testing.T) {
			_, err := adminFlow.Update(ctx, postID, &dto.UpsertPostRequest{
				Title:         "First Post Edited",
				Content:       "Hello again",
				CoverImageURL: "https://img.example.com/cover2.jpg",
				CategoryIDs:   []string{reviews.ID.String()},
			}, metadata)
			require.NoError(t, err)

			got, err := flow.GetPost(ctx, postID, metadata)
			require.NoError(t, err)
			assert.Equal(t, "First Post Edited", got.Title)
			require.Len(t, got.Categories, 1)
			assert.Equal(t, reviews.ID.String(), got.Categories[0].ID)
		})

		t.Run("UpdateNotFound", func(t *testing.T) {
			_, err := adminFlow.Update(ctx, uuid.NewString(), &dto.UpsertPostRequest{
				Title:         "Nope",
				Content:       "Nope",
				CoverImageURL: "https://img.example.com/nope.jpg",
			}, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsPostNotFound(err))
		})

		t.Run("Delete", func(t *testing.T) {
			require.NoError(t, adminFlow.Delete(ctx, postID, metadata))

			_, err := flow.GetPost(ctx, postID, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsPostNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestCategoryFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		categoryRepo := repository.NewCategoryRepository(testDB.DB)
		flow := businessflow.NewCategoryFlow(categoryRepo)
		adminFlow := businessflow.NewAdminCategoryFlow(categoryRepo)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		t.Run("CreateListUpdateDelete", func(t *testing.T) {
			created, err := adminFlow.Create(ctx, &dto.UpsertCategoryRequest{Name: "guides"}, metadata)
			require.NoError(t, err)
			assert.Equal(t, "guides", created.Name)

			categories, err := flow.ListCategories(ctx, metadata)
			require.NoError(t, err)
			require.Len(t, categories, 1)

			updated, err := adminFlow.Update(ctx, created.ID, &dto.UpsertCategoryRequest{Name: "tutorials"}, metadata)
			require.NoError(t, err)
			assert.Equal(t, "tutorials", updated.Name)

			require.NoError(t, adminFlow.Delete(ctx, created.ID, metadata))

			categories, err = flow.ListCategories(ctx, metadata)
			require.NoError(t, err)
			assert.Empty(t, categories)
		})

		t.Run("UpdateNotFound", func(t *testing.T) {
			_, err := adminFlow.Update(ctx, uuid.NewString(), &dto.UpsertCategoryRequest{Name: "x"}, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsCategoryNotFound(err))
		})

		t.Run("DeleteNotFound", func(t *testing.T) {
			err := adminFlow.Delete(ctx, uuid.NewString(), metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsCategoryNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestTagFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		tagRepo := repository.NewTagRepository(testDB.DB)
		flow := businessflow.NewTagFlow(tagRepo)
		adminFlow := businessflow.NewAdminTagFlow(tagRepo)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		t.Run("CreateListUpdateDelete", func(t *testing.T) {
			created, err := adminFlow.Create(ctx, &dto.UpsertTagRequest{Name: "toys", Color: "#ff0000"}, metadata)
			require.NoError(t, err)
			assert.Equal(t, "toys", created.Name)
			assert.Equal(t, "#ff0000", created.Color)

			tags, err := flow.ListTags(ctx, metadata)
			require.NoError(t, err)
			require.Len(t, tags, 1)

			updated, err := adminFlow.Update(ctx, created.ID, &dto.UpsertTagRequest{Name: "games", Color: "#00ff00"}, metadata)
			require.NoError(t, err)
			assert.Equal(t, "games", updated.Name)

			require.NoError(t, adminFlow.Delete(ctx, created.ID, metadata))

			tags, err = flow.ListTags(ctx, metadata)
			require.NoError(t, err)
			assert.Empty(t, tags)
		})

		t.Run("UpdateNotFound", func(t *testing.T) {
			_, err := adminFlow.Update(ctx, uuid.NewString(), &dto.UpsertTagRequest{Name: "x", Color: "#000000"}, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsTagNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}
