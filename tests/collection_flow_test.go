package tests

import (
	"testing"

	"github.com/curioapp/curio-server/app/dto"
	businessflow "github.com/curioapp/curio-server/business_flow"
	"github.com/curioapp/curio-server/models"
	"github.com/curioapp/curio-server/repository"
	testingutil "github.com/curioapp/curio-server/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectionFlows(testDB *testingutil.TestDB) (businessflow.CollectionFlow, businessflow.AdminCollectionFlow) {
	itemRepo := repository.NewCollectionItemRepository(testDB.DB)
	tagRepo := repository.NewTagRepository(testDB.DB)
	itemTagRepo := repository.NewItemTagRepository(testDB.DB)

	return businessflow.NewCollectionFlow(itemRepo),
		businessflow.NewAdminCollectionFlow(itemRepo, tagRepo, itemTagRepo, testDB.DB)
}

func TestAdminCollectionFlowCreate(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow, adminFlow := collectionFlows(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		toys, err := fixtures.CreateTestTag("toys")
		require.NoError(t, err)
		rare, err := fixtures.CreateTestTag("rare")
		require.NoError(t, err)

		t.Run("CreateWithTagsAndReadBack", func(t *testing.T) {
			created, err := adminFlow.Create(ctx, &dto.UpsertCollectionItemRequest{
				Name:     "Vintage Robot",
				ImageURL: "https://img.example.com/robot.jpg",
				Rating:   4,
				Status:   models.ItemStatusOwned,
				TagIDs:   []string{toys.ID.String(), rare.ID.String()},
			}, metadata)
			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, 4, created.Rating)

			got, err := flow.GetItem(ctx, created.ID, metadata)
			require.NoError(t, err)
			require.Len(t, got.Tags, 2)
		})

		t.Run("DuplicateTagIDsCollapse", func(t *testing.T) {
			created, err := adminFlow.Create(ctx, &dto.UpsertCollectionItemRequest{
				Name:     "Twice Tagged",
				ImageURL: "https://img.example.com/twice.jpg",
				Status:   models.ItemStatusOwned,
				TagIDs:   []string{toys.ID.String(), toys.ID.String()},
			}, metadata)
			require.NoError(t, err)

			got, err := flow.GetItem(ctx, created.ID, metadata)
			require.NoError(t, err)
			assert.Len(t, got.Tags, 1)
		})

		t.Run("UnknownTagRejectsEverything", func(t *testing.T) {
			_, err := adminFlow.Create(ctx, &dto.UpsertCollectionItemRequest{
				Name:     "Ghost",
				ImageURL: "https://img.example.com/ghost.jpg",
				Status:   models.ItemStatusOwned,
				TagIDs:   []string{toys.ID.String(), uuid.NewString()},
			}, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsUnknownTags(err))

			// The item was not persisted
			items, err := flow.ListItems(ctx, "Ghost", "", "", metadata)
			require.NoError(t, err)
			assert.Empty(t, items)
		})

		t.Run("RatingIsClampedOnCreate", func(t *testing.T) {
			created, err := adminFlow.Create(ctx, &dto.UpsertCollectionItemRequest{
				Name:     "Overrated",
				ImageURL: "https://img.example.com/over.jpg",
				Rating:   42,
				Status:   models.ItemStatusOwned,
			}, metadata)
			require.NoError(t, err)
			assert.Equal(t, businessflow.RatingMax, created.Rating)

			created, err = adminFlow.Create(ctx, &dto.UpsertCollectionItemRequest{
				Name:     "Underrated",
				ImageURL: "https://img.example.com/under.jpg",
				Rating:   -3,
				Status:   models.ItemStatusOwned,
			}, metadata)
			require.NoError(t, err)
			assert.Equal(t, businessflow.RatingMin, created.Rating)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAdminCollectionFlowUpdate(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow, adminFlow := collectionFlows(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		t1, err := fixtures.CreateTestTag("t1")
		require.NoError(t, err)
		t2, err := fixtures.CreateTestTag("t2")
		require.NoError(t, err)
		t3, err := fixtures.CreateTestTag("t3")
		require.NoError(t, err)

		item, err := fixtures.CreateTestItem("Mutable", models.ItemStatusOwned, t1, t2)
		require.NoError(t, err)

		baseReq := func() *dto.UpsertCollectionItemRequest {
			return &dto.UpsertCollectionItemRequest{
				Name:     "Mutable",
				ImageURL: "https://img.example.com/mutable.jpg",
				Rating:   3,
				Status:   models.ItemStatusOwned,
			}
		}

		tagIDsOf := func(id string) []string {
			got, err := flow.GetItem(ctx, id, metadata)
			require.NoError(t, err)
			ids := make([]string, 0, len(got.Tags))
			for _, tag := range got.Tags {
				ids = append(ids, tag.ID)
			}
			return ids
		}

		t.Run("ReplaceAssociations", func(t *testing.T) {
			req := baseReq()
			req.TagIDs = []string{t2.ID.String(), t3.ID.String()}

			_, err := adminFlow.Update(ctx, item.ID.String(), req, metadata)
			require.NoError(t, err)

			ids := tagIDsOf(item.ID.String())
			assert.ElementsMatch(t, []string{t2.ID.String(), t3.ID.String()}, ids)
		})

		t.Run("EmptySetClearsAssociations", func(t *testing.T) {
			req := baseReq()
			req.TagIDs = nil

			_, err := adminFlow.Update(ctx, item.ID.String(), req, metadata)
			require.NoError(t, err)
			assert.Empty(t, tagIDsOf(item.ID.String()))
		})

		t.Run("IdenticalSetIsIdempotent", func(t *testing.T) {
			req := baseReq()
			req.TagIDs = []string{t1.ID.String(), t2.ID.String()}

			_, err := adminFlow.Update(ctx, item.ID.String(), req, metadata)
			require.NoError(t, err)
			_, err = adminFlow.Update(ctx, item.ID.String(), req, metadata)
			require.NoError(t, err)

			ids := tagIDsOf(item.ID.String())
			assert.ElementsMatch(t, []string{t1.ID.String(), t2.ID.String()}, ids)
		})

		t.Run("UnknownTagLeavesItemUntouched", func(t *testing.T) {
			req := baseReq()
			req.Name = "Should Not Stick"
			req.TagIDs = []string{uuid.NewString()}

			_, err := adminFlow.Update(ctx, item.ID.String(), req, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsUnknownTags(err))

			got, err := flow.GetItem(ctx, item.ID.String(), metadata)
			require.NoError(t, err)
			assert.Equal(t, "Mutable", got.Name)
			assert.Len(t, got.Tags, 2)
		})

		t.Run("ScalarFieldsAndClamp", func(t *testing.T) {
			req := baseReq()
			req.Name = "Renamed"
			req.Rating = 99
			req.Status = models.ItemStatusSold
			req.TagIDs = []string{t1.ID.String()}

			updated, err := adminFlow.Update(ctx, item.ID.String(), req, metadata)
			require.NoError(t, err)
			assert.Equal(t, "Renamed", updated.Name)
			assert.Equal(t, businessflow.RatingMax, updated.Rating)
			assert.Equal(t, models.ItemStatusSold, updated.Status)
		})

		t.Run("NotFound", func(t *testing.T) {
			_, err := adminFlow.Update(ctx, uuid.NewString(), baseReq(), metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsItemNotFound(err))
		})

		t.Run("MalformedIDBehavesAsNotFound", func(t *testing.T) {
			_, err := adminFlow.Update(ctx, "not-a-uuid", baseReq(), metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsItemNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAdminCollectionFlowDelete(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow, adminFlow := collectionFlows(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		tag, err := fixtures.CreateTestTag("keepme")
		require.NoError(t, err)
		item, err := fixtures.CreateTestItem("Doomed", models.ItemStatusOwned, tag)
		require.NoError(t, err)

		t.Run("DeleteRemovesItemButNotTags", func(t *testing.T) {
			require.NoError(t, adminFlow.Delete(ctx, item.ID.String(), metadata))

			_, err := flow.GetItem(ctx, item.ID.String(), metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsItemNotFound(err))

			tagRepo := repository.NewTagRepository(testDB.DB)
			survivor, err := tagRepo.ByID(ctx, tag.ID)
			require.NoError(t, err)
			assert.NotNil(t, survivor)
		})

		t.Run("DeleteMissing", func(t *testing.T) {
			err := adminFlow.Delete(ctx, uuid.NewString(), metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsItemNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestCollectionFlowList(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow, _ := collectionFlows(testDB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()
		metadata := businessflow.NewClientMetadata("127.0.0.1", "test-agent")

		toys, err := fixtures.CreateTestTag("toys")
		require.NoError(t, err)
		books, err := fixtures.CreateTestTag("books")
		require.NoError(t, err)

		_, err = fixtures.CreateTestItem("Figure", models.ItemStatusOwned, toys)
		require.NoError(t, err)
		_, err = fixtures.CreateTestItem("Comic", models.ItemStatusWishlist, books)
		require.NoError(t, err)
		_, err = fixtures.CreateTestItem("Figurine", models.ItemStatusOwned)
		require.NoError(t, err)

		t.Run("NoFilters", func(t *testing.T) {
			items, err := flow.ListItems(ctx, "", "", "", metadata)
			require.NoError(t, err)
			assert.Len(t, items, 3)
			// Tags array is present even when empty
			for _, item := range items {
				assert.NotNil(t, item.Tags)
			}
		})

		t.Run("CommaSeparatedTagList", func(t *testing.T) {
			tags := toys.ID.String() + "," + books.ID.String()
			items, err := flow.ListItems(ctx, "", tags, "", metadata)
			require.NoError(t, err)
			assert.Len(t, items, 2)
		})

		t.Run("BlankTagEntriesIgnored", func(t *testing.T) {
			tags := " , " + toys.ID.String() + ", "
			items, err := flow.ListItems(ctx, "", tags, "", metadata)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "Figure", items[0].Name)
		})

		t.Run("AllFiltersTogether", func(t *testing.T) {
			items, err := flow.ListItems(ctx, "Fig", toys.ID.String(), models.ItemStatusOwned, metadata)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "Figure", items[0].Name)
		})

		t.Run("GetItemMalformedID", func(t *testing.T) {
			_, err := flow.GetItem(ctx, "not-a-uuid", metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsItemNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}
