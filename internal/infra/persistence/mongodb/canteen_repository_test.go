package mongodb

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const canteenNS = "canteenApp.canteens"

func TestCanteenRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch, canteenDoc(id, "North Canteen")))

		canteen, err := repo.FindByID(context.Background(), id.Hex())

		require.NoError(t, err)
		assert.Equal(t, id.Hex(), canteen.ID)
		assert.Equal(t, "North Canteen", canteen.Name)
		assert.Equal(t, "07:00-21:00", canteen.OpenTime)
		assert.Nil(t, canteen.Rating)
	})

	mt.Run("absent", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch))

		canteen, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())

		assert.Nil(t, canteen)
		assert.ErrorIs(t, err, repository.ErrCanteenNotFound)
	})

	mt.Run("malformed id behaves like absent", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)

		canteen, err := repo.FindByID(context.Background(), "not-an-object-id")

		assert.Nil(t, canteen)
		assert.ErrorIs(t, err, repository.ErrCanteenNotFound)
	})

	mt.Run("driver failure", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())

		var dbErr *domainerrors.DatabaseExecuteError
		assert.True(t, errors.As(err, &dbErr))
	})
}

func TestCanteenRepository_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every canteen", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch,
			canteenDoc(first, "North Canteen"),
			canteenDoc(second, "South Canteen"),
		))

		canteens, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, canteens, 2)
		assert.Equal(t, first.Hex(), canteens[0].ID)
		assert.Equal(t, "South Canteen", canteens[1].Name)
	})

	mt.Run("empty collection yields empty slice", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch))

		canteens, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, canteens)
		assert.Empty(t, canteens)
	})
}

func TestCanteenRepository_SearchByName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes matches", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch, canteenDoc(id, "North Canteen")))

		canteens, err := repo.SearchByName(context.Background(), "north")

		require.NoError(t, err)
		require.Len(t, canteens, 1)
		requireNameRegex(mt, firstFindFilter(mt), "north")
		assert.Equal(t, "North Canteen", canteens[0].Name)
	})
}

func TestCanteenRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns generated id", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		canteen := &entity.Canteen{Name: "North Canteen", Location: "North Campus"}
		err := repo.Create(context.Background(), canteen)

		require.NoError(t, err)
		assert.True(t, primitive.IsValidObjectID(canteen.ID))
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 121, Message: "validation"}))

		err := repo.Create(context.Background(), &entity.Canteen{Name: "North Canteen"})

		var dbErr *domainerrors.DatabaseExecuteError
		assert.True(t, errors.As(err, &dbErr))
	})
}

func TestCanteenRepository_UpdateRating(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := repo.UpdateRating(context.Background(), primitive.NewObjectID().Hex(), &entity.RatingSummary{Average: 4.5, Count: 2})

		assert.NoError(t, err)
	})

	mt.Run("unmatched", func(mt *mtest.T) {
		repo := NewCanteenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateRating(context.Background(), primitive.NewObjectID().Hex(), &entity.RatingSummary{})

		assert.ErrorIs(t, err, repository.ErrCanteenNotFound)
	})
}

func TestCanteenMappers_RoundTripRating(t *testing.T) {
	id := primitive.NewObjectID()
	canteen := &entity.Canteen{
		ID:     id.Hex(),
		Name:   "North Canteen",
		Rating: &entity.RatingSummary{Average: 3.5, Count: 4},
	}

	doc := fromCanteenDomain(canteen)

	assert.Equal(t, id, doc.ID)
	assert.Equal(t, canteen, toCanteenDomain(doc))
}
