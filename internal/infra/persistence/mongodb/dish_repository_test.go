package mongodb

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const dishNS = "canteenApp.dishes"

func TestDishRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("resolves canteen reference", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)
		dishID, canteenID := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, dishNS, mtest.FirstBatch, dishDoc(dishID, "Spicy Noodles", 12.5, canteenID)),
			mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch, canteenDoc(canteenID, "North Canteen")),
		)

		dish, err := repo.FindByID(context.Background(), dishID.Hex())

		require.NoError(t, err)
		assert.Equal(t, dishID.Hex(), dish.ID)
		assert.Equal(t, "Spicy Noodles", dish.Name)
		assert.InDelta(t, 12.5, dish.Price, 0.0001)
		assert.Equal(t, []string{"spicy"}, dish.Tags)
		require.NotNil(t, dish.Canteen)
		assert.Equal(t, canteenID.Hex(), dish.Canteen.ID)
		assert.Equal(t, "North Canteen", dish.Canteen.Name)
	})

	mt.Run("dangling canteen reference resolves to nil", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)
		dishID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, dishNS, mtest.FirstBatch, dishDoc(dishID, "Spicy Noodles", 12.5, primitive.NewObjectID())),
			mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch),
		)

		dish, err := repo.FindByID(context.Background(), dishID.Hex())

		require.NoError(t, err)
		assert.Nil(t, dish.Canteen)
	})

	mt.Run("absent", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, dishNS, mtest.FirstBatch))

		dish, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())

		assert.Nil(t, dish)
		assert.ErrorIs(t, err, repository.ErrDishNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)

		_, err := repo.FindByID(context.Background(), "42")

		assert.ErrorIs(t, err, repository.ErrDishNotFound)
	})
}

func TestDishRepository_FindByCanteenID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("batches canteen lookup", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)
		canteenID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, dishNS, mtest.FirstBatch,
				dishDoc(primitive.NewObjectID(), "Spicy Noodles", 12.5, canteenID),
				dishDoc(primitive.NewObjectID(), "Fried Rice", 9, canteenID),
			),
			mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch, canteenDoc(canteenID, "North Canteen")),
		)

		dishes, err := repo.FindByCanteenID(context.Background(), canteenID.Hex())

		require.NoError(t, err)
		require.Len(t, dishes, 2)
		requireRefFilter(mt, firstFindFilter(mt), "canteen.$id", canteenID)
		for _, dish := range dishes {
			require.NotNil(t, dish.Canteen)
			assert.Equal(t, canteenID.Hex(), dish.CanteenID())
		}
		assert.Same(t, dishes[0].Canteen, dishes[1].Canteen)
	})

	mt.Run("no dishes skips canteen lookup", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, dishNS, mtest.FirstBatch))

		dishes, err := repo.FindByCanteenID(context.Background(), primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.NotNil(t, dishes)
		assert.Empty(t, dishes)
	})

	mt.Run("malformed canteen id matches nothing", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)

		dishes, err := repo.FindByCanteenID(context.Background(), "nope")

		require.NoError(t, err)
		assert.Empty(t, dishes)
	})
}

func TestDishRepository_SearchByName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes matches", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)
		canteenID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, dishNS, mtest.FirstBatch, dishDoc(primitive.NewObjectID(), "Spicy Noodles", 12.5, canteenID)),
			mtest.CreateCursorResponse(0, canteenNS, mtest.FirstBatch, canteenDoc(canteenID, "North Canteen")),
		)

		dishes, err := repo.SearchByName(context.Background(), "spicy")

		require.NoError(t, err)
		require.Len(t, dishes, 1)
		requireNameRegex(mt, firstFindFilter(mt), "spicy")
		assert.Equal(t, "Spicy Noodles", dishes[0].Name)
	})
}

func TestDishRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns generated id", func(mt *mtest.T) {
		repo := NewDishRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		dish := &entity.Dish{
			Name:    "Spicy Noodles",
			Price:   12.5,
			Canteen: &entity.Canteen{ID: primitive.NewObjectID().Hex()},
		}
		err := repo.Create(context.Background(), dish)

		require.NoError(t, err)
		assert.True(t, primitive.IsValidObjectID(dish.ID))
	})
}

func TestDishMappers(t *testing.T) {
	canteenID := primitive.NewObjectID()
	dish := &entity.Dish{
		Name:    "Spicy Noodles",
		Price:   12.5,
		Canteen: &entity.Canteen{ID: canteenID.Hex(), Name: "North Canteen"},
	}

	doc := fromDishDomain(dish)

	require.NotNil(t, doc.Canteen)
	assert.Equal(t, "canteens", doc.Canteen.Ref)
	assert.Equal(t, canteenID, doc.Canteen.ID)
	assert.Equal(t, []string{}, doc.Tags)

	resolved := toDishDomain(doc, map[primitive.ObjectID]*entity.Canteen{canteenID: dish.Canteen})
	assert.Equal(t, dish.Canteen, resolved.Canteen)

	unresolved := toDishDomain(doc, nil)
	assert.Nil(t, unresolved.Canteen)
}
