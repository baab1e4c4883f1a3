package mongodb

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const userNS = "canteenApp.users"

func TestUserRepository_FindByUsername(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found keeps password hash", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch, userDoc(id, "alice", "$2a$hash")))

		user, err := repo.FindByUsername(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, id.Hex(), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "$2a$hash", user.PasswordHash)
		assert.Equal(t, "alice@campus.edu", user.Email)
	})

	mt.Run("absent", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch))

		_, err := repo.FindByUsername(context.Background(), "ghost")

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch, userDoc(id, "alice", "hash")))

		user, err := repo.FindByID(context.Background(), id.Hex())

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		_, err := repo.FindByID(context.Background(), "alice")

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("exists", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: 1},
			{Key: "n", Value: int32(1)},
		}))

		exists, err := repo.ExistsByUsername(context.Background(), "alice")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, userNS, mtest.FirstBatch))

		exists, err := repo.ExistsByUsername(context.Background(), "alice")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestUserRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns generated id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &entity.User{Username: "alice", PasswordHash: "hash"}
		err := repo.Create(context.Background(), user)

		require.NoError(t, err)
		assert.True(t, primitive.IsValidObjectID(user.ID))
	})

	mt.Run("duplicate username", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: canteenApp.users index: uniq_username",
		}))

		user := &entity.User{Username: "alice", PasswordHash: "hash"}
		err := repo.Create(context.Background(), user)

		assert.ErrorIs(t, err, repository.ErrUsernameTaken)
		assert.Empty(t, user.ID)
	})
}
