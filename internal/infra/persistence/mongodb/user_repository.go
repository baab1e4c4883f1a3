package mongodb

import (
	"context"

	"canteen/internal/domain/constants"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface on the 'users' collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(constants.CollectionUsers),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"username": username}, "failed to find user by username")
}

// ExistsByUsername reports whether a user with this login name exists.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check username")
	}

	return count > 0, nil
}

// Create persists a new user. A duplicate username surfaces as repository.ErrUsernameTaken.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := fromUserDomain(user)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = doc.ID.Hex()

	return nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, details string) (*entity.User, error) {
	var doc model.UserModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(&doc), nil
}

// --- Mapper Functions ---

// toUserDomain converts a UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID.Hex(),
		Username:     data.Username,
		PasswordHash: data.Password,
		Nickname:     data.Nickname,
		Avatar:       data.Avatar,
		Email:        data.Email,
	}
}

// fromUserDomain converts a domain User entity to a UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	doc := &model.UserModel{
		Username: data.Username,
		Password: data.PasswordHash,
		Nickname: data.Nickname,
		Avatar:   data.Avatar,
		Email:    data.Email,
	}
	if oid, err := primitive.ObjectIDFromHex(data.ID); err == nil {
		doc.ID = oid
	}

	return doc
}
