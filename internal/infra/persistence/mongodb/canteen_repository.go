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

// canteenRepository implements the repository.CanteenRepository interface on the 'canteens' collection.
type canteenRepository struct {
	collection *mongo.Collection
}

// NewCanteenRepository is the constructor for canteenRepository.
func NewCanteenRepository(db *mongo.Database) repository.CanteenRepository {
	return &canteenRepository{
		collection: db.Collection(constants.CollectionCanteens),
	}
}

// FindByID retrieves a single canteen by its id.
func (repo *canteenRepository) FindByID(ctx context.Context, id string) (*entity.Canteen, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrCanteenNotFound
	}

	var doc model.CanteenModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCanteenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find canteen by id")
	}

	return toCanteenDomain(&doc), nil
}

// FindAll returns every canteen.
func (repo *canteenRepository) FindAll(ctx context.Context) ([]*entity.Canteen, error) {
	return repo.find(ctx, bson.M{}, "failed to list canteens")
}

// SearchByName returns canteens whose name contains keyword, ignoring case.
func (repo *canteenRepository) SearchByName(ctx context.Context, keyword string) ([]*entity.Canteen, error) {
	return repo.find(ctx, nameContains(keyword), "failed to search canteens")
}

// Create inserts a canteen and writes the generated id back to the entity.
func (repo *canteenRepository) Create(ctx context.Context, canteen *entity.Canteen) error {
	doc := fromCanteenDomain(canteen)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create canteen")
	}

	canteen.ID = doc.ID.Hex()

	return nil
}

// UpdateRating replaces the rating summary of a canteen.
func (repo *canteenRepository) UpdateRating(ctx context.Context, id string, summary *entity.RatingSummary) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrCanteenNotFound
	}

	result, err := repo.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"rating": fromRatingDomain(summary)}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update canteen rating")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCanteenNotFound
	}

	return nil
}

func (repo *canteenRepository) find(ctx context.Context, filter bson.M, details string) ([]*entity.Canteen, error) {
	docs, err := findMany[model.CanteenModel](ctx, repo.collection, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	canteens := make([]*entity.Canteen, 0, len(docs))
	for _, doc := range docs {
		canteens = append(canteens, toCanteenDomain(doc))
	}

	return canteens, nil
}

// --- Mapper Functions ---

// toCanteenDomain converts a CanteenModel to a domain Canteen entity.
func toCanteenDomain(data *model.CanteenModel) *entity.Canteen {
	if data == nil {
		return nil
	}

	return &entity.Canteen{
		ID:          data.ID.Hex(),
		Name:        data.Name,
		Location:    data.Location,
		OpenTime:    data.OpenTime,
		Image:       data.Image,
		Description: data.Description,
		Rating:      toRatingDomain(data.Rating),
	}
}

// fromCanteenDomain converts a domain Canteen entity to a CanteenModel for persistence.
func fromCanteenDomain(data *entity.Canteen) *model.CanteenModel {
	if data == nil {
		return nil
	}

	doc := &model.CanteenModel{
		Name:        data.Name,
		Location:    data.Location,
		OpenTime:    data.OpenTime,
		Image:       data.Image,
		Description: data.Description,
		Rating:      fromRatingDomain(data.Rating),
	}
	if oid, err := primitive.ObjectIDFromHex(data.ID); err == nil {
		doc.ID = oid
	}

	return doc
}

func toRatingDomain(data *model.RatingModel) *entity.RatingSummary {
	if data == nil {
		return nil
	}

	return &entity.RatingSummary{Average: data.Average, Count: data.Count}
}

func fromRatingDomain(data *entity.RatingSummary) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{Average: data.Average, Count: data.Count}
}
