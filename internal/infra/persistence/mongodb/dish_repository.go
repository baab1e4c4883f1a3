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

// dishRepository implements the repository.DishRepository interface on the 'dishes' collection.
type dishRepository struct {
	collection *mongo.Collection
	resolver   *refResolver
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *mongo.Database) repository.DishRepository {
	return &dishRepository{
		collection: db.Collection(constants.CollectionDishes),
		resolver:   newRefResolver(db),
	}
}

// FindByID retrieves a single dish with its canteen resolved.
func (repo *dishRepository) FindByID(ctx context.Context, id string) (*entity.Dish, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrDishNotFound
	}

	var doc model.DishModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDishNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find dish by id")
	}

	dishes, err := repo.resolver.resolveDishes(ctx, []*model.DishModel{&doc})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve dish canteen")
	}

	return dishes[0], nil
}

// FindAll returns every dish.
func (repo *dishRepository) FindAll(ctx context.Context) ([]*entity.Dish, error) {
	return repo.find(ctx, bson.M{}, "failed to list dishes")
}

// FindByCanteenID returns the dishes pointing at the canteen. A malformed id matches nothing.
func (repo *dishRepository) FindByCanteenID(ctx context.Context, canteenID string) ([]*entity.Dish, error) {
	oid, err := primitive.ObjectIDFromHex(canteenID)
	if err != nil {
		return []*entity.Dish{}, nil
	}

	return repo.find(ctx, bson.M{model.RefIDField("canteen"): oid}, "failed to list dishes by canteen")
}

// SearchByName returns dishes whose name contains keyword, ignoring case.
func (repo *dishRepository) SearchByName(ctx context.Context, keyword string) ([]*entity.Dish, error) {
	return repo.find(ctx, nameContains(keyword), "failed to search dishes")
}

// Create inserts a dish and writes the generated id back to the entity.
func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	doc := fromDishDomain(dish)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = doc.ID.Hex()

	return nil
}

// UpdateRating replaces the rating summary of a dish.
func (repo *dishRepository) UpdateRating(ctx context.Context, id string, summary *entity.RatingSummary) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrDishNotFound
	}

	result, err := repo.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"rating": fromRatingDomain(summary)}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update dish rating")
	}
	if result.MatchedCount == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

func (repo *dishRepository) find(ctx context.Context, filter bson.M, details string) ([]*entity.Dish, error) {
	docs, err := findMany[model.DishModel](ctx, repo.collection, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	dishes, err := repo.resolver.resolveDishes(ctx, docs)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return dishes, nil
}

// --- Mapper Functions ---

// toDishDomain converts a DishModel to a domain Dish, taking the canteen from the resolved set.
func toDishDomain(data *model.DishModel, canteens map[primitive.ObjectID]*entity.Canteen) *entity.Dish {
	if data == nil {
		return nil
	}

	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}

	dish := &entity.Dish{
		ID:     data.ID.Hex(),
		Name:   data.Name,
		Image:  data.Image,
		Price:  data.Price,
		Tags:   tags,
		Rating: toRatingDomain(data.Rating),
	}
	if oid, ok := refID(data.Canteen); ok {
		dish.Canteen = canteens[oid]
	}

	return dish
}

// fromDishDomain converts a domain Dish to a DishModel, keeping only a reference to its canteen.
func fromDishDomain(data *entity.Dish) *model.DishModel {
	if data == nil {
		return nil
	}

	doc := &model.DishModel{
		Name:    data.Name,
		Image:   data.Image,
		Price:   data.Price,
		Tags:    data.Tags,
		Canteen: model.NewDBRef(constants.CollectionCanteens, data.CanteenID()),
		Rating:  fromRatingDomain(data.Rating),
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if oid, err := primitive.ObjectIDFromHex(data.ID); err == nil {
		doc.ID = oid
	}

	return doc
}
