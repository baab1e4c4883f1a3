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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewRepository implements the repository.ReviewRepository interface on the 'reviews' collection.
type reviewRepository struct {
	collection *mongo.Collection
	resolver   *refResolver
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(constants.CollectionReviews),
		resolver:   newRefResolver(db),
	}
}

// Create inserts the review unconditionally and writes the generated id back.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	doc := fromReviewDomain(review)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = doc.ID.Hex()

	return nil
}

// FindByCanteenID lists the reviews pointing at the canteen, newest first.
func (repo *reviewRepository) FindByCanteenID(ctx context.Context, canteenID string) ([]*entity.Review, error) {
	return repo.findByRef(ctx, "canteen", canteenID, "failed to list reviews by canteen")
}

// FindByDishID lists the reviews pointing at the dish, newest first.
func (repo *reviewRepository) FindByDishID(ctx context.Context, dishID string) ([]*entity.Review, error) {
	return repo.findByRef(ctx, "dish", dishID, "failed to list reviews by dish")
}

// Summarize computes the average rating and review count for the target.
func (repo *reviewRepository) Summarize(ctx context.Context, target entity.RatingTarget, id string) (*entity.RatingSummary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &entity.RatingSummary{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: model.RefIDField(string(target)), Value: oid}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := repo.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate ratings")
	}
	defer cursor.Close(ctx)

	var results []model.RatingModel
	if err := cursor.All(ctx, &results); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.WithStack(err), "failed to decode rating aggregate")
	}
	if len(results) == 0 {
		return &entity.RatingSummary{}, nil
	}

	return toRatingDomain(&results[0]), nil
}

func (repo *reviewRepository) findByRef(ctx context.Context, field, id, details string) ([]*entity.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return []*entity.Review{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	docs, err := findMany[model.ReviewModel](ctx, repo.collection, bson.M{model.RefIDField(field): oid}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	reviews, err := repo.resolver.resolveReviews(ctx, docs)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return reviews, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a ReviewModel to a domain Review, attaching resolved references.
func toReviewDomain(
	data *model.ReviewModel,
	users map[primitive.ObjectID]*entity.User,
	canteens map[primitive.ObjectID]*entity.Canteen,
	dishes map[primitive.ObjectID]*entity.Dish,
) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:        data.ID.Hex(),
		Content:   data.Content,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
	}
	if oid, ok := refID(data.User); ok {
		review.User = users[oid]
	}
	if oid, ok := refID(data.Canteen); ok {
		review.Canteen = canteens[oid]
	}
	if oid, ok := refID(data.Dish); ok {
		review.Dish = dishes[oid]
	}

	return review
}

// fromReviewDomain converts a domain Review to a ReviewModel holding only references.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	doc := &model.ReviewModel{
		Content:   data.Content,
		Rating:    data.Rating,
		User:      model.NewDBRef(constants.CollectionUsers, data.UserID()),
		Canteen:   model.NewDBRef(constants.CollectionCanteens, data.CanteenID()),
		Dish:      model.NewDBRef(constants.CollectionDishes, data.DishID()),
		CreatedAt: data.CreatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(data.ID); err == nil {
		doc.ID = oid
	}

	return doc
}
