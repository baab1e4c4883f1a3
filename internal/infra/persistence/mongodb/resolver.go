package mongodb

import (
	"context"

	"canteen/internal/domain/constants"
	"canteen/internal/domain/entity"
	"canteen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// refResolver dereferences DBRef pointers with one $in query per target collection.
// A reference whose document no longer exists resolves to nil.
type refResolver struct {
	canteens *mongo.Collection
	dishes   *mongo.Collection
	users    *mongo.Collection
}

func newRefResolver(db *mongo.Database) *refResolver {
	return &refResolver{
		canteens: db.Collection(constants.CollectionCanteens),
		dishes:   db.Collection(constants.CollectionDishes),
		users:    db.Collection(constants.CollectionUsers),
	}
}

// resolveDishes maps dish documents to entities with their canteens attached.
func (r *refResolver) resolveDishes(ctx context.Context, docs []*model.DishModel) ([]*entity.Dish, error) {
	refs := make([]*model.DBRef, 0, len(docs))
	for _, doc := range docs {
		refs = append(refs, doc.Canteen)
	}

	canteens, err := r.loadCanteens(ctx, refs)
	if err != nil {
		return nil, err
	}

	dishes := make([]*entity.Dish, 0, len(docs))
	for _, doc := range docs {
		dishes = append(dishes, toDishDomain(doc, canteens))
	}

	return dishes, nil
}

// resolveReviews maps review documents to entities with user, canteen and dish attached.
// Canteens referenced directly and through dishes are fetched together.
func (r *refResolver) resolveReviews(ctx context.Context, docs []*model.ReviewModel) ([]*entity.Review, error) {
	userRefs := make([]*model.DBRef, 0, len(docs))
	dishRefs := make([]*model.DBRef, 0, len(docs))
	canteenRefs := make([]*model.DBRef, 0, len(docs))
	for _, doc := range docs {
		userRefs = append(userRefs, doc.User)
		dishRefs = append(dishRefs, doc.Dish)
		canteenRefs = append(canteenRefs, doc.Canteen)
	}

	users, err := r.loadUsers(ctx, userRefs)
	if err != nil {
		return nil, err
	}

	dishDocs, err := findByIDs[model.DishModel](ctx, r.dishes, uniqueObjectIDs(dishRefs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load referenced dishes")
	}
	for _, dishDoc := range dishDocs {
		canteenRefs = append(canteenRefs, dishDoc.Canteen)
	}

	canteens, err := r.loadCanteens(ctx, canteenRefs)
	if err != nil {
		return nil, err
	}

	dishes := make(map[primitive.ObjectID]*entity.Dish, len(dishDocs))
	for _, dishDoc := range dishDocs {
		dishes[dishDoc.ID] = toDishDomain(dishDoc, canteens)
	}

	reviews := make([]*entity.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, toReviewDomain(doc, users, canteens, dishes))
	}

	return reviews, nil
}

func (r *refResolver) loadCanteens(ctx context.Context, refs []*model.DBRef) (map[primitive.ObjectID]*entity.Canteen, error) {
	docs, err := findByIDs[model.CanteenModel](ctx, r.canteens, uniqueObjectIDs(refs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load referenced canteens")
	}

	canteens := make(map[primitive.ObjectID]*entity.Canteen, len(docs))
	for _, doc := range docs {
		canteens[doc.ID] = toCanteenDomain(doc)
	}

	return canteens, nil
}

func (r *refResolver) loadUsers(ctx context.Context, refs []*model.DBRef) (map[primitive.ObjectID]*entity.User, error) {
	docs, err := findByIDs[model.UserModel](ctx, r.users, uniqueObjectIDs(refs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load referenced users")
	}

	users := make(map[primitive.ObjectID]*entity.User, len(docs))
	for _, doc := range docs {
		users[doc.ID] = toUserDomain(doc)
	}

	return users, nil
}

// findByIDs loads the documents with the given ids. No ids means no query.
func findByIDs[T any](ctx context.Context, collection *mongo.Collection, ids []primitive.ObjectID) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}

	return findMany[T](ctx, collection, bson.M{"_id": bson.M{"$in": ids}})
}

// findMany runs a find and decodes every document. It never returns a nil slice on success.
func findMany[T any](ctx context.Context, collection *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer cursor.Close(ctx)

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.WithStack(err)
	}

	return docs, nil
}

func uniqueObjectIDs(refs []*model.DBRef) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(refs))
	seen := make(map[primitive.ObjectID]struct{}, len(refs))

	for _, ref := range refs {
		if ref == nil || ref.ID.IsZero() {
			continue
		}
		if _, ok := seen[ref.ID]; ok {
			continue
		}
		seen[ref.ID] = struct{}{}
		ids = append(ids, ref.ID)
	}

	return ids
}

func refID(ref *model.DBRef) (primitive.ObjectID, bool) {
	if ref == nil || ref.ID.IsZero() {
		return primitive.NilObjectID, false
	}

	return ref.ID, true
}
