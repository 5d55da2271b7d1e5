package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/pkg/database"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// mongodbCategoryRepository implements CategoryRepository using MongoDB
type mongodbCategoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates a new MongoDB-based category repository
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongodbCategoryRepository{
		collection: db.Collection(database.CollCategories),
	}
}

func (r *mongodbCategoryRepository) Insert(ctx context.Context, category *model.Category) error {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	if category.Display == "" {
		category.Display = model.DisplayDefault
	}

	result, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValidation("a category with the same slug already exists")
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}
	return nil
}

func (r *mongodbCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	var category model.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *mongodbCategoryRepository) List(ctx context.Context, q ListQuery) ([]*model.Category, int64, error) {
	filter := bson.M{}
	if q.Search != "" {
		filter["name"] = bson.M{"$regex": q.Search, "$options": "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	categories := []*model.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *mongodbCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	category.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValidation("a category with the same slug already exists")
		}
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbCategoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

func (r *mongodbCategoryRepository) CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.collection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongodbCategoryRepository) ResetCounts(ctx context.Context) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"count": 0}})
	return err
}

func (r *mongodbCategoryRepository) SetCount(ctx context.Context, id primitive.ObjectID, count int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"count": count}})
	return err
}

// mongodbTagRepository implements TagRepository using MongoDB
type mongodbTagRepository struct {
	collection *mongo.Collection
}

// NewTagRepository creates a new MongoDB-based tag repository
func NewTagRepository(db *mongo.Database) TagRepository {
	return &mongodbTagRepository{
		collection: db.Collection(database.CollTags),
	}
}

func (r *mongodbTagRepository) Insert(ctx context.Context, tag *model.Tag) error {
	now := time.Now()
	tag.CreatedAt = now
	tag.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, tag)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValidation("a tag with the same slug already exists")
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		tag.ID = oid
	}
	return nil
}

func (r *mongodbTagRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	var tag model.Tag
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *mongodbTagRepository) List(ctx context.Context, q ListQuery) ([]*model.Tag, int64, error) {
	filter := bson.M{}
	if q.Search != "" {
		filter["name"] = bson.M{"$regex": q.Search, "$options": "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	tags := []*model.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

func (r *mongodbTagRepository) Update(ctx context.Context, tag *model.Tag) error {
	tag.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": tag.ID}, tag)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValidation("a tag with the same slug already exists")
		}
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbTagRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbTagRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

func (r *mongodbTagRepository) ResetCounts(ctx context.Context) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"count": 0}})
	return err
}

func (r *mongodbTagRepository) SetCount(ctx context.Context, id primitive.ObjectID, count int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"count": count}})
	return err
}
