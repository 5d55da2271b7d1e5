package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/pkg/database"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// mongodbTaxClassRepository implements TaxClassRepository using MongoDB
type mongodbTaxClassRepository struct {
	collection *mongo.Collection
}

// NewTaxClassRepository creates a new MongoDB-based tax class repository
func NewTaxClassRepository(db *mongo.Database) TaxClassRepository {
	return &mongodbTaxClassRepository{
		collection: db.Collection(database.CollTaxClasses),
	}
}

func (r *mongodbTaxClassRepository) Insert(ctx context.Context, class *model.TaxClass) error {
	now := time.Now()
	class.CreatedAt = now
	class.UpdatedAt = now
	class.Slug = strings.ToLower(class.Slug)

	result, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValidation("a tax class with the same slug already exists")
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		class.ID = oid
	}
	return nil
}

func (r *mongodbTaxClassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.TaxClass, error) {
	var class model.TaxClass
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *mongodbTaxClassRepository) List(ctx context.Context, q ListQuery) ([]*model.TaxClass, int64, error) {
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

	classes := []*model.TaxClass{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (r *mongodbTaxClassRepository) Update(ctx context.Context, class *model.TaxClass) error {
	class.UpdatedAt = time.Now()
	class.Slug = strings.ToLower(class.Slug)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": class.ID}, class)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValidation("a tax class with the same slug already exists")
		}
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbTaxClassRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// mongodbTaxRateRepository implements TaxRateRepository using MongoDB
type mongodbTaxRateRepository struct {
	collection *mongo.Collection
}

// NewTaxRateRepository creates a new MongoDB-based tax rate repository
func NewTaxRateRepository(db *mongo.Database) TaxRateRepository {
	return &mongodbTaxRateRepository{
		collection: db.Collection(database.CollTaxRates),
	}
}

func (r *mongodbTaxRateRepository) Insert(ctx context.Context, rate *model.TaxRate) error {
	now := time.Now()
	rate.CreatedAt = now
	rate.UpdatedAt = now
	rate.Country = strings.ToUpper(rate.Country)
	if rate.Class == "" {
		rate.Class = "standard"
	}
	if rate.Priority == 0 {
		rate.Priority = 1
	}
	if rate.Order == 0 {
		rate.Order = 1
	}

	result, err := r.collection.InsertOne(ctx, rate)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rate.ID = oid
	}
	return nil
}

func (r *mongodbTaxRateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.TaxRate, error) {
	var rate model.TaxRate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

func (r *mongodbTaxRateRepository) List(ctx context.Context, q ListQuery) ([]*model.TaxRate, int64, error) {
	filter := notDeleted()
	if q.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": q.Search, "$options": "i"}},
			bson.M{"country": bson.M{"$regex": q.Search, "$options": "i"}},
		}
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

	rates := []*model.TaxRate{}
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, 0, err
	}
	return rates, total, nil
}

func (r *mongodbTaxRateRepository) Update(ctx context.Context, rate *model.TaxRate) error {
	rate.UpdatedAt = time.Now()
	rate.Country = strings.ToUpper(rate.Country)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rate.ID}, rate)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbTaxRateRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.TaxRate, error) {
	var rate model.TaxRate
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}
