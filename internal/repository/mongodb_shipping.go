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

// notDeleted is the shared filter for soft-deletable collections
func notDeleted() bson.M {
	return bson.M{"is_deleted": bson.M{"$ne": true}}
}

// mongodbShippingClassRepository implements ShippingClassRepository
type mongodbShippingClassRepository struct {
	collection *mongo.Collection
}

// NewShippingClassRepository creates a new MongoDB-based shipping class repository
func NewShippingClassRepository(db *mongo.Database) ShippingClassRepository {
	return &mongodbShippingClassRepository{
		collection: db.Collection(database.CollShippingClasses),
	}
}

func (r *mongodbShippingClassRepository) Insert(ctx context.Context, class *model.ShippingClass) error {
	now := time.Now()
	class.CreatedAt = now
	class.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		class.ID = oid
	}
	return nil
}

func (r *mongodbShippingClassRepository) InsertMany(ctx context.Context, classes []*model.ShippingClass) error {
	if len(classes) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(classes))
	for _, class := range classes {
		class.CreatedAt = now
		class.UpdatedAt = now
		docs = append(docs, class)
	}

	result, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return err
	}
	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(classes) {
			classes[i].ID = oid
		}
	}
	return nil
}

func (r *mongodbShippingClassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingClass, error) {
	var class model.ShippingClass
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *mongodbShippingClassRepository) List(ctx context.Context, q ListQuery) ([]*model.ShippingClass, int64, error) {
	filter := notDeleted()
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

	classes := []*model.ShippingClass{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (r *mongodbShippingClassRepository) Update(ctx context.Context, class *model.ShippingClass) error {
	class.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": class.ID}, class)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbShippingClassRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingClass, error) {
	var class model.ShippingClass
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

// mongodbShippingMethodRepository implements ShippingMethodRepository
type mongodbShippingMethodRepository struct {
	collection *mongo.Collection
}

// NewShippingMethodRepository creates a new MongoDB-based shipping method repository
func NewShippingMethodRepository(db *mongo.Database) ShippingMethodRepository {
	return &mongodbShippingMethodRepository{
		collection: db.Collection(database.CollShippingMethods),
	}
}

func (r *mongodbShippingMethodRepository) Insert(ctx context.Context, method *model.ShippingMethod) error {
	now := time.Now()
	method.CreatedAt = now
	method.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, method)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		method.ID = oid
	}
	return nil
}

func (r *mongodbShippingMethodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingMethod, error) {
	var method model.ShippingMethod
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&method)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &method, nil
}

func (r *mongodbShippingMethodRepository) List(ctx context.Context, q ListQuery) ([]*model.ShippingMethod, int64, error) {
	filter := notDeleted()
	if q.Search != "" {
		filter["title"] = bson.M{"$regex": q.Search, "$options": "i"}
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

	methods := []*model.ShippingMethod{}
	if err := cursor.All(ctx, &methods); err != nil {
		return nil, 0, err
	}
	return methods, total, nil
}

func (r *mongodbShippingMethodRepository) Update(ctx context.Context, method *model.ShippingMethod) error {
	method.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": method.ID}, method)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbShippingMethodRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingMethod, error) {
	var method model.ShippingMethod
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&method)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &method, nil
}

// mongodbShippingZoneRepository implements ShippingZoneRepository
type mongodbShippingZoneRepository struct {
	collection *mongo.Collection
}

// NewShippingZoneRepository creates a new MongoDB-based shipping zone repository
func NewShippingZoneRepository(db *mongo.Database) ShippingZoneRepository {
	return &mongodbShippingZoneRepository{
		collection: db.Collection(database.CollShippingZones),
	}
}

func (r *mongodbShippingZoneRepository) Insert(ctx context.Context, zone *model.ShippingZone) error {
	now := time.Now()
	zone.CreatedAt = now
	zone.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, zone)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		zone.ID = oid
	}
	return nil
}

func (r *mongodbShippingZoneRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingZone, error) {
	var zone model.ShippingZone
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&zone)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &zone, nil
}

func (r *mongodbShippingZoneRepository) List(ctx context.Context, q ListQuery) ([]*model.ShippingZone, int64, error) {
	filter := notDeleted()
	if q.Search != "" {
		filter["title"] = bson.M{"$regex": q.Search, "$options": "i"}
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

	zones := []*model.ShippingZone{}
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, 0, err
	}
	return zones, total, nil
}

func (r *mongodbShippingZoneRepository) Update(ctx context.Context, zone *model.ShippingZone) error {
	zone.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": zone.ID}, zone)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbShippingZoneRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingZone, error) {
	var zone model.ShippingZone
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&zone)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &zone, nil
}

// mongodbZoneLocationRepository implements ZoneLocationRepository
type mongodbZoneLocationRepository struct {
	collection *mongo.Collection
}

// NewZoneLocationRepository creates a new MongoDB-based zone location repository
func NewZoneLocationRepository(db *mongo.Database) ZoneLocationRepository {
	return &mongodbZoneLocationRepository{
		collection: db.Collection(database.CollZoneLocations),
	}
}

func (r *mongodbZoneLocationRepository) Insert(ctx context.Context, location *model.ShippingZoneLocation) error {
	now := time.Now()
	location.CreatedAt = now
	location.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, location)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		location.ID = oid
	}
	return nil
}

func (r *mongodbZoneLocationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingZoneLocation, error) {
	var location model.ShippingZoneLocation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *mongodbZoneLocationRepository) ListByZone(ctx context.Context, zoneID primitive.ObjectID, q ListQuery) ([]*model.ShippingZoneLocation, int64, error) {
	filter := notDeleted()
	filter["shipping_zone"] = zoneID
	if q.Search != "" {
		filter["code"] = bson.M{"$regex": q.Search, "$options": "i"}
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

	locations := []*model.ShippingZoneLocation{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

func (r *mongodbZoneLocationRepository) Update(ctx context.Context, location *model.ShippingZoneLocation) error {
	location.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": location.ID}, location)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbZoneLocationRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingZoneLocation, error) {
	var location model.ShippingZoneLocation
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}
