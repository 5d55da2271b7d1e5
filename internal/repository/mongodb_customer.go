package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/pkg/database"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// mongodbCustomerRepository implements CustomerRepository using MongoDB
type mongodbCustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new MongoDB-based customer repository
func NewCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongodbCustomerRepository{
		collection: db.Collection(database.CollCustomers),
	}
}

func (r *mongodbCustomerRepository) Insert(ctx context.Context, customer *model.Customer) error {
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	customer.Username = strings.ToLower(strings.TrimSpace(customer.Username))
	if customer.Status == "" {
		customer.Status = model.CustomerStatusActive
	}

	result, err := r.collection.InsertOne(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValidation("a customer with the same email or username already exists")
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		customer.ID = oid
	}
	return nil
}

func (r *mongodbCustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	var customer model.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *mongodbCustomerRepository) List(ctx context.Context, q ListQuery) ([]*model.Customer, int64, error) {
	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"display_name": bson.M{"$regex": q.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": q.Search, "$options": "i"}},
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

	customers := []*model.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *mongodbCustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	customer.UpdatedAt = time.Now()
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.NewValidation("a customer with the same email or username already exists")
		}
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbCustomerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// CountByEmails counts customers whose email is in the given set
func (r *mongodbCustomerRepository) CountByEmails(ctx context.Context, emails []string) (int64, error) {
	if len(emails) == 0 {
		return 0, nil
	}
	return r.collection.CountDocuments(ctx, bson.M{"email": bson.M{"$in": emails}})
}
