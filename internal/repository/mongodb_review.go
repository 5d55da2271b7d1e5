package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/pkg/database"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// mongodbReviewRepository implements ReviewRepository using MongoDB
type mongodbReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new MongoDB-based review repository
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &mongodbReviewRepository{
		collection: db.Collection(database.CollReviews),
	}
}

func (r *mongodbReviewRepository) Insert(ctx context.Context, review *model.Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	if review.Status == "" {
		review.Status = model.ReviewStatusApproved
	}

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

func (r *mongodbReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Review, error) {
	var review model.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *mongodbReviewRepository) ListByProduct(ctx context.Context, productID primitive.ObjectID, q ListQuery) ([]*model.Review, int64, error) {
	return r.list(ctx, bson.M{"product_id": productID}, q)
}

func (r *mongodbReviewRepository) List(ctx context.Context, q ListQuery) ([]*model.Review, int64, error) {
	filter := bson.M{}
	if q.Search != "" {
		filter["review"] = bson.M{"$regex": q.Search, "$options": "i"}
	}
	return r.list(ctx, filter, q)
}

func (r *mongodbReviewRepository) list(ctx context.Context, filter bson.M, q ListQuery) ([]*model.Review, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	reviews := []*model.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *mongodbReviewRepository) Update(ctx context.Context, review *model.Review) error {
	review.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *mongodbReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ApprovedStats computes the mean rating and count across all approved
// reviews of a product
func (r *mongodbReviewRepository) ApprovedStats(ctx context.Context, productID primitive.ObjectID) (RatingStats, bool, error) {
	return r.stats(ctx, bson.M{"product_id": productID, "status": model.ReviewStatusApproved})
}

// VerifiedApprovedStats computes the same over the verified subset
func (r *mongodbReviewRepository) VerifiedApprovedStats(ctx context.Context, productID primitive.ObjectID) (RatingStats, bool, error) {
	return r.stats(ctx, bson.M{"product_id": productID, "status": model.ReviewStatusApproved, "verified": true})
}

func (r *mongodbReviewRepository) stats(ctx context.Context, match bson.M) (RatingStats, bool, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$product_id",
			"average_rating": bson.M{"$avg": "$rating"},
			"rating_count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return RatingStats{}, false, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		AverageRating float64 `bson:"average_rating"`
		RatingCount   int     `bson:"rating_count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return RatingStats{}, false, err
	}
	if len(rows) == 0 {
		return RatingStats{}, false, nil
	}

	return RatingStats{
		AverageRating: rows[0].AverageRating,
		RatingCount:   rows[0].RatingCount,
	}, true, nil
}
