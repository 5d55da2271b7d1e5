package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stanleyHayes/stayup-api/internal/model"
)

// RatingStats is the output of the review grouping pipeline for one product
type RatingStats struct {
	AverageRating float64
	RatingCount   int
}

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Insert(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Review, error)
	ListByProduct(ctx context.Context, productID primitive.ObjectID, q ListQuery) ([]*model.Review, int64, error)
	List(ctx context.Context, q ListQuery) ([]*model.Review, int64, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ApprovedStats computes the mean rating and count across all approved
	// reviews of a product. Found is false when no approved review exists.
	ApprovedStats(ctx context.Context, productID primitive.ObjectID) (stats RatingStats, found bool, err error)

	// VerifiedApprovedStats computes the same over the approved reviews that
	// are also verified purchases
	VerifiedApprovedStats(ctx context.Context, productID primitive.ObjectID) (stats RatingStats, found bool, err error)
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Insert(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error)
	List(ctx context.Context, q ListQuery) ([]*model.Customer, int64, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// CountByEmails counts customers whose email is in the given set; used by
	// the coupon existence validation
	CountByEmails(ctx context.Context, emails []string) (int64, error)
}
