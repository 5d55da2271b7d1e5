package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stanleyHayes/stayup-api/internal/model"
)

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	// Insert persists a new coupon. The storage layer's unique constraint
	// on code (among non-deleted coupons) surfaces as ErrCouponCodeExists.
	Insert(ctx context.Context, coupon *model.Coupon) error

	// FindByID retrieves a coupon by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error)

	// FindPopulatedByID retrieves a coupon with its product, category and
	// customer references resolved into summaries
	FindPopulatedByID(ctx context.Context, id primitive.ObjectID) (*model.PopulatedCoupon, error)

	// FindByCode retrieves a non-deleted coupon by its code
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)

	// List retrieves coupons matching the query along with the total count
	List(ctx context.Context, q model.CouponListQuery) ([]*model.Coupon, int64, error)

	// Update applies the given field updates and returns the updated coupon
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*model.Coupon, error)

	// SoftDelete marks a coupon deleted, expiring it at expiresAt unless it
	// already expired earlier
	SoftDelete(ctx context.Context, id primitive.ObjectID, expiresAt time.Time) (*model.Coupon, error)

	// HardDelete permanently removes a coupon
	HardDelete(ctx context.Context, id primitive.ObjectID) error
}
