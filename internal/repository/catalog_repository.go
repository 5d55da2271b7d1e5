package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stanleyHayes/stayup-api/internal/model"
)

// ListQuery carries the common pagination/search parameters shared by the
// simple resource listings
type ListQuery struct {
	Page   int
	Size   int
	Search string
	Sort   string
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Insert(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	List(ctx context.Context, q ListQuery) ([]*model.Product, int64, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// SlugExists reports whether any product already uses the slug
	SlugExists(ctx context.Context, slug string) (bool, error)

	// CountByIDs counts products whose ID is in the given set; used by the
	// coupon existence validation
	CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)

	// CountsByCategory groups the whole product collection by category
	// reference and returns (category, product count) pairs
	CountsByCategory(ctx context.Context) (map[primitive.ObjectID]int, error)

	// CountsByTag does the same for tag references
	CountsByTag(ctx context.Context) (map[primitive.ObjectID]int, error)

	// SetRatingFields writes the four recomputed rating fields onto a product
	SetRatingFields(ctx context.Context, id primitive.ObjectID, s model.RatingSummary) error
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Insert(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	List(ctx context.Context, q ListQuery) ([]*model.Category, int64, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)

	// ResetCounts zeroes every category's product count
	ResetCounts(ctx context.Context) error

	// SetCount writes a recomputed product count onto one category
	SetCount(ctx context.Context, id primitive.ObjectID, count int) error
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Insert(ctx context.Context, tag *model.Tag) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error)
	List(ctx context.Context, q ListQuery) ([]*model.Tag, int64, error)
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	ResetCounts(ctx context.Context) error
	SetCount(ctx context.Context, id primitive.ObjectID, count int) error
}
