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

// mongodbCouponRepository implements CouponRepository using MongoDB
type mongodbCouponRepository struct {
	coupons    *mongo.Collection
	products   *mongo.Collection
	categories *mongo.Collection
	customers  *mongo.Collection
}

// NewCouponRepository creates a new MongoDB-based coupon repository
func NewCouponRepository(db *mongo.Database) CouponRepository {
	return &mongodbCouponRepository{
		coupons:    db.Collection(database.CollCoupons),
		products:   db.Collection(database.CollProducts),
		categories: db.Collection(database.CollCategories),
		customers:  db.Collection(database.CollCustomers),
	}
}

// Insert persists a new coupon
func (r *mongodbCouponRepository) Insert(ctx context.Context, coupon *model.Coupon) error {
	now := time.Now()
	coupon.CreatedAt = now
	coupon.UpdatedAt = now
	if coupon.DiscountType == "" {
		coupon.DiscountType = model.DiscountFixedCart
	}

	result, err := r.coupons.InsertOne(ctx, coupon)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrCouponCodeExists
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		coupon.ID = oid
	}

	return nil
}

// FindByID retrieves a coupon by its ID
func (r *mongodbCouponRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.coupons.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrCouponNotFound
		}
		return nil, err
	}

	return &coupon, nil
}

// FindPopulatedByID retrieves a coupon with its references resolved
func (r *mongodbCouponRepository) FindPopulatedByID(ctx context.Context, id primitive.ObjectID) (*model.PopulatedCoupon, error) {
	coupon, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	populated := &model.PopulatedCoupon{Coupon: *coupon}

	if populated.IncludedProductsInfo, err = r.productSummaries(ctx, coupon.IncludedProducts); err != nil {
		return nil, err
	}
	if populated.ExcludedProductsInfo, err = r.productSummaries(ctx, coupon.ExcludedProducts); err != nil {
		return nil, err
	}
	if populated.IncludedCategoriesInfo, err = r.categorySummaries(ctx, coupon.IncludedProductCategories); err != nil {
		return nil, err
	}
	if populated.ExcludedCategoriesInfo, err = r.categorySummaries(ctx, coupon.ExcludedProductCategories); err != nil {
		return nil, err
	}
	if populated.IncludedCustomers, err = r.customerSummaries(ctx, coupon.IncludedEmails); err != nil {
		return nil, err
	}

	return populated, nil
}

func (r *mongodbCouponRepository) productSummaries(ctx context.Context, ids []primitive.ObjectID) ([]model.ProductSummary, error) {
	summaries := []model.ProductSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "images": 1})
	cursor, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *mongodbCouponRepository) categorySummaries(ctx context.Context, ids []primitive.ObjectID) ([]model.CategorySummary, error) {
	summaries := []model.CategorySummary{}
	if len(ids) == 0 {
		return summaries, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "image": 1})
	cursor, err := r.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *mongodbCouponRepository) customerSummaries(ctx context.Context, emails []string) ([]model.CustomerSummary, error) {
	summaries := []model.CustomerSummary{}
	if len(emails) == 0 {
		return summaries, nil
	}

	opts := options.Find().SetProjection(bson.M{"display_name": 1, "email": 1})
	cursor, err := r.customers.Find(ctx, bson.M{"email": bson.M{"$in": emails}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// FindByCode retrieves a non-deleted coupon by its code
func (r *mongodbCouponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.coupons.FindOne(ctx, bson.M{"code": code, "is_deleted": false}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrCouponNotFound
		}
		return nil, err
	}

	return &coupon, nil
}

// List retrieves coupons matching the query along with the total count
func (r *mongodbCouponRepository) List(ctx context.Context, q model.CouponListQuery) ([]*model.Coupon, int64, error) {
	filter := buildCouponFilter(q)

	total, err := r.coupons.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64(q.Offset)
	if skip == 0 && q.Page > 1 {
		skip = int64(q.Page-1) * int64(q.PerPage)
	}

	sortOrder := -1
	if q.Order == "asc" {
		sortOrder = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: couponSortField(q.OrderBy), Value: sortOrder}}).
		SetSkip(skip).
		SetLimit(int64(q.PerPage))

	cursor, err := r.coupons.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	coupons := []*model.Coupon{}
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, 0, err
	}

	return coupons, total, nil
}

func buildCouponFilter(q model.CouponListQuery) bson.M {
	filter := bson.M{}

	if q.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"code": bson.M{"$regex": q.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": q.Search, "$options": "i"}},
		}
	}
	if q.Code != "" {
		filter["code"] = q.Code
	}
	if q.After != nil || q.Before != nil {
		created := bson.M{}
		if q.After != nil {
			created["$gte"] = *q.After
		}
		if q.Before != nil {
			created["$lte"] = *q.Before
		}
		filter["created_at"] = created
	}
	if q.ModifiedAfter != nil || q.ModifiedBefore != nil {
		modified := bson.M{}
		if q.ModifiedAfter != nil {
			modified["$gte"] = *q.ModifiedAfter
		}
		if q.ModifiedBefore != nil {
			modified["$lte"] = *q.ModifiedBefore
		}
		filter["updated_at"] = modified
	}

	ids := bson.M{}
	if len(q.Include) > 0 {
		ids["$in"] = q.Include
	}
	if len(q.Exclude) > 0 {
		ids["$nin"] = q.Exclude
	}
	if len(ids) > 0 {
		filter["_id"] = ids
	}

	return filter
}

func couponSortField(orderBy string) string {
	switch orderBy {
	case "modified":
		return "updated_at"
	case "id", "include":
		return "_id"
	case "title":
		return "description"
	case "slug":
		return "code"
	default: // "date" and anything unknown
		return "created_at"
	}
}

// Update applies the given field updates and returns the updated coupon
func (r *mongodbCouponRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*model.Coupon, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}

	var coupon model.Coupon
	err := r.coupons.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrCouponNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.ErrCouponCodeExists
		}
		return nil, err
	}

	return &coupon, nil
}

// SoftDelete marks a coupon deleted. A coupon that has not yet expired gets
// its expiry pulled forward to expiresAt so it stops applying immediately.
func (r *mongodbCouponRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, expiresAt time.Time) (*model.Coupon, error) {
	coupon, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"is_deleted": true, "updated_at": time.Now()}
	if coupon.DateExpires == nil || coupon.DateExpires.After(expiresAt) {
		set["date_expires"] = expiresAt
	}

	var updated model.Coupon
	err = r.coupons.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrCouponNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// HardDelete permanently removes a coupon
func (r *mongodbCouponRepository) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coupons.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrCouponNotFound
	}
	return nil
}
