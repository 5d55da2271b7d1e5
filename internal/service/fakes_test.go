package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stanleyHayes/stayup-api/internal/event"
	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// fakeTx runs the callback directly and records whether it aborted
type fakeTx struct {
	calls   int
	aborted bool
}

func (f *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		f.aborted = true
		return err
	}
	return nil
}

// fakeBus records published events
type fakeBus struct {
	events []event.Event
}

func (f *fakeBus) Publish(ev event.Event) {
	f.events = append(f.events, ev)
}

type fakeCouponRepo struct {
	coupons   []*model.Coupon
	insertErr error
}

func (f *fakeCouponRepo) Insert(ctx context.Context, coupon *model.Coupon) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, c := range f.coupons {
		if c.Code == coupon.Code && !c.IsDeleted {
			return errs.ErrCouponCodeExists
		}
	}
	coupon.ID = primitive.NewObjectID()
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = coupon.CreatedAt
	f.coupons = append(f.coupons, coupon)
	return nil
}

func (f *fakeCouponRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error) {
	for _, c := range f.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errs.ErrCouponNotFound
}

func (f *fakeCouponRepo) FindPopulatedByID(ctx context.Context, id primitive.ObjectID) (*model.PopulatedCoupon, error) {
	c, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.PopulatedCoupon{Coupon: *c}, nil
}

func (f *fakeCouponRepo) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	for _, c := range f.coupons {
		if c.Code == code && !c.IsDeleted {
			return c, nil
		}
	}
	return nil, errs.ErrCouponNotFound
}

func (f *fakeCouponRepo) List(ctx context.Context, q model.CouponListQuery) ([]*model.Coupon, int64, error) {
	return f.coupons, int64(len(f.coupons)), nil
}

func (f *fakeCouponRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*model.Coupon, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeCouponRepo) SoftDelete(ctx context.Context, id primitive.ObjectID, expiresAt time.Time) (*model.Coupon, error) {
	c, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.IsDeleted = true
	if c.DateExpires == nil || c.DateExpires.After(expiresAt) {
		c.DateExpires = &expiresAt
	}
	return c, nil
}

func (f *fakeCouponRepo) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	for i, c := range f.coupons {
		if c.ID == id {
			f.coupons = append(f.coupons[:i], f.coupons[i+1:]...)
			return nil
		}
	}
	return errs.ErrCouponNotFound
}

type fakeProductRepo struct {
	products []*model.Product
	ratings  map[primitive.ObjectID]model.RatingSummary
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	f := &fakeProductRepo{ratings: map[primitive.ObjectID]model.RatingSummary{}}
	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		f.products = append(f.products, p)
	}
	return f
}

func (f *fakeProductRepo) Insert(ctx context.Context, product *model.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeProductRepo) List(ctx context.Context, q repository.ListQuery) ([]*model.Product, int64, error) {
	return f.products, int64(len(f.products)), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *model.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeProductRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	var n int64
	for _, id := range ids {
		for _, p := range f.products {
			if p.ID == id {
				n++
				break
			}
		}
	}
	return n, nil
}

func (f *fakeProductRepo) CountsByCategory(ctx context.Context) (map[primitive.ObjectID]int, error) {
	counts := map[primitive.ObjectID]int{}
	for _, p := range f.products {
		for _, c := range p.Categories {
			counts[c]++
		}
	}
	return counts, nil
}

func (f *fakeProductRepo) CountsByTag(ctx context.Context) (map[primitive.ObjectID]int, error) {
	counts := map[primitive.ObjectID]int{}
	for _, p := range f.products {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	return counts, nil
}

func (f *fakeProductRepo) SetRatingFields(ctx context.Context, id primitive.ObjectID, s model.RatingSummary) error {
	f.ratings[id] = s
	return nil
}

type fakeCategoryRepo struct {
	categories []*model.Category
	resets     int
}

func newFakeCategoryRepo(ids ...primitive.ObjectID) *fakeCategoryRepo {
	f := &fakeCategoryRepo{}
	for _, id := range ids {
		f.categories = append(f.categories, &model.Category{ID: id})
	}
	return f
}

func (f *fakeCategoryRepo) Insert(ctx context.Context, category *model.Category) error {
	category.ID = primitive.NewObjectID()
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeCategoryRepo) List(ctx context.Context, q repository.ListQuery) ([]*model.Category, int64, error) {
	return f.categories, int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *model.Category) error {
	for i, c := range f.categories {
		if c.ID == category.ID {
			f.categories[i] = category
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeCategoryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	var n int64
	for _, id := range ids {
		for _, c := range f.categories {
			if c.ID == id {
				n++
				break
			}
		}
	}
	return n, nil
}

func (f *fakeCategoryRepo) ResetCounts(ctx context.Context) error {
	f.resets++
	for _, c := range f.categories {
		c.Count = 0
	}
	return nil
}

func (f *fakeCategoryRepo) SetCount(ctx context.Context, id primitive.ObjectID, count int) error {
	c, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	c.Count = count
	return nil
}

type fakeTagRepo struct {
	tags   []*model.Tag
	resets int
}

func newFakeTagRepo(ids ...primitive.ObjectID) *fakeTagRepo {
	f := &fakeTagRepo{}
	for _, id := range ids {
		f.tags = append(f.tags, &model.Tag{ID: id})
	}
	return f
}

func (f *fakeTagRepo) Insert(ctx context.Context, tag *model.Tag) error {
	tag.ID = primitive.NewObjectID()
	f.tags = append(f.tags, tag)
	return nil
}

func (f *fakeTagRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	for _, t := range f.tags {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeTagRepo) List(ctx context.Context, q repository.ListQuery) ([]*model.Tag, int64, error) {
	return f.tags, int64(len(f.tags)), nil
}

func (f *fakeTagRepo) Update(ctx context.Context, tag *model.Tag) error {
	for i, t := range f.tags {
		if t.ID == tag.ID {
			f.tags[i] = tag
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeTagRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, t := range f.tags {
		if t.ID == id {
			f.tags = append(f.tags[:i], f.tags[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeTagRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, t := range f.tags {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTagRepo) ResetCounts(ctx context.Context) error {
	f.resets++
	for _, t := range f.tags {
		t.Count = 0
	}
	return nil
}

func (f *fakeTagRepo) SetCount(ctx context.Context, id primitive.ObjectID, count int) error {
	t, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	t.Count = count
	return nil
}

type fakeReviewRepo struct {
	reviews []*model.Review
}

func (f *fakeReviewRepo) Insert(ctx context.Context, review *model.Review) error {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Review, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID primitive.ObjectID, q repository.ListQuery) ([]*model.Review, int64, error) {
	var out []*model.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeReviewRepo) List(ctx context.Context, q repository.ListQuery) ([]*model.Review, int64, error) {
	return f.reviews, int64(len(f.reviews)), nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *model.Review) error {
	for i, r := range f.reviews {
		if r.ID == review.ID {
			f.reviews[i] = review
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, r := range f.reviews {
		if r.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeReviewRepo) ApprovedStats(ctx context.Context, productID primitive.ObjectID) (repository.RatingStats, bool, error) {
	return f.stats(productID, false)
}

func (f *fakeReviewRepo) VerifiedApprovedStats(ctx context.Context, productID primitive.ObjectID) (repository.RatingStats, bool, error) {
	return f.stats(productID, true)
}

func (f *fakeReviewRepo) stats(productID primitive.ObjectID, verifiedOnly bool) (repository.RatingStats, bool, error) {
	var sum float64
	var n int
	for _, r := range f.reviews {
		if r.ProductID != productID || r.Status != model.ReviewStatusApproved {
			continue
		}
		if verifiedOnly && !r.Verified {
			continue
		}
		sum += r.Rating
		n++
	}
	if n == 0 {
		return repository.RatingStats{}, false, nil
	}
	return repository.RatingStats{AverageRating: sum / float64(n), RatingCount: n}, true, nil
}

type fakeCustomerRepo struct {
	customers []*model.Customer
}

func newFakeCustomerRepo(emails ...string) *fakeCustomerRepo {
	f := &fakeCustomerRepo{}
	for _, e := range emails {
		f.customers = append(f.customers, &model.Customer{ID: primitive.NewObjectID(), Email: e})
	}
	return f
}

func (f *fakeCustomerRepo) Insert(ctx context.Context, customer *model.Customer) error {
	customer.ID = primitive.NewObjectID()
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeCustomerRepo) List(ctx context.Context, q repository.ListQuery) ([]*model.Customer, int64, error) {
	return f.customers, int64(len(f.customers)), nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *model.Customer) error {
	for i, c := range f.customers {
		if c.ID == customer.ID {
			f.customers[i] = customer
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, c := range f.customers {
		if c.ID == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeCustomerRepo) CountByEmails(ctx context.Context, emails []string) (int64, error) {
	var n int64
	for _, e := range emails {
		for _, c := range f.customers {
			if c.Email == e {
				n++
				break
			}
		}
	}
	return n, nil
}
