package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	"github.com/stanleyHayes/stayup-api/pkg/database"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// couponUpdatableFields is the allow-list of fields accepted by UpdateCoupon.
// Anything outside it rejects the whole request.
var couponUpdatableFields = map[string]bool{
	"code":                        true,
	"amount":                      true,
	"discount_type":               true,
	"description":                 true,
	"date_expires":                true,
	"usage_count":                 true,
	"usage_limit":                 true,
	"usage_limit_per_user":        true,
	"individual_use":              true,
	"included_products":           true,
	"excluded_products":           true,
	"free_shipping":               true,
	"included_product_categories": true,
	"excluded_product_categories": true,
	"exclude_sale_items":          true,
	"minimum_amount":              true,
	"maximum_amount":              true,
	"included_emails":             true,
	"meta_data":                   true,
}

// CouponService handles business logic for coupons
type CouponService struct {
	couponRepo   repository.CouponRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	customerRepo repository.CustomerRepository
	tx           database.TxRunner
	log          *zap.Logger
}

// NewCouponService creates a new coupon service
func NewCouponService(
	couponRepo repository.CouponRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	customerRepo repository.CustomerRepository,
	tx database.TxRunner,
	log *zap.Logger,
) *CouponService {
	return &CouponService{
		couponRepo:   couponRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		customerRepo: customerRepo,
		tx:           tx,
		log:          log,
	}
}

// CreateCoupon runs the coupon creation workflow: a validation phase (field
// checks, duplicate pre-check, concurrent existence checks across four
// collections) followed by a transactional insert. The duplicate pre-check
// is best-effort; the unique index on code is what actually prevents two
// concurrent creations of the same code.
func (s *CouponService) CreateCoupon(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error) {
	if req.Code == "" {
		return nil, errs.NewValidation("code is required")
	}

	if req.DateExpires != nil && req.DateExpires.Before(time.Now()) {
		return nil, errs.NewValidation("code %s has already expired", req.Code)
	}

	if _, err := s.couponRepo.FindByCode(ctx, req.Code); err == nil {
		return nil, errs.ErrCouponCodeExists
	} else if err != errs.ErrCouponNotFound {
		return nil, err
	}

	includedProducts, err := parseObjectIDs(req.IncludedProducts, "included_products")
	if err != nil {
		return nil, err
	}
	excludedProducts, err := parseObjectIDs(req.ExcludedProducts, "excluded_products")
	if err != nil {
		return nil, err
	}
	includedCategories, err := parseObjectIDs(req.IncludedProductCategories, "included_product_categories")
	if err != nil {
		return nil, err
	}
	excludedCategories, err := parseObjectIDs(req.ExcludedProductCategories, "excluded_product_categories")
	if err != nil {
		return nil, err
	}

	if err := s.validateReferences(ctx, req.IncludedEmails, includedProducts, excludedProducts, includedCategories, excludedCategories); err != nil {
		return nil, err
	}

	coupon := &model.Coupon{
		Code:                      req.Code,
		Amount:                    req.Amount,
		DiscountType:              req.DiscountType,
		Description:               req.Description,
		DateExpires:               req.DateExpires,
		UsageCount:                req.UsageCount,
		IndividualUse:             req.IndividualUse,
		IncludedProducts:          includedProducts,
		ExcludedProducts:          excludedProducts,
		UsageLimit:                req.UsageLimit,
		UsageLimitPerUser:         req.UsageLimitPerUser,
		LimitUsageToXItems:        req.LimitUsageToXItems,
		FreeShipping:              req.FreeShipping,
		IncludedProductCategories: includedCategories,
		ExcludedProductCategories: excludedCategories,
		ExcludeSaleItems:          req.ExcludeSaleItems,
		MinimumAmount:             req.MinimumAmount,
		MaximumAmount:             req.MaximumAmount,
		IncludedEmails:            normalizeEmails(req.IncludedEmails),
		UsedBy:                    []primitive.ObjectID{},
		MetaData:                  req.MetaData,
		IsDeleted:                 false,
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.couponRepo.Insert(txCtx, coupon)
	})
	if err != nil {
		s.log.Error("coupon creation failed",
			zap.String("code", req.Code),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("coupon created", zap.String("code", coupon.Code), zap.String("id", coupon.ID.Hex()))
	return coupon, nil
}

// validateReferences launches the five existence checks concurrently and
// fails the whole group as soon as any one reports a missing reference.
func (s *CouponService) validateReferences(
	ctx context.Context,
	emails []string,
	includedProducts, excludedProducts, includedCategories, excludedCategories []primitive.ObjectID,
) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.checkEmailsExist(gctx, emails, "included_emails")
	})
	g.Go(func() error {
		return s.checkIDsExist(gctx, s.productRepo.CountByIDs, includedProducts, "included_products")
	})
	g.Go(func() error {
		return s.checkIDsExist(gctx, s.productRepo.CountByIDs, excludedProducts, "excluded_products")
	})
	g.Go(func() error {
		return s.checkIDsExist(gctx, s.categoryRepo.CountByIDs, includedCategories, "included_product_categories")
	})
	g.Go(func() error {
		return s.checkIDsExist(gctx, s.categoryRepo.CountByIDs, excludedCategories, "excluded_product_categories")
	})

	return g.Wait()
}

func (s *CouponService) checkIDsExist(
	ctx context.Context,
	count func(context.Context, []primitive.ObjectID) (int64, error),
	ids []primitive.ObjectID,
	field string,
) error {
	distinct := dedupeIDs(ids)
	if len(distinct) == 0 {
		return nil
	}

	n, err := count(ctx, distinct)
	if err != nil {
		return err
	}
	if n < int64(len(distinct)) {
		return &errs.ReferenceError{Field: field, Kind: errs.KindIDs}
	}
	return nil
}

func (s *CouponService) checkEmailsExist(ctx context.Context, emails []string, field string) error {
	distinct := dedupeStrings(normalizeEmails(emails))
	if len(distinct) == 0 {
		return nil
	}

	n, err := s.customerRepo.CountByEmails(ctx, distinct)
	if err != nil {
		return err
	}
	if n < int64(len(distinct)) {
		return &errs.ReferenceError{Field: field, Kind: errs.KindEmails}
	}
	return nil
}

// GetCoupon retrieves a coupon by ID with references populated
func (s *CouponService) GetCoupon(ctx context.Context, id primitive.ObjectID) (*model.PopulatedCoupon, error) {
	return s.couponRepo.FindPopulatedByID(ctx, id)
}

// ListCoupons retrieves coupons matching the query along with a total count
func (s *CouponService) ListCoupons(ctx context.Context, q model.CouponListQuery) ([]*model.Coupon, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 10
	}
	return s.couponRepo.List(ctx, q)
}

// UpdateCoupon applies the requested field updates after checking every key
// against the allow-list
func (s *CouponService) UpdateCoupon(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*model.Coupon, error) {
	for field := range updates {
		if !couponUpdatableFields[field] {
			return nil, errs.NewValidation("invalid updates detected: field %s is not updatable", field)
		}
	}
	if len(updates) == 0 {
		return nil, errs.NewValidation("no updatable fields supplied")
	}

	return s.couponRepo.Update(ctx, id, updates)
}

// DeleteCoupon soft-deletes a coupon, or permanently removes it when force
// is set
func (s *CouponService) DeleteCoupon(ctx context.Context, id primitive.ObjectID, force bool) (*model.Coupon, error) {
	if force {
		if err := s.couponRepo.HardDelete(ctx, id); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return s.couponRepo.SoftDelete(ctx, id, time.Now())
}

func parseObjectIDs(raw []string, field string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, errs.NewValidation("invalid ID %q in %s", s, field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func dedupeIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func normalizeEmails(emails []string) []string {
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		out = append(out, normalizeEmail(e))
	}
	return out
}
