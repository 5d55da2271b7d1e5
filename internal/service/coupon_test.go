package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/model"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

func newCouponTestService(
	couponRepo *fakeCouponRepo,
	productRepo *fakeProductRepo,
	categoryRepo *fakeCategoryRepo,
	customerRepo *fakeCustomerRepo,
	tx *fakeTx,
) *CouponService {
	return NewCouponService(couponRepo, productRepo, categoryRepo, customerRepo, tx, zap.NewNop())
}

func TestCreateCouponRequiresCode(t *testing.T) {
	svc := newCouponTestService(&fakeCouponRepo{}, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	_, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateCouponRejectsExpiredDate(t *testing.T) {
	svc := newCouponTestService(&fakeCouponRepo{}, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	past := time.Now().Add(-time.Hour)
	_, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{
		Code:        "SUMMER10",
		DateExpires: &past,
	})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateCouponRejectsDuplicateCode(t *testing.T) {
	couponRepo := &fakeCouponRepo{}
	svc := newCouponTestService(couponRepo, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	if _, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{Code: "SUMMER10"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{Code: "SUMMER10"})
	if !errors.Is(err, errs.ErrCouponCodeExists) {
		t.Fatalf("expected ErrCouponCodeExists, got %v", err)
	}
}

func TestCreateCouponRejectsMalformedReferenceID(t *testing.T) {
	svc := newCouponTestService(&fakeCouponRepo{}, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	_, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{
		Code:             "SUMMER10",
		IncludedProducts: []string{"not-an-object-id"},
	})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateCouponReportsMissingProductReference(t *testing.T) {
	product := &model.Product{Name: "Widget"}
	svc := newCouponTestService(&fakeCouponRepo{}, newFakeProductRepo(product), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	missing := primitive.NewObjectID()
	_, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{
		Code:             "SUMMER10",
		IncludedProducts: []string{product.ID.Hex(), missing.Hex()},
	})

	var refErr *errs.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Field != "included_products" {
		t.Errorf("wrong field: got %q", refErr.Field)
	}
	if refErr.Kind != errs.KindIDs {
		t.Errorf("wrong kind: got %q", refErr.Kind)
	}
}

func TestCreateCouponReportsMissingEmailReference(t *testing.T) {
	svc := newCouponTestService(&fakeCouponRepo{}, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo("known@example.com"), &fakeTx{})

	_, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{
		Code:           "SUMMER10",
		IncludedEmails: []string{"known@example.com", "unknown@example.com"},
	})

	var refErr *errs.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Field != "included_emails" {
		t.Errorf("wrong field: got %q", refErr.Field)
	}
	if refErr.Kind != errs.KindEmails {
		t.Errorf("wrong kind: got %q", refErr.Kind)
	}
}

func TestCreateCouponToleratesDuplicateReferences(t *testing.T) {
	product := &model.Product{Name: "Widget"}
	svc := newCouponTestService(&fakeCouponRepo{}, newFakeProductRepo(product), newFakeCategoryRepo(), newFakeCustomerRepo("a@example.com"), &fakeTx{})

	coupon, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{
		Code:             "SUMMER10",
		IncludedProducts: []string{product.ID.Hex(), product.ID.Hex()},
		IncludedEmails:   []string{"a@example.com", "A@Example.com"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(coupon.IncludedProducts) != 2 {
		t.Errorf("duplicates in the request should be preserved on the stored coupon, got %d", len(coupon.IncludedProducts))
	}
}

func TestCreateCouponPersistsFields(t *testing.T) {
	product := &model.Product{Name: "Widget"}
	category := primitive.NewObjectID()
	couponRepo := &fakeCouponRepo{}
	tx := &fakeTx{}
	svc := newCouponTestService(couponRepo, newFakeProductRepo(product), newFakeCategoryRepo(category), newFakeCustomerRepo("vip@example.com"), tx)

	expires := time.Now().Add(48 * time.Hour)
	coupon, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{
		Code:                      "SUMMER10",
		Amount:                    10,
		DiscountType:              model.DiscountPercent,
		Description:               "ten percent off",
		DateExpires:               &expires,
		IncludedProducts:          []string{product.ID.Hex()},
		IncludedProductCategories: []string{category.Hex()},
		IncludedEmails:            []string{"VIP@Example.com"},
		UsageLimit:                100,
		FreeShipping:              true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if tx.calls != 1 {
		t.Errorf("expected exactly one transaction, got %d", tx.calls)
	}
	if coupon.ID.IsZero() {
		t.Error("coupon was not assigned an ID")
	}
	if coupon.Amount != 10 || coupon.DiscountType != model.DiscountPercent {
		t.Errorf("discount fields not persisted: %+v", coupon)
	}
	if len(coupon.IncludedEmails) != 1 || coupon.IncludedEmails[0] != "vip@example.com" {
		t.Errorf("emails should be normalized to lowercase, got %v", coupon.IncludedEmails)
	}
	if coupon.UsedBy == nil || len(coupon.UsedBy) != 0 {
		t.Errorf("used_by should start as an empty list, got %v", coupon.UsedBy)
	}
	if coupon.IsDeleted {
		t.Error("new coupon must not be marked deleted")
	}

	stored, err := couponRepo.FindByCode(context.Background(), "SUMMER10")
	if err != nil {
		t.Fatalf("coupon not found after create: %v", err)
	}
	if stored.ID != coupon.ID {
		t.Error("stored coupon does not match returned coupon")
	}
}

func TestCreateCouponAbortsTransactionOnInsertFailure(t *testing.T) {
	boom := errors.New("write conflict")
	couponRepo := &fakeCouponRepo{insertErr: boom}
	tx := &fakeTx{}
	svc := newCouponTestService(couponRepo, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), tx)

	_, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{Code: "SUMMER10"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected insert error to surface, got %v", err)
	}
	if !tx.aborted {
		t.Error("transaction should have aborted")
	}
	if len(couponRepo.coupons) != 0 {
		t.Error("nothing should be persisted after an aborted transaction")
	}
}

func TestCreateCouponSurfacesDuplicateKeyFromInsert(t *testing.T) {
	couponRepo := &fakeCouponRepo{insertErr: errs.ErrCouponCodeExists}
	svc := newCouponTestService(couponRepo, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	_, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{Code: "SUMMER10"})
	if !errors.Is(err, errs.ErrCouponCodeExists) {
		t.Fatalf("expected ErrCouponCodeExists, got %v", err)
	}
}

func TestUpdateCouponRejectsUnknownField(t *testing.T) {
	svc := newCouponTestService(&fakeCouponRepo{}, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	_, err := svc.UpdateCoupon(context.Background(), primitive.NewObjectID(), map[string]interface{}{
		"code":    "NEWCODE",
		"used_by": []string{},
	})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error for non-updatable field, got %v", err)
	}
}

func TestUpdateCouponRejectsEmptyUpdate(t *testing.T) {
	svc := newCouponTestService(&fakeCouponRepo{}, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	_, err := svc.UpdateCoupon(context.Background(), primitive.NewObjectID(), map[string]interface{}{})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteCouponSoftDeleteExpiresCoupon(t *testing.T) {
	couponRepo := &fakeCouponRepo{}
	svc := newCouponTestService(couponRepo, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	future := time.Now().Add(30 * 24 * time.Hour)
	created, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{
		Code:        "SUMMER10",
		DateExpires: &future,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := svc.DeleteCoupon(context.Background(), created.ID, false)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted.IsDeleted {
		t.Error("coupon should be marked deleted")
	}
	if deleted.DateExpires == nil || deleted.DateExpires.After(time.Now().Add(time.Minute)) {
		t.Error("soft delete should pull the expiry forward to now")
	}

	if _, err := couponRepo.FindByCode(context.Background(), "SUMMER10"); !errors.Is(err, errs.ErrCouponNotFound) {
		t.Error("soft-deleted coupon should not be found by code")
	}
}

func TestDeleteCouponForceRemovesDocument(t *testing.T) {
	couponRepo := &fakeCouponRepo{}
	svc := newCouponTestService(couponRepo, newFakeProductRepo(), newFakeCategoryRepo(), newFakeCustomerRepo(), &fakeTx{})

	created, err := svc.CreateCoupon(context.Background(), &model.CreateCouponRequest{Code: "SUMMER10"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.DeleteCoupon(context.Background(), created.ID, true); err != nil {
		t.Fatalf("force delete failed: %v", err)
	}
	if len(couponRepo.coupons) != 0 {
		t.Error("force delete should remove the document")
	}
}
