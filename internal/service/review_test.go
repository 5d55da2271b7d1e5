package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/event"
	"github.com/stanleyHayes/stayup-api/internal/model"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

func TestCreateReviewRejectsMissingProduct(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, newFakeProductRepo(), &fakeBus{}, zap.NewNop())

	_, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
		ProductID: primitive.NewObjectID().Hex(),
		Reviewer:  primitive.NewObjectID().Hex(),
		Review:    "great",
		Rating:    5,
	})

	var refErr *errs.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Field != "product_id" {
		t.Errorf("wrong field: %q", refErr.Field)
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	product := &model.Product{Name: "Widget"}
	svc := NewReviewService(&fakeReviewRepo{}, newFakeProductRepo(product), &fakeBus{}, zap.NewNop())

	_, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
		ProductID: product.ID.Hex(),
		Reviewer:  primitive.NewObjectID().Hex(),
		Review:    "way too good",
		Rating:    6,
	})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateReviewRejectsUnknownStatus(t *testing.T) {
	product := &model.Product{Name: "Widget"}
	svc := NewReviewService(&fakeReviewRepo{}, newFakeProductRepo(product), &fakeBus{}, zap.NewNop())

	_, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
		ProductID: product.ID.Hex(),
		Reviewer:  primitive.NewObjectID().Hex(),
		Review:    "fine",
		Rating:    3,
		Status:    "published",
	})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateReviewPublishesEventForProduct(t *testing.T) {
	product := &model.Product{Name: "Widget"}
	bus := &fakeBus{}
	svc := NewReviewService(&fakeReviewRepo{}, newFakeProductRepo(product), bus, zap.NewNop())

	review, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
		ProductID:     product.ID.Hex(),
		Reviewer:      primitive.NewObjectID().Hex(),
		ReviewerEmail: "Buyer@Example.com",
		Review:        "great",
		Rating:        5,
		Status:        model.ReviewStatusApproved,
		Verified:      true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if review.ReviewerEmail != "buyer@example.com" {
		t.Errorf("reviewer email should be normalized, got %q", review.ReviewerEmail)
	}
	if len(bus.events) != 1 {
		t.Fatalf("expected one event, got %d", len(bus.events))
	}
	if bus.events[0].Type != event.ReviewSaved || bus.events[0].ProductID != product.ID {
		t.Errorf("wrong event published: %+v", bus.events[0])
	}
}

func TestDeleteReviewPublishesEventForOwningProduct(t *testing.T) {
	product := &model.Product{Name: "Widget"}
	reviewRepo := &fakeReviewRepo{}
	bus := &fakeBus{}
	svc := NewReviewService(reviewRepo, newFakeProductRepo(product), bus, zap.NewNop())

	review, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
		ProductID: product.ID.Hex(),
		Reviewer:  primitive.NewObjectID().Hex(),
		Review:    "great",
		Rating:    5,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if review.Status != model.ReviewStatusApproved {
		t.Errorf("status should default to approved, got %q", review.Status)
	}

	if err := svc.DeleteReview(context.Background(), review.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	last := bus.events[len(bus.events)-1]
	if last.Type != event.ReviewRemoved || last.ProductID != product.ID {
		t.Errorf("delete should publish a removal event carrying the product ID, got %+v", last)
	}
}
