package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/event"
	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// ReviewService handles business logic for product reviews
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	bus         Publisher
	log         *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, bus Publisher, log *zap.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		bus:         bus,
		log:         log,
	}
}

// CreateReview persists a new review and triggers the rating recomputation
// for its product
func (s *ReviewService) CreateReview(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, errs.NewValidation("invalid product ID format")
	}
	reviewerID, err := primitive.ObjectIDFromHex(req.Reviewer)
	if err != nil {
		return nil, errs.NewValidation("invalid reviewer ID format")
	}
	if req.Review == "" {
		return nil, errs.NewValidation("review content is required")
	}
	if req.Rating < 0 || req.Rating > 5 {
		return nil, errs.NewValidation("rating must be between 0 and 5")
	}
	if req.Status == "" {
		req.Status = model.ReviewStatusApproved
	}
	if !validReviewStatus(req.Status) {
		return nil, errs.NewValidation("invalid review status %q", req.Status)
	}
	if req.ReviewerEmail != "" {
		if err := validateEmail(req.ReviewerEmail); err != nil {
			return nil, err
		}
	}

	// The referenced product must exist before the review is accepted
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if err == errs.ErrNotFound {
			return nil, &errs.ReferenceError{Field: "product_id", Kind: errs.KindIDs}
		}
		return nil, err
	}

	review := &model.Review{
		ProductID:     productID,
		Status:        req.Status,
		Reviewer:      reviewerID,
		ReviewerEmail: normalizeEmail(req.ReviewerEmail),
		Review:        req.Review,
		Rating:        req.Rating,
		Verified:      req.Verified,
	}

	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Type: event.ReviewSaved, ProductID: review.ProductID})
	return review, nil
}

// GetReview retrieves a review by ID
func (s *ReviewService) GetReview(ctx context.Context, id primitive.ObjectID) (*model.Review, error) {
	return s.reviewRepo.FindByID(ctx, id)
}

// ListReviews retrieves reviews, optionally scoped to one product
func (s *ReviewService) ListReviews(ctx context.Context, productID *primitive.ObjectID, q repository.ListQuery) ([]*model.Review, int64, error) {
	if productID != nil {
		return s.reviewRepo.ListByProduct(ctx, *productID, q)
	}
	return s.reviewRepo.List(ctx, q)
}

// UpdateReview updates a review's status, content, rating or verified flag
// and re-triggers the rating recomputation
func (s *ReviewService) UpdateReview(ctx context.Context, id primitive.ObjectID, req *model.CreateReviewRequest) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Rating < 0 || req.Rating > 5 {
		return nil, errs.NewValidation("rating must be between 0 and 5")
	}
	if req.Status != "" {
		if !validReviewStatus(req.Status) {
			return nil, errs.NewValidation("invalid review status %q", req.Status)
		}
		review.Status = req.Status
	}
	if req.Review != "" {
		review.Review = req.Review
	}
	if req.ReviewerEmail != "" {
		review.ReviewerEmail = normalizeEmail(req.ReviewerEmail)
	}
	review.Rating = req.Rating
	review.Verified = req.Verified

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Type: event.ReviewSaved, ProductID: review.ProductID})
	return review, nil
}

// DeleteReview removes a review and re-triggers the rating recomputation
// for the product it referenced
func (s *ReviewService) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(event.Event{Type: event.ReviewRemoved, ProductID: review.ProductID})
	return nil
}

func validReviewStatus(status string) bool {
	for _, s := range model.ReviewStatuses {
		if s == status {
			return true
		}
	}
	return false
}
