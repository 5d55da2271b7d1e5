package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/event"
	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
)

// AggregateService maintains the derived summary fields: per-category and
// per-tag product counts, and per-product rating rollups. It subscribes to
// the domain-event bus; recomputation failures are logged and swallowed so
// they never affect the write that triggered them.
type AggregateService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	reviewRepo   repository.ReviewRepository
	log          *zap.Logger
}

// NewAggregateService creates a new aggregate maintenance service
func NewAggregateService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	reviewRepo repository.ReviewRepository,
	log *zap.Logger,
) *AggregateService {
	return &AggregateService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		reviewRepo:   reviewRepo,
		log:          log,
	}
}

// HandleEvent dispatches a domain event to the matching recomputation
func (s *AggregateService) HandleEvent(ctx context.Context, ev event.Event) error {
	switch ev.Type {
	case event.ProductSaved, event.ProductRemoved:
		if err := s.RecomputeCategoryCounts(ctx); err != nil {
			return err
		}
		return s.RecomputeTagCounts(ctx)
	case event.ReviewSaved, event.ReviewRemoved:
		return s.RecomputeProductRatings(ctx, ev.ProductID)
	default:
		return nil
	}
}

// RecomputeCategoryCounts recomputes every category's product count from
// scratch: group the whole product collection by category, reset all counts
// to zero, then write the computed values. Categories with no products are
// left at zero by the reset.
func (s *AggregateService) RecomputeCategoryCounts(ctx context.Context) error {
	counts, err := s.productRepo.CountsByCategory(ctx)
	if err != nil {
		return fmt.Errorf("group products by category: %w", err)
	}

	if err := s.categoryRepo.ResetCounts(ctx); err != nil {
		return fmt.Errorf("reset category counts: %w", err)
	}

	for id, count := range counts {
		if err := s.categoryRepo.SetCount(ctx, id, count); err != nil {
			return fmt.Errorf("set count for category %s: %w", id.Hex(), err)
		}
	}

	return nil
}

// RecomputeTagCounts recomputes every tag's product count with the same
// full-rescan algorithm as the category counts
func (s *AggregateService) RecomputeTagCounts(ctx context.Context) error {
	counts, err := s.productRepo.CountsByTag(ctx)
	if err != nil {
		return fmt.Errorf("group products by tag: %w", err)
	}

	if err := s.tagRepo.ResetCounts(ctx); err != nil {
		return fmt.Errorf("reset tag counts: %w", err)
	}

	for id, count := range counts {
		if err := s.tagRepo.SetCount(ctx, id, count); err != nil {
			return fmt.Errorf("set count for tag %s: %w", id.Hex(), err)
		}
	}

	return nil
}

// RecomputeProductRatings recomputes the four rating fields of one product
// from its reviews. Only approved reviews count; the verified pair covers
// the approved reviews that are also verified purchases.
func (s *AggregateService) RecomputeProductRatings(ctx context.Context, productID primitive.ObjectID) error {
	approved, found, err := s.reviewRepo.ApprovedStats(ctx, productID)
	if err != nil {
		return fmt.Errorf("aggregate approved reviews: %w", err)
	}

	if !found {
		return s.productRepo.SetRatingFields(ctx, productID, model.ZeroRatingSummary())
	}

	summary := model.RatingSummary{
		AverageRating:         formatRating(approved.AverageRating),
		RatingCount:           approved.RatingCount,
		VerifiedAverageRating: "0.00",
		VerifiedRatingCount:   0,
	}

	verified, found, err := s.reviewRepo.VerifiedApprovedStats(ctx, productID)
	if err != nil {
		return fmt.Errorf("aggregate verified reviews: %w", err)
	}
	if found {
		summary.VerifiedAverageRating = formatRating(verified.AverageRating)
		summary.VerifiedRatingCount = verified.RatingCount
	}

	return s.productRepo.SetRatingFields(ctx, productID, summary)
}

func formatRating(avg float64) string {
	return fmt.Sprintf("%.2f", avg)
}
