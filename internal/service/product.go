package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/event"
	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// Publisher is the write-side view of the event bus
type Publisher interface {
	Publish(ev event.Event)
}

// ProductService handles business logic for catalog products
type ProductService struct {
	productRepo repository.ProductRepository
	bus         Publisher
	log         *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, bus Publisher, log *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		bus:         bus,
		log:         log,
	}
}

// CreateProduct persists a new product and triggers the count aggregates.
// Derived fields arriving from the client are discarded.
func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.Name == "" {
		return nil, errs.NewValidation("name is required")
	}

	applyProductDefaults(product)

	if product.Slug == "" {
		slug, err := uniqueSlug(ctx, product.Name, s.productRepo.SlugExists)
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	}

	zero := model.ZeroRatingSummary()
	product.AverageRating = zero.AverageRating
	product.RatingCount = zero.RatingCount
	product.VerifiedAverageRating = zero.VerifiedAverageRating
	product.VerifiedRatingCount = zero.VerifiedRatingCount

	computeSaleState(product, time.Now())

	if err := s.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Type: event.ProductSaved, ProductID: product.ID})
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// ListProducts retrieves products matching the query
func (s *ProductService) ListProducts(ctx context.Context, q repository.ListQuery) ([]*model.Product, int64, error) {
	return s.productRepo.List(ctx, q)
}

// UpdateProduct replaces a product's client-writable fields, keeping the
// system-owned rating fields from the stored document
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, product *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Name == "" {
		return nil, errs.NewValidation("name is required")
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.AverageRating = existing.AverageRating
	product.RatingCount = existing.RatingCount
	product.VerifiedAverageRating = existing.VerifiedAverageRating
	product.VerifiedRatingCount = existing.VerifiedRatingCount

	if product.Slug == "" {
		product.Slug = existing.Slug
	}
	applyProductDefaults(product)
	computeSaleState(product, time.Now())

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Type: event.ProductSaved, ProductID: product.ID})
	return product, nil
}

// DeleteProduct permanently removes a product and triggers the count
// aggregates
func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(event.Event{Type: event.ProductRemoved, ProductID: id})
	return nil
}

func applyProductDefaults(p *model.Product) {
	if p.Type == "" {
		p.Type = model.ProductTypeSimple
	}
	if p.Status == "" {
		p.Status = model.ProductStatusPublish
	}
	if p.CatalogVisibility == "" {
		p.CatalogVisibility = "visible"
	}
	if p.TaxStatus == "" {
		p.TaxStatus = "taxable"
	}
	if p.StockStatus == "" {
		p.StockStatus = model.StockStatusInStock
	}
	if p.Backorders == "" {
		p.Backorders = "no"
	}
	if p.Categories == nil {
		p.Categories = []primitive.ObjectID{}
	}
	if p.Tags == nil {
		p.Tags = []primitive.ObjectID{}
	}
}

// computeSaleState derives on_sale from the sale price and window, and
// purchasable from stock management, mirroring the product save rules
func computeSaleState(p *model.Product, now time.Time) {
	switch {
	case p.SalePrice == "":
		p.OnSale = false
	case p.DateOnSaleFrom != nil && p.DateOnSaleTo != nil:
		p.OnSale = !now.Before(*p.DateOnSaleFrom) && !now.After(*p.DateOnSaleTo)
	case p.DateOnSaleFrom != nil:
		p.OnSale = !now.Before(*p.DateOnSaleFrom)
	default:
		p.OnSale = true
	}

	if p.ManageStock {
		p.Purchasable = p.StockQuantity > 0
	} else {
		p.Purchasable = true
	}
}
