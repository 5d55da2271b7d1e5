package service

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// rates are decimal strings with at most four places
var taxRatePattern = regexp.MustCompile(`^\d+(\.\d{1,4})?$`)

// TaxService handles business logic for tax classes and tax rates
type TaxService struct {
	classRepo repository.TaxClassRepository
	rateRepo  repository.TaxRateRepository
	log       *zap.Logger
}

// NewTaxService creates a new tax service
func NewTaxService(classRepo repository.TaxClassRepository, rateRepo repository.TaxRateRepository, log *zap.Logger) *TaxService {
	return &TaxService{classRepo: classRepo, rateRepo: rateRepo, log: log}
}

// CreateTaxClass persists a new tax class
func (s *TaxService) CreateTaxClass(ctx context.Context, class *model.TaxClass) (*model.TaxClass, error) {
	if strings.TrimSpace(class.Name) == "" {
		return nil, errs.NewValidation("name is required")
	}
	if strings.TrimSpace(class.Slug) == "" {
		return nil, errs.NewValidation("slug is required")
	}

	if err := s.classRepo.Insert(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// GetTaxClass retrieves a tax class by ID
func (s *TaxService) GetTaxClass(ctx context.Context, id primitive.ObjectID) (*model.TaxClass, error) {
	return s.classRepo.FindByID(ctx, id)
}

// ListTaxClasses retrieves tax classes matching the query
func (s *TaxService) ListTaxClasses(ctx context.Context, q repository.ListQuery) ([]*model.TaxClass, int64, error) {
	return s.classRepo.List(ctx, q)
}

// UpdateTaxClass updates a tax class's name and slug
func (s *TaxService) UpdateTaxClass(ctx context.Context, id primitive.ObjectID, class *model.TaxClass) (*model.TaxClass, error) {
	existing, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(class.Name) != "" {
		existing.Name = class.Name
	}
	if strings.TrimSpace(class.Slug) != "" {
		existing.Slug = class.Slug
	}

	if err := s.classRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteTaxClass permanently removes a tax class
func (s *TaxService) DeleteTaxClass(ctx context.Context, id primitive.ObjectID) error {
	return s.classRepo.Delete(ctx, id)
}

// CreateTaxRate persists a new tax rate. Country codes are required and
// stored uppercase; the repository fills priority, order and class
// defaults.
func (s *TaxService) CreateTaxRate(ctx context.Context, rate *model.TaxRate) (*model.TaxRate, error) {
	if err := validateTaxRate(rate); err != nil {
		return nil, err
	}

	if err := s.rateRepo.Insert(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// GetTaxRate retrieves a tax rate by ID
func (s *TaxService) GetTaxRate(ctx context.Context, id primitive.ObjectID) (*model.TaxRate, error) {
	return s.rateRepo.FindByID(ctx, id)
}

// ListTaxRates retrieves tax rates matching the query
func (s *TaxService) ListTaxRates(ctx context.Context, q repository.ListQuery) ([]*model.TaxRate, int64, error) {
	return s.rateRepo.List(ctx, q)
}

// UpdateTaxRate replaces a tax rate's writable fields
func (s *TaxService) UpdateTaxRate(ctx context.Context, id primitive.ObjectID, rate *model.TaxRate) (*model.TaxRate, error) {
	existing, err := s.rateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTaxRate(rate); err != nil {
		return nil, err
	}

	rate.ID = existing.ID
	rate.CreatedAt = existing.CreatedAt
	if rate.Priority == 0 {
		rate.Priority = existing.Priority
	}
	if rate.Order == 0 {
		rate.Order = existing.Order
	}
	if rate.Class == "" {
		rate.Class = existing.Class
	}

	if err := s.rateRepo.Update(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// DeleteTaxRate soft-deletes a tax rate
func (s *TaxService) DeleteTaxRate(ctx context.Context, id primitive.ObjectID) (*model.TaxRate, error) {
	return s.rateRepo.SoftDelete(ctx, id)
}

func validateTaxRate(rate *model.TaxRate) error {
	country := strings.TrimSpace(rate.Country)
	if country == "" {
		return errs.NewValidation("country is required")
	}
	if len(country) != 2 {
		return errs.NewValidation("country must be a two-letter code")
	}
	if rate.Rate != "" && !taxRatePattern.MatchString(rate.Rate) {
		return errs.NewValidation("rate must be a decimal with up to four places")
	}
	return nil
}
