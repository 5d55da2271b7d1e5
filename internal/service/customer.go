package service

import (
	"context"
	"net/mail"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// CustomerService handles business logic for customers
type CustomerService struct {
	customerRepo repository.CustomerRepository
	log          *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, log *zap.Logger) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, log: log}
}

// CreateCustomer persists a new customer account
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if customer.FirstName == "" {
		return nil, errs.NewValidation("first name is required")
	}
	if customer.LastName == "" {
		return nil, errs.NewValidation("last name is required")
	}
	if customer.Username == "" {
		return nil, errs.NewValidation("username is required")
	}
	if err := validateEmail(customer.Email); err != nil {
		return nil, err
	}
	if customer.DisplayName == "" {
		customer.DisplayName = strings.TrimSpace(customer.FirstName + " " + customer.LastName)
	}

	if err := s.customerRepo.Insert(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// ListCustomers retrieves customers matching the query
func (s *CustomerService) ListCustomers(ctx context.Context, q repository.ListQuery) ([]*model.Customer, int64, error) {
	return s.customerRepo.List(ctx, q)
}

// UpdateCustomer updates a customer's fields
func (s *CustomerService) UpdateCustomer(ctx context.Context, id primitive.ObjectID, customer *model.Customer) (*model.Customer, error) {
	existing, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateEmail(customer.Email); err != nil {
		return nil, err
	}

	customer.ID = existing.ID
	customer.CreatedAt = existing.CreatedAt
	if customer.Username == "" {
		customer.Username = existing.Username
	}
	if customer.Status == "" {
		customer.Status = existing.Status
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer permanently removes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id primitive.ObjectID) error {
	return s.customerRepo.Delete(ctx, id)
}

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValidation("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValidation("invalid email address %q", email)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
