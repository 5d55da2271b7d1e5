package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

// ShippingService handles business logic for shipping classes, methods,
// zones and zone locations
type ShippingService struct {
	classRepo    repository.ShippingClassRepository
	methodRepo   repository.ShippingMethodRepository
	zoneRepo     repository.ShippingZoneRepository
	locationRepo repository.ZoneLocationRepository
	log          *zap.Logger
}

// NewShippingService creates a new shipping service
func NewShippingService(
	classRepo repository.ShippingClassRepository,
	methodRepo repository.ShippingMethodRepository,
	zoneRepo repository.ShippingZoneRepository,
	locationRepo repository.ZoneLocationRepository,
	log *zap.Logger,
) *ShippingService {
	return &ShippingService{
		classRepo:    classRepo,
		methodRepo:   methodRepo,
		zoneRepo:     zoneRepo,
		locationRepo: locationRepo,
		log:          log,
	}
}

// CreateShippingClass persists a new shipping class. Names are slugified
// on save.
func (s *ShippingService) CreateShippingClass(ctx context.Context, class *model.ShippingClass) (*model.ShippingClass, error) {
	if strings.TrimSpace(class.Name) == "" {
		return nil, errs.NewValidation("name is required")
	}
	class.Name = Slugify(class.Name)

	if err := s.classRepo.Insert(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// CreateShippingClasses bulk-creates shipping classes, skipping entries
// without a name and reporting them back to the caller
func (s *ShippingService) CreateShippingClasses(ctx context.Context, classes []*model.ShippingClass) (created []*model.ShippingClass, invalid []*model.ShippingClass, err error) {
	if len(classes) == 0 {
		return nil, nil, errs.NewValidation("classes must be a non-empty array")
	}

	for _, class := range classes {
		if strings.TrimSpace(class.Name) == "" {
			invalid = append(invalid, class)
			continue
		}
		class.Name = Slugify(class.Name)
		created = append(created, class)
	}
	if len(created) == 0 {
		return nil, invalid, errs.NewValidation("no valid shipping classes found in the request")
	}

	if err := s.classRepo.InsertMany(ctx, created); err != nil {
		return nil, invalid, err
	}
	return created, invalid, nil
}

// GetShippingClass retrieves a shipping class by ID
func (s *ShippingService) GetShippingClass(ctx context.Context, id primitive.ObjectID) (*model.ShippingClass, error) {
	return s.classRepo.FindByID(ctx, id)
}

// ListShippingClasses retrieves shipping classes matching the query
func (s *ShippingService) ListShippingClasses(ctx context.Context, q repository.ListQuery) ([]*model.ShippingClass, int64, error) {
	return s.classRepo.List(ctx, q)
}

// UpdateShippingClass renames a shipping class
func (s *ShippingService) UpdateShippingClass(ctx context.Context, id primitive.ObjectID, name string) (*model.ShippingClass, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidation("name is required")
	}

	class, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	class.Name = Slugify(name)

	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// DeleteShippingClass soft-deletes a shipping class
func (s *ShippingService) DeleteShippingClass(ctx context.Context, id primitive.ObjectID) (*model.ShippingClass, error) {
	return s.classRepo.SoftDelete(ctx, id)
}

// CreateShippingMethod persists a new shipping method
func (s *ShippingService) CreateShippingMethod(ctx context.Context, method *model.ShippingMethod) (*model.ShippingMethod, error) {
	if strings.TrimSpace(method.Title) == "" {
		return nil, errs.NewValidation("shipping method title is required")
	}
	if strings.TrimSpace(method.Description) == "" {
		return nil, errs.NewValidation("shipping method description is required")
	}

	if err := s.methodRepo.Insert(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// GetShippingMethod retrieves a shipping method by ID
func (s *ShippingService) GetShippingMethod(ctx context.Context, id primitive.ObjectID) (*model.ShippingMethod, error) {
	return s.methodRepo.FindByID(ctx, id)
}

// ListShippingMethods retrieves shipping methods matching the query
func (s *ShippingService) ListShippingMethods(ctx context.Context, q repository.ListQuery) ([]*model.ShippingMethod, int64, error) {
	return s.methodRepo.List(ctx, q)
}

// UpdateShippingMethod updates a shipping method's title and description
func (s *ShippingService) UpdateShippingMethod(ctx context.Context, id primitive.ObjectID, method *model.ShippingMethod) (*model.ShippingMethod, error) {
	existing, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(method.Title) != "" {
		existing.Title = method.Title
	}
	if strings.TrimSpace(method.Description) != "" {
		existing.Description = method.Description
	}

	if err := s.methodRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteShippingMethod soft-deletes a shipping method
func (s *ShippingService) DeleteShippingMethod(ctx context.Context, id primitive.ObjectID) (*model.ShippingMethod, error) {
	return s.methodRepo.SoftDelete(ctx, id)
}

// CreateShippingZone persists a new shipping zone after checking its
// method reference
func (s *ShippingService) CreateShippingZone(ctx context.Context, zone *model.ShippingZone) (*model.ShippingZone, error) {
	if strings.TrimSpace(zone.Title) == "" {
		return nil, errs.NewValidation("title is required")
	}
	if zone.ShippingMethod.IsZero() {
		return nil, errs.NewValidation("shipping method is required")
	}
	if _, err := s.methodRepo.FindByID(ctx, zone.ShippingMethod); err != nil {
		if err == errs.ErrNotFound {
			return nil, &errs.ReferenceError{Field: "shipping_method", Kind: errs.KindIDs}
		}
		return nil, err
	}

	if err := s.zoneRepo.Insert(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

// GetShippingZone retrieves a shipping zone by ID
func (s *ShippingService) GetShippingZone(ctx context.Context, id primitive.ObjectID) (*model.ShippingZone, error) {
	return s.zoneRepo.FindByID(ctx, id)
}

// ListShippingZones retrieves shipping zones matching the query
func (s *ShippingService) ListShippingZones(ctx context.Context, q repository.ListQuery) ([]*model.ShippingZone, int64, error) {
	return s.zoneRepo.List(ctx, q)
}

// UpdateShippingZone updates a shipping zone
func (s *ShippingService) UpdateShippingZone(ctx context.Context, id primitive.ObjectID, zone *model.ShippingZone) (*model.ShippingZone, error) {
	existing, err := s.zoneRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(zone.Title) != "" {
		existing.Title = zone.Title
	}
	if !zone.ShippingMethod.IsZero() {
		if _, err := s.methodRepo.FindByID(ctx, zone.ShippingMethod); err != nil {
			if err == errs.ErrNotFound {
				return nil, &errs.ReferenceError{Field: "shipping_method", Kind: errs.KindIDs}
			}
			return nil, err
		}
		existing.ShippingMethod = zone.ShippingMethod
	}
	existing.Enabled = zone.Enabled

	if err := s.zoneRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteShippingZone soft-deletes a shipping zone
func (s *ShippingService) DeleteShippingZone(ctx context.Context, id primitive.ObjectID) (*model.ShippingZone, error) {
	return s.zoneRepo.SoftDelete(ctx, id)
}

// CreateZoneLocation persists a new zone location after checking its zone
// reference and location type
func (s *ShippingService) CreateZoneLocation(ctx context.Context, location *model.ShippingZoneLocation) (*model.ShippingZoneLocation, error) {
	if strings.TrimSpace(location.Code) == "" {
		return nil, errs.NewValidation("code is required")
	}
	if location.Type == "" {
		location.Type = "state"
	}
	if !validZoneLocationType(location.Type) {
		return nil, errs.NewValidation("invalid location type %q", location.Type)
	}
	if location.ShippingZone.IsZero() {
		return nil, errs.NewValidation("shipping zone is required")
	}
	if _, err := s.zoneRepo.FindByID(ctx, location.ShippingZone); err != nil {
		if err == errs.ErrNotFound {
			return nil, &errs.ReferenceError{Field: "shipping_zone", Kind: errs.KindIDs}
		}
		return nil, err
	}

	if err := s.locationRepo.Insert(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetZoneLocation retrieves a zone location by ID
func (s *ShippingService) GetZoneLocation(ctx context.Context, id primitive.ObjectID) (*model.ShippingZoneLocation, error) {
	return s.locationRepo.FindByID(ctx, id)
}

// ListZoneLocations retrieves the locations of one shipping zone
func (s *ShippingService) ListZoneLocations(ctx context.Context, zoneID primitive.ObjectID, q repository.ListQuery) ([]*model.ShippingZoneLocation, int64, error) {
	return s.locationRepo.ListByZone(ctx, zoneID, q)
}

// UpdateZoneLocation updates a zone location
func (s *ShippingService) UpdateZoneLocation(ctx context.Context, id primitive.ObjectID, location *model.ShippingZoneLocation) (*model.ShippingZoneLocation, error) {
	existing, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(location.Code) != "" {
		existing.Code = location.Code
	}
	if location.Type != "" {
		if !validZoneLocationType(location.Type) {
			return nil, errs.NewValidation("invalid location type %q", location.Type)
		}
		existing.Type = location.Type
	}

	if err := s.locationRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteZoneLocation soft-deletes a zone location
func (s *ShippingService) DeleteZoneLocation(ctx context.Context, id primitive.ObjectID) (*model.ShippingZoneLocation, error) {
	return s.locationRepo.SoftDelete(ctx, id)
}

func validZoneLocationType(t string) bool {
	for _, allowed := range model.ZoneLocationTypes {
		if allowed == t {
			return true
		}
	}
	return false
}
