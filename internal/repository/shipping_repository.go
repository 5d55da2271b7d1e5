package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stanleyHayes/stayup-api/internal/model"
)

// ShippingClassRepository defines the interface for shipping class data
// operations. Deletes are soft (is_deleted flag).
type ShippingClassRepository interface {
	Insert(ctx context.Context, class *model.ShippingClass) error
	InsertMany(ctx context.Context, classes []*model.ShippingClass) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingClass, error)
	List(ctx context.Context, q ListQuery) ([]*model.ShippingClass, int64, error)
	Update(ctx context.Context, class *model.ShippingClass) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingClass, error)
}

// ShippingMethodRepository defines the interface for shipping method data
// operations
type ShippingMethodRepository interface {
	Insert(ctx context.Context, method *model.ShippingMethod) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingMethod, error)
	List(ctx context.Context, q ListQuery) ([]*model.ShippingMethod, int64, error)
	Update(ctx context.Context, method *model.ShippingMethod) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingMethod, error)
}

// ShippingZoneRepository defines the interface for shipping zone data
// operations
type ShippingZoneRepository interface {
	Insert(ctx context.Context, zone *model.ShippingZone) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingZone, error)
	List(ctx context.Context, q ListQuery) ([]*model.ShippingZone, int64, error)
	Update(ctx context.Context, zone *model.ShippingZone) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingZone, error)
}

// ZoneLocationRepository defines the interface for shipping zone location
// data operations
type ZoneLocationRepository interface {
	Insert(ctx context.Context, location *model.ShippingZoneLocation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingZoneLocation, error)
	ListByZone(ctx context.Context, zoneID primitive.ObjectID, q ListQuery) ([]*model.ShippingZoneLocation, int64, error)
	Update(ctx context.Context, location *model.ShippingZoneLocation) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingZoneLocation, error)
}

// TaxClassRepository defines the interface for tax class data operations
type TaxClassRepository interface {
	Insert(ctx context.Context, class *model.TaxClass) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.TaxClass, error)
	List(ctx context.Context, q ListQuery) ([]*model.TaxClass, int64, error)
	Update(ctx context.Context, class *model.TaxClass) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TaxRateRepository defines the interface for tax rate data operations
type TaxRateRepository interface {
	Insert(ctx context.Context, rate *model.TaxRate) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.TaxRate, error)
	List(ctx context.Context, q ListQuery) ([]*model.TaxRate, int64, error)
	Update(ctx context.Context, rate *model.TaxRate) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.TaxRate, error)
}
