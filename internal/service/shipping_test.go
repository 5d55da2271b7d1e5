package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/model"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	errs "github.com/stanleyHayes/stayup-api/pkg/errors"
)

type fakeShippingClassRepo struct {
	classes []*model.ShippingClass
}

func (f *fakeShippingClassRepo) Insert(ctx context.Context, class *model.ShippingClass) error {
	class.ID = primitive.NewObjectID()
	f.classes = append(f.classes, class)
	return nil
}

func (f *fakeShippingClassRepo) InsertMany(ctx context.Context, classes []*model.ShippingClass) error {
	for _, c := range classes {
		c.ID = primitive.NewObjectID()
	}
	f.classes = append(f.classes, classes...)
	return nil
}

func (f *fakeShippingClassRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingClass, error) {
	for _, c := range f.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeShippingClassRepo) List(ctx context.Context, q repository.ListQuery) ([]*model.ShippingClass, int64, error) {
	return f.classes, int64(len(f.classes)), nil
}

func (f *fakeShippingClassRepo) Update(ctx context.Context, class *model.ShippingClass) error {
	return nil
}

func (f *fakeShippingClassRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingClass, error) {
	c, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.IsDeleted = true
	return c, nil
}

type fakeShippingMethodRepo struct {
	methods []*model.ShippingMethod
}

func (f *fakeShippingMethodRepo) Insert(ctx context.Context, method *model.ShippingMethod) error {
	method.ID = primitive.NewObjectID()
	f.methods = append(f.methods, method)
	return nil
}

func (f *fakeShippingMethodRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingMethod, error) {
	for _, m := range f.methods {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeShippingMethodRepo) List(ctx context.Context, q repository.ListQuery) ([]*model.ShippingMethod, int64, error) {
	return f.methods, int64(len(f.methods)), nil
}

func (f *fakeShippingMethodRepo) Update(ctx context.Context, method *model.ShippingMethod) error {
	return nil
}

func (f *fakeShippingMethodRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingMethod, error) {
	m, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.IsDeleted = true
	return m, nil
}

type fakeShippingZoneRepo struct {
	zones []*model.ShippingZone
}

func (f *fakeShippingZoneRepo) Insert(ctx context.Context, zone *model.ShippingZone) error {
	zone.ID = primitive.NewObjectID()
	f.zones = append(f.zones, zone)
	return nil
}

func (f *fakeShippingZoneRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingZone, error) {
	for _, z := range f.zones {
		if z.ID == id {
			return z, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeShippingZoneRepo) List(ctx context.Context, q repository.ListQuery) ([]*model.ShippingZone, int64, error) {
	return f.zones, int64(len(f.zones)), nil
}

func (f *fakeShippingZoneRepo) Update(ctx context.Context, zone *model.ShippingZone) error {
	return nil
}

func (f *fakeShippingZoneRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingZone, error) {
	z, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	z.IsDeleted = true
	return z, nil
}

type fakeZoneLocationRepo struct {
	locations []*model.ShippingZoneLocation
}

func (f *fakeZoneLocationRepo) Insert(ctx context.Context, location *model.ShippingZoneLocation) error {
	location.ID = primitive.NewObjectID()
	f.locations = append(f.locations, location)
	return nil
}

func (f *fakeZoneLocationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShippingZoneLocation, error) {
	for _, l := range f.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeZoneLocationRepo) ListByZone(ctx context.Context, zoneID primitive.ObjectID, q repository.ListQuery) ([]*model.ShippingZoneLocation, int64, error) {
	var out []*model.ShippingZoneLocation
	for _, l := range f.locations {
		if l.ShippingZone == zoneID {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeZoneLocationRepo) Update(ctx context.Context, location *model.ShippingZoneLocation) error {
	return nil
}

func (f *fakeZoneLocationRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (*model.ShippingZoneLocation, error) {
	l, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.IsDeleted = true
	return l, nil
}

func newShippingTestService() (*ShippingService, *fakeShippingClassRepo, *fakeShippingMethodRepo, *fakeShippingZoneRepo, *fakeZoneLocationRepo) {
	classes := &fakeShippingClassRepo{}
	methods := &fakeShippingMethodRepo{}
	zones := &fakeShippingZoneRepo{}
	locations := &fakeZoneLocationRepo{}
	svc := NewShippingService(classes, methods, zones, locations, zap.NewNop())
	return svc, classes, methods, zones, locations
}

func TestCreateShippingClassSlugifiesName(t *testing.T) {
	svc, _, _, _, _ := newShippingTestService()

	class, err := svc.CreateShippingClass(context.Background(), &model.ShippingClass{Name: "Heavy Goods"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if class.Name != "heavy-goods" {
		t.Errorf("got name %q, want heavy-goods", class.Name)
	}
}

func TestCreateShippingClassesSkipsInvalidEntries(t *testing.T) {
	svc, classes, _, _, _ := newShippingTestService()

	created, invalid, err := svc.CreateShippingClasses(context.Background(), []*model.ShippingClass{
		{Name: "Heavy Goods"},
		{Name: "   "},
		{Name: "Fragile"},
	})
	if err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}

	if len(created) != 2 {
		t.Errorf("expected 2 created, got %d", len(created))
	}
	if len(invalid) != 1 {
		t.Errorf("expected 1 invalid entry reported back, got %d", len(invalid))
	}
	if len(classes.classes) != 2 {
		t.Errorf("expected 2 persisted, got %d", len(classes.classes))
	}
}

func TestCreateShippingClassesAllInvalid(t *testing.T) {
	svc, _, _, _, _ := newShippingTestService()

	_, _, err := svc.CreateShippingClasses(context.Background(), []*model.ShippingClass{{Name: ""}})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateShippingZoneChecksMethodReference(t *testing.T) {
	svc, _, _, _, _ := newShippingTestService()

	_, err := svc.CreateShippingZone(context.Background(), &model.ShippingZone{
		Title:          "West Region",
		ShippingMethod: primitive.NewObjectID(),
	})

	var refErr *errs.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Field != "shipping_method" {
		t.Errorf("wrong field: %q", refErr.Field)
	}
}

func TestCreateZoneLocationValidatesTypeAndZone(t *testing.T) {
	svc, _, methods, _, _ := newShippingTestService()

	method := &model.ShippingMethod{Title: "Courier", Description: "door to door"}
	if err := methods.Insert(context.Background(), method); err != nil {
		t.Fatal(err)
	}
	zone, err := svc.CreateShippingZone(context.Background(), &model.ShippingZone{
		Title:          "West Region",
		ShippingMethod: method.ID,
	})
	if err != nil {
		t.Fatalf("zone create failed: %v", err)
	}

	_, err = svc.CreateZoneLocation(context.Background(), &model.ShippingZoneLocation{
		Code:         "GA",
		Type:         "planet",
		ShippingZone: zone.ID,
	})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error for bad type, got %v", err)
	}

	location, err := svc.CreateZoneLocation(context.Background(), &model.ShippingZoneLocation{
		Code:         "GA",
		ShippingZone: zone.ID,
	})
	if err != nil {
		t.Fatalf("location create failed: %v", err)
	}
	if location.Type != "state" {
		t.Errorf("type should default to state, got %q", location.Type)
	}
}
