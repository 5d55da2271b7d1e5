package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShippingClass groups products under a named shipping treatment. The name
// is slugified on save.
type ShippingClass struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	IsDeleted bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ShippingMethod is a delivery option offered within zones
type ShippingMethod struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	IsDeleted   bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ShippingZone ties a shipping method to a named delivery region
type ShippingZone struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ShippingMethod primitive.ObjectID `bson:"shipping_method" json:"shipping_method"`
	Title          string             `bson:"title" json:"title"`
	Enabled        bool               `bson:"enabled" json:"enabled"`
	IsDeleted      bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// Location types accepted on a shipping zone location
var ZoneLocationTypes = []string{
	"postcode", "state", "country", "continent", "city",
	"district", "region", "area", "gps_zone", "hub", "custom",
}

// ShippingZoneLocation maps a location code (region, city, postcode) onto a
// shipping zone
type ShippingZoneLocation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Type         string             `bson:"type" json:"type"`
	Code         string             `bson:"code" json:"code"`
	ShippingZone primitive.ObjectID `bson:"shipping_zone" json:"shipping_zone"`
	IsDeleted    bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
