package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaxClass is a named tax grouping referenced by rate via its slug
type TaxClass struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// TaxRate is a location-scoped tax percentage. Rate is a decimal string
// with up to four places, e.g. "15.0000".
type TaxRate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Country   string             `bson:"country" json:"country"`
	State     string             `bson:"state,omitempty" json:"state,omitempty"`
	Postcodes []string           `bson:"postcodes" json:"postcodes"`
	Cities    []string           `bson:"cities" json:"cities"`
	Rate      string             `bson:"rate" json:"rate"`
	Name      string             `bson:"name" json:"name"`
	Priority  int                `bson:"priority" json:"priority"`
	Compound  bool               `bson:"compound" json:"compound"`
	Shipping  bool               `bson:"shipping" json:"shipping"`
	Order     int                `bson:"order" json:"order"`
	Class     string             `bson:"class" json:"class"`
	IsDeleted bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
