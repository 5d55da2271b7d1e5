package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category display modes
const (
	DisplayDefault       = "default"
	DisplayProducts      = "products"
	DisplaySubcategories = "subcategories"
	DisplayBoth          = "both"
)

// Category is a product category. Count is the number of products currently
// referencing it, recomputed from the product collection on every product
// write.
type Category struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string              `bson:"name" json:"name"`
	Slug        string              `bson:"slug" json:"slug"`
	Parent      *primitive.ObjectID `bson:"parent,omitempty" json:"parent,omitempty"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Display     string              `bson:"display" json:"display"`
	Image       *Image              `bson:"image,omitempty" json:"image,omitempty"`
	MenuOrder   int                 `bson:"menu_order" json:"menu_order"`
	Count       int                 `bson:"count" json:"count"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

// CategorySummary is the projection used when populating coupon references
type CategorySummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Image *Image             `bson:"image,omitempty" json:"image,omitempty"`
}

// Tag is a product tag with the same derived count semantics as Category
type Tag struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Count       int                `bson:"count" json:"count"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
