package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer account statuses
const (
	CustomerStatusActive    = "active"
	CustomerStatusSuspended = "suspended"
)

// Customer is a storefront customer account. Coupons reference customers by
// email through included_emails.
type Customer struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName        string             `bson:"first_name" json:"first_name"`
	LastName         string             `bson:"last_name" json:"last_name"`
	DisplayName      string             `bson:"display_name" json:"display_name"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Username         string             `bson:"username" json:"username"`
	Billing          *Address           `bson:"billing,omitempty" json:"billing,omitempty"`
	Shipping         *Address           `bson:"shipping,omitempty" json:"shipping,omitempty"`
	AvatarURL        string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Gender           string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Status           string             `bson:"status" json:"status"`
	IsPayingCustomer bool               `bson:"is_paying_customer" json:"is_paying_customer"`
	MetaData         []Metadata         `bson:"meta_data,omitempty" json:"meta_data,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// CustomerSummary is the projection used when populating coupon references
type CustomerSummary struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	DisplayName string             `bson:"display_name" json:"display_name"`
	Email       string             `bson:"email" json:"email"`
}
