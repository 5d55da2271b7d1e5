package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review statuses. Only approved reviews contribute to rating aggregates.
const (
	ReviewStatusApproved = "approved"
	ReviewStatusHold     = "hold"
	ReviewStatusSpam     = "spam"
	ReviewStatusUnspam   = "unspam"
	ReviewStatusTrash    = "trash"
	ReviewStatusUntrash  = "untrash"
)

// ReviewStatuses lists the accepted status values
var ReviewStatuses = []string{
	ReviewStatusApproved,
	ReviewStatusHold,
	ReviewStatusSpam,
	ReviewStatusUnspam,
	ReviewStatusTrash,
	ReviewStatusUntrash,
}

// Review is a customer review tied to exactly one product
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID     primitive.ObjectID `bson:"product_id" json:"product_id"`
	Status        string             `bson:"status" json:"status"`
	Reviewer      primitive.ObjectID `bson:"reviewer" json:"reviewer"`
	ReviewerEmail string             `bson:"reviewer_email" json:"reviewer_email"`
	Review        string             `bson:"review" json:"review"`
	Rating        float64            `bson:"rating" json:"rating"`
	Verified      bool               `bson:"verified" json:"verified"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateReviewRequest is the payload accepted by POST /reviews
type CreateReviewRequest struct {
	ProductID     string  `json:"product_id"`
	Status        string  `json:"status"`
	Reviewer      string  `json:"reviewer"`
	ReviewerEmail string  `json:"reviewer_email"`
	Review        string  `json:"review"`
	Rating        float64 `json:"rating"`
	Verified      bool    `json:"verified"`
}
