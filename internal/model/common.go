package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Image is an embedded media document shared by products and categories
type Image struct {
	ID   primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
	Src  string             `bson:"src" json:"src"`
	Name string             `bson:"name,omitempty" json:"name,omitempty"`
	Alt  string             `bson:"alt,omitempty" json:"alt,omitempty"`
}

// Dimensions holds product dimensions as display strings
type Dimensions struct {
	Length string `bson:"length,omitempty" json:"length,omitempty"`
	Width  string `bson:"width,omitempty" json:"width,omitempty"`
	Height string `bson:"height,omitempty" json:"height,omitempty"`
}

// Metadata is an arbitrary key/value attachment
type Metadata struct {
	Key   string      `bson:"key" json:"key"`
	Value interface{} `bson:"value" json:"value"`
}

// Address is an embedded billing/shipping address
type Address struct {
	FirstName string `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Company   string `bson:"company,omitempty" json:"company,omitempty"`
	Address1  string `bson:"address_1,omitempty" json:"address_1,omitempty"`
	Address2  string `bson:"address_2,omitempty" json:"address_2,omitempty"`
	City      string `bson:"city,omitempty" json:"city,omitempty"`
	State     string `bson:"state,omitempty" json:"state,omitempty"`
	Postcode  string `bson:"postcode,omitempty" json:"postcode,omitempty"`
	Country   string `bson:"country,omitempty" json:"country,omitempty"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
}
