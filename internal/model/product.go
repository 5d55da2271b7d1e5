package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product type and status enums
const (
	ProductTypeSimple   = "simple"
	ProductTypeGrouped  = "grouped"
	ProductTypeExternal = "external"
	ProductTypeVariable = "variable"

	ProductStatusDraft   = "draft"
	ProductStatusPending = "pending"
	ProductStatusPrivate = "private"
	ProductStatusPublish = "publish"

	StockStatusInStock     = "instock"
	StockStatusOutOfStock  = "outofstock"
	StockStatusOnBackorder = "onbackorder"
)

// Product is a catalog product. The four rating fields and the aggregate
// counters on categories/tags are system-owned: they are recomputed from
// the review and product collections and never accepted from clients.
type Product struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string               `bson:"name" json:"name"`
	Slug              string               `bson:"slug" json:"slug"`
	Permalink         string               `bson:"permalink,omitempty" json:"permalink,omitempty"`
	Type              string               `bson:"type" json:"type"`
	Status            string               `bson:"status" json:"status"`
	Featured          bool                 `bson:"featured" json:"featured"`
	CatalogVisibility string               `bson:"catalog_visibility" json:"catalog_visibility"`
	Description       string               `bson:"description,omitempty" json:"description,omitempty"`
	ShortDescription  string               `bson:"short_description,omitempty" json:"short_description,omitempty"`
	SKU               string               `bson:"sku,omitempty" json:"sku,omitempty"`
	RegularPrice      string               `bson:"regular_price,omitempty" json:"regular_price,omitempty"`
	SalePrice         string               `bson:"sale_price,omitempty" json:"sale_price,omitempty"`
	DateOnSaleFrom    *time.Time           `bson:"date_on_sale_from,omitempty" json:"date_on_sale_from,omitempty"`
	DateOnSaleTo      *time.Time           `bson:"date_on_sale_to,omitempty" json:"date_on_sale_to,omitempty"`
	Virtual           bool                 `bson:"virtual" json:"virtual"`
	ExternalURL       string               `bson:"external_url,omitempty" json:"external_url,omitempty"`
	ButtonText        string               `bson:"button_text,omitempty" json:"button_text,omitempty"`
	TaxStatus         string               `bson:"tax_status" json:"tax_status"`
	TaxClass          string               `bson:"tax_class,omitempty" json:"tax_class,omitempty"`
	ManageStock       bool                 `bson:"manage_stock" json:"manage_stock"`
	StockQuantity     int                  `bson:"stock_quantity" json:"stock_quantity"`
	StockStatus       string               `bson:"stock_status" json:"stock_status"`
	Backorders        string               `bson:"backorders" json:"backorders"`
	SoldIndividually  bool                 `bson:"sold_individually" json:"sold_individually"`
	Weight            float64              `bson:"weight,omitempty" json:"weight,omitempty"`
	Dimensions        *Dimensions          `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	ShippingRequired  bool                 `bson:"shipping_required" json:"shipping_required"`
	ShippingTaxable   bool                 `bson:"shipping_taxable" json:"shipping_taxable"`
	ShippingClassID   *primitive.ObjectID  `bson:"shipping_class_id,omitempty" json:"shipping_class_id,omitempty"`
	ReviewsAllowed    bool                 `bson:"reviews_allowed" json:"reviews_allowed"`
	Categories        []primitive.ObjectID `bson:"categories" json:"categories"`
	Tags              []primitive.ObjectID `bson:"tags" json:"tags"`
	Images            []Image              `bson:"images,omitempty" json:"images,omitempty"`
	UpsellIDs         []primitive.ObjectID `bson:"upsell_ids,omitempty" json:"upsell_ids,omitempty"`
	CrossSellIDs      []primitive.ObjectID `bson:"cross_sell_ids,omitempty" json:"cross_sell_ids,omitempty"`
	ParentID          *primitive.ObjectID  `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	PurchaseNote      string               `bson:"purchase_note,omitempty" json:"purchase_note,omitempty"`
	MetaData          []Metadata           `bson:"meta_data,omitempty" json:"meta_data,omitempty"`
	TotalSales        int                  `bson:"total_sales" json:"total_sales"`
	OnSale            bool                 `bson:"on_sale" json:"on_sale"`
	Purchasable       bool                 `bson:"purchasable" json:"purchasable"`

	AverageRating         string `bson:"average_rating" json:"average_rating"`
	RatingCount           int    `bson:"rating_count" json:"rating_count"`
	VerifiedAverageRating string `bson:"verified_average_rating" json:"verified_average_rating"`
	VerifiedRatingCount   int    `bson:"verified_rating_count" json:"verified_rating_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ProductSummary is the projection used when populating coupon references
type ProductSummary struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Images []Image            `bson:"images,omitempty" json:"images,omitempty"`
}

// RatingSummary holds the four recomputed rating fields written back onto a
// product after a review write
type RatingSummary struct {
	AverageRating         string
	RatingCount           int
	VerifiedAverageRating string
	VerifiedRatingCount   int
}

// ZeroRatingSummary is the reset state used when a product has no approved
// reviews
func ZeroRatingSummary() RatingSummary {
	return RatingSummary{
		AverageRating:         "0.00",
		RatingCount:           0,
		VerifiedAverageRating: "0.00",
		VerifiedRatingCount:   0,
	}
}
