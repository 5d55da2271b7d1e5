package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discount types accepted on a coupon
const (
	DiscountPercent      = "percent"
	DiscountFixedAt      = "fixed_at"
	DiscountFixedCart    = "fixed_cart"
	DiscountFixedProduct = "fixed_product"
)

// Coupon represents an admin-managed discount coupon. The reference lists
// point at products and categories by ID; included_emails denotes eligible
// customers by email address.
type Coupon struct {
	ID                        primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Code                      string               `bson:"code" json:"code"`
	Amount                    float64              `bson:"amount,omitempty" json:"amount,omitempty"`
	DiscountType              string               `bson:"discount_type" json:"discount_type"`
	Description               string               `bson:"description,omitempty" json:"description,omitempty"`
	DateExpires               *time.Time           `bson:"date_expires,omitempty" json:"date_expires,omitempty"`
	UsageCount                int                  `bson:"usage_count" json:"usage_count"`
	IndividualUse             bool                 `bson:"individual_use" json:"individual_use"`
	IncludedProducts          []primitive.ObjectID `bson:"included_products" json:"included_products"`
	ExcludedProducts          []primitive.ObjectID `bson:"excluded_products" json:"excluded_products"`
	UsageLimit                int                  `bson:"usage_limit,omitempty" json:"usage_limit,omitempty"`
	UsageLimitPerUser         int                  `bson:"usage_limit_per_user,omitempty" json:"usage_limit_per_user,omitempty"`
	LimitUsageToXItems        int                  `bson:"limit_usage_to_x_items,omitempty" json:"limit_usage_to_x_items,omitempty"`
	FreeShipping              bool                 `bson:"free_shipping" json:"free_shipping"`
	IncludedProductCategories []primitive.ObjectID `bson:"included_product_categories" json:"included_product_categories"`
	ExcludedProductCategories []primitive.ObjectID `bson:"excluded_product_categories" json:"excluded_product_categories"`
	ExcludeSaleItems          bool                 `bson:"exclude_sale_items" json:"exclude_sale_items"`
	MinimumAmount             float64              `bson:"minimum_amount,omitempty" json:"minimum_amount,omitempty"`
	MaximumAmount             float64              `bson:"maximum_amount,omitempty" json:"maximum_amount,omitempty"`
	IncludedEmails            []string             `bson:"included_emails" json:"included_emails"`
	UsedBy                    []primitive.ObjectID `bson:"used_by" json:"used_by"`
	MetaData                  []Metadata           `bson:"meta_data,omitempty" json:"meta_data,omitempty"`
	IsDeleted                 bool                 `bson:"is_deleted" json:"is_deleted"`
	CreatedAt                 time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt                 time.Time            `bson:"updated_at" json:"updated_at"`
}

// CreateCouponRequest is the payload accepted by POST /coupons
type CreateCouponRequest struct {
	Code                      string     `json:"code"`
	Amount                    float64    `json:"amount"`
	DiscountType              string     `json:"discount_type"`
	Description               string     `json:"description"`
	DateExpires               *time.Time `json:"date_expires"`
	UsageCount                int        `json:"usage_count"`
	IndividualUse             bool       `json:"individual_use"`
	IncludedProducts          []string   `json:"included_products"`
	ExcludedProducts          []string   `json:"excluded_products"`
	UsageLimit                int        `json:"usage_limit"`
	UsageLimitPerUser         int        `json:"usage_limit_per_user"`
	LimitUsageToXItems        int        `json:"limit_usage_to_x_items"`
	FreeShipping              bool       `json:"free_shipping"`
	IncludedProductCategories []string   `json:"included_product_categories"`
	ExcludedProductCategories []string   `json:"excluded_product_categories"`
	ExcludeSaleItems          bool       `json:"exclude_sale_items"`
	MinimumAmount             float64    `json:"minimum_amount"`
	MaximumAmount             float64    `json:"maximum_amount"`
	IncludedEmails            []string   `json:"included_emails"`
	MetaData                  []Metadata `json:"meta_data"`
}

// CouponListQuery carries the supported filters for GET /coupons
type CouponListQuery struct {
	Page           int
	PerPage        int
	Offset         int
	Search         string
	Code           string
	After          *time.Time
	Before         *time.Time
	ModifiedAfter  *time.Time
	ModifiedBefore *time.Time
	Include        []primitive.ObjectID
	Exclude        []primitive.ObjectID
	OrderBy        string
	Order          string
}

// PopulatedCoupon is a coupon with its reference lists resolved into
// lightweight summaries for detail responses
type PopulatedCoupon struct {
	Coupon                 `bson:",inline"`
	IncludedProductsInfo   []ProductSummary  `bson:"included_products_info" json:"included_products_info"`
	ExcludedProductsInfo   []ProductSummary  `bson:"excluded_products_info" json:"excluded_products_info"`
	IncludedCategoriesInfo []CategorySummary `bson:"included_categories_info" json:"included_categories_info"`
	ExcludedCategoriesInfo []CategorySummary `bson:"excluded_categories_info" json:"excluded_categories_info"`
	IncludedCustomers      []CustomerSummary `bson:"included_customers" json:"included_customers"`
}
