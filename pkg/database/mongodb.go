package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the API
const (
	CollCoupons         = "coupons"
	CollProducts        = "products"
	CollCategories      = "categories"
	CollTags            = "tags"
	CollReviews         = "reviews"
	CollCustomers       = "customers"
	CollShippingClasses = "shipping_classes"
	CollShippingZones   = "shipping_zones"
	CollShippingMethods = "shipping_methods"
	CollZoneLocations   = "shipping_zone_locations"
	CollTaxClasses      = "tax_classes"
	CollTaxRates        = "tax_rates"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes a connection to MongoDB
func Connect(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	clientOptions := options.Client().ApplyURI(uri)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)

	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
	}

	if err := mongoDB.CreateIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mongoDB, nil
}

// CreateIndexes creates all necessary indexes for the application
func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	// Coupon codes are unique among non-deleted coupons only; the partial
	// filter lets a soft-deleted coupon free its code for reuse. This index
	// is the real guard against two concurrent creations of the same code.
	coupons := m.Database.Collection(CollCoupons)
	couponCodeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "code", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("coupon_code_unique").
			SetPartialFilterExpression(bson.D{{Key: "is_deleted", Value: false}}),
	}
	if _, err := coupons.Indexes().CreateOne(ctx, couponCodeIndex); err != nil {
		return fmt.Errorf("failed to create coupon code index: %w", err)
	}

	products := m.Database.Collection(CollProducts)
	productIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("product_slug_unique"),
		},
		{
			Keys:    bson.D{{Key: "sku", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("product_sku_unique"),
		},
	}
	if _, err := products.Indexes().CreateMany(ctx, productIndexes); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}

	for _, c := range []string{CollCategories, CollTags} {
		slugIndex := mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(c + "_slug_unique"),
		}
		if _, err := m.Database.Collection(c).Indexes().CreateOne(ctx, slugIndex); err != nil {
			return fmt.Errorf("failed to create %s slug index: %w", c, err)
		}
	}

	customers := m.Database.Collection(CollCustomers)
	customerIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("customer_email_unique"),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("customer_username_unique"),
		},
	}
	if _, err := customers.Indexes().CreateMany(ctx, customerIndexes); err != nil {
		return fmt.Errorf("failed to create customer indexes: %w", err)
	}

	reviews := m.Database.Collection(CollReviews)
	reviewProductIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}},
		Options: options.Index().SetName("review_product_id_index"),
	}
	if _, err := reviews.Indexes().CreateOne(ctx, reviewProductIndex); err != nil {
		return fmt.Errorf("failed to create review product_id index: %w", err)
	}

	return nil
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
