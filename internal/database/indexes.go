package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	UsersCollection     = "users"
	ProductsCollection  = "zeestoreproducts"
	AddressesCollection = "addresses"
)

// EnsureUserIndexes creates the unique email index that backs signup's
// duplicate detection.
func EnsureUserIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	indexes := db.Collection(UsersCollection).Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Info("creating index", zap.String("collection", UsersCollection), zap.String("index", "email_unique"))
	if _, err := indexes.CreateOne(ctx, emailIndex); err != nil {
		log.Error("index creation failed", zap.String("index", "email_unique"), zap.Error(err))
		return err
	}
	log.Info("index ready", zap.String("index", "email_unique"))
	return nil
}
