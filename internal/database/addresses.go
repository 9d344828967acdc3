package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zeetech/zeestore-backend/internal/models"
)

type AddressStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewAddressStore(db *mongo.Database) *AddressStore {
	return &AddressStore{collection: db.Collection(AddressesCollection), now: time.Now}
}

// Create inserts address, stamping CreatedAt when the caller left it zero.
func (s *AddressStore) Create(ctx context.Context, address *models.Address) error {
	if address.CreatedAt.IsZero() {
		address.CreatedAt = s.now().UTC()
	}

	res, err := s.collection.InsertOne(ctx, address)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		address.ID = id
	}
	return nil
}
