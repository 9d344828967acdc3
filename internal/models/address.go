package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a freestanding shipping address capture. It is not linked to a
// User.
type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompleteName string             `bson:"completeName" json:"completeName"`
	Street       string             `bson:"street" json:"street"`
	City         string             `bson:"city" json:"city"`
	Province     string             `bson:"province" json:"province"`
	ZipCode      string             `bson:"zipCode" json:"zipCode"`
	Country      string             `bson:"country" json:"country"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	Email        string             `bson:"email" json:"email"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
