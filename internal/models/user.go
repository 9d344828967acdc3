package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an account. Password holds the bcrypt digest and is never
// serialized to JSON.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	First    string             `bson:"first" json:"first"`
	Last     string             `bson:"last" json:"last"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	IsAdmin  bool               `bson:"isAdmin" json:"isAdmin"`
}

// Profile is the reshaped view returned by login and profile reads.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (u User) Profile() Profile {
	return Profile{
		Name:  u.First + " " + u.Last,
		Email: u.Email,
		Phone: u.Phone,
	}
}
