package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zeetech/zeestore-backend/internal/models"
)

var withoutPassword = bson.D{{Key: "password", Value: 0}}

type UserStore struct {
	collection *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{collection: db.Collection(UsersCollection)}
}

// Create inserts user and fills in its generated ID. A clash on the unique
// email index yields ErrDuplicateEmail.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	res, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// FindAdminByEmail only matches users flagged isAdmin.
func (s *UserStore) FindAdminByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email, "isAdmin": true})
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := s.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// UpdateProfile sets first and last on the user with the given email, and
// phone when it is non-nil. It returns the updated document without its
// password.
func (s *UserStore) UpdateProfile(ctx context.Context, email, first, last string, phone *string) (*models.User, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutPassword)

	set := bson.M{
		"first": first,
		"last":  last,
	}
	if phone != nil {
		set["phone"] = *phone
	}
	update := bson.M{"$set": set}

	var user models.User
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

// List returns every user with the password projected out.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.collection.Find(ctx, bson.D{}, options.Find().SetProjection(withoutPassword))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	users := make([]models.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// DeleteByID reports whether a document was removed.
func (s *UserStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// EnsureAdmin makes sure a user with email exists and is flagged admin. The
// digest is only written when the user is created; an existing account keeps
// its password. It reports whether a new document was inserted.
func (s *UserStore) EnsureAdmin(ctx context.Context, email, digest string) (bool, error) {
	update := bson.M{
		"$set": bson.M{"isAdmin": true},
		"$setOnInsert": bson.M{
			"first":    "Admin",
			"last":     "",
			"password": digest,
		},
	}

	res, err := s.collection.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("ensure admin: %w", err)
	}
	return res.UpsertedCount > 0, nil
}
