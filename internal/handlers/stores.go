package handlers

import (
	"context"

	"github.com/zeetech/zeestore-backend/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAdminByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, email, first, last string, phone *string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type AddressStore interface {
	Create(ctx context.Context, address *models.Address) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
