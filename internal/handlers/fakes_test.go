package handlers

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zeetech/zeestore-backend/internal/database"
	"github.com/zeetech/zeestore-backend/internal/models"
)

func parseTestID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return oid, database.ErrInvalidID
	}
	return oid, nil
}

type memUsers struct {
	mu      sync.Mutex
	users   []models.User
	failErr error
}

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return database.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return nil
}

func (m *memUsers) find(match func(models.User) bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	for _, u := range m.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m *memUsers) FindAdminByEmail(_ context.Context, email string) (*models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email && u.IsAdmin })
}

func (m *memUsers) UpdateProfile(_ context.Context, email, first, last string, phone *string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	for i := range m.users {
		if m.users[i].Email == email {
			m.users[i].First, m.users[i].Last = first, last
			if phone != nil {
				m.users[i].Phone = *phone
			}
			updated := m.users[i]
			updated.Password = ""
			return &updated, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memUsers) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		u.Password = ""
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) DeleteByID(_ context.Context, id string) (bool, error) {
	oid, err := parseTestID(id)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == oid {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

type memProducts struct {
	mu       sync.Mutex
	products []models.Product
	failErr  error
}

func (m *memProducts) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	p.ID = primitive.NewObjectID()
	m.products = append(m.products, *p)
	return nil
}

func (m *memProducts) List(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	return append(make([]models.Product, 0, len(m.products)), m.products...), nil
}

func (m *memProducts) Get(_ context.Context, id string) (*models.Product, error) {
	oid, err := parseTestID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == oid {
			found := p
			return &found, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memProducts) Update(_ context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	oid, err := parseTestID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID != oid {
			continue
		}
		p := &m.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		updated := *p
		return &updated, nil
	}
	return nil, nil
}

func (m *memProducts) DeleteByID(_ context.Context, id string) (bool, error) {
	oid, err := parseTestID(id)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.ID == oid {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memAddresses struct {
	mu        sync.Mutex
	addresses []models.Address
	failErr   error
}

func (m *memAddresses) Create(_ context.Context, a *models.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.ID = primitive.NewObjectID()
	m.addresses = append(m.addresses, *a)
	return nil
}
