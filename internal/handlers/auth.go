package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zeetech/zeestore-backend/internal/database"
	"github.com/zeetech/zeestore-backend/internal/metrics"
	"github.com/zeetech/zeestore-backend/internal/models"
)

type SignupRequest struct {
	First    string `json:"first"`
	Last     string `json:"last"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const (
	msgInvalidCredentials      = "Invalid credentials!"
	msgInvalidAdminCredentials = "Invalid admin credentials!"
)

func Signup(users UserStore, hasher PasswordHasher, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/signup"

		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rt.respondError(c, route, bindFailure(err))
			return
		}

		digest, err := hasher.Hash(req.Password)
		if err != nil {
			rt.respondError(c, route, fail(KindStore, "password hash failed", err))
			return
		}

		user := models.User{
			First:    req.First,
			Last:     req.Last,
			Email:    normalizeEmail(req.Email),
			Password: digest,
			Phone:    req.Phone,
			IsAdmin:  false,
		}

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		if err := users.Create(ctx, &user); err != nil {
			rt.respondError(c, route, storeFailure(err, "Signup failed"))
			return
		}

		rt.Log.Info("user registered", zap.String("email", user.Email))
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// Login answers unknown email and wrong password with the same message.
func Login(users UserStore, hasher PasswordHasher, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/login"

		user, ok := authenticate(c, route, users.FindByEmail, hasher, rt, msgInvalidCredentials)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Profile()})
	}
}

func AdminLogin(users UserStore, hasher PasswordHasher, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/login"

		admin, ok := authenticate(c, route, users.FindAdminByEmail, hasher, rt, msgInvalidAdminCredentials)
		if !ok {
			return
		}

		rt.Log.Info("admin login", zap.String("email", admin.Email))
		c.JSON(http.StatusOK, gin.H{"success": true, "admin": admin})
	}
}

type userLookup func(ctx context.Context, email string) (*models.User, error)

// authenticate binds a LoginRequest, looks the user up and checks the
// password. On any failure it has already written the response.
func authenticate(c *gin.Context, route string, lookup userLookup, hasher PasswordHasher, rt Runtime, rejectMsg string) (*models.User, bool) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rt.respondError(c, route, bindFailure(err))
		return nil, false
	}

	ctx, cancel := rt.withTimeout(c)
	defer cancel()

	user, err := lookup(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			hasher.Verify(req.Password, "")
			metrics.AuthFailures.WithLabelValues(route).Inc()
			rt.respondError(c, route, fail(KindInvalidCredentials, rejectMsg, nil))
			return nil, false
		}
		rt.respondError(c, route, storeFailure(err, "Login failed"))
		return nil, false
	}

	if !hasher.Verify(req.Password, user.Password) {
		metrics.AuthFailures.WithLabelValues(route).Inc()
		rt.respondError(c, route, fail(KindInvalidCredentials, rejectMsg, nil))
		return nil, false
	}

	return user, true
}
