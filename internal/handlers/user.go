package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zeetech/zeestore-backend/internal/database"
)

type UpdateProfileRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Phone *string `json:"phone"`
}

func GetUserProfile(users UserStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/user/:email"

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		user, err := users.FindByEmail(ctx, normalizeEmail(c.Param("email")))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				rt.respondError(c, route, fail(KindNotFound, "User not found", err))
				return
			}
			rt.respondError(c, route, storeFailure(err, "Server error"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Profile()})
	}
}

// UpdateUserProfile renames the user identified by email, replaces the phone
// when one is sent, and returns the stored record.
func UpdateUserProfile(users UserStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/user/update"

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rt.respondError(c, route, bindFailure(err))
			return
		}

		first, last := splitName(req.Name)
		if first == "" {
			rt.respondError(c, route, &apiError{
				Kind:    KindValidation,
				Message: "validation failed",
				Details: []string{"name is required"},
			})
			return
		}

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		user, err := users.UpdateProfile(ctx, normalizeEmail(req.Email), first, last, req.Phone)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				rt.respondError(c, route, fail(KindNotFound, "User not found", err))
				return
			}
			rt.respondError(c, route, storeFailure(err, "Error updating profile"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// splitName puts the first whitespace-separated token in first and joins the
// rest with single spaces into last.
func splitName(name string) (first, last string) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}

func ListUsers(users UserStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/users"

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		list, err := users.List(ctx)
		if err != nil {
			rt.respondError(c, route, storeFailure(err, "Error fetching users"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "users": list})
	}
}

// DeleteUser reports success whether or not a user had the id.
func DeleteUser(users UserStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/users/:id"

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		deleted, err := users.DeleteByID(ctx, c.Param("id"))
		if err != nil {
			rt.respondError(c, route, storeFailure(err, "Error deleting user"))
			return
		}
		if !deleted {
			rt.Log.Debug("delete matched no user", zap.String("id", c.Param("id")))
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
	}
}
