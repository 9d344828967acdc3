package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetUserProfile(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "ada@example.com", "pw")

	t.Run("found", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/user/ada@example.com", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeObject(t, w)
		assert.Equal(t, map[string]any{
			"name":  "Ada Lovelace",
			"email": "ada@example.com",
			"phone": "555-0100",
		}, body["user"])
	})

	t.Run("missing", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/user/ghost@example.com", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeObject(t, w)
		assert.Equal(t, "not_found", body["error_kind"])
		assert.Equal(t, "User not found", body["message"])
	})

	t.Run("store down", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.failErr = errors.New("timeout")

		w := ts.do(t, http.MethodGet, "/api/user/ada@example.com", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error", decodeObject(t, w)["message"])
	})
}

func TestUpdateUserProfile(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "ada@example.com", "pw")

	t.Run("splits name on first space", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/user/update", gin.H{
			"email": "ada@example.com",
			"name":  "Augusta Ada King",
			"phone": "555-0199",
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		user := decodeObject(t, w)["user"].(map[string]any)
		assert.Equal(t, "Augusta", user["first"])
		assert.Equal(t, "Ada King", user["last"])
		assert.Equal(t, "555-0199", user["phone"])
		assert.NotContains(t, user, "password")
	})

	t.Run("phone kept when omitted", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/user/update", gin.H{
			"email": "ada@example.com",
			"name":  "Ada Lovelace",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = ts.do(t, http.MethodGet, "/api/user/ada@example.com", nil)
		require.Equal(t, http.StatusOK, w.Code)
		profile := decodeObject(t, w)["user"].(map[string]any)
		assert.Equal(t, "555-0199", profile["phone"])
		assert.Equal(t, "Ada Lovelace", profile["name"])
	})

	t.Run("blank name rejected", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/user/update", gin.H{"email": "ada@example.com", "name": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeObject(t, w)
		assert.Equal(t, "validation", body["error_kind"])
		assert.Contains(t, body["details"], "name is required")

		stored, err := ts.users.FindByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ada", stored.First)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/user/update", gin.H{"email": "ghost@example.com", "name": "G"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("name required", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/user/update", gin.H{"email": "ada@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeObject(t, w)["details"], "name is required")
	})
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Augusta Ada King", "Augusta", "Ada King"},
		{"Cher", "Cher", ""},
		{"  Grace   Brewster  Hopper ", "Grace", "Brewster Hopper"},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := splitName(tc.in)
		assert.Equal(t, tc.first, first, "first of %q", tc.in)
		assert.Equal(t, tc.last, last, "last of %q", tc.in)
	}
}

func TestListUsers(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "a@example.com", "pw")
	ts.signup(t, "b@example.com", "pw")

	w := ts.do(t, http.MethodGet, "/api/users", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, true, body["success"])
	users := body["users"].([]any)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotContains(t, u.(map[string]any), "password")
	}
}

func TestListUsers_StoreFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.users.failErr = errors.New("boom")

	w := ts.do(t, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error fetching users", decodeObject(t, w)["message"])
}

func TestDeleteUser(t *testing.T) {
	ts := newTestServer(t)
	created := ts.signup(t, "a@example.com", "pw")
	id := created["user"].(map[string]any)["id"].(string)

	t.Run("existing", func(t *testing.T) {
		w := ts.do(t, http.MethodDelete, "/api/users/"+id, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User deleted", decodeObject(t, w)["message"])
		assert.Equal(t, 0, ts.users.count())
	})

	t.Run("nonexistent still succeeds", func(t *testing.T) {
		w := ts.do(t, http.MethodDelete, "/api/users/"+primitive.NewObjectID().Hex(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeObject(t, w)["success"])
	})

	t.Run("malformed id", func(t *testing.T) {
		w := ts.do(t, http.MethodDelete, "/api/users/not-hex", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation", decodeObject(t, w)["error_kind"])
	})
}
