package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/zeetech/zeestore-backend/internal/auth"
)

type testServer struct {
	router    *gin.Engine
	users     *memUsers
	products  *memProducts
	addresses *memAddresses
	hasher    *auth.Hasher
	pingErr   error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		router:    gin.New(),
		users:     &memUsers{},
		products:  &memProducts{},
		addresses: &memAddresses{},
		hasher:    auth.NewHasher(bcrypt.MinCost),
	}

	RegisterRoutes(ts.router, Deps{
		Users:     ts.users,
		Products:  ts.products,
		Addresses: ts.addresses,
		Hasher:    ts.hasher,
		Ping:      func(context.Context) error { return ts.pingErr },
		Runtime:   Runtime{Log: zap.NewNop(), Timeout: time.Second},
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func (ts *testServer) signup(t *testing.T, email, password string) map[string]any {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/signup", gin.H{
		"first":    "Ada",
		"last":     "Lovelace",
		"email":    email,
		"password": password,
		"phone":    "555-0100",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeObject(t, w)
}
