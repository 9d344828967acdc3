package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/zeetech/zeestore-backend/internal/database"
)

// ErrorKind classifies every failure a handler can report.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindNotFound           ErrorKind = "not_found"
	KindConflict           ErrorKind = "conflict"
	KindStore              ErrorKind = "store"
)

func (k ErrorKind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type apiError struct {
	Kind    ErrorKind
	Message string
	Details []string
	Err     error
}

func (e *apiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *apiError) Unwrap() error {
	return e.Err
}

func fail(kind ErrorKind, message string, err error) *apiError {
	return &apiError{Kind: kind, Message: message, Err: err}
}

// storeFailure maps a store error onto a kind. message is used for the
// generic store case.
func storeFailure(err error, message string) *apiError {
	switch {
	case errors.Is(err, database.ErrInvalidID):
		return fail(KindValidation, "invalid id", err)
	case errors.Is(err, database.ErrNotFound):
		return fail(KindNotFound, "Not found", err)
	case errors.Is(err, database.ErrDuplicateEmail):
		return fail(KindConflict, "Email already exists!", err)
	default:
		return fail(KindStore, message, err)
	}
}

// bindFailure turns a gin binding error into a validation failure with one
// detail line per offending field.
func bindFailure(err error) *apiError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			field := lowerCamel(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("%s is required", field))
			default:
				details = append(details, fmt.Sprintf("%s is invalid", field))
			}
		}
		return &apiError{Kind: KindValidation, Message: "validation failed", Details: details, Err: err}
	}

	return fail(KindValidation, "invalid body", err)
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Runtime carries what every handler needs besides its store.
type Runtime struct {
	Log     *zap.Logger
	Timeout time.Duration
}

func (rt Runtime) withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), rt.Timeout)
}

// respondError is the single place where failures become HTTP responses.
func (rt Runtime) respondError(c *gin.Context, route string, err error) {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		apiErr = fail(KindStore, "internal server error", err)
	}

	status := apiErr.Kind.Status()
	logFields := []zap.Field{
		zap.String("route", route),
		zap.Int("status", status),
		zap.String("kind", string(apiErr.Kind)),
		zap.Error(apiErr),
	}
	if status >= http.StatusInternalServerError {
		rt.Log.Error("request failed", logFields...)
	} else {
		rt.Log.Info("request rejected", logFields...)
	}

	body := gin.H{
		"success":    false,
		"error_kind": apiErr.Kind,
		"message":    apiErr.Message,
	}
	if len(apiErr.Details) > 0 {
		body["details"] = apiErr.Details
	}
	c.AbortWithStatusJSON(status, body)
}
