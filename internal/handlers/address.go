package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeetech/zeestore-backend/internal/models"
)

// AddressRequest lists the accepted address fields; anything else in the
// body is dropped.
type AddressRequest struct {
	CompleteName string     `json:"completeName"`
	Street       string     `json:"street"`
	City         string     `json:"city"`
	Province     string     `json:"province"`
	ZipCode      string     `json:"zipCode"`
	Country      string     `json:"country"`
	PhoneNumber  string     `json:"phoneNumber"`
	Email        string     `json:"email" binding:"omitempty,email"`
	CreatedAt    *time.Time `json:"createdAt"`
}

func CreateAddress(addresses AddressStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/address"

		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rt.respondError(c, route, bindFailure(err))
			return
		}

		address := models.Address{
			CompleteName: req.CompleteName,
			Street:       req.Street,
			City:         req.City,
			Province:     req.Province,
			ZipCode:      req.ZipCode,
			Country:      req.Country,
			PhoneNumber:  req.PhoneNumber,
			Email:        req.Email,
		}
		if req.CreatedAt != nil {
			address.CreatedAt = *req.CreatedAt
		}

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		if err := addresses.Create(ctx, &address); err != nil {
			rt.respondError(c, route, storeFailure(err, "Error saving address"))
			return
		}

		c.JSON(http.StatusOK, address)
	}
}
