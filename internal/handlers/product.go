package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zeetech/zeestore-backend/internal/database"
	"github.com/zeetech/zeestore-backend/internal/models"
)

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

func (r UpdateProductRequest) patch() models.ProductPatch {
	return models.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Price:       r.Price,
	}
}

func CreateProduct(products ProductStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"

		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rt.respondError(c, route, bindFailure(err))
			return
		}

		product := models.Product{
			Name:        req.Name,
			Description: req.Description,
			Image:       req.Image,
			Price:       *req.Price,
		}

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		if err := products.Create(ctx, &product); err != nil {
			rt.respondError(c, route, storeFailure(err, "Error creating product"))
			return
		}

		rt.Log.Info("product created", zap.String("id", product.ID.Hex()))
		c.JSON(http.StatusOK, product)
	}
}

func GetProducts(products ProductStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		list, err := products.List(ctx)
		if err != nil {
			rt.respondError(c, route, storeFailure(err, "Error fetching products"))
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

func GetProduct(products ProductStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:id"

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		product, err := products.Get(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				rt.respondError(c, route, fail(KindNotFound, "Product not found", err))
				return
			}
			rt.respondError(c, route, storeFailure(err, "Error fetching product"))
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// UpdateProduct applies the supplied fields. An id that matches nothing
// still answers 200, with a null body.
func UpdateProduct(products ProductStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/products/:id"

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rt.respondError(c, route, bindFailure(err))
			return
		}

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		product, err := products.Update(ctx, c.Param("id"), req.patch())
		if err != nil {
			rt.respondError(c, route, storeFailure(err, "Error updating product"))
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct reports success whether or not a product had the id.
func DeleteProduct(products ProductStore, rt Runtime) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/products/:id"

		ctx, cancel := rt.withTimeout(c)
		defer cancel()

		if _, err := products.DeleteByID(ctx, c.Param("id")); err != nil {
			rt.respondError(c, route, storeFailure(err, "Error deleting product"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
