package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps bundles the collaborators the routes are built from.
type Deps struct {
	Users     UserStore
	Products  ProductStore
	Addresses AddressStore
	Hasher    PasswordHasher
	Ping      func(context.Context) error
	Runtime   Runtime
}

func RegisterRoutes(r gin.IRouter, d Deps) {
	rt := d.Runtime

	r.GET("/", Home())
	r.GET("/healthz", Health(d.Ping, rt))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/signup", Signup(d.Users, d.Hasher, rt))
		api.POST("/login", Login(d.Users, d.Hasher, rt))
		api.GET("/user/:email", GetUserProfile(d.Users, rt))
		api.PUT("/user/update", UpdateUserProfile(d.Users, rt))

		api.POST("/products", CreateProduct(d.Products, rt))
		api.GET("/products", GetProducts(d.Products, rt))
		api.GET("/products/:id", GetProduct(d.Products, rt))
		api.PUT("/products/:id", UpdateProduct(d.Products, rt))
		api.DELETE("/products/:id", DeleteProduct(d.Products, rt))

		api.POST("/address", CreateAddress(d.Addresses, rt))

		api.POST("/admin/login", AdminLogin(d.Users, d.Hasher, rt))
		api.GET("/users", ListUsers(d.Users, rt))
		api.DELETE("/users/:id", DeleteUser(d.Users, rt))
	}
}
