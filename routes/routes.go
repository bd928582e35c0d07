package routes

import (
	"net/http"

	"sportsstore-service/controllers"

	"github.com/gin-gonic/gin"
)

// Handlers groups the controllers mounted by RegisterRoutes.
type Handlers struct {
	Products *controllers.ProductController
	Nav      *controllers.NavController
	Cart     *controllers.CartController
	Admin    *controllers.AdminController
	Account  *controllers.AccountController
}

// RegisterRoutes mounts the storefront and admin API. adminAuth runs in front
// of every /admin route.
func RegisterRoutes(r *gin.Engine, h Handlers, adminAuth ...gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/products", h.Products.List)
	r.GET("/nav/categories", h.Nav.Menu)

	cart := r.Group("/cart")
	{
		cart.GET("", h.Cart.Index)
		cart.GET("/summary", h.Cart.Summary)
		cart.POST("/lines", h.Cart.AddToCart)
		cart.DELETE("/lines/:productId", h.Cart.RemoveFromCart)
		cart.POST("/checkout", h.Cart.Checkout)
	}

	r.POST("/account/login", h.Account.Login)

	admin := r.Group("/admin/products", adminAuth...)
	{
		admin.GET("", h.Admin.Index)
		admin.GET("/new", h.Admin.Create)
		admin.GET("/:id", h.Admin.Edit)
		admin.POST("", h.Admin.Save)
		admin.PUT("/:id", h.Admin.Save)
		admin.DELETE("/:id", h.Admin.Delete)
		admin.POST("/:id/image-url", h.Admin.ImageUploadURL)
	}
}
