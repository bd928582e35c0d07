package controllers

import (
	"errors"
	"net/http"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/common/logger"
	"sportsstore-service/models"
	"sportsstore-service/repository"
	"sportsstore-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	Store   repository.CartStore
	Catalog repository.ProductRepository
	Orders  services.CheckoutService
}

func NewCartController(store repository.CartStore, catalog repository.ProductRepository, checkout services.CheckoutService) *CartController {
	return &CartController{Store: store, Catalog: catalog, Orders: checkout}
}

func (cc *CartController) loadCart(c *gin.Context) (string, *models.Cart, bool) {
	sid := sessionID(c)
	cart, err := cc.Store.Load(c.Request.Context(), sid)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to load cart", err, zap.String("session", sid))
		_ = c.Error(apperrors.Wrap(apperrors.ErrServiceUnavailable, err))
		return "", nil, false
	}
	return sid, cart, true
}

func (cc *CartController) saveCart(c *gin.Context, sid string, cart *models.Cart) bool {
	if err := cc.Store.Save(c.Request.Context(), sid, cart); err != nil {
		logger.Error(c.Request.Context(), "Failed to save cart", err, zap.String("session", sid))
		_ = c.Error(apperrors.Wrap(apperrors.ErrServiceUnavailable, err))
		return false
	}
	return true
}

// Index returns the session cart and where to continue shopping.
func (cc *CartController) Index(c *gin.Context) {
	_, cart, ok := cc.loadCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":       cart.View(),
		"return_url": safeReturnURL(c.Query("returnUrl")),
	})
}

// Summary is the compact view for the page header.
func (cc *CartController) Summary(c *gin.Context) {
	_, cart, ok := cc.loadCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"line_count": len(cart.Lines),
		"item_count": cart.ItemCount(),
		"total":      cart.ComputeTotalValue(),
	})
}

// AddToCart adds a catalog product to the cart. Unknown products leave the
// cart unchanged.
func (cc *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sid, cart, ok := cc.loadCart(c)
	if !ok {
		return
	}

	product, err := cc.Catalog.FindByID(c.Request.Context(), req.ProductID)
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		logger.Warn(c.Request.Context(), "Add to cart for unknown product", zap.Int64("product_id", req.ProductID))
	case err != nil:
		_ = c.Error(err)
		return
	default:
		cart.AddItem(*product, req.Quantity)
		if !cc.saveCart(c, sid, cart) {
			return
		}
	}

	c.Redirect(http.StatusSeeOther, cartRedirect(req.ReturnURL))
}

// RemoveFromCart drops the line for the product id.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}

	sid, cart, ok := cc.loadCart(c)
	if !ok {
		return
	}
	if _, present := cart.Line(id); present {
		cart.RemoveLine(models.Product{ID: id})
		if !cc.saveCart(c, sid, cart) {
			return
		}
	}

	c.Redirect(http.StatusSeeOther, cartRedirect(c.Query("returnUrl")))
}

// Checkout validates the shipping details and submits the session cart.
func (cc *CartController) Checkout(c *gin.Context) {
	var details models.ShippingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	sid, cart, ok := cc.loadCart(c)
	if !ok {
		return
	}

	result := cc.Orders.Checkout(c.Request.Context(), cart, details)
	if result.Status == models.CheckoutInvalid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": result.Status,
			"errors": result.Validation.Errors,
		})
		return
	}

	if err := cc.Store.Delete(c.Request.Context(), sid); err != nil {
		logger.Error(c.Request.Context(), "Failed to clear cart after checkout", err, zap.String("order_id", result.OrderID))
	}

	logger.Info(c.Request.Context(), "Checkout completed", zap.String("order_id", result.OrderID))
	c.JSON(http.StatusOK, gin.H{
		"status":   result.Status,
		"order_id": result.OrderID,
		"message":  "Thanks for placing your order. We'll ship your goods as soon as possible.",
	})
}
