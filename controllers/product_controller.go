package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"sportsstore-service/common/logger"
	"sportsstore-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	Service services.ProductService
}

func NewProductController(svc services.ProductService) *ProductController {
	return &ProductController{Service: svc}
}

// List returns one page of the storefront, optionally filtered by category.
func (pc *ProductController) List(c *gin.Context) {
	category := c.Query("category")
	page := queryInt(c, "page", 1)

	view, err := pc.Service.List(c.Request.Context(), category, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	links := view.PagingInfo.PageLinks(func(p int) string {
		q := url.Values{}
		if category != "" {
			q.Set("category", category)
		}
		q.Set("page", strconv.Itoa(p))
		return "/products?" + q.Encode()
	})

	logger.Debug(c.Request.Context(), "Products listed",
		zap.String("category", category),
		zap.Int("page", view.PagingInfo.CurrentPage),
		zap.Int("total", view.PagingInfo.TotalItems),
	)

	c.JSON(http.StatusOK, gin.H{
		"products":         view.Products,
		"paging_info":      view.PagingInfo.View(),
		"page_links":       links,
		"current_category": view.CurrentCategory,
	})
}
