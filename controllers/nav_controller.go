package controllers

import (
	"net/http"

	"sportsstore-service/models"
	"sportsstore-service/services"

	"github.com/gin-gonic/gin"
)

type NavController struct {
	Service services.ProductService
}

func NewNavController(svc services.ProductService) *NavController {
	return &NavController{Service: svc}
}

// Menu returns the category list with the selected entry echoed back.
func (nc *NavController) Menu(c *gin.Context) {
	categories, err := nc.Service.Categories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.CategoryMenu{
		Categories:       categories,
		SelectedCategory: c.Query("category"),
	})
}
