package controllers

import (
	"context"
	"net/http"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/common/logger"
	"sportsstore-service/middleware"
	"sportsstore-service/models"
	"sportsstore-service/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Service services.AdminService
}

func NewAdminController(svc services.AdminService) *AdminController {
	return &AdminController{Service: svc}
}

// actorContext tags the request context with the signed-in admin, when known.
func actorContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if id, err := middleware.GetUserID(c); err == nil {
		ctx = logger.WithActor(ctx, id)
	}
	return ctx
}

func (ac *AdminController) Index(c *gin.Context) {
	products, err := ac.Service.Products(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (ac *AdminController) Create(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"product": ac.Service.NewProduct()})
}

func (ac *AdminController) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := ac.Service.Product(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Save creates a product (POST) or updates the one named by :id (PUT).
func (ac *AdminController) Save(c *gin.Context) {
	var id int64
	if c.Param("id") != "" {
		var ok bool
		if id, ok = parseID(c, "id"); !ok {
			return
		}
	}

	var req models.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	res, err := ac.Service.Save(actorContext(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !res.Validation.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"product": res.Product,
			"errors":  res.Validation.Errors,
		})
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"product": res.Product, "message": res.Message})
}

func (ac *AdminController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	msg, err := ac.Service.Delete(actorContext(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if msg == "" {
		c.JSON(http.StatusOK, gin.H{"deleted": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "message": msg})
}

// ImageUploadURL issues a presigned PUT for a product image.
func (ac *AdminController) ImageUploadURL(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}
	upload, err := ac.Service.ImageUploadURL(c.Request.Context(), id, req.ContentType)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, upload)
}
