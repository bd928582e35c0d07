package controllers

import (
	"net/http"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"
	"sportsstore-service/services"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	Service services.AccountService
}

func NewAccountController(svc services.AccountService) *AccountController {
	return &AccountController{Service: svc}
}

// Login exchanges admin credentials for a bearer token.
func (ac *AccountController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}
	res, err := ac.Service.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}
