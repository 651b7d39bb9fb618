package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/usecase"
)

type AuthHandler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	CurrentUser(c *gin.Context)
}

type AuthHandlerImpl struct {
	authService usecase.AuthUsecase
	logger      *logrus.Logger
	validator   *validator.Validate
}

func NewAuthHandler(authService usecase.AuthUsecase, logger *logrus.Logger, validator *validator.Validate) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		logger:      logger,
		validator:   validator,
	}
}

func (h *AuthHandlerImpl) Login(c *gin.Context) {
	var req params.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	authResponse, custErr := h.authService.Login(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success login user", authResponse)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandlerImpl) Logout(c *gin.Context) {
	rawToken := c.GetString("raw_token")

	if custErr := h.authService.Logout(c.Request.Context(), rawToken); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccess()
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandlerImpl) CurrentUser(c *gin.Context) {
	userID, ok := getUserIDFromContext(c, h.logger)
	if !ok {
		return
	}

	user, custErr := h.authService.CurrentUser(c.Request.Context(), userID)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success", user)
	c.JSON(http.StatusOK, resp)
}
