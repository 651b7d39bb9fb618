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

type AdminUserHandler interface {
	List(c *gin.Context)
	Mutate(c *gin.Context)
}

type AdminUserHandlerImpl struct {
	usecase   usecase.AdminUserUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewAdminUserHandler(usecase usecase.AdminUserUsecase, logger *logrus.Logger, validator *validator.Validate) AdminUserHandler {
	return &AdminUserHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *AdminUserHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AdminUserHandlerImpl) Mutate(c *gin.Context) {
	var req params.AdminUserMutationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	user, custErr := h.usecase.Mutate(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success", user)
	c.JSON(http.StatusOK, resp)
}
