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

type PaylinkHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
}

type PaylinkHandlerImpl struct {
	usecase   usecase.PaylinkUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewPaylinkHandler(usecase usecase.PaylinkUsecase, logger *logrus.Logger, validator *validator.Validate) PaylinkHandler {
	return &PaylinkHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *PaylinkHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PaylinkHandlerImpl) Create(c *gin.Context) {
	var req params.CreatePaylinkRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	paylink, custErr := h.usecase.Create(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(paylink)
	c.JSON(resp.StatusCode, resp)
}
