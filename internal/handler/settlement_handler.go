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

type SettlementHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Authorize(c *gin.Context)
}

type SettlementHandlerImpl struct {
	usecase   usecase.SettlementUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewSettlementHandler(usecase usecase.SettlementUsecase, logger *logrus.Logger, validator *validator.Validate) SettlementHandler {
	return &SettlementHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *SettlementHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SettlementHandlerImpl) Create(c *gin.Context) {
	var req params.CreateSettlementRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	settlement, custErr := h.usecase.Create(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.CreatedSuccessWithPayload(settlement)
	c.JSON(resp.StatusCode, resp)
}

func (h *SettlementHandlerImpl) Authorize(c *gin.Context) {
	var req params.AuthorizeSettlementRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	settlement, custErr := h.usecase.Authorize(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Settlement authorized", settlement)
	c.JSON(http.StatusOK, resp)
}
