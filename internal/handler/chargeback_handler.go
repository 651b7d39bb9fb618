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

type ChargebackHandler interface {
	List(c *gin.Context)
	Resolve(c *gin.Context)
}

type ChargebackHandlerImpl struct {
	usecase   usecase.ChargebackUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewChargebackHandler(usecase usecase.ChargebackUsecase, logger *logrus.Logger, validator *validator.Validate) ChargebackHandler {
	return &ChargebackHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *ChargebackHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ChargebackHandlerImpl) Resolve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req params.ResolveChargebackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	chargeback, custErr := h.usecase.Resolve(c.Request.Context(), id, &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Chargeback resolved", chargeback)
	c.JSON(http.StatusOK, resp)
}
