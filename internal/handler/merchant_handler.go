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

type MerchantHandler interface {
	List(c *gin.Context)
	Mutate(c *gin.Context)
	Lookup(c *gin.Context)
}

type MerchantHandlerImpl struct {
	usecase   usecase.MerchantUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewMerchantHandler(usecase usecase.MerchantUsecase, logger *logrus.Logger, validator *validator.Validate) MerchantHandler {
	return &MerchantHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *MerchantHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *MerchantHandlerImpl) Mutate(c *gin.Context) {
	var req params.MerchantMutationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	merchant, custErr := h.usecase.Mutate(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success", merchant)
	c.JSON(http.StatusOK, resp)
}

func (h *MerchantHandlerImpl) Lookup(c *gin.Context) {
	var req params.LookupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	options, custErr := h.usecase.Lookup(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success", options)
	c.JSON(http.StatusOK, resp)
}
