package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/usecase"
)

type PayoutHandler interface {
	List(c *gin.Context)
	Authorize(c *gin.Context)
	Download(c *gin.Context)
}

type PayoutHandlerImpl struct {
	usecase   usecase.PayoutUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewPayoutHandler(usecase usecase.PayoutUsecase, logger *logrus.Logger, validator *validator.Validate) PayoutHandler {
	return &PayoutHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *PayoutHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PayoutHandlerImpl) Authorize(c *gin.Context) {
	var req params.AuthorizePayoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	payout, custErr := h.usecase.Authorize(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Payout authorized", payout)
	c.JSON(http.StatusOK, resp)
}

func (h *PayoutHandlerImpl) Download(c *gin.Context) {
	page := parsePageRequest(c)

	filename := "payouts-" + time.Now().Format("20060102-150405") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if custErr := h.usecase.Export(c.Request.Context(), page.Filters, c.Writer); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}
}
