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

type PayinHandler interface {
	List(c *gin.Context)
	Assign(c *gin.Context)
	Confirm(c *gin.Context)
	LookupPlayers(c *gin.Context)
	Download(c *gin.Context)
}

type PayinHandlerImpl struct {
	usecase   usecase.PayinUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewPayinHandler(usecase usecase.PayinUsecase, logger *logrus.Logger, validator *validator.Validate) PayinHandler {
	return &PayinHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *PayinHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PayinHandlerImpl) Assign(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req params.AssignPayinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	payin, custErr := h.usecase.Assign(c.Request.Context(), id, &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Payin assigned", payin)
	c.JSON(http.StatusOK, resp)
}

func (h *PayinHandlerImpl) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req params.ConfirmPayinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	payin, custErr := h.usecase.Confirm(c.Request.Context(), id, &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Payin confirmed", payin)
	c.JSON(http.StatusOK, resp)
}

func (h *PayinHandlerImpl) LookupPlayers(c *gin.Context) {
	var req params.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	options, custErr := h.usecase.LookupPlayers(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success", options)
	c.JSON(http.StatusOK, resp)
}

func (h *PayinHandlerImpl) Download(c *gin.Context) {
	page := parsePageRequest(c)

	filename := "payins-" + time.Now().Format("20060102-150405") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if custErr := h.usecase.Export(c.Request.Context(), page.Filters, c.Writer); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}
}
