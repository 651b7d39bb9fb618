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

type AnalyticsHandler interface {
	Report(c *gin.Context)
	Download(c *gin.Context)
}

type AnalyticsHandlerImpl struct {
	usecase   usecase.AnalyticsUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewAnalyticsHandler(usecase usecase.AnalyticsUsecase, logger *logrus.Logger, validator *validator.Validate) AnalyticsHandler {
	return &AnalyticsHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *AnalyticsHandlerImpl) Report(c *gin.Context) {
	var req params.AnalyticsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	report, custErr := h.usecase.Report(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success", report)
	c.JSON(http.StatusOK, resp)
}

func (h *AnalyticsHandlerImpl) Download(c *gin.Context) {
	var req params.AnalyticsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	filename := "analytics-" + time.Now().Format("20060102-150405") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if custErr := h.usecase.Download(c.Request.Context(), &req, c.Writer); custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}
}
