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

type BankAccountHandler interface {
	List(c *gin.Context)
	Mutate(c *gin.Context)
}

type BankAccountHandlerImpl struct {
	usecase   usecase.BankAccountUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewBankAccountHandler(usecase usecase.BankAccountUsecase, logger *logrus.Logger, validator *validator.Validate) BankAccountHandler {
	return &BankAccountHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *BankAccountHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *BankAccountHandlerImpl) Mutate(c *gin.Context) {
	var req params.BankAccountMutationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	account, custErr := h.usecase.Mutate(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success", account)
	c.JSON(http.StatusOK, resp)
}
