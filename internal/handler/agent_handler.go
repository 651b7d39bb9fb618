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

type AgentHandler interface {
	List(c *gin.Context)
	Mutate(c *gin.Context)
}

type AgentHandlerImpl struct {
	usecase   usecase.AgentUsecase
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewAgentHandler(usecase usecase.AgentUsecase, logger *logrus.Logger, validator *validator.Validate) AgentHandler {
	return &AgentHandlerImpl{
		usecase:   usecase,
		logger:    logger,
		validator: validator,
	}
}

func (h *AgentHandlerImpl) List(c *gin.Context) {
	page := parsePageRequest(c)

	result, custErr := h.usecase.List(c.Request.Context(), page)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AgentHandlerImpl) Mutate(c *gin.Context) {
	var req params.AgentMutationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, h.logger, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		writeValidationErrors(c, err)
		return
	}

	agent, custErr := h.usecase.Mutate(c.Request.Context(), &req)
	if custErr != nil {
		c.AbortWithStatusJSON(custErr.StatusCode, custErr)
		return
	}

	resp := response.GeneralSuccessCustomMessageAndPayload("Success", agent)
	c.JSON(http.StatusOK, resp)
}
