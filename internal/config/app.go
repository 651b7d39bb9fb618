package config

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-payment-admin/internal/handler"
	"go-payment-admin/internal/middleware"
	"go-payment-admin/internal/repository"
	"go-payment-admin/internal/router"
	"go-payment-admin/internal/usecase"
	"go-payment-admin/pkg/token"
)

type BootstrapConfig struct {
	DB        *gorm.DB
	Redis     *redis.Client
	App       *gin.Engine
	Log       *logrus.Logger
	Validate  *validator.Validate
	JWTConfig *JWTConfig
}

func Bootstrap(config *BootstrapConfig) {
	jwtManager := token.NewTokenManager(config.JWTConfig.SecretKey, config.JWTConfig.ExpirationTime)

	// setup repositories
	payinRepository := repository.NewPayinRepository(config.DB, config.Log)
	payoutRepository := repository.NewPayoutRepository(config.DB, config.Log)
	settlementRepository := repository.NewSettlementRepository(config.DB, config.Log)
	merchantRepository := repository.NewMerchantRepository(config.DB, config.Log)
	agentRepository := repository.NewAgentRepository(config.DB, config.Log)
	bankAccountRepository := repository.NewBankAccountRepository(config.DB, config.Log)
	adminUserRepository := repository.NewAdminUserRepository(config.DB, config.Log)
	chargebackRepository := repository.NewChargebackRepository(config.DB, config.Log)
	paylinkRepository := repository.NewPaylinkRepository(config.DB, config.Log)
	analyticsRepository := repository.NewAnalyticsRepository(config.DB, config.Log)

	// setup use cases
	authUsecase := usecase.NewAuthUsecase(adminUserRepository, jwtManager, config.Redis, config.Log)
	payinUsecase := usecase.NewPayinUsecase(payinRepository, config.Log, config.Redis)
	payoutUsecase := usecase.NewPayoutUsecase(payoutRepository, config.Log, config.Redis)
	settlementUsecase := usecase.NewSettlementUsecase(settlementRepository, config.Log, config.Redis)
	merchantUsecase := usecase.NewMerchantUsecase(merchantRepository, config.Log, config.Redis)
	agentUsecase := usecase.NewAgentUsecase(agentRepository, config.Log)
	bankAccountUsecase := usecase.NewBankAccountUsecase(bankAccountRepository, config.Log)
	adminUserUsecase := usecase.NewAdminUserUsecase(adminUserRepository, config.Log)
	chargebackUsecase := usecase.NewChargebackUsecase(chargebackRepository, config.Log)
	paylinkUsecase := usecase.NewPaylinkUsecase(paylinkRepository, config.Log)
	analyticsUsecase := usecase.NewAnalyticsUsecase(analyticsRepository, config.Log)

	// setup handlers
	authHandler := handler.NewAuthHandler(authUsecase, config.Log, config.Validate)
	payinHandler := handler.NewPayinHandler(payinUsecase, config.Log, config.Validate)
	payoutHandler := handler.NewPayoutHandler(payoutUsecase, config.Log, config.Validate)
	settlementHandler := handler.NewSettlementHandler(settlementUsecase, config.Log, config.Validate)
	merchantHandler := handler.NewMerchantHandler(merchantUsecase, config.Log, config.Validate)
	agentHandler := handler.NewAgentHandler(agentUsecase, config.Log, config.Validate)
	bankAccountHandler := handler.NewBankAccountHandler(bankAccountUsecase, config.Log, config.Validate)
	adminUserHandler := handler.NewAdminUserHandler(adminUserUsecase, config.Log, config.Validate)
	chargebackHandler := handler.NewChargebackHandler(chargebackUsecase, config.Log, config.Validate)
	paylinkHandler := handler.NewPaylinkHandler(paylinkUsecase, config.Log, config.Validate)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUsecase, config.Log, config.Validate)

	// setup middleware
	authMiddleware := middleware.NewAuthMiddleware(config.Log, jwtManager, authUsecase)

	routeConfig := router.RouteConfig{
		App:                config.App,
		AuthHandler:        authHandler,
		PayinHandler:       payinHandler,
		PayoutHandler:      payoutHandler,
		SettlementHandler:  settlementHandler,
		MerchantHandler:    merchantHandler,
		AgentHandler:       agentHandler,
		BankAccountHandler: bankAccountHandler,
		AdminUserHandler:   adminUserHandler,
		ChargebackHandler:  chargebackHandler,
		PaylinkHandler:     paylinkHandler,
		AnalyticsHandler:   analyticsHandler,
		AuthMiddleware:     authMiddleware,
		LoggerMiddleware:   middleware.LoggerMiddleware(config.Log),
	}
	routeConfig.SetupRoute()
}
