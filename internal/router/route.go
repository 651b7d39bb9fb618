package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-payment-admin/internal/handler"
	"go-payment-admin/internal/middleware"
)

type RouteConfig struct {
	App                *gin.Engine
	AuthHandler        handler.AuthHandler
	PayinHandler       handler.PayinHandler
	PayoutHandler      handler.PayoutHandler
	SettlementHandler  handler.SettlementHandler
	MerchantHandler    handler.MerchantHandler
	AgentHandler       handler.AgentHandler
	BankAccountHandler handler.BankAccountHandler
	AdminUserHandler   handler.AdminUserHandler
	ChargebackHandler  handler.ChargebackHandler
	PaylinkHandler     handler.PaylinkHandler
	AnalyticsHandler   handler.AnalyticsHandler
	AuthMiddleware     *middleware.AuthMiddleware
	LoggerMiddleware   gin.HandlerFunc
}

func (c *RouteConfig) SetupRoute() {
	c.App.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "payment-admin-api",
		})
	})
	c.App.GET("/metrics", gin.WrapH(promhttp.Handler()))

	c.App.Use(c.LoggerMiddleware)
	c.App.Use(middleware.MetricsMiddleware())

	api := c.App.Group("/api")
	{
		login := api.Group("/login")
		{
			login.POST("/account", c.AuthHandler.Login)
			login.POST("/outLogin", c.AuthMiddleware.JWTAuth(), c.AuthHandler.Logout)
		}

		protected := api.Group("")
		protected.Use(c.AuthMiddleware.JWTAuth())
		{
			protected.GET("/currentUser", c.AuthHandler.CurrentUser)

			protected.GET("/payins", c.PayinHandler.List)
			protected.GET("/payins/download", c.PayinHandler.Download)
			protected.POST("/payins/:id/assign", c.PayinHandler.Assign)
			protected.POST("/payins/:id/confirm", c.PayinHandler.Confirm)

			protected.GET("/payouts", c.PayoutHandler.List)
			protected.GET("/payouts/download", c.PayoutHandler.Download)
			protected.POST("/payouts/authorize", c.PayoutHandler.Authorize)

			protected.GET("/settlements", c.SettlementHandler.List)
			protected.POST("/settlements", c.SettlementHandler.Create)
			protected.POST("/settlements/authorize", c.SettlementHandler.Authorize)

			protected.GET("/merchants", c.MerchantHandler.List)
			protected.POST("/merchants/lookup", c.MerchantHandler.Lookup)
			protected.POST("/merchants/players/lookup", c.PayinHandler.LookupPlayers)
			protected.POST("/merchants/analytics", c.AnalyticsHandler.Report)
			protected.POST("/merchants/analytics/download", c.AnalyticsHandler.Download)

			protected.GET("/chargebacks", c.ChargebackHandler.List)
			protected.POST("/chargebacks/:id/resolve", c.ChargebackHandler.Resolve)

			protected.GET("/paylinks", c.PaylinkHandler.List)
			protected.POST("/paylinks", c.PaylinkHandler.Create)

			protected.GET("/agents", c.AgentHandler.List)
			protected.GET("/bank-accounts", c.BankAccountHandler.List)
			protected.GET("/admin-users", c.AdminUserHandler.List)

			admin := protected.Group("")
			admin.Use(c.AuthMiddleware.RequireAdmin())
			{
				admin.POST("/merchants", c.MerchantHandler.Mutate)
				admin.POST("/agents", c.AgentHandler.Mutate)
				admin.POST("/bank-accounts", c.BankAccountHandler.Mutate)
				admin.POST("/admin-users", c.AdminUserHandler.Mutate)
			}
		}
	}
}
