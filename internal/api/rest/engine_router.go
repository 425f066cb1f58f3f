package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupEngineRouter настраивает маршруты REST API AML-движка
func SetupEngineRouter(handlers *EngineHandlers) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(CORSMiddleware())

	router.Use(gin.Logger(), gin.Recovery())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// API endpoints
	api := router.Group("/api/v1")
	{
		api.POST("/scans/transactions/:transaction_id", handlers.ScanTransaction)
		api.POST("/scans/batch", handlers.ScanBatch)
		api.GET("/alerts", handlers.ListAlerts)
		api.GET("/alerts/:alert_id", handlers.GetAlert)
		api.GET("/alerts/:alert_id/audit", handlers.GetAlertAudit)
		api.POST("/alerts/:alert_id/review", handlers.ReviewAlert)
		api.GET("/users/:user_id/risk-report", handlers.GetUserRiskReport)
		api.GET("/dashboard", handlers.GetDashboard)
		api.GET("/stats/scans", handlers.GetScanStats)
		api.DELETE("/transactions", handlers.ClearTransactions)
	}

	// Общие endpoints (health, events, stats)
	SetupCommonEndpoints(router)

	return router
}
