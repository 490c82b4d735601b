package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/handler"
)

func Setup(db *gorm.DB, engine *campaign.Engine, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "campaign-funding-engine",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 项目相关路由
		projectHandler := handler.NewProjectHandler(db, engine)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:permalink", projectHandler.GetProject)
			projects.GET("/:permalink/stats", projectHandler.GetProjectStats)
			projects.PUT("/:permalink/launch", projectHandler.LaunchProject)
			projects.PUT("/:permalink/reject", projectHandler.RejectProject)
			projects.DELETE("/:permalink", projectHandler.DeleteProject)
		}

		// 出资相关路由
		contributionHandler := handler.NewContributionHandler(db, engine)
		contributions := v1.Group("/contributions")
		{
			contributions.POST("", contributionHandler.CreateContribution)
			contributions.PUT("/:id/wait", contributionHandler.WaitConfirmation)
			contributions.PUT("/:id/confirm", contributionHandler.ConfirmContribution)
			contributions.PUT("/:id/request-refund", contributionHandler.RequestRefund)
			contributions.PUT("/:id/refund", contributionHandler.RefundContribution)
		}
		v1.GET("/project-contributions/:id", contributionHandler.GetProjectContributions)

		// 打款与对账路由
		payoutHandler := handler.NewPayoutHandler(db, engine)
		v1.POST("/payouts", payoutHandler.RecordPayout)
		v1.GET("/projects/:permalink/reconciliation", payoutHandler.GetReconciliation)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
