package router

import (
	"github.com/bluecarbon/bcms/internal/config"
	"github.com/bluecarbon/bcms/internal/handler"
	"github.com/bluecarbon/bcms/internal/pinning"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/gin-gonic/gin"
)

func Setup(s store.Store, p pinning.Pinner, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "bcms",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 提交记录相关路由
		submissionHandler := handler.NewSubmissionHandler(s, p)
		submissions := v1.Group("/submissions")
		{
			submissions.POST("", submissionHandler.CreateSubmission)
			submissions.GET("", submissionHandler.GetSubmissions)
			submissions.GET("/:id", submissionHandler.GetSubmission)
			submissions.GET("/:id/metadata", submissionHandler.GetMetadata)
			submissions.POST("/:id/minted", submissionHandler.MarkMinted)
		}

		// 项目相关路由
		projectHandler := handler.NewProjectHandler(s)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id/submit", projectHandler.SubmitProject)
		}

		// 监测数据相关路由
		monitoringHandler := handler.NewMonitoringHandler(s)
		v1.POST("/baseline", monitoringHandler.CreateBaseline)
		v1.GET("/baseline/:projectId", monitoringHandler.GetBaselines)
		v1.POST("/activities", monitoringHandler.CreateActivity)
		v1.GET("/activities/:projectId", monitoringHandler.GetActivities)
		v1.POST("/mrv", monitoringHandler.CreateMRVRecord)
		v1.GET("/mrv/:projectId", monitoringHandler.GetMRVRecords)
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
