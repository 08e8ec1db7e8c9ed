package api

import (
	"Manorakshak/internal/api/middleware"
	"Manorakshak/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware("/api/ping"))
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Manorakshak Backend Running!")
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		apiGroup.GET("/dashboard", group.DashboardHandler.GetDashboard)
		apiGroup.POST("/mood", group.DashboardHandler.SetMood)
		apiGroup.POST("/calm-mode", group.DashboardHandler.SetCalmMode)

		apiGroup.POST("/analyze-content", group.ContentHandler.AnalyzeContent)
		apiGroup.POST("/add-alert", group.ContentHandler.AddAlert)
		apiGroup.GET("/insights", group.ContentHandler.GetInsights)

		apiGroup.GET("/goals", group.GoalHandler.GetGoals)
		apiGroup.POST("/goals", group.GoalHandler.AddGoal)

		apiGroup.POST("/generate-report", group.ReportHandler.GenerateReport)
		apiGroup.POST("/get-suggestions", group.ReportHandler.GetSuggestions)
		apiGroup.POST("/summarize-content", group.ReportHandler.SummarizeContent)

		apiGroup.POST("/video-history", group.VideoHandler.AddVideoHistory)
		apiGroup.GET("/video-analytics", group.VideoHandler.GetVideoAnalytics)

		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.GET("/mood/7d", group.MoodMetricHandler.GetMetrics7Days)
			metricsGroup.GET("/mood/30d", group.MoodMetricHandler.GetMetrics30Days)
		}

		statusGroup := apiGroup.Group("/status")
		{
			statusGroup.GET("/flush", group.DashboardHandler.GetFlushStatus)
		}
	}

	return r
}
