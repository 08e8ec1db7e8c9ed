package api

import "Manorakshak/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ContentHandler    *handler.ContentHandler
	DashboardHandler  *handler.DashboardHandler
	GoalHandler       *handler.GoalHandler
	VideoHandler      *handler.VideoHandler
	ReportHandler     *handler.ReportHandler
	MoodMetricHandler *handler.MoodMetricHandler
}
