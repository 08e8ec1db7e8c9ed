package handler

import (
	"Manorakshak/internal/api/dto"
	"Manorakshak/internal/model"
	"Manorakshak/internal/pkg/response"
	"Manorakshak/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type MoodMetricHandler struct {
	moodMetricSvc service.MoodMetricService
}

func NewMoodMetricHandler(moodMetricSvc service.MoodMetricService) *MoodMetricHandler {
	return &MoodMetricHandler{
		moodMetricSvc: moodMetricSvc,
	}
}

func (s *MoodMetricHandler) GetMetrics7Days(c *gin.Context) {
	metrics, err := s.moodMetricSvc.GetMoodMetricsBy7Days(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toMoodTrend(7, metrics))
}

func (s *MoodMetricHandler) GetMetrics30Days(c *gin.Context) {
	metrics, err := s.moodMetricSvc.GetMoodMetricsBy30Days(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toMoodTrend(30, metrics))
}

func toMoodTrend(days int, metrics []*model.MoodDailyMetric) *dto.MoodTrendDTO {
	list := make([]*dto.MoodMetricDTO, 0, len(metrics))
	for _, m := range metrics {
		list = append(list, &dto.MoodMetricDTO{
			Date:      m.MetricDate.Format(time.DateOnly),
			MoodScore: m.MoodScore,
			Uplifting: m.Uplifting,
			Negative:  m.Negative,
			Neutral:   m.Neutral,
			Toxic:     m.Toxic,
		})
	}
	return &dto.MoodTrendDTO{Days: days, List: list}
}
