package handler

import (
	"Manorakshak/internal/api/dto"
	"Manorakshak/internal/pkg/response"
	"Manorakshak/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type DashboardHandler struct {
	wellbeingSvc service.WellbeingService
}

func NewDashboardHandler(wellbeingSvc service.WellbeingService) *DashboardHandler {
	return &DashboardHandler{
		wellbeingSvc: wellbeingSvc,
	}
}

func (s *DashboardHandler) GetDashboard(c *gin.Context) {
	snapshot := s.wellbeingSvc.GetDashboard(c.Request.Context())
	dashboardDTO := &dto.DashboardDTO{}
	if err := copier.Copy(dashboardDTO, snapshot); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dashboardDTO)
}

// SetMood 手动设置心情分
func (s *DashboardHandler) SetMood(c *gin.Context) {
	var req dto.MoodDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	score := s.wellbeingSvc.SetMoodScore(c.Request.Context(), *req.Score)
	response.Success(c, &dto.MoodResultDTO{MoodScore: score})
}

func (s *DashboardHandler) SetCalmMode(c *gin.Context) {
	var req dto.CalmModeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	s.wellbeingSvc.SetCalmMode(c.Request.Context(), *req.Enabled)
	response.Success(c, &dto.CalmModeResultDTO{CalmMode: *req.Enabled})
}

// GetFlushStatus 最近一次持久化结果
func (s *DashboardHandler) GetFlushStatus(c *gin.Context) {
	response.Success(c, s.wellbeingSvc.GetFlushStatus(c.Request.Context()))
}
