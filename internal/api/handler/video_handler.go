package handler

import (
	"Manorakshak/internal/api/dto"
	"Manorakshak/internal/model"
	"Manorakshak/internal/pkg/response"
	"Manorakshak/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	wellbeingSvc service.WellbeingService
}

func NewVideoHandler(wellbeingSvc service.WellbeingService) *VideoHandler {
	return &VideoHandler{
		wellbeingSvc: wellbeingSvc,
	}
}

func (s *VideoHandler) AddVideoHistory(c *gin.Context) {
	var req dto.VideoHistoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	video := s.wellbeingSvc.AddVideo(c.Request.Context(), &model.VideoHistoryEntry{
		Title:     req.Title,
		Duration:  req.Duration,
		Category:  req.Category,
		Sentiment: model.Sentiment(req.Sentiment),
		Platform:  req.Platform,
	})
	response.Success(c, &dto.VideoResultDTO{Video: video})
}

func (s *VideoHandler) GetVideoAnalytics(c *gin.Context) {
	response.Success(c, s.wellbeingSvc.GetVideoAnalytics(c.Request.Context()))
}
