package handler

import (
	"Manorakshak/internal/api/dto"
	"Manorakshak/internal/model"
	"Manorakshak/internal/pkg/response"
	"Manorakshak/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	wellbeingSvc service.WellbeingService
}

func NewContentHandler(wellbeingSvc service.WellbeingService) *ContentHandler {
	return &ContentHandler{
		wellbeingSvc: wellbeingSvc,
	}
}

// AnalyzeContent 分类一条内容并更新统计
func (s *ContentHandler) AnalyzeContent(c *gin.Context) {
	var req dto.AnalyzeContentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	label, err := s.wellbeingSvc.AnalyzeContent(c.Request.Context(), &model.ContentObservation{
		Text:        req.Text,
		Platform:    req.Platform,
		ContentType: req.ContentType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.AnalyzeResultDTO{Sentiment: label, Updated: true})
}

func (s *ContentHandler) AddAlert(c *gin.Context) {
	var req dto.AddAlertDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	alert, err := s.wellbeingSvc.AddAlert(c.Request.Context(), req.Message, model.AlertType(req.Type), req.Platform)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.AlertResultDTO{Alert: alert})
}

func (s *ContentHandler) GetInsights(c *gin.Context) {
	insights, recent := s.wellbeingSvc.GetInsights(c.Request.Context())
	response.Success(c, &dto.InsightsDTO{
		Insights:        insights,
		AnalyzedContent: recent,
	})
}
