package handler

import (
	"Manorakshak/internal/api/dto"
	"Manorakshak/internal/pkg/response"
	"Manorakshak/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
	}
}

func (s *ReportHandler) GenerateReport(c *gin.Context) {
	response.Success(c, &dto.ReportDTO{Report: s.reportSvc.GenerateReport(c.Request.Context())})
}

func (s *ReportHandler) GetSuggestions(c *gin.Context) {
	response.Success(c, &dto.SuggestionsDTO{Suggestions: s.reportSvc.GetSuggestions(c.Request.Context())})
}

func (s *ReportHandler) SummarizeContent(c *gin.Context) {
	var req dto.SummarizeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	summary, err := s.reportSvc.SummarizeContent(c.Request.Context(), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.SummaryDTO{Summary: summary})
}
