package handler

import (
	"Manorakshak/internal/api/dto"
	"Manorakshak/internal/pkg/response"
	"Manorakshak/internal/service"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	wellbeingSvc service.WellbeingService
}

func NewGoalHandler(wellbeingSvc service.WellbeingService) *GoalHandler {
	return &GoalHandler{
		wellbeingSvc: wellbeingSvc,
	}
}

func (s *GoalHandler) GetGoals(c *gin.Context) {
	response.Success(c, &dto.GoalsDTO{Goals: s.wellbeingSvc.GetGoals(c.Request.Context())})
}

// AddGoal 添加目标，返回全部目标
func (s *GoalHandler) AddGoal(c *gin.Context) {
	var req dto.AddGoalDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if _, err := s.wellbeingSvc.AddGoal(c.Request.Context(), req.Goal); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.GoalsDTO{Goals: s.wellbeingSvc.GetGoals(c.Request.Context())})
}
