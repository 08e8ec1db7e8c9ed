package dto

import "Manorakshak/internal/model"

type AddGoalDTO struct {
	Goal string `json:"goal" binding:"required,max=200"`
}

type GoalsDTO struct {
	Goals []model.Goal `json:"goals"`
}
