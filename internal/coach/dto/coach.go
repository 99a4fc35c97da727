package dto

import "fitness-backend/pkg/scalar"

type AskRequest struct {
	Question string     `json:"question" binding:"required"`
	Context  scalar.Map `json:"context"`
}

type AskResponse struct {
	Response string `json:"response"`
}
