package dto

import authdomain "fitness-backend/internal/auth/domain"

type SessionDataResponse struct {
	User         *authdomain.User `json:"user"`
	SessionToken string           `json:"session_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
