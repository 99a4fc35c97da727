package dto

import "fitness-backend/pkg/scalar"

type CreateProgressRequest struct {
	Weight       *float64   `json:"weight"`
	BodyFat      *float64   `json:"body_fat"`
	Measurements scalar.Map `json:"measurements"`
	Notes        string     `json:"notes"`
}
