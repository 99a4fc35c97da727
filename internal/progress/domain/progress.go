package domain

import (
	"time"

	"fitness-backend/pkg/scalar"
)

// Progress is an append-only body snapshot owned by one user
type Progress struct {
	ID           string     `json:"id" bson:"_id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" bson:"user_id" gorm:"index:idx_progress_user_date,priority:1;not null"`
	Date         time.Time  `json:"date" bson:"date" gorm:"index:idx_progress_user_date,priority:2"`
	Weight       *float64   `json:"weight" bson:"weight"`
	BodyFat      *float64   `json:"body_fat" bson:"body_fat"`
	Measurements scalar.Map `json:"measurements" bson:"measurements" gorm:"serializer:json"`
	Notes        string     `json:"notes" bson:"notes"`
}

func (Progress) TableName() string {
	return "progress"
}
