package model

import (
	"time"
)

// Timestamps are filled by GORM on create and update (UTC, see database.New)
type Timestamps struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}
