package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderModel mirrors the 'reminders' table.
type ReminderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Body         string    `gorm:"type:text"`
	DueAt        time.Time `gorm:"not null;index"`
	DispatchedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReminderModel) TableName() string {
	return "reminders"
}
