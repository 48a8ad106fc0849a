package models

import (
	"errors"
	"time"
)

// Word learning statuses
const (
	StatusKnown    = "known"
	StatusLearning = "learning"
	StatusTarget   = "target"
)

// IsValidStatus checks if a learning status is valid
func IsValidStatus(status string) bool {
	switch status {
	case StatusKnown, StatusLearning, StatusTarget:
		return true
	}
	return false
}

// ProgressEntry records one user's learning status for one word.
// At most one entry exists per (user_id, word_id) pair; updates
// overwrite the status in place.
type ProgressEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID    string    `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:idx_user_word"`
	WordID    string    `json:"word_id" gorm:"column:word_id;type:varchar(255);not null;uniqueIndex:idx_user_word"`
	Status    string    `json:"status" gorm:"column:status;type:varchar(20);not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the ProgressEntry model
func (ProgressEntry) TableName() string {
	return "progress_entries"
}

// Validate validates the progress entry data
func (p *ProgressEntry) Validate() error {
	if p.UserID == "" {
		return errors.New("user_id is required")
	}
	if p.WordID == "" {
		return errors.New("word_id is required")
	}
	if !IsValidStatus(p.Status) {
		return errors.New("status must be one of known, learning, target")
	}
	return nil
}
