package models

import (
	"errors"
	"time"
)

// Word represents a single vocabulary entry
type Word struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Term      string    `json:"term" gorm:"column:term;type:varchar(255);not null;index"`
	Meaning   string    `json:"meaning" gorm:"column:meaning;type:text;not null"`
	Example   *string   `json:"example" gorm:"column:example;type:text"`
	Level     string    `json:"level" gorm:"column:level;type:varchar(10);index"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Word model
func (Word) TableName() string {
	return "words"
}

// WordLevels are the accepted proficiency levels
var WordLevels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// IsValidLevel checks if a proficiency level is valid
func IsValidLevel(level string) bool {
	for _, l := range WordLevels {
		if level == l {
			return true
		}
	}
	return false
}

// Validate validates the word data
func (w *Word) Validate() error {
	if w.Term == "" {
		return errors.New("term is required")
	}
	if w.Meaning == "" {
		return errors.New("meaning is required")
	}
	if w.Level != "" && !IsValidLevel(w.Level) {
		return errors.New("level must be one of A1, A2, B1, B2, C1, C2")
	}
	return nil
}

// WordFilter represents filters for querying words
type WordFilter struct {
	Search string
	Level  string
	Page   int
	Limit  int
}

// Normalize clamps pagination values to sane defaults.
func (f *WordFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// WordPage is one page of word records plus pagination metadata
type WordPage struct {
	Items      []*Word `json:"items"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"total_pages"`
}
