package models

import (
	"errors"
	"time"
)

// Post represents a blog post
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Title     string    `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Slug      string    `json:"slug" gorm:"column:slug;type:varchar(255);not null;uniqueIndex"`
	Body      string    `json:"body" gorm:"column:body;type:text;not null"`
	Tag       *string   `json:"tag" gorm:"column:tag;type:varchar(100);index"`
	Likes     int64     `json:"likes" gorm:"column:likes;not null;default:0"`
	Published bool      `json:"published" gorm:"column:published;not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Post model
func (Post) TableName() string { return "posts" }

// Validate validates the post data
func (p *Post) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Slug == "" {
		return errors.New("slug is required")
	}
	if p.Body == "" {
		return errors.New("body is required")
	}
	return nil
}

// Work represents a portfolio item
type Work struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Title       string    `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	Link        *string   `json:"link" gorm:"column:link;type:varchar(500)"`
	Stack       *string   `json:"stack" gorm:"column:stack;type:varchar(255)"`
	SortOrder   int       `json:"sort_order" gorm:"column:sort_order;not null;default:0;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Work model
func (Work) TableName() string { return "works" }

// Validate validates the work data
func (w *Work) Validate() error {
	if w.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// Recommendation represents a recommended book, tool or link
type Recommendation struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Title     string    `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Category  string    `json:"category" gorm:"column:category;type:varchar(100);index"`
	Link      *string   `json:"link" gorm:"column:link;type:varchar(500)"`
	Note      *string   `json:"note" gorm:"column:note;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Recommendation model
func (Recommendation) TableName() string { return "recommendations" }

// Validate validates the recommendation data
func (r *Recommendation) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// Suggestion represents a visitor-submitted suggestion
type Suggestion struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Content   string    `json:"content" gorm:"column:content;type:text;not null"`
	Author    *string   `json:"author" gorm:"column:author;type:varchar(255)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the Suggestion model
func (Suggestion) TableName() string { return "suggestions" }

// Validate validates the suggestion data
func (s *Suggestion) Validate() error {
	if s.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

// Contact represents a contact-form message
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Name      string    `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"column:email;type:varchar(255);not null"`
	Message   string    `json:"message" gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the Contact model
func (Contact) TableName() string { return "contacts" }

// Validate validates the contact data
func (c *Contact) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.Message == "" {
		return errors.New("message is required")
	}
	return nil
}
