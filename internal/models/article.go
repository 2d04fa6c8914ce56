package models

import (
	"time"
)

// ArticleStatus represents the publication state of an article
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Article represents a news/blog article with at most one image
type Article struct {
	ID        int64         `json:"id" db:"id"`
	Title     string        `json:"title" db:"title"`
	Content   string        `json:"content" db:"content"`
	Excerpt   string        `json:"excerpt" db:"excerpt"`
	ImagePath *string       `json:"image_path" db:"image_path"`
	Status    ArticleStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// ArticleForm is the raw multipart payload of an article create/update
type ArticleForm struct {
	Title   string `form:"title" validate:"required,max=255"`
	Content string `form:"content" validate:"required"`
	Excerpt string `form:"excerpt" validate:"max=1000"`
	Status  string `form:"status" validate:"omitempty,oneof=draft published"`
}

// ArticleInput is a validated article payload
type ArticleInput struct {
	Title   string
	Content string
	Excerpt string
	Status  ArticleStatus
}
