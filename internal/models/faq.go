package models

// FAQStatus represents whether a FAQ entry is shown publicly
type FAQStatus string

const (
	FAQStatusActive   FAQStatus = "active"
	FAQStatusInactive FAQStatus = "inactive"
)

// FAQ is a question/answer pair displayed in order_index order
type FAQ struct {
	ID         int64     `json:"id" db:"id"`
	Question   string    `json:"question" db:"question"`
	Answer     string    `json:"answer" db:"answer"`
	OrderIndex int       `json:"order_index" db:"order_index"`
	Status     FAQStatus `json:"status" db:"status"`
}

// FAQInput is the JSON payload of FAQ create/update
type FAQInput struct {
	Question   string    `json:"question" validate:"required"`
	Answer     string    `json:"answer" validate:"required"`
	OrderIndex int       `json:"order_index" validate:"gte=0"`
	Status     FAQStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}
