package models

import "time"

// Note is a personal annotation, optionally attached to a news item or to one
// of the user's own documents.
type Note struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	NewsID     *uint     `gorm:"index" json:"news_id,omitempty"`
	DocumentID *uint     `gorm:"index" json:"document_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
