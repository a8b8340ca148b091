package models

import "time"

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// ChatMessage is one turn of a document Q&A conversation. Messages are
// created in pairs per question (user question, assistant answer) and never
// updated.
type ChatMessage struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Content    string      `gorm:"type:text;not null" json:"content"`
	Role       MessageRole `gorm:"type:varchar(20);not null" json:"role"`
	DocumentID uint        `gorm:"index;not null" json:"document_id"`
	UserID     uint        `gorm:"index;not null" json:"user_id"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
