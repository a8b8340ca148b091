package models

import "time"

// DocumentType is the declared type of an uploaded file.
type DocumentType string

const (
	DocumentTypePDF DocumentType = "pdf"
	DocumentTypeTXT DocumentType = "txt"
)

// Document is an uploaded tax document. The file itself lives on disk at
// FilePath; its extracted chunks live in the vector store keyed by this
// record's ID.
type Document struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"index;not null" json:"user_id"`
	Title       string       `gorm:"not null;size:255" json:"title"`
	Description string       `gorm:"size:1024" json:"description,omitempty"`
	FilePath    string       `gorm:"not null;size:512" json:"file_path"`
	FileType    DocumentType `gorm:"type:varchar(10);not null" json:"file_type"`
	FileSize    int64        `gorm:"not null" json:"file_size"` // Bytes
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}
