package models

import "time"

// TaxCategory classifies a news item by tax area.
type TaxCategory string

const (
	CategoryVAT              TaxCategory = "VAT"
	CategoryCIT              TaxCategory = "CIT"
	CategoryPIT              TaxCategory = "PIT"
	CategoryTransferPricing  TaxCategory = "Transfer Pricing"
	CategoryTaxProcedure     TaxCategory = "Tax Procedure"
	CategoryInternationalTax TaxCategory = "International Tax"
	CategoryOther            TaxCategory = "Other"
)

// News is a curated tax news item, visible to all users. Only admins may
// create or modify news.
type News struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Title         string      `gorm:"not null;size:512" json:"title"`
	Content       string      `gorm:"type:text;not null" json:"content"`
	Summary       string      `gorm:"type:text;not null" json:"summary"`
	Category      TaxCategory `gorm:"type:varchar(30);not null" json:"category"`
	SourceURL     string      `gorm:"size:512" json:"source_url,omitempty"`
	PublishedDate time.Time   `gorm:"not null" json:"published_date"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}
