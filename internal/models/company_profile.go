package models

import "time"

// CompanyType is the legal form of the company.
type CompanyType string

const (
	CompanySpZOO CompanyType = "Sp. z o.o."
	CompanySA    CompanyType = "S.A."
	CompanyJDG   CompanyType = "JDG"
	CompanyOther CompanyType = "Inna"
)

// RevenueRange buckets annual revenue for VAT-threshold purposes.
type RevenueRange string

const (
	RevenueBelow200K RevenueRange = "<200 k"
	RevenueAbove200K RevenueRange = ">200 k"
)

// CompanyProfile describes the user's company for tax purposes. It drives the
// personalization of news summaries. Exactly one profile per user.
type CompanyProfile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name   string `gorm:"not null;size:255" json:"name"`
	NIP    string `gorm:"not null;size:10" json:"nip"`
	VATID  string `gorm:"size:12" json:"vat_id,omitempty"` // "PL" + 10 digits

	Industry    string      `gorm:"size:255" json:"industry,omitempty"`
	CompanyType CompanyType `gorm:"type:varchar(20)" json:"company_type,omitempty"`
	PKDCode     string      `gorm:"size:10" json:"pkd_code,omitempty"` // e.g. "62.01.Z"

	CITRateReduced           bool         `json:"cit_rate_reduced"`
	EstonianCIT              bool         `json:"estonian_cit"`
	RevenueRange             RevenueRange `gorm:"type:varchar(10)" json:"revenue_range,omitempty"`
	RelatedPartyTransactions bool         `json:"related_party_transactions"` // > 10M PLN
	RDRelief                 bool         `json:"rd_relief"`

	EmployeeCount int   `json:"employee_count,omitempty"`
	AnnualRevenue int64 `json:"annual_revenue,omitempty"` // PLN

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}
