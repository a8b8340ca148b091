package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aitax/internal/models"
)

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfileRequest is the JSON body for creating a company profile.
type CreateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	NIP   string `json:"nip" binding:"required,len=10"`
	VATID string `json:"vat_id"`

	Industry    string             `json:"industry"`
	CompanyType models.CompanyType `json:"company_type"`
	PKDCode     string             `json:"pkd_code"`

	CITRateReduced           bool                `json:"cit_rate_reduced"`
	EstonianCIT              bool                `json:"estonian_cit"`
	RevenueRange             models.RevenueRange `json:"revenue_range"`
	RelatedPartyTransactions bool                `json:"related_party_transactions"`
	RDRelief                 bool                `json:"rd_relief"`

	EmployeeCount int   `json:"employee_count"`
	AnnualRevenue int64 `json:"annual_revenue"`
}

func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile := &models.CompanyProfile{
		UserID:                   currentUserID(c),
		Name:                     req.Name,
		NIP:                      req.NIP,
		VATID:                    req.VATID,
		Industry:                 req.Industry,
		CompanyType:              req.CompanyType,
		PKDCode:                  req.PKDCode,
		CITRateReduced:           req.CITRateReduced,
		EstonianCIT:              req.EstonianCIT,
		RevenueRange:             req.RevenueRange,
		RelatedPartyTransactions: req.RelatedPartyTransactions,
		RDRelief:                 req.RDRelief,
		EmployeeCount:            req.EmployeeCount,
		AnnualRevenue:            req.AnnualRevenue,
	}
	created, err := h.profiles.Create(c.Request.Context(), profile)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProfileRequest carries optional fields; only set fields are applied.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	NIP   *string `json:"nip"`
	VATID *string `json:"vat_id"`

	Industry    *string             `json:"industry"`
	CompanyType *models.CompanyType `json:"company_type"`
	PKDCode     *string             `json:"pkd_code"`

	CITRateReduced           *bool                `json:"cit_rate_reduced"`
	EstonianCIT              *bool                `json:"estonian_cit"`
	RevenueRange             *models.RevenueRange `json:"revenue_range"`
	RelatedPartyTransactions *bool                `json:"related_party_transactions"`
	RDRelief                 *bool                `json:"rd_relief"`

	EmployeeCount *int   `json:"employee_count"`
	AnnualRevenue *int64 `json:"annual_revenue"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.NIP != nil {
		updates["nip"] = *req.NIP
	}
	if req.VATID != nil {
		updates["vat_id"] = *req.VATID
	}
	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}
	if req.CompanyType != nil {
		updates["company_type"] = *req.CompanyType
	}
	if req.PKDCode != nil {
		updates["pkd_code"] = *req.PKDCode
	}
	if req.CITRateReduced != nil {
		updates["cit_rate_reduced"] = *req.CITRateReduced
	}
	if req.EstonianCIT != nil {
		updates["estonian_cit"] = *req.EstonianCIT
	}
	if req.RevenueRange != nil {
		updates["revenue_range"] = *req.RevenueRange
	}
	if req.RelatedPartyTransactions != nil {
		updates["related_party_transactions"] = *req.RelatedPartyTransactions
	}
	if req.RDRelief != nil {
		updates["rd_relief"] = *req.RDRelief
	}
	if req.EmployeeCount != nil {
		updates["employee_count"] = *req.EmployeeCount
	}
	if req.AnnualRevenue != nil {
		updates["annual_revenue"] = *req.AnnualRevenue
	}

	profile, err := h.profiles.Update(c.Request.Context(), currentUserID(c), updates)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
