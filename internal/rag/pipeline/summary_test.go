package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitax/internal/models"
	"aitax/pkg/logger"
)

func TestSummarize_WithoutCache(t *testing.T) {
	llm := &stubGenerator{response: "This matters because your company uses the reduced CIT rate."}
	generator := NewSummaryGenerator(llm, nil, time.Minute, logger.New("test"))

	news := &models.News{
		ID:       2,
		Title:    "Reduced CIT Rate Extended for SMEs in 2026",
		Category: models.CategoryCIT,
		Content:  "The reduced 9% rate is extended.",
	}
	profile := &models.CompanyProfile{
		UserID:         4,
		Name:           "Widgety Sp. z o.o.",
		NIP:            "1234567890",
		CompanyType:    models.CompanySpZOO,
		CITRateReduced: true,
		EmployeeCount:  12,
	}

	summary, err := generator.Summarize(context.Background(), news, profile)
	require.NoError(t, err)
	assert.Equal(t, llm.response, summary)
}

func TestSummarize_PromptCoversProfileAndNews(t *testing.T) {
	llm := &stubGenerator{response: "ok"}
	generator := NewSummaryGenerator(llm, nil, time.Minute, logger.New("test"))

	news := &models.News{
		ID:       7,
		Title:    "Transfer Pricing Documentation Thresholds Updated",
		Category: models.CategoryTransferPricing,
		Content:  "Thresholds increased for 2026.",
	}
	profile := &models.CompanyProfile{
		UserID:                   1,
		Name:                     "Grot S.A.",
		NIP:                      "9876543210",
		RelatedPartyTransactions: true,
	}

	_, err := generator.Summarize(context.Background(), news, profile)
	require.NoError(t, err)

	assert.Contains(t, llm.prompt, "Company Name: Grot S.A.")
	assert.Contains(t, llm.prompt, "NIP (Tax ID): 9876543210")
	assert.Contains(t, llm.prompt, "Has related party transactions > 10M PLN: Yes")
	assert.Contains(t, llm.prompt, "Uses reduced CIT rate (9%): No")
	assert.Contains(t, llm.prompt, "VAT ID: Not provided")
	assert.Contains(t, llm.prompt, "Employee Count: Not specified")
	assert.Contains(t, llm.prompt, "Title: Transfer Pricing Documentation Thresholds Updated")
	assert.Contains(t, llm.prompt, "Category: Transfer Pricing")
}

func TestSummarize_GenerationFailure(t *testing.T) {
	llm := &stubGenerator{err: errors.New("model unavailable")}
	generator := NewSummaryGenerator(llm, nil, time.Minute, logger.New("test"))

	_, err := generator.Summarize(context.Background(), &models.News{ID: 1}, &models.CompanyProfile{UserID: 1, Name: "X", NIP: "0000000000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate personalized summary")
}
