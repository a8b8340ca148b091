package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"aitax/internal/models"
	"aitax/pkg/logger"
)

// SummaryGenerator explains why a tax news item matters to a specific company.
// Generated summaries are cached in Redis so repeated reads of the same news
// item do not re-bill the chat model.
type SummaryGenerator struct {
	llm      TextGenerator
	cache    *redis.Client // May be nil; caching is then skipped.
	cacheTTL time.Duration
	log      *logger.Logger
}

// NewSummaryGenerator creates a SummaryGenerator. cache may be nil to disable
// caching.
func NewSummaryGenerator(llm TextGenerator, cache *redis.Client, cacheTTL time.Duration, log *logger.Logger) *SummaryGenerator {
	return &SummaryGenerator{
		llm:      llm,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Summarize returns a personalized relevance summary of the news item for the
// company described by profile.
func (g *SummaryGenerator) Summarize(ctx context.Context, news *models.News, profile *models.CompanyProfile) (string, error) {
	cacheKey := fmt.Sprintf("news_summary:%d:%d", profile.UserID, news.ID)

	if g.cache != nil {
		cached, err := g.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			g.log.Warn(fmt.Sprintf("Summary cache read failed for %s: %v", cacheKey, err))
		}
	}

	prompt := buildSummaryPrompt(news, profile)

	summary, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate personalized summary: %w", err)
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, cacheKey, summary, g.cacheTTL).Err(); err != nil {
			g.log.Warn(fmt.Sprintf("Summary cache write failed for %s: %v", cacheKey, err))
		}
	}
	return summary, nil
}

// buildSummaryPrompt fills the advisor template with the company's tax
// profile and the news item.
func buildSummaryPrompt(news *models.News, profile *models.CompanyProfile) string {
	var sb strings.Builder

	sb.WriteString("You are an AI tax advisor for a company with the following profile:\n\n")
	sb.WriteString(fmt.Sprintf("Company Name: %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("NIP (Tax ID): %s\n", profile.NIP))
	sb.WriteString(fmt.Sprintf("VAT ID: %s\n", orPlaceholder(profile.VATID, "Not provided")))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", orPlaceholder(profile.Industry, "Not specified")))
	sb.WriteString(fmt.Sprintf("Company Type: %s\n", orPlaceholder(string(profile.CompanyType), "Not specified")))
	sb.WriteString(fmt.Sprintf("PKD Code: %s\n\n", orPlaceholder(profile.PKDCode, "Not specified")))

	sb.WriteString("Tax Information:\n")
	sb.WriteString(fmt.Sprintf("- Uses reduced CIT rate (9%%): %s\n", yesNo(profile.CITRateReduced)))
	sb.WriteString(fmt.Sprintf("- Uses Estonian CIT: %s\n", yesNo(profile.EstonianCIT)))
	sb.WriteString(fmt.Sprintf("- Revenue Range: %s\n", orPlaceholder(string(profile.RevenueRange), "Not specified")))
	sb.WriteString(fmt.Sprintf("- Has related party transactions > 10M PLN: %s\n", yesNo(profile.RelatedPartyTransactions)))
	sb.WriteString(fmt.Sprintf("- Uses R&D tax relief: %s\n", yesNo(profile.RDRelief)))
	if profile.EmployeeCount > 0 {
		sb.WriteString(fmt.Sprintf("- Employee Count: %d\n", profile.EmployeeCount))
	} else {
		sb.WriteString("- Employee Count: Not specified\n")
	}
	if profile.AnnualRevenue > 0 {
		sb.WriteString(fmt.Sprintf("- Annual Revenue: %d PLN\n\n", profile.AnnualRevenue))
	} else {
		sb.WriteString("- Annual Revenue: Not specified PLN\n\n")
	}

	sb.WriteString("I want you to explain why the following tax news is relevant to this specific company:\n\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", news.Title))
	sb.WriteString(fmt.Sprintf("Category: %s\n", news.Category))
	sb.WriteString(fmt.Sprintf("Content: %s\n\n", news.Content))

	sb.WriteString("Provide a personalized explanation (2-3 paragraphs) of why this news matters to this specific company, ")
	sb.WriteString("considering their profile, tax situation, and business characteristics. Be specific and actionable.")

	return sb.String()
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
