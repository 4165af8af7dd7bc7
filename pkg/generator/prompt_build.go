package generator

import (
	"fmt"
	"strings"

	"sitegen-api/pkg/catalog"
)

const topRecommendationCount = 3

// buildPromptInputs assembles the dynamic sections of the homepage prompt.
// Deterministic and I/O-free: the same request always yields the same inputs.
func buildPromptInputs(req *Request) PromptInputs {
	biz := req.Business
	return PromptInputs{
		BusinessName:       strings.TrimSpace(biz.Name),
		BusinessType:       strings.TrimSpace(biz.BusinessType),
		Industry:           string(catalog.Normalize(biz.Industry)),
		Description:        strings.TrimSpace(biz.Description),
		Services:           formatServices(biz.Services),
		Location:           strings.TrimSpace(biz.Location),
		Phone:              strings.TrimSpace(biz.Phone),
		Email:              strings.TrimSpace(biz.Email),
		StylePreference:    string(req.Style),
		TopRecommendations: formatTopRecommendations(req.Recommendations),
		IndustryGuidance:   catalog.TemplateFor(biz.Industry),
		ColorScheme:        strings.TrimSpace(req.ColorScheme),
		IncludeBooking:     req.IncludeBooking,
	}
}

func formatServices(services []string) string {
	kept := make([]string, 0, len(services))
	for _, s := range services {
		s = strings.TrimSpace(s)
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return "(none listed)"
	}
	return strings.Join(kept, ", ")
}

// formatTopRecommendations renders the first few recommendations as
// "title: description" lines.
func formatTopRecommendations(recs []RecommendationItem) string {
	if len(recs) == 0 {
		return "(none)"
	}
	limit := len(recs)
	if limit > topRecommendationCount {
		limit = topRecommendationCount
	}
	lines := make([]string, 0, limit)
	for _, rec := range recs[:limit] {
		lines = append(lines, fmt.Sprintf("- %s: %s", strings.TrimSpace(rec.Title), strings.TrimSpace(rec.Description)))
	}
	return strings.Join(lines, "\n")
}
