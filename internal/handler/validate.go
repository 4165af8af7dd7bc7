package handler

import (
	"errors"
	"regexp"
	"strings"

	"sitegen-api/internal/types"
	generatorpkg "sitegen-api/pkg/generator"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

const maxServices = 20

// toGenerationRequest validates the transport request and converts it into
// the pipeline's request type.
func toGenerationRequest(req *types.GenerateRequest) (*generatorpkg.Request, error) {
	if strings.TrimSpace(req.Business.Name) == "" {
		return nil, errors.New("business.name is required")
	}

	if len(req.Business.Services) > maxServices {
		return nil, errors.New("business.services lists too many entries")
	}

	style := generatorpkg.StylePreference(strings.ToLower(strings.TrimSpace(req.Style)))
	if style == "" {
		style = generatorpkg.StyleModern
	}
	if !style.Valid() {
		return nil, errors.New("style must be one of modern|classic|minimal|bold|professional")
	}

	scheme := strings.TrimSpace(req.ColorScheme)
	if scheme != "" && strings.HasPrefix(scheme, "#") && !hexColorRe.MatchString(scheme) {
		return nil, errors.New("colorScheme must be a #RGB or #RRGGBB hex value")
	}

	recs := make([]generatorpkg.RecommendationItem, 0, len(req.Recommendations))
	for _, rec := range req.Recommendations {
		recs = append(recs, generatorpkg.RecommendationItem{
			Type:            rec.Type,
			Title:           rec.Title,
			Description:     rec.Description,
			Priority:        rec.Priority,
			EstimatedEffort: rec.EstimatedEffort,
		})
	}

	return &generatorpkg.Request{
		Business: generatorpkg.BusinessContext{
			Name:         strings.TrimSpace(req.Business.Name),
			BusinessType: req.Business.BusinessType,
			Industry:     req.Business.Industry,
			Description:  req.Business.Description,
			Services:     req.Business.Services,
			Location:     req.Business.Location,
			Phone:        req.Business.Phone,
			Email:        req.Business.Email,
			Confidence:   req.Business.Confidence,
		},
		Recommendations: recs,
		Style:           style,
		IncludeBooking:  req.IncludeBooking,
		ColorScheme:     scheme,
	}, nil
}
