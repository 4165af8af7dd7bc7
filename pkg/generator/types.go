package generator

import "time"

// StylePreference selects the overall visual direction of a generated page.
type StylePreference string

const (
	StyleModern       StylePreference = "modern"
	StyleClassic      StylePreference = "classic"
	StyleMinimal      StylePreference = "minimal"
	StyleBold         StylePreference = "bold"
	StyleProfessional StylePreference = "professional"
)

// Valid reports whether the style belongs to the closed enumeration.
func (s StylePreference) Valid() bool {
	switch s {
	case StyleModern, StyleClassic, StyleMinimal, StyleBold, StyleProfessional:
		return true
	default:
		return false
	}
}

// Known recommendation types. The type field is an open string, but only
// these drive behaviour; anything else falls through to defaults.
const (
	RecTypeDesignImprovement      = "design_improvement"
	RecTypeMobileOptimization     = "mobile_optimization"
	RecTypeSEOOptimization        = "seo_optimization"
	RecTypeConversionOptimization = "conversion_optimization"
	RecTypePerformanceBoost       = "performance_boost"
)

// BusinessContext is the sanitized, structured description of the business
// being given a homepage. Immutable once constructed for a request.
type BusinessContext struct {
	Name         string   `json:"name"`
	BusinessType string   `json:"businessType"`
	Industry     string   `json:"industry"`
	Description  string   `json:"description"`
	Services     []string `json:"services"`
	Location     string   `json:"location"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Confidence   float64  `json:"confidence"`
}

// RecommendationItem is a read-only improvement suggestion produced by the
// upstream website analysis.
type RecommendationItem struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Priority        string `json:"priority"`
	EstimatedEffort string `json:"estimatedEffort"`
}

// Request carries everything one generation call needs. Inputs are assumed
// validated by the caller (style membership, color token shape, ranges).
type Request struct {
	Business        BusinessContext      `json:"business"`
	Recommendations []RecommendationItem `json:"recommendations"`
	Style           StylePreference      `json:"style"`
	IncludeBooking  bool                 `json:"includeBooking"`
	ColorScheme     string               `json:"colorScheme,omitempty"`
}

// Result is the outcome of one generation call. Never mutated after return;
// the caller owns storage.
type Result struct {
	ID                   string          `json:"id"`
	BusinessName         string          `json:"businessName"`
	GeneratedAt          time.Time       `json:"generatedAt"`
	HTMLCode             string          `json:"htmlCode"`
	CSSCode              string          `json:"cssCode"`
	JSCode               string          `json:"jsCode,omitempty"`
	StyleApplied         StylePreference `json:"styleApplied"`
	FeaturesIncluded     []string        `json:"featuresIncluded"`
	EstimatedImprovement string          `json:"estimatedImprovement"`
	GenerationTimeMs     int64           `json:"generationTimeMs"`
}
