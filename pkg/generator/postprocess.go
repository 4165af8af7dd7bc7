package generator

import (
	"fmt"
	"strings"

	"sitegen-api/pkg/catalog"
)

// customSchemePalette is what an explicitly supplied color scheme currently
// resolves to, regardless of its value. Observable behaviour preserved as-is;
// the postprocess tests flag it.
var customSchemePalette = catalog.Palette{
	Primary:   "#2563EB",
	Secondary: "#1E40AF",
	Accent:    "#F59E0B",
}

const colorVariablesTemplate = `:root {
  --primary-color: %s;
  --secondary-color: %s;
  --accent-color: %s;
}

.btn-primary {
  background-color: var(--primary-color);
  transition: transform 0.2s ease, box-shadow 0.2s ease;
}

.btn-primary:hover {
  transform: translateY(-2px);
  box-shadow: 0 8px 20px rgba(0, 0, 0, 0.15);
}

.card:hover {
  transform: scale(1.02);
}

@media (max-width: 768px) {
  .hero {
    padding: 2rem 1rem;
    text-align: center;
  }
}
`

// ColorVariables derives the custom CSS block for a generated page. Without
// an explicit scheme the industry palette applies; the three colors are
// always exposed as named variables for the generated markup.
func ColorVariables(biz BusinessContext, colorScheme string) string {
	palette := catalog.PaletteFor(biz.Industry)
	if strings.TrimSpace(colorScheme) != "" {
		palette = customSchemePalette
	}
	return fmt.Sprintf(colorVariablesTemplate, palette.Primary, palette.Secondary, palette.Accent)
}

// recommendationFeatures maps known recommendation types to the feature token
// each contributes, checked by presence and appended in this fixed order.
var recommendationFeatures = []struct {
	recType string
	feature string
}{
	{RecTypeMobileOptimization, "mobile_optimized"},
	{RecTypeSEOOptimization, "seo_friendly"},
	{RecTypeConversionOptimization, "conversion_focused"},
}

// FeaturesIncluded derives the ordered feature list for a generated page.
// Append-only, not a set: ordering is part of the contract.
func FeaturesIncluded(recs []RecommendationItem, includeBooking bool, style StylePreference) []string {
	features := []string{"responsive_design", "modern_layout"}

	if style == StyleModern {
		features = append(features, "modern_typography", "gradient_backgrounds")
	}

	for _, m := range recommendationFeatures {
		if hasRecommendationType(recs, m.recType) {
			features = append(features, m.feature)
		}
	}

	if includeBooking {
		features = append(features, "booking_integration")
	}

	return append(features, "call_to_action", "contact_section", "services_showcase")
}

func hasRecommendationType(recs []RecommendationItem, recType string) bool {
	for _, rec := range recs {
		if rec.Type == recType {
			return true
		}
	}
	return false
}

// improvementPhrase translates a recommendation type into reader-facing copy.
func improvementPhrase(recType string) string {
	switch recType {
	case RecTypeDesignImprovement:
		return "modern design"
	case RecTypeMobileOptimization:
		return "mobile optimization"
	case RecTypeSEOOptimization:
		return "SEO optimization"
	case RecTypeConversionOptimization:
		return "conversion optimization"
	case RecTypePerformanceBoost:
		return "performance improvements"
	default:
		return "website enhancement"
	}
}

// ImprovementNarrative builds the human-readable improvement summary: the
// first three distinct phrases, an overflow count, and fixed totals.
func ImprovementNarrative(recs []RecommendationItem, features []string) string {
	var phrases []string
	seen := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		phrase := improvementPhrase(rec.Type)
		if _, ok := seen[phrase]; ok {
			continue
		}
		seen[phrase] = struct{}{}
		phrases = append(phrases, phrase)
	}

	top := phrases
	if len(top) > 3 {
		top = top[:3]
	}
	summary := strings.Join(top, ", ")
	if len(phrases) > 3 {
		summary += fmt.Sprintf(" and %d other improvements", len(phrases)-3)
	}

	return fmt.Sprintf(
		"Implemented %d key improvements: %s. Features %d modern web components with responsive design.",
		len(recs), summary, len(features),
	)
}

// BookingScript is the fixed companion script emitted when booking is
// requested: it wires every element carrying the booking marker attribute to
// the booking flow. Not AI-generated.
const BookingScript = `document.addEventListener('DOMContentLoaded', function () {
  var triggers = document.querySelectorAll('[data-booking]');
  triggers.forEach(function (el) {
    el.addEventListener('click', function (event) {
      event.preventDefault();
      var target = el.getAttribute('data-booking-url') || '#booking';
      if (target.indexOf('#') === 0) {
        var section = document.querySelector(target);
        if (section) {
          section.scrollIntoView({ behavior: 'smooth' });
        }
        return;
      }
      window.open(target, '_blank', 'noopener');
    });
  });
});
`
