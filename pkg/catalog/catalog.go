// Package catalog maps industry labels to design guidance and color palettes.
// Both lookups are total: any label outside the known set resolves to the
// default entry, so callers never handle a miss.
package catalog

import "strings"

// Industry is a normalized industry label.
type Industry string

const (
	IndustryHomeServices         Industry = "home-services"
	IndustryHealthcare           Industry = "healthcare"
	IndustryRestaurant           Industry = "restaurant"
	IndustryAutomotive           Industry = "automotive"
	IndustryBeautyWellness       Industry = "beauty-wellness"
	IndustryProfessionalServices Industry = "professional-services"
	IndustryRetail               Industry = "retail"
	IndustryGeneral              Industry = "general"
)

// Palette holds the three colors a generated page is themed with.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Normalize maps a raw industry label onto the closed industry set.
// Unknown labels collapse to IndustryGeneral.
func Normalize(raw string) Industry {
	switch Industry(strings.ToLower(strings.TrimSpace(raw))) {
	case IndustryHomeServices:
		return IndustryHomeServices
	case IndustryHealthcare:
		return IndustryHealthcare
	case IndustryRestaurant:
		return IndustryRestaurant
	case IndustryAutomotive:
		return IndustryAutomotive
	case IndustryBeautyWellness:
		return IndustryBeautyWellness
	case IndustryProfessionalServices:
		return IndustryProfessionalServices
	case IndustryRetail:
		return IndustryRetail
	default:
		return IndustryGeneral
	}
}

// PaletteFor returns the fixed palette for an industry label.
func PaletteFor(raw string) Palette {
	switch Normalize(raw) {
	case IndustryHomeServices:
		return Palette{Primary: "#2563EB", Secondary: "#1D4ED8", Accent: "#F97316"}
	case IndustryHealthcare:
		return Palette{Primary: "#10B981", Secondary: "#059669", Accent: "#3B82F6"}
	case IndustryRestaurant:
		return Palette{Primary: "#DC2626", Secondary: "#B91C1C", Accent: "#F59E0B"}
	case IndustryAutomotive:
		return Palette{Primary: "#1F2937", Secondary: "#111827", Accent: "#EF4444"}
	case IndustryBeautyWellness:
		return Palette{Primary: "#EC4899", Secondary: "#DB2777", Accent: "#8B5CF6"}
	case IndustryProfessionalServices:
		return Palette{Primary: "#1E40AF", Secondary: "#1E3A8A", Accent: "#059669"}
	case IndustryRetail:
		return Palette{Primary: "#7C3AED", Secondary: "#6D28D9", Accent: "#F59E0B"}
	default:
		return Palette{Primary: "#3B82F6", Secondary: "#2563EB", Accent: "#10B981"}
	}
}

// TemplateFor returns design guidance injected into the generation prompt.
func TemplateFor(raw string) string {
	switch Normalize(raw) {
	case IndustryHomeServices:
		return "Emphasize trust and rapid response: license badges, service-area map, emergency call button, before/after photos."
	case IndustryHealthcare:
		return "Calm, clinical tone with generous whitespace; highlight practitioners, insurance acceptance and easy appointment access."
	case IndustryRestaurant:
		return "Appetite-driven imagery, menu highlights above the fold, opening hours and reservation call to action."
	case IndustryAutomotive:
		return "Bold, mechanical feel; service packages with transparent pricing, certifications and a quote request form."
	case IndustryBeautyWellness:
		return "Soft gradients and elegant typography; showcase treatments, staff profiles and client testimonials."
	case IndustryProfessionalServices:
		return "Authoritative and concise; lead with outcomes, credentials and client logos, close with a consultation offer."
	case IndustryRetail:
		return "Product-forward grid layout, seasonal promotions and clear store hours with location details."
	default:
		return "Clean, modern marketing layout: hero section with value proposition, services overview, social proof, contact block."
	}
}
