package generator

import (
	"fmt"

	"sitegen-api/pkg/prompt"
)

// PromptInputs contains dynamic data injected into the homepage prompt
// template. Every field is always set (missing request fields become empty
// strings), so rendering is total over validated input.
type PromptInputs struct {
	BusinessName       string
	BusinessType       string
	Industry           string
	Description        string
	Services           string
	Location           string
	Phone              string
	Email              string
	StylePreference    string
	TopRecommendations string
	IndustryGuidance   string
	ColorScheme        string
	IncludeBooking     bool
}

// PromptRenderer renders the homepage generation prompt from a template file.
type PromptRenderer struct {
	tpl *prompt.Template
}

// NewPromptRenderer constructs a renderer using the supplied template path.
func NewPromptRenderer(templatePath string) (*PromptRenderer, error) {
	tpl, err := prompt.NewTemplate(templatePath, nil)
	if err != nil {
		return nil, err
	}
	return &PromptRenderer{tpl: tpl}, nil
}

// Render generates the final prompt string populated with inputs.
func (r *PromptRenderer) Render(inputs PromptInputs) (string, error) {
	if r == nil || r.tpl == nil {
		return "", fmt.Errorf("generator: prompt renderer not initialised")
	}
	return r.tpl.Render(inputs)
}

// Digest returns the underlying template digest for observability.
func (r *PromptRenderer) Digest() string {
	if r == nil || r.tpl == nil {
		return ""
	}
	return r.tpl.Digest()
}
