package types

// BusinessContext describes the business a homepage is generated for.
type BusinessContext struct {
	Name         string   `json:"name"`
	BusinessType string   `json:"businessType,optional"`
	Industry     string   `json:"industry,optional"`
	Description  string   `json:"description,optional"`
	Services     []string `json:"services,optional"`
	Location     string   `json:"location,optional"`
	Phone        string   `json:"phone,optional"`
	Email        string   `json:"email,optional"`
	Confidence   float64  `json:"confidence,optional,range=[0:1]"`
}

// Recommendation is one upstream analysis finding fed into generation.
type Recommendation struct {
	Type            string `json:"type"`
	Title           string `json:"title,optional"`
	Description     string `json:"description,optional"`
	Priority        string `json:"priority,optional"`
	EstimatedEffort string `json:"estimatedEffort,optional"`
}

type GenerateRequest struct {
	Business        BusinessContext  `json:"business"`
	Recommendations []Recommendation `json:"recommendations,optional"`
	Style           string           `json:"style,optional,default=modern,options=modern|classic|minimal|bold|professional"`
	IncludeBooking  bool             `json:"includeBooking,optional"`
	ColorScheme     string           `json:"colorScheme,optional"`
}

type RenderRequest struct {
	HTML     string `json:"html"`
	CSS      string `json:"css,optional"`
	Viewport string `json:"viewport,optional"`
	Format   string `json:"format,optional,default=png,options=png|jpeg|jpg"`
	Quality  int    `json:"quality,optional,range=[0:100]"`
}

type RenderResponse struct {
	Image    string `json:"image"`
	Viewport string `json:"viewport"`
	Format   string `json:"format"`
}

type ResponsiveRenderRequest struct {
	HTML string `json:"html"`
	CSS  string `json:"css,optional"`
}

type ResponsiveRenderResponse struct {
	Desktop *string `json:"desktop"`
	Tablet  *string `json:"tablet"`
	Mobile  *string `json:"mobile"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	RenderEngine string `json:"renderEngine"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
