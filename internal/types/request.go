package types

// Supported target page counts. The layout base tables are keyed by these
// values, so anything else is a validation failure.
const (
	DefaultTargetPages = "1"
	DefaultDensity     = 3
	DefaultTemplate    = "modern"
)

// RenderRequest is the validated input to the build pipeline: who the
// resume is for, the reconciled content, and the presentation knobs.
type RenderRequest struct {
	FullName    string            `json:"fullName" validate:"required,min=2"`
	Content     *CanonicalContent `json:"content" validate:"required"`
	TemplateID  string            `json:"template,omitempty"`
	TargetPages string            `json:"targetPages,omitempty" validate:"omitempty,oneof=1 2 3"`
	Density     int               `json:"density,omitempty" validate:"omitempty,min=1,max=5"`
}

// SetDefaults fills unset presentation knobs: density 3, one page, the
// modern template.
func (r *RenderRequest) SetDefaults() {
	if r.TargetPages == "" {
		r.TargetPages = DefaultTargetPages
	}
	if r.Density == 0 {
		r.Density = DefaultDensity
	}
	if r.TemplateID == "" {
		r.TemplateID = DefaultTemplate
	}
}

// RenderResult is what the pipeline hands back to the caller: the artifact
// plus the page/fill metrics used for observability.
type RenderResult struct {
	PDF         []byte  `json:"-"`
	ActualPages int     `json:"actual_pages"`
	TargetPages string  `json:"target_pages"`
	Density     int     `json:"density"`
	FillRatio   float64 `json:"fill_ratio"`
}
