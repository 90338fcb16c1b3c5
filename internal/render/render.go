package render

import (
	"html/template"
	"strings"

	"github.com/davidchen/resume-builder/internal/layout"
	"github.com/davidchen/resume-builder/internal/types"
)

// Template variant identifiers. Unknown IDs fall back to TemplateModern.
const (
	TemplateModern  = "modern"
	TemplateClassic = "classic"
	TemplateMinimal = "minimal"
	TemplateCompact = "compact"
)

// templateData is the data structure passed to every template variant.
type templateData struct {
	Name        string
	Content     *types.CanonicalContent
	Params      layout.Parameters
	TargetPages string

	// ShowExtras gates the certifications/awards/languages/publications
	// sections and detailed education fields. Single-page output suppresses
	// them entirely so the page target stays reachable.
	ShowExtras bool

	SkillsMode SkillsMode
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

var variants = map[string]*template.Template{
	TemplateModern:  template.Must(template.New(TemplateModern).Funcs(templateFuncs).Parse(modernTemplate)),
	TemplateClassic: template.Must(template.New(TemplateClassic).Funcs(templateFuncs).Parse(classicTemplate)),
	TemplateMinimal: template.Must(template.New(TemplateMinimal).Funcs(templateFuncs).Parse(minimalTemplate)),
	TemplateCompact: template.Must(template.New(TemplateCompact).Funcs(templateFuncs).Parse(compactTemplate)),
}

// CanonicalTemplateID lowercases and trims a template ID and maps anything
// unrecognized to the default modern variant.
func CanonicalTemplateID(templateID string) string {
	id := strings.ToLower(strings.TrimSpace(templateID))
	if _, ok := variants[id]; !ok {
		return TemplateModern
	}
	return id
}

// ParamsFor resolves layout parameters for a template variant. The compact
// reference variant has a fixed tight profile and ignores density.
func ParamsFor(templateID, targetPages string, density int) layout.Parameters {
	if CanonicalTemplateID(templateID) == TemplateCompact {
		return layout.ResolveCompact()
	}
	return layout.Resolve(targetPages, density)
}

// Render produces the self-contained HTML document for one template variant.
// All content strings pass through html/template's contextual escaping, so
// markup in the content can never become live markup in the output.
func Render(name string, content *types.CanonicalContent, templateID, targetPages string, params layout.Parameters) (string, error) {
	if content == nil {
		return "", &RenderError{Message: "content is nil"}
	}

	id := CanonicalTemplateID(templateID)
	tmpl := variants[id]

	data := &templateData{
		Name:        name,
		Content:     content,
		Params:      params,
		TargetPages: targetPages,
		ShowExtras:  targetPages != "1",
		SkillsMode:  SkillsModeFor(id, targetPages, len(content.Skills)),
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template " + id,
			Cause:   err,
		}
	}
	return out.String(), nil
}
