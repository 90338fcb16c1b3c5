package render

// SkillsMode selects how the skills section is presented.
type SkillsMode string

const (
	// SkillsList renders skills as a single delimited line.
	SkillsList SkillsMode = "list"
	// SkillsGrid renders skills as a multi-column grid.
	SkillsGrid SkillsMode = "grid"
)

// gridCapable lists the variants that have a grid presentation at all.
// Classic and compact are list-only by design of their visual style.
var gridCapable = map[string]bool{
	TemplateModern:  true,
	TemplateMinimal: true,
}

// Grid thresholds by target page count. A short skills list reads better as
// a delimited line; past these counts the grid wastes less vertical space.
const (
	gridThresholdOnePage   = 10
	gridThresholdMultiPage = 16
)

// SkillsModeFor picks list or grid presentation. The choice is a pure
// function of (templateID, targetPages, skillCount).
func SkillsModeFor(templateID, targetPages string, skillCount int) SkillsMode {
	if !gridCapable[CanonicalTemplateID(templateID)] {
		return SkillsList
	}
	threshold := gridThresholdMultiPage
	if targetPages == "1" {
		threshold = gridThresholdOnePage
	}
	if skillCount >= threshold {
		return SkillsGrid
	}
	return SkillsList
}
