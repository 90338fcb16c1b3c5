// Package layout resolves concrete typographic and spacing parameters from
// the target page count and the density knob.
package layout

import "math"

// Parameters holds every typographic and spacing value a template variant
// needs. All values derive purely from (targetPages, density); resolving the
// same inputs always yields the same parameters.
type Parameters struct {
	// Font sizes in points. Density never changes these.
	BodyFontSize     float64
	HeaderFontSize   float64
	SectionTitleSize float64

	// Unitless CSS line heights.
	LineHeight        float64
	SummaryLineHeight float64
	SkillsLineHeight  float64

	// Spacing in whole points.
	SectionMargin int
	ItemMargin    int
	BulletMargin  int
	HeaderMargin  int

	// Page margins in inches.
	PageMargins PageMargins
}

// PageMargins are physical page margins in inches.
type PageMargins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// multipliers are the three independent scalars a density level applies:
// spacing covers section/item/bullet/header margins, lineHeight covers the
// CSS line heights, margins covers the physical page margins.
type multipliers struct {
	spacing    float64
	lineHeight float64
	margins    float64
}

// densityMultipliers maps density 1 (spacious) through 5 (compact).
// Level 3 is the identity; every scalar is non-increasing from 1 to 5.
var densityMultipliers = map[int]multipliers{
	1: {spacing: 1.35, lineHeight: 1.30, margins: 1.40},
	2: {spacing: 1.15, lineHeight: 1.12, margins: 1.18},
	3: {spacing: 1.00, lineHeight: 1.00, margins: 1.00},
	4: {spacing: 0.85, lineHeight: 0.92, margins: 0.85},
	5: {spacing: 0.70, lineHeight: 0.85, margins: 0.70},
}

// base is the nominal layout at density 3. Page margins come from the
// per-page-count table below; everything else is shared.
var base = Parameters{
	BodyFontSize:      11,
	HeaderFontSize:    18,
	SectionTitleSize:  12,
	LineHeight:        1.4,
	SummaryLineHeight: 1.5,
	SkillsLineHeight:  1.6,
	SectionMargin:     16,
	ItemMargin:        12,
	BulletMargin:      3,
	HeaderMargin:      12,
}

// basePageMargins vary by target page count: one-page resumes get the
// tightest margins, three-page the most generous.
var basePageMargins = map[string]PageMargins{
	"1": {Top: 0.40, Bottom: 0.45, Left: 0.60, Right: 0.60},
	"2": {Top: 0.50, Bottom: 0.55, Left: 0.70, Right: 0.70},
	"3": {Top: 0.60, Bottom: 0.65, Left: 0.80, Right: 0.80},
}

// Resolve maps (targetPages, density) to concrete layout parameters.
// Unknown page counts fall back to the one-page profile; density is clamped
// to [1,5]. Density only changes presentation tightness, never content.
func Resolve(targetPages string, density int) Parameters {
	if density < 1 {
		density = 1
	}
	if density > 5 {
		density = 5
	}
	mult := densityMultipliers[density]

	pageMargins, ok := basePageMargins[targetPages]
	if !ok {
		pageMargins = basePageMargins["1"]
	}

	return Parameters{
		BodyFontSize:     base.BodyFontSize,
		HeaderFontSize:   base.HeaderFontSize,
		SectionTitleSize: base.SectionTitleSize,

		LineHeight:        scaleFraction(base.LineHeight, mult.lineHeight),
		SummaryLineHeight: scaleFraction(base.SummaryLineHeight, mult.lineHeight),
		SkillsLineHeight:  scaleFraction(base.SkillsLineHeight, mult.lineHeight),

		SectionMargin: scaleSpacing(base.SectionMargin, mult.spacing),
		ItemMargin:    scaleSpacing(base.ItemMargin, mult.spacing),
		BulletMargin:  scaleSpacing(base.BulletMargin, mult.spacing),
		HeaderMargin:  scaleSpacing(base.HeaderMargin, mult.spacing),

		PageMargins: PageMargins{
			Top:    scaleFraction(pageMargins.Top, mult.margins),
			Bottom: scaleFraction(pageMargins.Bottom, mult.margins),
			Left:   scaleFraction(pageMargins.Left, mult.margins),
			Right:  scaleFraction(pageMargins.Right, mult.margins),
		},
	}
}

// ResolveCompact returns the fixed profile for the compact reference
// template. It is deliberately tight and ignores the density knob entirely.
func ResolveCompact() Parameters {
	return Parameters{
		BodyFontSize:      10,
		HeaderFontSize:    15,
		SectionTitleSize:  10.5,
		LineHeight:        1.25,
		SummaryLineHeight: 1.3,
		SkillsLineHeight:  1.35,
		SectionMargin:     10,
		ItemMargin:        7,
		BulletMargin:      2,
		HeaderMargin:      8,
		PageMargins:       PageMargins{Top: 0.35, Bottom: 0.40, Left: 0.50, Right: 0.50},
	}
}

// scaleSpacing applies a multiplier and rounds to whole points.
func scaleSpacing(value int, mult float64) int {
	return int(math.Round(float64(value) * mult))
}

// scaleFraction applies a multiplier and rounds to two decimals so the
// derived CSS values stay readable.
func scaleFraction(value, mult float64) float64 {
	return math.Round(value*mult*100) / 100
}
