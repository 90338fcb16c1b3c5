// Package types provides type definitions for the structured resume data
// flowing through the build pipeline.
package types

// Origin tags where a project entry came from.
type Origin string

const (
	// OriginUser marks a project supplied by the user profile.
	OriginUser Origin = "user"
	// OriginGenerated marks a project authored by the content source.
	OriginGenerated Origin = "generated"
)

// CanonicalContent is the single reconciled resume payload consumed by every
// template variant. It is built once per request by the normalizer and never
// persisted.
type CanonicalContent struct {
	// Summary has no professionalSummary mirror on output; the alias is
	// input-only, unlike Responsibilities and Institution below which
	// templates historically read under both names.
	Summary  string `json:"summary"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`

	Links []string `json:"links,omitempty"`

	Experiences    []ExperienceEntry `json:"experiences"`
	Skills         []string          `json:"skills"`
	Education      []EducationEntry  `json:"education"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []Certification   `json:"certifications,omitempty"`
	Awards         []Award           `json:"awards,omitempty"`
	Languages      []Language        `json:"languages,omitempty"`
	Publications   []Publication     `json:"publications,omitempty"`
}

// ExperienceEntry is one job entry with normalized field names.
// Responsibilities mirrors Bullets so templates that still read the legacy
// field name keep working.
type ExperienceEntry struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	EndDate          string   `json:"endDate,omitempty"`
	Bullets          []string `json:"bullets"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// EducationEntry is one school entry. Institution mirrors School for the
// same backward-compatibility reason as ExperienceEntry.Responsibilities.
type EducationEntry struct {
	School      string   `json:"school"`
	Institution string   `json:"institution,omitempty"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	Year        string   `json:"year,omitempty"`
	Coursework  []string `json:"coursework,omitempty"`
}

// ProjectEntry is one project with its origin tag. Name is the unique key
// for dedup (case-insensitive).
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  []string `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Origin       Origin   `json:"origin,omitempty"`
}

// Certification is a loosely-typed certification record.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Award is a loosely-typed award record.
type Award struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Language is a spoken-language record.
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Publication is a loosely-typed publication record.
type Publication struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher,omitempty"`
	Date      string `json:"date,omitempty"`
}
