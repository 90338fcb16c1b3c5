package types

import (
	"bytes"
	"encoding/json"
)

// StringList decodes a JSON value that may be a single string, an array, or
// null. Content sources are inconsistent about which they send, so decoding
// is total: anything unrecognizable degrades to an empty list instead of
// failing the whole payload.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}

	// Single scalar string
	if data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			*s = nil
			return nil
		}
		*s = StringList{single}
		return nil
	}

	// Array: keep string elements, skip anything else
	if data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			*s = nil
			return nil
		}
		out := make(StringList, 0, len(raw))
		for _, elem := range raw {
			// A pointer target distinguishes a null element (decodes to
			// nil) from a real string; both would decode into a plain
			// string without error.
			var str *string
			if err := json.Unmarshal(elem, &str); err == nil && str != nil {
				out = append(out, *str)
			}
		}
		*s = out
		return nil
	}

	*s = nil
	return nil
}

// AIContent is the loosely-typed payload produced by the content source.
// Both historical spellings of each field are accepted; the normalizer
// collapses them into CanonicalContent.
type AIContent struct {
	Summary             string `json:"summary"`
	ProfessionalSummary string `json:"professionalSummary"`

	Experiences []ExperienceInput `json:"experiences"`
	Experience  []ExperienceInput `json:"experience"`

	Skills    StringList       `json:"skills"`
	Education []EducationInput `json:"education"`
	Projects  []ProjectInput   `json:"projects"`

	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Languages      []Language      `json:"languages"`
	Publications   []Publication   `json:"publications"`
}

// ExperienceInput is a pre-normalization job entry.
type ExperienceInput struct {
	Title            string     `json:"title"`
	JobTitle         string     `json:"jobTitle"`
	Company          string     `json:"company"`
	CompanyName      string     `json:"companyName"`
	Location         string     `json:"location"`
	StartDate        string     `json:"startDate"`
	EndDate          string     `json:"endDate"`
	Bullets          StringList `json:"bullets"`
	Responsibilities StringList `json:"responsibilities"`
}

// EducationInput is a pre-normalization school entry.
type EducationInput struct {
	School             string     `json:"school"`
	Institution        string     `json:"institution"`
	Degree             string     `json:"degree"`
	Field              string     `json:"field"`
	Year               string     `json:"year"`
	GraduationYear     string     `json:"graduationYear"`
	Coursework         StringList `json:"coursework"`
	RelevantCoursework StringList `json:"relevantCoursework"`
}

// ProjectInput is a pre-normalization project entry. User profiles
// historically call the technology list "skills".
type ProjectInput struct {
	Name         string     `json:"name"`
	Description  StringList `json:"description"`
	Technologies StringList `json:"technologies"`
	Skills       StringList `json:"skills"`
}

// UserProfile is the user-supplied contact/identity record plus the same
// section arrays as AIContent, pre-normalization.
type UserProfile struct {
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Location string     `json:"location"`
	Links    StringList `json:"links"`

	Summary   string `json:"summary"`
	Objective string `json:"objective"`

	Experiences []ExperienceInput `json:"experiences"`
	Skills      StringList        `json:"skills"`
	Education   []EducationInput  `json:"education"`
	Projects    []ProjectInput    `json:"projects"`

	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Languages      []Language      `json:"languages"`
	Publications   []Publication   `json:"publications"`
}
