// Package normalize canonicalizes the two resume content shapes (AI-generated
// content and user profile data) into a single payload for the renderers.
package normalize

import (
	"strings"

	"github.com/davidchen/resume-builder/internal/types"
)

// CollapseWhitespace trims leading/trailing whitespace and collapses any
// interior run of whitespace to a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Normalize reconciles AI content and the user profile into CanonicalContent.
// It is pure and total: malformed or missing fields degrade to empty strings
// and collections, never to an error. Applying it to an already-canonical
// payload reinterpreted as input yields the same output.
func Normalize(ai *types.AIContent, profile *types.UserProfile) *types.CanonicalContent {
	if ai == nil {
		ai = &types.AIContent{}
	}
	if profile == nil {
		profile = &types.UserProfile{}
	}

	out := &types.CanonicalContent{
		Summary:  CollapseWhitespace(firstNonEmpty(ai.Summary, ai.ProfessionalSummary, profile.Summary, profile.Objective)),
		Email:    CollapseWhitespace(profile.Email),
		Phone:    CollapseWhitespace(profile.Phone),
		Location: CollapseWhitespace(profile.Location),
		Links:    cleanList(profile.Links),
	}

	experiences := ai.Experiences
	if len(experiences) == 0 {
		experiences = ai.Experience
	}
	if len(experiences) == 0 {
		experiences = profile.Experiences
	}
	out.Experiences = normalizeExperiences(experiences)

	skills := []string(ai.Skills)
	if len(skills) == 0 {
		skills = profile.Skills
	}
	out.Skills = dedupeSkills(skills)

	education := ai.Education
	if len(education) == 0 {
		education = profile.Education
	}
	out.Education = normalizeEducation(education)

	out.Projects = MergeProjects(
		normalizeProjects(profile.Projects, types.OriginUser),
		normalizeProjects(ai.Projects, types.OriginGenerated),
	)

	// Extras categories are all-or-nothing: if the profile supplies any
	// entry in a category, that category comes entirely from the profile.
	out.Certifications = normalizeCertifications(pickCertifications(profile.Certifications, ai.Certifications))
	out.Awards = normalizeAwards(pickAwards(profile.Awards, ai.Awards))
	out.Languages = normalizeLanguages(pickLanguages(profile.Languages, ai.Languages))
	out.Publications = normalizePublications(pickPublications(profile.Publications, ai.Publications))

	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// cleanList normalizes every entry and drops the ones that end up empty.
func cleanList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if cleaned := CollapseWhitespace(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// dedupeSkills normalizes skill names and drops duplicates by their
// case-folded form. The first spelling encountered wins.
func dedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		cleaned := CollapseWhitespace(skill)
		if cleaned == "" {
			continue
		}
		key := strings.ToLower(cleaned)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cleaned)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeExperiences(entries []types.ExperienceInput) []types.ExperienceEntry {
	out := make([]types.ExperienceEntry, 0, len(entries))
	for _, in := range entries {
		entry := types.ExperienceEntry{
			Title:     CollapseWhitespace(firstNonEmpty(in.Title, in.JobTitle)),
			Company:   CollapseWhitespace(firstNonEmpty(in.Company, in.CompanyName)),
			Location:  CollapseWhitespace(in.Location),
			StartDate: CollapseWhitespace(in.StartDate),
			EndDate:   CollapseWhitespace(in.EndDate),
		}
		bullets := []string(in.Bullets)
		if len(bullets) == 0 {
			bullets = in.Responsibilities
		}
		entry.Bullets = cleanList(bullets)
		entry.Responsibilities = entry.Bullets

		if entry.Title == "" && entry.Company == "" && len(entry.Bullets) == 0 {
			continue
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeEducation(entries []types.EducationInput) []types.EducationEntry {
	out := make([]types.EducationEntry, 0, len(entries))
	for _, in := range entries {
		entry := types.EducationEntry{
			School: CollapseWhitespace(firstNonEmpty(in.School, in.Institution)),
			Degree: CollapseWhitespace(in.Degree),
			Field:  CollapseWhitespace(in.Field),
			Year:   CollapseWhitespace(firstNonEmpty(in.Year, in.GraduationYear)),
		}
		entry.Institution = entry.School
		coursework := []string(in.Coursework)
		if len(coursework) == 0 {
			coursework = in.RelevantCoursework
		}
		entry.Coursework = cleanList(coursework)

		if entry.School == "" && entry.Degree == "" {
			continue
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeProjects(entries []types.ProjectInput, origin types.Origin) []types.ProjectEntry {
	out := make([]types.ProjectEntry, 0, len(entries))
	for _, in := range entries {
		entry := types.ProjectEntry{
			Name:        CollapseWhitespace(in.Name),
			Description: cleanList(in.Description),
			Origin:      origin,
		}
		technologies := []string(in.Technologies)
		if len(technologies) == 0 {
			technologies = in.Skills
		}
		entry.Technologies = cleanList(technologies)
		out = append(out, entry)
	}
	return out
}

func pickCertifications(profile, ai []types.Certification) []types.Certification {
	if len(profile) > 0 {
		return profile
	}
	return ai
}

func pickAwards(profile, ai []types.Award) []types.Award {
	if len(profile) > 0 {
		return profile
	}
	return ai
}

func pickLanguages(profile, ai []types.Language) []types.Language {
	if len(profile) > 0 {
		return profile
	}
	return ai
}

func pickPublications(profile, ai []types.Publication) []types.Publication {
	if len(profile) > 0 {
		return profile
	}
	return ai
}

func normalizeCertifications(entries []types.Certification) []types.Certification {
	out := make([]types.Certification, 0, len(entries))
	for _, in := range entries {
		entry := types.Certification{
			Name:   CollapseWhitespace(in.Name),
			Issuer: CollapseWhitespace(in.Issuer),
			Date:   CollapseWhitespace(in.Date),
		}
		if entry.Name == "" {
			continue
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeAwards(entries []types.Award) []types.Award {
	out := make([]types.Award, 0, len(entries))
	for _, in := range entries {
		entry := types.Award{
			Name:        CollapseWhitespace(in.Name),
			Issuer:      CollapseWhitespace(in.Issuer),
			Date:        CollapseWhitespace(in.Date),
			Description: CollapseWhitespace(in.Description),
		}
		if entry.Name == "" {
			continue
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeLanguages(entries []types.Language) []types.Language {
	out := make([]types.Language, 0, len(entries))
	for _, in := range entries {
		entry := types.Language{
			Language:    CollapseWhitespace(in.Language),
			Proficiency: CollapseWhitespace(in.Proficiency),
		}
		if entry.Language == "" {
			continue
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizePublications(entries []types.Publication) []types.Publication {
	out := make([]types.Publication, 0, len(entries))
	for _, in := range entries {
		entry := types.Publication{
			Title:     CollapseWhitespace(in.Title),
			Publisher: CollapseWhitespace(in.Publisher),
			Date:      CollapseWhitespace(in.Date),
		}
		if entry.Title == "" {
			continue
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
