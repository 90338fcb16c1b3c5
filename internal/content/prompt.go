package content

import (
	"fmt"
	"strings"

	"github.com/davidchen/resume-builder/internal/types"
)

// BuildPrompt assembles the full generation prompt: writing instructions
// scaled to the page target, followed by the job description and everything
// the user told us about themselves. Sections the profile does not have are
// omitted entirely rather than sent empty.
func BuildPrompt(jobDescription string, profile *types.UserProfile, targetPages string) string {
	targets := TargetsFor(targetPages)

	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert resume writer. Generate a tailored %s-page resume.

CRITICAL: This MUST fill %s FULL page(s) with content. Generate EXTENSIVE content.

CONTENT REQUIREMENTS:
- Summary: %d sentences, first-person, tailored to the job
- Experience: %d bullets per job, each with detailed metrics and context
- Skills: %d+ skills prioritizing job-relevant ones
- ALWAYS include ALL user-provided sections: education, projects, certifications, awards, languages, publications

TAILORING:
- Match keywords from the job description
- Use action verbs and quantify achievements
- Prioritize relevant experience

Return JSON:
{
  "summary": "Professional summary...",
  "experiences": [{"title": "", "company": "", "location": "", "startDate": "", "endDate": "", "responsibilities": ["..."]}],
  "skills": ["..."],
  "education": [{"school": "", "degree": "", "year": "", "coursework": ["..."]}],
  "projects": [{"name": "", "description": ["..."], "technologies": ["..."]}],
  "certifications": [{"name": "", "issuer": "", "date": ""}],
  "awards": [{"name": "", "issuer": "", "date": "", "description": ""}],
  "languages": [{"language": "", "proficiency": ""}],
  "publications": [{"title": "", "publisher": "", "date": ""}]
}

Return ONLY valid JSON.

`, targetPages, targetPages, targets.SummarySentences, targets.BulletsPerJob, targets.SkillsCount)

	fmt.Fprintf(&b, "JOB DESCRIPTION:\n%s\n\n", strings.TrimSpace(jobDescription))

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "Name: %s\n", profile.FullName)
	if profile.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", profile.Email)
	}
	if profile.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", profile.Phone)
	}
	if profile.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", profile.Location)
	}
	if len(profile.Links) > 0 {
		fmt.Fprintf(&b, "Links: %s\n", strings.Join(profile.Links, ", "))
	}

	if objective := firstNonEmpty(profile.Objective, profile.Summary); objective != "" {
		fmt.Fprintf(&b, "\nObjective: %s\n", objective)
	}

	if len(profile.Experiences) > 0 {
		b.WriteString("\nExperience:\n")
		for _, exp := range profile.Experiences {
			title := firstNonEmpty(exp.Title, exp.JobTitle)
			company := firstNonEmpty(exp.Company, exp.CompanyName)
			bullets := exp.Bullets
			if len(bullets) == 0 {
				bullets = exp.Responsibilities
			}
			fmt.Fprintf(&b, "- %s at %s", title, company)
			if len(bullets) > 0 {
				fmt.Fprintf(&b, ": %s", strings.Join(bullets, " | "))
			}
			b.WriteString("\n")
		}
	}

	if len(profile.Skills) > 0 {
		fmt.Fprintf(&b, "\nSkills: %s\n", strings.Join(profile.Skills, ", "))
	}

	if len(profile.Education) > 0 {
		b.WriteString("\nEducation:\n")
		for _, edu := range profile.Education {
			school := firstNonEmpty(edu.School, edu.Institution)
			year := firstNonEmpty(edu.Year, edu.GraduationYear)
			fmt.Fprintf(&b, "- %s from %s (%s)", edu.Degree, school, year)
			coursework := edu.Coursework
			if len(coursework) == 0 {
				coursework = edu.RelevantCoursework
			}
			if len(coursework) > 0 {
				fmt.Fprintf(&b, " - Coursework: %s", strings.Join(coursework, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(profile.Projects) > 0 {
		b.WriteString("\nProjects:\n")
		for _, proj := range profile.Projects {
			tech := proj.Technologies
			if len(tech) == 0 {
				tech = proj.Skills
			}
			fmt.Fprintf(&b, "- %s: %s", proj.Name, strings.Join(proj.Description, ". "))
			if len(tech) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(tech, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(profile.Certifications) > 0 {
		b.WriteString("\nCertifications:\n")
		for _, cert := range profile.Certifications {
			b.WriteString("- " + cert.Name)
			if cert.Issuer != "" {
				b.WriteString(" from " + cert.Issuer)
			}
			if cert.Date != "" {
				fmt.Fprintf(&b, " (%s)", cert.Date)
			}
			b.WriteString("\n")
		}
	}

	if len(profile.Awards) > 0 {
		b.WriteString("\nAwards:\n")
		for _, award := range profile.Awards {
			b.WriteString("- " + award.Name)
			if award.Issuer != "" {
				b.WriteString(" from " + award.Issuer)
			}
			if award.Date != "" {
				fmt.Fprintf(&b, " (%s)", award.Date)
			}
			b.WriteString("\n")
		}
	}

	if len(profile.Languages) > 0 {
		b.WriteString("\nLanguages:\n")
		for _, lang := range profile.Languages {
			b.WriteString("- " + lang.Language)
			if lang.Proficiency != "" {
				fmt.Fprintf(&b, " (%s)", lang.Proficiency)
			}
			b.WriteString("\n")
		}
	}

	if len(profile.Publications) > 0 {
		b.WriteString("\nPublications:\n")
		for _, pub := range profile.Publications {
			b.WriteString("- " + pub.Title)
			if pub.Publisher != "" {
				b.WriteString(" in " + pub.Publisher)
			}
			if pub.Date != "" {
				fmt.Fprintf(&b, " (%s)", pub.Date)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\nGenerate a %s-page resume tailored to this job. INCLUDE ALL user-provided sections in your response.\n", targetPages)

	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
