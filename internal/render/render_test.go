package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidchen/resume-builder/internal/layout"
	"github.com/davidchen/resume-builder/internal/types"
)

func renderDoc(t *testing.T, content *types.CanonicalContent, templateID, targetPages string) (*goquery.Document, string) {
	t.Helper()
	params := ParamsFor(templateID, targetPages, 3)
	html, err := Render("Jane Doe", content, templateID, targetPages, params)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc, html
}

func fullContent() *types.CanonicalContent {
	return &types.CanonicalContent{
		Summary:  "Engineer with ten years of experience.",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Location: "Portland, OR",
		Experiences: []types.ExperienceEntry{
			{
				Title:     "Staff Engineer",
				Company:   "Acme Corp",
				StartDate: "2020",
				EndDate:   "2024",
				Bullets:   []string{"Led the platform team", "Cut release time in half"},
			},
		},
		Skills: []string{"Go", "TypeScript", "Postgres"},
		Education: []types.EducationEntry{
			{School: "State University", Degree: "BSc", Field: "CS", Year: "2014", Coursework: []string{"Algorithms"}},
		},
		Projects: []types.ProjectEntry{
			{Name: "Tracker", Description: []string{"Tracks things"}, Technologies: []string{"Go"}, Origin: types.OriginUser},
		},
		Certifications: []types.Certification{{Name: "AWS SAA", Issuer: "Amazon", Date: "2022"}},
		Awards:         []types.Award{{Name: "Hackathon Winner"}},
		Languages:      []types.Language{{Language: "Spanish", Proficiency: "Fluent"}},
		Publications:   []types.Publication{{Title: "On Resumes", Publisher: "ACM"}},
	}
}

func TestRender_AllVariantsProduceDocuments(t *testing.T) {
	for _, id := range []string{TemplateModern, TemplateClassic, TemplateMinimal, TemplateCompact} {
		t.Run(id, func(t *testing.T) {
			doc, html := renderDoc(t, fullContent(), id, "2")
			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.Equal(t, 1, doc.Find("h1").Length())
			assert.Equal(t, "Jane Doe", strings.TrimSpace(doc.Find("h1").Text()))
			assert.Positive(t, doc.Find(".experience-section").Length())
		})
	}
}

func TestRender_NilContent(t *testing.T) {
	_, err := Render("Jane Doe", nil, TemplateModern, "1", layout.Resolve("1", 3))
	require.Error(t, err)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_UnknownTemplateFallsBackToModern(t *testing.T) {
	params := layout.Resolve("1", 3)
	fallback, err := Render("Jane Doe", fullContent(), "nonexistent", "1", params)
	require.NoError(t, err)
	modern, err := Render("Jane Doe", fullContent(), TemplateModern, "1", params)
	require.NoError(t, err)
	assert.Equal(t, modern, fallback)
}

func TestCanonicalTemplateID(t *testing.T) {
	assert.Equal(t, TemplateClassic, CanonicalTemplateID(" Classic "))
	assert.Equal(t, TemplateModern, CanonicalTemplateID(""))
	assert.Equal(t, TemplateModern, CanonicalTemplateID("fancy"))
	assert.Equal(t, TemplateCompact, CanonicalTemplateID("compact"))
}

// Summary-only content on the single-page template must render the summary
// section and omit experience and skills blocks entirely.
func TestRender_SummaryOnlySinglePage(t *testing.T) {
	content := &types.CanonicalContent{Summary: "Just a summary."}
	doc, html := renderDoc(t, content, TemplateModern, "1")

	assert.Equal(t, 1, doc.Find(".summary-section").Length())
	assert.Contains(t, doc.Find(".summary").Text(), "Just a summary.")
	assert.Zero(t, doc.Find(".experience-section").Length())
	assert.Zero(t, doc.Find(".skills-section").Length())
	assert.NotContains(t, html, "Professional Experience")
	assert.NotContains(t, html, "Technical Skills")
}

func TestRender_SinglePageSuppressesExtras(t *testing.T) {
	doc, _ := renderDoc(t, fullContent(), TemplateModern, "1")
	assert.Zero(t, doc.Find(".certifications-section").Length())
	assert.Zero(t, doc.Find(".awards-section").Length())
	assert.Zero(t, doc.Find(".languages-section").Length())
	assert.Zero(t, doc.Find(".publications-section").Length())
	assert.Zero(t, doc.Find(".coursework").Length())
}

func TestRender_MultiPageIncludesExtras(t *testing.T) {
	doc, _ := renderDoc(t, fullContent(), TemplateModern, "2")
	assert.Equal(t, 1, doc.Find(".certifications-section").Length())
	assert.Equal(t, 1, doc.Find(".awards-section").Length())
	assert.Equal(t, 1, doc.Find(".languages-section").Length())
	assert.Equal(t, 1, doc.Find(".publications-section").Length())
	assert.Contains(t, doc.Find(".coursework").Text(), "Algorithms")
}

func TestRender_EscapesMarkupInContent(t *testing.T) {
	content := &types.CanonicalContent{
		Summary: `Wrote <script>alert("xss")</script> & more`,
		Experiences: []types.ExperienceEntry{
			{Title: `Engineer "Quoted" <b>`, Bullets: []string{"<img src=x>"}},
		},
	}
	for _, id := range []string{TemplateModern, TemplateClassic, TemplateMinimal, TemplateCompact} {
		t.Run(id, func(t *testing.T) {
			params := ParamsFor(id, "1", 3)
			html, err := Render(`Jane <Doe>`, content, id, "1", params)
			require.NoError(t, err)
			assert.NotContains(t, html, "<script>")
			assert.NotContains(t, html, "<img")
			assert.NotContains(t, html, "Jane <Doe>")
			assert.Contains(t, html, "&lt;script&gt;")

			// The escaped text still round-trips to the original characters.
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
			require.NoError(t, err)
			assert.Contains(t, doc.Find("body").Text(), `alert("xss")`)
			assert.Zero(t, doc.Find("body script").Length())
		})
	}
}

func TestRender_LayoutParametersAppearInCSS(t *testing.T) {
	params := layout.Resolve("3", 1)
	html, err := Render("Jane Doe", fullContent(), TemplateModern, "3", params)
	require.NoError(t, err)
	assert.Contains(t, html, "size: letter")
	assert.Contains(t, html, "margin-top: 0.84in")
	assert.Contains(t, html, "margin-bottom: 0.91in")
}

func TestRender_SelfContainedOutput(t *testing.T) {
	_, html := renderDoc(t, fullContent(), TemplateMinimal, "2")
	assert.NotContains(t, html, "<link")
	assert.NotContains(t, html, "src=\"http")
	assert.NotContains(t, html, "@import")
}

func TestRender_SkillsGridOnLargeSkillSet(t *testing.T) {
	content := fullContent()
	content.Skills = make([]string, 0, 18)
	for _, s := range []string{
		"Go", "TypeScript", "Postgres", "Redis", "Kafka", "Docker",
		"Kubernetes", "Terraform", "AWS", "GCP", "Linux", "Git",
		"Python", "Bash", "gRPC", "GraphQL", "React", "Vue",
	} {
		content.Skills = append(content.Skills, s)
	}
	doc, _ := renderDoc(t, content, TemplateModern, "1")
	assert.Equal(t, 1, doc.Find(".skills-grid").Length())
	assert.Equal(t, 18, doc.Find(".skills-grid div").Length())
}

func TestRender_SkillsListOnSmallSkillSet(t *testing.T) {
	doc, _ := renderDoc(t, fullContent(), TemplateModern, "1")
	assert.Zero(t, doc.Find(".skills-grid").Length())
	assert.Contains(t, doc.Find(".skills").Text(), "Go, TypeScript, Postgres")
}

func TestRender_Deterministic(t *testing.T) {
	params := layout.Resolve("2", 2)
	first, err := Render("Jane Doe", fullContent(), TemplateMinimal, "2", params)
	require.NoError(t, err)
	second, err := Render("Jane Doe", fullContent(), TemplateMinimal, "2", params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
