package render

// minimalTemplate is the sans-serif variant: left-aligned light header,
// unruled section titles, dot-separated contact line.
const minimalTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Resume - {{.Name}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    @page {
      margin-top: {{.Params.PageMargins.Top}}in;
      margin-bottom: {{.Params.PageMargins.Bottom}}in;
      margin-left: {{.Params.PageMargins.Left}}in;
      margin-right: {{.Params.PageMargins.Right}}in;
      size: letter;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      line-height: {{.Params.LineHeight}};
      color: #2d3748;
      font-size: {{.Params.BodyFontSize}}pt;
      background: #fff;
    }
    .header {
      margin-bottom: {{.Params.HeaderMargin}}pt;
      padding-bottom: 12pt;
      border-bottom: 1px solid #e2e8f0;
    }
    .header h1 {
      font-size: {{.Params.HeaderFontSize}}pt;
      font-weight: 300;
      color: #1a202c;
      margin-bottom: 8pt;
      letter-spacing: -0.5px;
    }
    .contact { font-size: 9pt; color: #718096; }
    .section { margin-bottom: {{.Params.SectionMargin}}pt; }
    .section-title {
      font-size: {{.Params.SectionTitleSize}}pt;
      font-weight: 600;
      color: #4a5568;
      margin-bottom: 10pt;
      text-transform: uppercase;
      letter-spacing: 1px;
    }
    .summary { color: #4a5568; line-height: {{.Params.SummaryLineHeight}}; }
    .experience-item { margin-bottom: {{.Params.ItemMargin}}pt; }
    .job-header { margin-bottom: 6pt; }
    .job-title { font-weight: 600; color: #2d3748; }
    .job-meta { font-size: 9pt; color: #718096; margin-top: 2pt; }
    .responsibilities { margin-top: 8pt; padding-left: 0; list-style: none; }
    .responsibilities li {
      font-size: 10pt;
      color: #4a5568;
      margin-bottom: {{.Params.BulletMargin}}pt;
      padding-left: 12pt;
      position: relative;
    }
    .responsibilities li:before { content: '\2022'; position: absolute; left: 0; color: #cbd5e0; }
    .skills { font-size: 10pt; color: #4a5568; line-height: {{.Params.SkillsLineHeight}}; }
    .skills-grid {
      display: grid;
      grid-template-columns: repeat(3, 1fr);
      column-gap: 10pt;
      row-gap: {{.Params.BulletMargin}}pt;
      font-size: 9pt;
      color: #4a5568;
    }
    .project-item { margin-bottom: {{.Params.ItemMargin}}pt; }
    .project-name { font-weight: 600; color: #2d3748; }
    .education-entry { margin-bottom: 8pt; font-size: 10pt; color: #4a5568; }
    .extra-item { margin-bottom: {{.Params.BulletMargin}}pt; font-size: 9pt; color: #4a5568; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Name}}</h1>
    <div class="contact">
      {{if .Content.Email}}{{.Content.Email}}{{end}}{{if .Content.Phone}} &middot; {{.Content.Phone}}{{end}}{{if .Content.Location}} &middot; {{.Content.Location}}{{end}}{{range .Content.Links}} &middot; {{.}}{{end}}
    </div>
  </div>

  {{if .Content.Summary}}
  <div class="section summary-section">
    <div class="section-title">Summary</div>
    <div class="summary">{{.Content.Summary}}</div>
  </div>
  {{end}}

  {{if .Content.Experiences}}
  <div class="section experience-section">
    <div class="section-title">Experience</div>
    {{range .Content.Experiences}}
    <div class="experience-item">
      <div class="job-header">
        <div class="job-title">{{.Title}}</div>
        <div class="job-meta">{{.Company}}{{if or .StartDate .EndDate}} &middot; {{.StartDate}} - {{if .EndDate}}{{.EndDate}}{{else}}Present{{end}}{{end}}</div>
      </div>
      {{if .Bullets}}
      <ul class="responsibilities">
        {{range .Bullets}}<li>{{.}}</li>{{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Skills}}
  <div class="section skills-section">
    <div class="section-title">Skills</div>
    {{if eq .SkillsMode "grid"}}
    <div class="skills-grid">
      {{range .Content.Skills}}<div>{{.}}</div>{{end}}
    </div>
    {{else}}
    <div class="skills">{{join .Content.Skills " · "}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Projects}}
  <div class="section projects-section">
    <div class="section-title">Projects</div>
    {{range .Content.Projects}}
    <div class="project-item">
      <div class="project-name">{{.Name}}</div>
      {{if .Technologies}}<div class="job-meta">{{join .Technologies " · "}}</div>{{end}}
      {{if .Description}}
      <ul class="responsibilities">
        {{range .Description}}<li>{{.}}</li>{{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Education}}
  <div class="section education-section">
    <div class="section-title">Education</div>
    {{range .Content.Education}}
    <div class="education-entry">
      <strong>{{.School}}</strong>{{if .Degree}} &middot; {{.Degree}}{{if .Field}}, {{.Field}}{{end}}{{end}}{{if .Year}} &middot; {{.Year}}{{end}}
      {{if and $.ShowExtras .Coursework}}
      <div class="extra-item">Coursework: {{join .Coursework ", "}}</div>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}

  {{if .ShowExtras}}
  {{if .Content.Certifications}}
  <div class="section certifications-section">
    <div class="section-title">Certifications</div>
    {{range .Content.Certifications}}
    <div class="extra-item">{{.Name}}{{if .Issuer}} &middot; {{.Issuer}}{{end}}{{if .Date}} &middot; {{.Date}}{{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Awards}}
  <div class="section awards-section">
    <div class="section-title">Awards</div>
    {{range .Content.Awards}}
    <div class="extra-item">{{.Name}}{{if .Issuer}} &middot; {{.Issuer}}{{end}}{{if .Date}} &middot; {{.Date}}{{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Languages}}
  <div class="section languages-section">
    <div class="section-title">Languages</div>
    {{range .Content.Languages}}
    <div class="extra-item">{{.Language}}{{if .Proficiency}} ({{.Proficiency}}){{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Publications}}
  <div class="section publications-section">
    <div class="section-title">Publications</div>
    {{range .Content.Publications}}
    <div class="extra-item">{{.Title}}{{if .Publisher}} &middot; {{.Publisher}}{{end}}{{if .Date}} &middot; {{.Date}}{{end}}</div>
    {{end}}
  </div>
  {{end}}
  {{end}}
</body>
</html>`
