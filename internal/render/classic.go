package render

// classicTemplate mirrors the traditional serif layout: objective heading,
// pipe-separated contact line, no grid presentation.
const classicTemplate = `<!DOCTYPE html>
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
      font-family: 'Times New Roman', serif;
      line-height: {{.Params.LineHeight}};
      color: #000;
      font-size: {{.Params.BodyFontSize}}pt;
    }
    .header {
      text-align: center;
      border-bottom: 2px solid #000;
      padding-bottom: 12px;
      margin-bottom: {{.Params.HeaderMargin}}pt;
    }
    .header h1 {
      font-size: {{.Params.HeaderFontSize}}pt;
      margin-bottom: 10px;
      font-weight: bold;
      text-transform: uppercase;
    }
    .contact-info { font-size: 10pt; color: #333; }
    .section { margin-bottom: {{.Params.SectionMargin}}pt; }
    .section-title {
      font-size: {{.Params.SectionTitleSize}}pt;
      font-weight: bold;
      margin-bottom: 10px;
      text-transform: uppercase;
      border-bottom: 1px solid #000;
      padding-bottom: 3px;
    }
    .objective { text-align: justify; line-height: {{.Params.SummaryLineHeight}}; }
    .experience-item { margin-bottom: {{.Params.ItemMargin}}pt; }
    .job-title { font-weight: bold; }
    .company { font-style: italic; font-size: 10pt; }
    .responsibilities { margin-top: 5px; padding-left: 20px; }
    .responsibilities li { margin-bottom: {{.Params.BulletMargin}}pt; font-size: 10pt; }
    .skills { font-size: 10pt; line-height: {{.Params.SkillsLineHeight}}; }
    .project-item { margin-bottom: {{.Params.ItemMargin}}pt; }
    .project-name { font-weight: bold; }
    .education-item { margin-bottom: 8pt; }
    .extra-item { margin-bottom: {{.Params.BulletMargin}}pt; font-size: 10pt; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Name}}</h1>
    <div class="contact-info">
      {{if .Content.Email}}{{.Content.Email}}{{end}}{{if .Content.Phone}} | {{.Content.Phone}}{{end}}{{if .Content.Location}} | {{.Content.Location}}{{end}}
    </div>
  </div>

  {{if .Content.Summary}}
  <div class="section summary-section">
    <div class="section-title">Objective</div>
    <p class="objective">{{.Content.Summary}}</p>
  </div>
  {{end}}

  {{if .Content.Experiences}}
  <div class="section experience-section">
    <div class="section-title">Experience</div>
    {{range .Content.Experiences}}
    <div class="experience-item">
      <div class="job-title">{{.Title}}</div>
      <div class="company">{{.Company}}{{if or .StartDate .EndDate}} ({{.StartDate}} - {{if .EndDate}}{{.EndDate}}{{else}}Present{{end}}){{end}}</div>
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
    <div class="skills">{{join .Content.Skills ", "}}</div>
  </div>
  {{end}}

  {{if .Content.Projects}}
  <div class="section projects-section">
    <div class="section-title">Projects</div>
    {{range .Content.Projects}}
    <div class="project-item">
      <span class="project-name">{{.Name}}</span>{{if .Technologies}} ({{join .Technologies ", "}}){{end}}
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
    <div class="education-item">
      <strong>{{.School}}</strong>{{if .Degree}} - {{.Degree}}{{if .Field}}, {{.Field}}{{end}}{{end}}{{if .Year}} ({{.Year}}){{end}}
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
    <div class="extra-item">{{.Name}}{{if .Issuer}} - {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Awards}}
  <div class="section awards-section">
    <div class="section-title">Awards</div>
    {{range .Content.Awards}}
    <div class="extra-item">{{.Name}}{{if .Issuer}} - {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>
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
    <div class="extra-item">{{.Title}}{{if .Publisher}} in {{.Publisher}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>
    {{end}}
  </div>
  {{end}}
  {{end}}
</body>
</html>`
