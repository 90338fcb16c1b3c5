package render

// modernTemplate is the default variant: serif, centered header, ruled
// section titles.
const modernTemplate = `<!DOCTYPE html>
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
      font-family: 'Times New Roman', Times, serif;
      font-size: {{.Params.BodyFontSize}}pt;
      line-height: {{.Params.LineHeight}};
      color: #000;
      background: #fff;
    }
    .header {
      text-align: center;
      margin-bottom: {{.Params.HeaderMargin}}pt;
      border-bottom: 2pt solid #000;
      padding-bottom: 8pt;
    }
    .header h1 {
      font-size: {{.Params.HeaderFontSize}}pt;
      font-weight: bold;
      margin-bottom: 8pt;
      text-transform: uppercase;
      letter-spacing: 1pt;
    }
    .contact { font-size: 10pt; line-height: {{.Params.LineHeight}}; }
    .contact span { margin: 0 8pt; }
    .section {
      margin-bottom: {{.Params.SectionMargin}}pt;
      page-break-inside: avoid;
    }
    .section-title {
      font-size: {{.Params.SectionTitleSize}}pt;
      font-weight: bold;
      text-transform: uppercase;
      margin-bottom: 8pt;
      border-bottom: 1pt solid #000;
      padding-bottom: 3pt;
    }
    .summary {
      line-height: {{.Params.SummaryLineHeight}};
      text-align: justify;
    }
    .experience-item {
      margin-bottom: {{.Params.ItemMargin}}pt;
      page-break-inside: avoid;
    }
    .job-header { display: flex; justify-content: space-between; margin-bottom: 4pt; }
    .job-title { font-weight: bold; }
    .job-company { font-style: italic; }
    .job-date { font-size: 10pt; white-space: nowrap; }
    .responsibilities { margin-top: 6pt; padding-left: 20pt; }
    .responsibilities li {
      font-size: 10pt;
      line-height: {{.Params.LineHeight}};
      margin-bottom: {{.Params.BulletMargin}}pt;
    }
    .skills { line-height: {{.Params.SkillsLineHeight}}; }
    .skills-grid {
      display: grid;
      grid-template-columns: repeat(3, 1fr);
      column-gap: 12pt;
      row-gap: {{.Params.BulletMargin}}pt;
      font-size: 10pt;
    }
    .project-item { margin-bottom: {{.Params.ItemMargin}}pt; page-break-inside: avoid; }
    .project-name { font-weight: bold; }
    .project-tech { font-size: 10pt; font-style: italic; }
    .education-item { margin-bottom: 8pt; }
    .education-header { display: flex; justify-content: space-between; margin-bottom: 2pt; }
    .school { font-weight: bold; }
    .edu-date { font-size: 10pt; white-space: nowrap; }
    .coursework { font-size: 10pt; }
    .extra-item { margin-bottom: {{.Params.BulletMargin}}pt; font-size: 10pt; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Name}}</h1>
    <div class="contact">
      {{if .Content.Email}}<span>{{.Content.Email}}</span>{{end}}
      {{if .Content.Phone}}<span>{{.Content.Phone}}</span>{{end}}
      {{if .Content.Location}}<span>{{.Content.Location}}</span>{{end}}
      {{range .Content.Links}}<span>{{.}}</span>{{end}}
    </div>
  </div>

  {{if .Content.Summary}}
  <div class="section summary-section">
    <div class="section-title">Professional Summary</div>
    <div class="summary">{{.Content.Summary}}</div>
  </div>
  {{end}}

  {{if .Content.Experiences}}
  <div class="section experience-section">
    <div class="section-title">Professional Experience</div>
    {{range .Content.Experiences}}
    <div class="experience-item">
      <div class="job-header">
        <div>
          <span class="job-title">{{.Title}}</span>
          {{if .Company}} <span class="job-company">{{.Company}}</span>{{end}}
        </div>
        {{if or .StartDate .EndDate}}
        <span class="job-date">{{.StartDate}}{{if .EndDate}} - {{.EndDate}}{{else}} - Present{{end}}</span>
        {{end}}
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
    <div class="section-title">Technical Skills</div>
    {{if eq .SkillsMode "grid"}}
    <div class="skills-grid">
      {{range .Content.Skills}}<div>{{.}}</div>{{end}}
    </div>
    {{else}}
    <div class="skills">{{join .Content.Skills ", "}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Projects}}
  <div class="section projects-section">
    <div class="section-title">Projects</div>
    {{range .Content.Projects}}
    <div class="project-item">
      <span class="project-name">{{.Name}}</span>
      {{if .Technologies}} <span class="project-tech">{{join .Technologies ", "}}</span>{{end}}
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
      <div class="education-header">
        <div>
          <span class="school">{{.School}}</span>
          {{if .Degree}} <span class="degree">- {{.Degree}}{{if .Field}}, {{.Field}}{{end}}</span>{{end}}
        </div>
        {{if .Year}}<span class="edu-date">{{.Year}}</span>{{end}}
      </div>
      {{if and $.ShowExtras .Coursework}}
      <div class="coursework">Coursework: {{join .Coursework ", "}}</div>
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
    <div class="extra-item">{{.Name}}{{if .Issuer}} - {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}{{if .Description}}: {{.Description}}{{end}}</div>
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
    <div class="extra-item">{{.Title}}{{if .Publisher}} - {{.Publisher}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>
    {{end}}
  </div>
  {{end}}
  {{end}}
</body>
</html>`
