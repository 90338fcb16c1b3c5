package render

// compactTemplate is the constrained reference variant: a dense
// single-column layout with a fixed tight profile. It pairs with
// layout.ResolveCompact and ignores the density knob.
const compactTemplate = `<!DOCTYPE html>
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
      font-family: Arial, Helvetica, sans-serif;
      font-size: {{.Params.BodyFontSize}}pt;
      line-height: {{.Params.LineHeight}};
      color: #111;
    }
    .header { margin-bottom: {{.Params.HeaderMargin}}pt; }
    .header h1 {
      font-size: {{.Params.HeaderFontSize}}pt;
      font-weight: bold;
      display: inline;
    }
    .contact { display: inline; font-size: 8.5pt; color: #444; margin-left: 8pt; }
    .section { margin-bottom: {{.Params.SectionMargin}}pt; }
    .section-title {
      font-size: {{.Params.SectionTitleSize}}pt;
      font-weight: bold;
      text-transform: uppercase;
      border-bottom: 1px solid #999;
      margin-bottom: 4pt;
    }
    .summary { line-height: {{.Params.SummaryLineHeight}}; }
    .experience-item { margin-bottom: {{.Params.ItemMargin}}pt; }
    .job-line { display: flex; justify-content: space-between; }
    .job-title { font-weight: bold; }
    .job-date { font-size: 8.5pt; white-space: nowrap; }
    .responsibilities { padding-left: 14pt; margin-top: 2pt; }
    .responsibilities li { font-size: 9pt; margin-bottom: {{.Params.BulletMargin}}pt; }
    .skills { font-size: 9pt; line-height: {{.Params.SkillsLineHeight}}; }
    .entry { margin-bottom: {{.Params.BulletMargin}}pt; font-size: 9pt; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Name}}</h1>
    <span class="contact">{{if .Content.Email}}{{.Content.Email}}{{end}}{{if .Content.Phone}} | {{.Content.Phone}}{{end}}{{if .Content.Location}} | {{.Content.Location}}{{end}}</span>
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
      <div class="job-line">
        <span><span class="job-title">{{.Title}}</span>{{if .Company}}, {{.Company}}{{end}}</span>
        {{if or .StartDate .EndDate}}<span class="job-date">{{.StartDate}} - {{if .EndDate}}{{.EndDate}}{{else}}Present{{end}}</span>{{end}}
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
    <div class="skills">{{join .Content.Skills ", "}}</div>
  </div>
  {{end}}

  {{if .Content.Projects}}
  <div class="section projects-section">
    <div class="section-title">Projects</div>
    {{range .Content.Projects}}
    <div class="entry"><strong>{{.Name}}</strong>{{if .Technologies}} ({{join .Technologies ", "}}){{end}}{{if .Description}}: {{join .Description " "}}{{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Education}}
  <div class="section education-section">
    <div class="section-title">Education</div>
    {{range .Content.Education}}
    <div class="entry"><strong>{{.School}}</strong>{{if .Degree}}, {{.Degree}}{{end}}{{if .Year}} ({{.Year}}){{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .ShowExtras}}
  {{if .Content.Certifications}}
  <div class="section certifications-section">
    <div class="section-title">Certifications</div>
    {{range .Content.Certifications}}
    <div class="entry">{{.Name}}{{if .Issuer}}, {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Awards}}
  <div class="section awards-section">
    <div class="section-title">Awards</div>
    {{range .Content.Awards}}
    <div class="entry">{{.Name}}{{if .Issuer}}, {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Languages}}
  <div class="section languages-section">
    <div class="section-title">Languages</div>
    {{range .Content.Languages}}
    <div class="entry">{{.Language}}{{if .Proficiency}} ({{.Proficiency}}){{end}}</div>
    {{end}}
  </div>
  {{end}}

  {{if .Content.Publications}}
  <div class="section publications-section">
    <div class="section-title">Publications</div>
    {{range .Content.Publications}}
    <div class="entry">{{.Title}}{{if .Publisher}}, {{.Publisher}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>
    {{end}}
  </div>
  {{end}}
  {{end}}
</body>
</html>`
