package output

import (
	"html/template"
	"io"

	"proposal-pricing/core/pricing"
)

// HTMLFormatter renders a standalone HTML proposal with the client table,
// the summary, the calculation parameters and the internal net-income table.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Format() Format { return FormatHTML }

func (f *HTMLFormatter) Render(w io.Writer, report *Report) error {
	return htmlTemplate.Execute(w, newHTMLView(report))
}

type htmlRow struct {
	Label    string
	Duration string
	Client   string
	Net      string
}

type htmlParam struct {
	Label string
	Value string
}

type htmlView struct {
	Lang       string
	Dir        string
	Text       Text
	Project    string
	ID         string
	Rows       []htmlRow
	Average    string
	Min        string
	Max        string
	Commission string
	Params     []htmlParam
}

func newHTMLView(r *Report) htmlView {
	loc := r.Locale
	view := htmlView{
		Lang:       loc.Code,
		Dir:        loc.Dir(),
		Text:       loc.Text,
		Project:    r.Project,
		ID:         r.ID,
		Average:    r.Money(r.Summary.AverageClientPrice),
		Min:        r.Money(r.Summary.MinClientPrice),
		Max:        r.Money(r.Summary.MaxClientPrice),
		Commission: r.CommissionStatement(),
	}
	for _, row := range r.Rows {
		view.Rows = append(view.Rows, htmlRow{
			Label:    row.Label,
			Duration: loc.Days(row.DurationDays) + " " + loc.Text.Days,
			Client:   r.Money(row.ClientPrice),
			Net:      r.Money(row.NetPrice),
		})
	}
	for _, field := range pricing.Fields() {
		v, _ := r.Inputs.Get(field)
		view.Params = append(view.Params, htmlParam{Label: loc.ParamLabel(field), Value: loc.Number(v)})
	}
	return view
}

var htmlTemplate = template.Must(template.New("proposal").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="UTF-8">
<title>{{.Text.Title}}{{if .Project}} - {{.Project}}{{end}}</title>
<style>
body{font-family:'Vazirmatn','IRANSans','Tahoma',sans-serif;background:#f9fafb;color:#222;padding:2rem}
table{border-collapse:collapse;width:100%;max-width:780px;margin:auto;background:#fff;border-radius:12px;box-shadow:0 0 12px rgba(0,0,0,.1)}
th,td{border-bottom:1px solid #ddd;text-align:start;padding:12px 16px}
th{background:#0c3f4b;color:#fff;font-size:1.05rem}
tr:hover td{background:#f7f7f7}
caption{caption-side:top;font-size:1.35rem;margin-bottom:15px;font-weight:bold;color:#0c3f4b}
.summary{margin-top:1.7rem;text-align:center;font-size:1.1rem}
.inputs{font-size:.9rem;color:#555;max-width:780px;margin:2rem auto;border-top:1px dashed #bbb;padding-top:1rem}
.inputs h3,.internal h3{color:#0c3f4b}
.internal{font-size:.9rem;border:1px solid #ccc;background:#fff;border-radius:8px;padding:10px 15px;max-width:780px;margin:auto}
.footer{text-align:center;margin-top:2rem;font-size:.95rem;color:#555;border-top:1px solid #ccc;padding-top:1rem}
</style>
</head>
<body>
<table class="client">
<caption>{{.Text.Title}}{{if .Project}}: {{.Project}}{{end}}</caption>
<tr><th>{{.Text.TierHeader}}</th><th>{{.Text.DurationHeader}}</th><th>{{.Text.ClientHeader}}</th></tr>
{{- range .Rows}}
<tr><td>{{.Label}}</td><td>{{.Duration}}</td><td>{{.Client}}</td></tr>
{{- end}}
</table>

<div class="summary">
<p>{{.Text.Average}}: <b>{{.Average}}</b></p>
<p>{{.Text.Range}}: {{.Min}} {{.Text.RangeTo}} {{.Max}}</p>
<p>{{.Commission}}</p>
</div>

<div class="inputs">
<h3>{{.Text.ParamsTitle}}</h3>
{{- range .Params}}
<p><b>{{.Label}}:</b> {{.Value}}</p>
{{- end}}
</div>

<div class="internal">
<h3>{{.Text.InternalTitle}}</h3>
<table>
<tr><th>{{.Text.TierHeader}}</th><th>{{.Text.DurationHeader}}</th><th>{{.Text.NetHeader}}</th></tr>
{{- range .Rows}}
<tr><td>{{.Label}}</td><td>{{.Duration}}</td><td>{{.Net}}</td></tr>
{{- end}}
</table>
</div>

<div class="footer">
<p>{{.Text.FooterLine}}</p>
<p style="font-size:.85rem;color:#777">{{.Text.FooterNote}} &middot; {{.Text.ReferenceLabel}} {{.ID}}</p>
</div>
</body>
</html>
`))
