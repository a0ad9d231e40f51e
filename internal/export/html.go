package export

import (
	"html/template"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/vendormatch/internal/model"
)

var usd = message.NewPrinter(language.AmericanEnglish)

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"usd": func(v float64) string { return usd.Sprintf("$%.0f", v) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Vendor-Client Relationship Report</title>
<style>
body { font-family: -apple-system, Helvetica, Arial, sans-serif; margin: 2rem; color: #2D3748; }
h1 { color: #00175A; }
h2 { color: #006FCF; border-bottom: 2px solid #A6CDEE; padding-bottom: 4px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 1.5rem; }
th { background: #006FCF; color: white; text-align: left; padding: 8px; }
td { border-bottom: 1px solid #e2e8f0; padding: 8px; }
.cards { display: flex; gap: 1rem; flex-wrap: wrap; margin-bottom: 1.5rem; }
.card { background: #f7fafc; border: 1px solid #A6CDEE; border-radius: 8px; padding: 1rem; min-width: 180px; }
.card .value { font-size: 1.5rem; font-weight: bold; color: #00175A; }
.insight { background: #ebf8ff; border-left: 4px solid #23A8D1; padding: 8px 12px; margin-bottom: 8px; }
footer { margin-top: 2rem; color: #718096; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Vendor-Client Relationship Report</h1>

<h2>Overview</h2>
<div class="cards">
<div class="card"><div>Companies</div><div class="value">{{.Summary.Overview.TotalCompanies}}</div></div>
<div class="card"><div>Vendor Spend</div><div class="value">{{usd .Summary.Overview.TotalVendorSpendUSD}}</div></div>
<div class="card"><div>Client Spend</div><div class="value">{{usd .Summary.Overview.TotalClientSpendUSD}}</div></div>
<div class="card"><div>Total Value</div><div class="value">{{usd .Summary.Overview.TotalRelationshipValueUSD}}</div></div>
<div class="card"><div>Exact / Fuzzy</div><div class="value">{{.Summary.MatchQuality.ExactMatches}} / {{.Summary.MatchQuality.FuzzyMatches}}</div></div>
</div>

{{if .Summary.Insights}}
<h2>Insights</h2>
{{range .Summary.Insights}}<div class="insight">{{.}}</div>
{{end}}
{{end}}

<h2>Consolidated Relationships</h2>
<table>
<tr><th>Company</th><th>Type</th><th>Quality</th><th>Vendor Spend</th><th>Client Spend</th><th>Total Value</th><th>Currencies</th><th>Earliest End</th></tr>
{{range .Relationships}}
<tr>
<td>{{.CompanyName}}</td>
<td>{{.RelationshipType}}</td>
<td>{{.MatchQuality}}</td>
<td>{{usd .VendorTotalSpendUSD}}</td>
<td>{{usd .ClientTotalSpendUSD}}</td>
<td>{{usd .TotalRelationshipValue}}</td>
<td>{{.VendorCurrenciesUsed}}</td>
<td>{{.VendorEarliestEndDate}}</td>
</tr>
{{end}}
</table>

<h2>Detailed Matches</h2>
<table>
<tr><th>Vendor</th><th>Client</th><th>Match Type</th><th>Score</th><th>Total Value</th></tr>
{{range .Matches}}
<tr>
<td>{{.VendorName}}</td>
<td>{{.ClientName}}</td>
<td>{{.Type}}</td>
<td>{{printf "%.3f" .Score}}</td>
<td>{{usd .TotalRelationshipValue}}</td>
</tr>
{{end}}
</table>

<footer>Generated {{.GeneratedAt}}</footer>
</body>
</html>
`))

type reportData struct {
	*model.Result
	GeneratedAt string
}

// WriteHTML renders the pipeline result as a standalone HTML report.
// Results without a summary get an empty one so the template always renders.
func WriteHTML(path string, result *model.Result) error {
	res := *result
	if res.Summary == nil {
		res.Summary = &model.Summary{}
	}
	data := reportData{
		Result:      &res,
		GeneratedAt: time.Now().Format("2006-01-02 15:04 MST"),
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create html report")
	}
	defer f.Close()

	if err := reportTmpl.Execute(f, data); err != nil {
		return eris.Wrap(err, "export: render html report")
	}
	return nil
}
