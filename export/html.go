package export

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"bazaraki-deals/models"
)

// reportTemplate is the static-styled deal report: generation timestamp,
// total count, a top-10 summary table, and a detail section per deal.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>Bazaraki Electronics Deals Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .deal { border: 1px solid #ddd; padding: 15px; margin: 10px 0; border-radius: 5px; }
        .deal-header { color: #d9534f; font-size: 18px; font-weight: bold; }
        .deal-score { background: #5cb85c; color: white; padding: 5px 10px; border-radius: 3px; display: inline-block; }
        .price { font-size: 20px; color: #337ab7; }
        .savings { color: #5cb85c; font-weight: bold; }
        .table { width: 100%; border-collapse: collapse; }
        .table th, .table td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        .table th { background-color: #f2f2f2; }
    </style>
</head>
<body>
    <h1>Bazaraki Electronics Deals Report</h1>
    <p>Generated on: {{.GeneratedAt}}</p>
    <p>Total deals found: {{.Total}}</p>

    <h2>Top Deals Summary</h2>
    <table class="table">
        <tr>
            <th>Product</th>
            <th>Price</th>
            <th>Market Price</th>
            <th>Savings</th>
            <th>Deal Score</th>
            <th>Location</th>
        </tr>
{{- range .Top}}
        <tr>
            <td>{{shorten .Title 50}}</td>
            <td>{{euro .Price}}</td>
            <td>{{euro .MarketPrice}}</td>
            <td class="savings">{{euro .Savings}}</td>
            <td><span class="deal-score">{{percent .DealScore}}</span></td>
            <td>{{.Location}}</td>
        </tr>
{{- end}}
    </table>

    <h2>Detailed Deals</h2>
{{- range .Deals}}
    <div class="deal">
        <div class="deal-header">{{.Title}}</div>
        <div class="price">{{euro .Price}}
            <span class="deal-score">{{percent .DealScore}} OFF</span>
        </div>
        <p><strong>Market Price:</strong> {{euro .MarketPrice}}</p>
        <p><strong>You Save:</strong> <span class="savings">{{euro .Savings}}</span></p>
        <p><strong>Type:</strong> {{.ProductType}} ({{.Condition}})</p>
        <p><strong>Location:</strong> {{.Location}}</p>
        <p><strong>Seller:</strong> {{.Seller}}</p>
        <p><strong>Posted:</strong> {{.PostedDate}}</p>
        <p><strong>Description:</strong> {{.Description}}</p>
        <p><a href="{{.URL}}" target="_blank">View Listing</a></p>
    </div>
{{- end}}
</body>
</html>
`

// topTableSize is how many deals appear in the summary table.
const topTableSize = 10

type reportData struct {
	GeneratedAt string
	Total       int
	Top         []*models.Deal
	Deals       []*models.Deal
}

var reportFuncs = template.FuncMap{
	"euro": func(f float64) string {
		return fmt.Sprintf("€%.2f", f)
	},
	"percent": func(f float64) string {
		return fmt.Sprintf("%.1f%%", f)
	},
	"shorten": func(s string, max int) string {
		runes := []rune(s)
		if len(runes) <= max {
			return s
		}
		return string(runes[:max]) + "..."
	},
}

var report = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

// writeHTML renders the report for the ranked deals.
func writeHTML(path string, deals []*models.Deal) error {
	top := deals
	if len(top) > topTableSize {
		top = top[:topTableSize]
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("html: create file: %w", err)
	}

	data := reportData{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Total:       len(deals),
		Top:         top,
		Deals:       deals,
	}
	if err := report.Execute(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("html: render report: %w", err)
	}
	return f.Close()
}
