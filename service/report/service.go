package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/elC0mpa/aliyun-doctor/model"
)

// DefaultOutputPath is used when the caller does not provide one
const DefaultOutputPath = "exported/aliyun_billing_report.html"

type service struct {
	tmpl *template.Template
}

// ReportService renders aggregated billing data and exports it to disk
type ReportService interface {
	Render(data model.AggregatedBillingData) (string, error)
	Export(data model.AggregatedBillingData, outputPath string) (string, error)
}

func NewService() *service {
	return &service{
		tmpl: template.Must(template.New("billing_report").Parse(reportTemplate)),
	}
}

type reportRow struct {
	Class    string
	Date     string
	Label    string
	Original string
	Discount string
	Actual   string
}

type reportView struct {
	Rows []reportRow
}

// Render produces a self-contained HTML document for the aggregated data.
// Dates and product codes are sorted ascending, so the same input always
// yields byte-identical output.
func (s *service) Render(data model.AggregatedBillingData) (string, error) {
	view := buildView(data)

	var sb strings.Builder
	if err := s.tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render billing report: %w", err)
	}

	return sb.String(), nil
}

// Export renders the report and writes it to outputPath, creating parent
// directories as needed. Returns the absolute path of the written file.
func (s *service) Export(data model.AggregatedBillingData, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}

	html, err := s.Render(data)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filepath.Abs(outputPath)
}

func buildView(data model.AggregatedBillingData) reportView {
	dates := make([]string, 0, len(data))
	for date := range data {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var rows []reportRow
	var grand model.BillingBucket

	for _, date := range dates {
		products := data[date]

		productCodes := make([]string, 0, len(products))
		for code := range products {
			productCodes = append(productCodes, code)
		}
		sort.Strings(productCodes)

		var subtotal model.BillingBucket
		for i, code := range productCodes {
			bucket := products[code]

			dateLabel := ""
			if i == 0 {
				dateLabel = date
			}

			rows = append(rows, reportRow{
				Class:    "item",
				Date:     dateLabel,
				Label:    code,
				Original: formatAmount(bucket.Original),
				Discount: formatAmount(bucket.Discount),
				Actual:   formatAmount(bucket.Actual),
			})

			subtotal.Original += bucket.Original
			subtotal.Discount += bucket.Discount
			subtotal.Actual += bucket.Actual
		}

		rows = append(rows, reportRow{
			Class:    "subtotal",
			Date:     "",
			Label:    "Subtotal",
			Original: formatAmount(subtotal.Original),
			Discount: formatAmount(subtotal.Discount),
			Actual:   formatAmount(subtotal.Actual),
		})

		grand.Original += subtotal.Original
		grand.Discount += subtotal.Discount
		grand.Actual += subtotal.Actual
	}

	rows = append(rows, reportRow{
		Class:    "grand-total",
		Date:     "",
		Label:    "Grand Total",
		Original: formatAmount(grand.Original),
		Discount: formatAmount(grand.Discount),
		Actual:   formatAmount(grand.Actual),
	})

	return reportView{Rows: rows}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Aliyun Billing Report</title>
<style>
body { font-family: Arial, sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 12px; text-align: right; }
th, td:first-child, td:nth-child(2) { text-align: left; }
th { background: #f5f5f5; }
tr.subtotal td { background: #fafafa; font-weight: bold; }
tr.grand-total td { background: #eef3f8; font-weight: bold; }
</style>
</head>
<body>
<h1>Aliyun Billing Report</h1>
<table>
<thead>
<tr><th>Date</th><th>Product</th><th>Original</th><th>Discount</th><th>Actual</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr class="{{.Class}}"><td>{{.Date}}</td><td>{{.Label}}</td><td>{{.Original}}</td><td>{{.Discount}}</td><td>{{.Actual}}</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`
