package utils

import (
	"fmt"
	"sort"

	"github.com/elC0mpa/aliyun-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawBillingTable renders the aggregated billing data with the same
// grouping as the HTML report: products per date, a subtotal per date and a
// grand total at the bottom.
func DrawBillingTable(data model.AggregatedBillingData) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💰 ALIYUN BILLING"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Date", "Product", "Original", "Discount", "Actual"})

	dates := make([]string, 0, len(data))
	for date := range data {
		dates = append(dates, date)
	}
	sort.Strings(dates)

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
				dateLabel = text.FgBlue.Sprint(date)
			}

			tw.AppendRow(table.Row{
				dateLabel,
				text.FgGreen.Sprint(code),
				fmt.Sprintf("%.4f", bucket.Original),
				fmt.Sprintf("%.4f", bucket.Discount),
				fmt.Sprintf("%.4f", bucket.Actual),
			})

			subtotal.Original += bucket.Original
			subtotal.Discount += bucket.Discount
			subtotal.Actual += bucket.Actual
		}

		tw.AppendRow(table.Row{
			"",
			text.FgHiYellow.Sprint("Subtotal"),
			text.FgHiYellow.Sprintf("%.4f", subtotal.Original),
			text.FgHiYellow.Sprintf("%.4f", subtotal.Discount),
			text.FgHiYellow.Sprintf("%.4f", subtotal.Actual),
		})

		grand.Original += subtotal.Original
		grand.Discount += subtotal.Discount
		grand.Actual += subtotal.Actual
	}

	tw.AppendFooter(table.Row{
		"",
		"Grand Total",
		fmt.Sprintf("%.4f", grand.Original),
		fmt.Sprintf("%.4f", grand.Discount),
		fmt.Sprintf("%.4f", grand.Actual),
	})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	fmt.Println(tw.Render())
}

// DrawInstanceTable renders ECS instance summaries
func DrawInstanceTable(list *model.InstanceList) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🖥  ECS INSTANCES"))
	fmt.Printf(" Region: %s   Total: %s\n",
		text.FgBlue.Sprint(list.Region),
		text.FgBlue.Sprintf("%d", list.Total))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Instance ID", "Name", "Status", "Type", "Public IP", "Private IP", "OS", "CPU", "Memory (MB)", "Created"})

	for _, instance := range list.Instances {
		tw.AppendRow(table.Row{
			instance.InstanceID,
			instance.InstanceName,
			colorStatus(instance.Status),
			instance.InstanceType,
			stringOrDash(instance.PublicIP),
			stringOrDash(instance.PrivateIP),
			instance.OSName,
			instance.CPU,
			instance.MemoryMB,
			instance.CreationTime,
		})
	}

	tw.SetStyle(table.StyleRounded)
	fmt.Println(tw.Render())
}

func colorStatus(status string) string {
	switch status {
	case "Running":
		return text.FgGreen.Sprint(status)
	case "Stopped":
		return text.FgRed.Sprint(status)
	default:
		return text.FgYellow.Sprint(status)
	}
}

func stringOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
