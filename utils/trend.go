package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aliyun-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawDailyTrendChart renders one bar per day with the day's actual spend
func DrawDailyTrendChart(data model.AggregatedBillingData) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📈 ALIYUN DAILY SPEND TREND"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	dates := make([]string, 0, len(data))
	for date := range data {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	totals := make([]float64, len(dates))
	for i, date := range dates {
		for _, bucket := range data[date] {
			totals[i] += bucket.Actual
		}
	}

	bc := barchart.New(130, 20)

	indexedColors := assignRankedColors(totals)

	for i, date := range dates {
		bc.Push(barchart.BarData{
			Label: getBarLabel(date, totals[i]),
			Values: []barchart.BarValue{
				{
					Value: totals[i],
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[i])),
				},
			},
		})
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func getBarLabel(date string, total float64) string {
	parsedTime, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Sprintf("%s: %.2f", date, total)
	}

	return fmt.Sprintf("%s: %.2f", parsedTime.Format("Jan 02"), total)
}

func assignRankedColors(totals []float64) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type totalWithIndex struct {
		index int
		value float64
	}

	totalsToSort := make([]totalWithIndex, len(totals))
	for i, total := range totals {
		totalsToSort[i] = totalWithIndex{index: i, value: total}
	}

	sort.Slice(totalsToSort, func(i, j int) bool {
		return totalsToSort[i].value > totalsToSort[j].value
	})

	resultColors := make([]string, len(totals))
	for rank, sortedTotal := range totalsToSort {
		if rank < len(palette) {
			resultColors[sortedTotal.index] = palette[rank]
		} else {
			resultColors[sortedTotal.index] = palette[len(palette)-1]
		}
	}

	return resultColors
}
