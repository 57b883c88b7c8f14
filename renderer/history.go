package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dashboard"
	md "github.com/nao1215/markdown"
)

// TotalsMarkdown renders the total balance over time.
func TotalsMarkdown(title string, totals []dashboard.DateTotal, cur dashboard.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(totals) == 0 {
		doc.PlainText(md.Italic("No balance in this range."))
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Balance"},
		Rows:      [][]string{},
	}
	for _, t := range totals {
		table.Rows = append(table.Rows, []string{t.Date.String(), cur.Format(t.Total)})
	}
	doc.Table(table)

	return doc.String()
}

// TypesMarkdown renders the balance per type over time, one column per type.
//
// Dates are kept only if keep returns true, so that long ranges can be sampled.
func TypesMarkdown(title string, totals []dashboard.DatedTypeTotal, order *dashboard.CategoryOrder, keep func(dashboard.Date) bool, cur dashboard.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(totals) == 0 {
		doc.PlainText(md.Italic("No balance in this range."))
		return doc.String()
	}

	var categories []dashboard.Category
	for _, t := range totals {
		if !containsCategory(categories, t.Category) {
			categories = append(categories, t.Category)
		}
	}
	sortCategories(categories, order)

	header := []string{"Date"}
	alignment := []md.TableAlignment{md.AlignLeft}
	for _, c := range categories {
		header = append(header, string(c))
		alignment = append(alignment, md.AlignRight)
	}
	header = append(header, md.Bold("Total"))
	alignment = append(alignment, md.AlignRight)

	table := md.TableSet{Alignment: alignment, Header: header, Rows: [][]string{}}
	for i := 0; i < len(totals); {
		on := totals[i].Date
		byCategory := make(map[dashboard.Category]dashboard.Money)
		var total dashboard.Money
		for ; i < len(totals) && totals[i].Date == on; i++ {
			byCategory[totals[i].Category] = totals[i].Total
			total = total.Add(totals[i].Total)
		}
		if keep != nil && !keep(on) {
			continue
		}
		row := []string{on.String()}
		for _, c := range categories {
			if v, ok := byCategory[c]; ok {
				row = append(row, cur.Format(v))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, cur.Format(total))
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// BalancesMarkdown renders the daily series of a single account.
func BalancesMarkdown(account string, series []dashboard.DailyBalance, cur dashboard.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balances of %s", account))
	if len(series) == 0 {
		doc.PlainText(md.Italic("No balance in this range."))
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Balance", "Source"},
		Rows:      [][]string{},
	}
	for _, b := range series {
		source := "interpolated"
		if b.Observed {
			source = "observed"
		}
		table.Rows = append(table.Rows, []string{b.Date.String(), cur.Format(b.Balance), source})
	}
	doc.Table(table)

	return doc.String()
}
