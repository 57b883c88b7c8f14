package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dashboard"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the headline figures: the total and the per type balances.
func SummaryMarkdown(s dashboard.Summary, cur dashboard.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if s.Date.IsZero() {
		doc.H1("Portfolio Summary")
		doc.PlainText(md.Italic("No balance recorded yet."))
		return doc.String()
	}

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date.Long()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{md.Bold("Total Balance"), md.Bold(cur.Format(s.Total)), ""},
		Rows:      [][]string{},
	}
	for _, t := range s.ByType {
		table.Rows = append(table.Rows, []string{
			string(t.Category),
			cur.Format(t.Total),
			dashboard.Share(t.Total, s.Total).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
