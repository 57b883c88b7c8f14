package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/dashboard"
	md "github.com/nao1215/markdown"
)

// CompositionMarkdown renders the type to account breakdown of a composition.
// Each type is followed by its accounts, shares are relative to the composition total.
func CompositionMarkdown(c dashboard.Composition, cur dashboard.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Composition on %s", c.Date.Long()))

	if c.HasExcludedNegative {
		excluded := make([]string, 0, len(c.Excluded))
		for _, r := range c.Excluded {
			excluded = append(excluded, fmt.Sprintf("%s (%s)", r.Account, cur.Format(r.Balance)))
		}
		doc.PlainText(md.Italic(fmt.Sprintf("Warning: accounts with a zero or negative balance are not shown: %s.", strings.Join(excluded, ", "))))
	}

	if len(c.Entries) == 0 {
		doc.PlainText(md.Italic("No positive balance on this date."))
		return doc.String()
	}

	total := c.Total()
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Type", "Account", "Balance", "Share"},
		Rows:      [][]string{},
	}
	for _, branch := range c.ByCategory() {
		table.Rows = append(table.Rows, []string{
			md.Bold(string(branch.Category)),
			"",
			md.Bold(cur.Format(branch.Total)),
			md.Bold(dashboard.Share(branch.Total, total).String()),
		})
		for _, e := range branch.Entries {
			table.Rows = append(table.Rows, []string{
				"",
				e.Account,
				cur.Format(e.Balance),
				dashboard.Share(e.Balance, total).String(),
			})
		}
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", md.Bold(cur.Format(total)), ""})
	doc.Table(table)

	return doc.String()
}
