package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/dashboard"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown lists the typed accounts, followed by the ones without a type.
func AccountsMarkdown(accounts []dashboard.AccountMeta, dropped []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText(md.Italic("No account with balances."))
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
			Header:    []string{"Account", "Type"},
			Rows:      [][]string{},
		}
		for _, a := range accounts {
			table.Rows = append(table.Rows, []string{a.Account, string(a.Type)})
		}
		doc.Table(table)
	}

	if len(dropped) > 0 {
		doc.PlainText(md.Italic("Ignored, no type declared: " + strings.Join(dropped, ", ") + "."))
	}
	return doc.String()
}
