package dashboard

import (
	"slices"
	"strings"
)

// Selection holds the dates picked by the user on the two charts. Zero means nothing picked.
type Selection struct {
	Area   Date // picked on the per account area chart
	Totals Date // picked on the aggregated totals chart
}

// Resolve returns the date to compose.
// The area chart is finer grained, so it wins over the totals chart, and without
// any pick the latest date of the panel is used.
func (s Selection) Resolve(p *Panel) Date {
	switch {
	case !s.Area.IsZero():
		return s.Area
	case !s.Totals.IsZero():
		return s.Totals
	default:
		return p.Last()
	}
}

// CompositionEntry is a strictly positive account balance in a composition.
type CompositionEntry struct {
	Date     Date     `json:"date"`
	Category Category `json:"type"`
	Account  string   `json:"account"`
	Balance  Money    `json:"balance"`
}

// Composition is the breakdown of the portfolio into category and accounts on a date.
type Composition struct {
	Date    Date
	Entries []CompositionEntry // balance > 0, sorted by (category, balance, account)
	// Excluded holds the rows whose balance is zero or negative, they cannot be drawn as shares.
	Excluded            []Row
	HasExcludedNegative bool
}

// Compose builds the composition of rows on a date.
func Compose(rows []Row, on Date, order *CategoryOrder) Composition {
	c := Composition{Date: on}
	for _, r := range rows {
		if r.Date != on {
			continue
		}
		if !r.Balance.IsPositive() {
			c.Excluded = append(c.Excluded, r)
			continue
		}
		c.Entries = append(c.Entries, CompositionEntry{Date: r.Date, Category: r.Category, Account: r.Account, Balance: r.Balance})
	}
	c.HasExcludedNegative = len(c.Excluded) > 0
	slices.SortFunc(c.Entries, func(a, b CompositionEntry) int {
		if n := order.Compare(a.Category, b.Category); n != 0 {
			return n
		}
		if n := a.Balance.Cmp(b.Balance); n != 0 {
			return n
		}
		return strings.Compare(a.Account, b.Account)
	})
	return c
}

// Total returns the sum of the entries.
func (c Composition) Total() Money {
	var total Money
	for _, e := range c.Entries {
		total = total.Add(e.Balance)
	}
	return total
}

// CategoryBreakdown is one branch of the category to accounts hierarchy.
type CategoryBreakdown struct {
	Category Category
	Total    Money
	Entries  []CompositionEntry
}

// ByCategory groups the entries into the category to accounts hierarchy, keeping the entries order.
func (c Composition) ByCategory() []CategoryBreakdown {
	var out []CategoryBreakdown
	for _, e := range c.Entries {
		if len(out) == 0 || out[len(out)-1].Category != e.Category {
			out = append(out, CategoryBreakdown{Category: e.Category})
		}
		last := &out[len(out)-1]
		last.Total = last.Total.Add(e.Balance)
		last.Entries = append(last.Entries, e)
	}
	return out
}
