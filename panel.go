package dashboard

import (
	"slices"
	"strings"
)

// Row is a daily balance with the type of its account.
type Row struct {
	DailyBalance
	Category Category `json:"type"`
}

// Join attaches the account type to every daily balance.
//
// It is an inner join: balances of accounts without metadata are dropped, and the
// dropped account names are returned (sorted, unique) so that the caller can report them.
func Join(daily []DailyBalance, accounts []AccountMeta) (rows []Row, dropped []string) {
	types := make(map[string]Category, len(accounts))
	for _, a := range accounts {
		types[a.Account] = NormalizeCategory(string(a.Type))
	}
	rows = make([]Row, 0, len(daily))
	for _, d := range daily {
		typ, ok := types[d.Account]
		if !ok {
			if !slices.Contains(dropped, d.Account) {
				dropped = append(dropped, d.Account)
			}
			continue
		}
		rows = append(rows, Row{DailyBalance: d, Category: typ})
	}
	slices.Sort(dropped)
	return rows, dropped
}

// Panel is the normalized daily dataset: one row per account per day within the
// account's own observed span, typed with its account category.
//
// A Panel is immutable, every query returns new slices.
type Panel struct {
	rows    []Row // sorted by (date, category, account)
	order   *CategoryOrder
	dropped []string
}

// NewPanel resamples and types the store content.
func NewPanel(s *Store) *Panel {
	rows, dropped := Join(Resample(s.observations), s.accounts)

	// first-seen order of categories follows the accounts file.
	seen := make([]Category, 0, len(s.accounts))
	for _, a := range s.accounts {
		seen = append(seen, a.Type)
	}
	return newPanel(rows, dropped, NewCategoryOrder(seen...))
}

func newPanel(rows []Row, dropped []string, order *CategoryOrder) *Panel {
	p := &Panel{rows: slices.Clone(rows), order: order, dropped: dropped}
	slices.SortStableFunc(p.rows, p.compareRows)
	return p
}

func (p *Panel) compareRows(a, b Row) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := p.order.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	return strings.Compare(a.Account, b.Account)
}

// Rows returns a copy of all the rows, sorted by (date, category, account).
func (p *Panel) Rows() []Row { return slices.Clone(p.rows) }

// Len returns the number of rows.
func (p *Panel) Len() int { return len(p.rows) }

// IsEmpty reports whether the panel has no rows at all.
func (p *Panel) IsEmpty() bool { return len(p.rows) == 0 }

// First returns the minimum date in the panel, zero if empty.
func (p *Panel) First() Date {
	if p.IsEmpty() {
		return Date{}
	}
	return p.rows[0].Date
}

// Last returns the maximum date in the panel, zero if empty.
func (p *Panel) Last() Date {
	if p.IsEmpty() {
		return Date{}
	}
	return p.rows[len(p.rows)-1].Date
}

// Dropped returns the accounts that had observations but no metadata.
func (p *Panel) Dropped() []string { return slices.Clone(p.dropped) }

// Order returns the category display order of this panel.
func (p *Panel) Order() *CategoryOrder { return p.order }

// Categories returns the categories of the panel in display order.
func (p *Panel) Categories() []Category {
	var present []Category
	for _, r := range p.rows {
		if !slices.Contains(present, r.Category) {
			present = append(present, r.Category)
		}
	}
	slices.SortFunc(present, p.order.Compare)
	return present
}

// AccountNames returns every typed account, sorted by (category, account).
func (p *Panel) AccountNames() []AccountMeta {
	var accounts []AccountMeta
	for _, r := range p.rows {
		if !slices.ContainsFunc(accounts, func(a AccountMeta) bool { return a.Account == r.Account }) {
			accounts = append(accounts, AccountMeta{Account: r.Account, Type: r.Category})
		}
	}
	slices.SortFunc(accounts, func(a, b AccountMeta) int {
		if c := p.order.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return strings.Compare(a.Account, b.Account)
	})
	return accounts
}

// Account returns the daily series of one account, false if the account is not in the panel.
func (p *Panel) Account(name string) ([]DailyBalance, bool) {
	var series []DailyBalance
	for _, r := range p.rows {
		if r.Account == name {
			series = append(series, r.DailyBalance)
		}
	}
	return series, len(series) > 0
}

// Since returns the rows dated on or after from.
func (p *Panel) Since(from Date) []Row {
	i, _ := slices.BinarySearchFunc(p.rows, from, func(r Row, on Date) int { return r.Date.Compare(on) })
	return slices.Clone(p.rows[i:])
}

// Select returns the rows of the window, relative to today.
// All, and any unknown window, returns every row.
func (p *Panel) Select(w Window, today Date) []Row {
	from, ok := w.From(today)
	if !ok {
		from = p.First()
	}
	return p.Since(from)
}
