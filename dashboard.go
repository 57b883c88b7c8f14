package dashboard

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Dashboard answers the queries of the presentation layer on an immutable panel.
//
// It holds no mutable state: every query recomputes its answer from the panel.
// To take new inputs into account, build a new Dashboard.
type Dashboard struct {
	panel *Panel
	today func() Date
	log   zerolog.Logger
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithClock sets the function returning the current date, used to resolve windows.
func WithClock(today func() Date) Option { return func(d *Dashboard) { d.today = today } }

// WithLogger sets the logger used to report data issues while building the panel.
func WithLogger(log zerolog.Logger) Option { return func(d *Dashboard) { d.log = log } }

// New builds the panel of the store and returns its Dashboard.
func New(s *Store, opts ...Option) *Dashboard {
	d := &Dashboard{today: Today, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	d.panel = NewPanel(s)

	for _, account := range d.panel.Dropped() {
		d.log.Warn().Str("account", account).Msg("account has balances but no type, it is excluded from all views")
	}
	d.log.Debug().
		Int("rows", d.panel.Len()).
		Str("from", d.panel.First().String()).
		Str("to", d.panel.Last().String()).
		Msg("panel built")
	return d
}

// Load decodes the balance and account csv inputs and builds a Dashboard.
func Load(balances, accounts io.Reader, opts ...Option) (*Dashboard, error) {
	observations, err := DecodeObservations(balances)
	if err != nil {
		return nil, err
	}
	metas, err := DecodeAccounts(accounts)
	if err != nil {
		return nil, err
	}
	s, err := NewStore(observations, metas)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard: %w", err)
	}
	return New(s, opts...), nil
}

// Panel returns the underlying normalized panel.
func (d *Dashboard) Panel() *Panel { return d.panel }

// Today returns the date windows are resolved against.
func (d *Dashboard) Today() Date { return d.today() }

// Totals returns the total balance per date over the window.
func (d *Dashboard) Totals(token string) []DateTotal {
	return TotalsByDate(d.panel.Select(ParseWindow(token), d.today()))
}

// CompositionByType returns the total balance per date and category over the window.
func (d *Dashboard) CompositionByType(token string) []DatedTypeTotal {
	return TypeTotalsByDate(d.panel.Select(ParseWindow(token), d.today()), d.panel.Order())
}

// SelectedComposition returns the category to account breakdown on the selected date.
func (d *Dashboard) SelectedComposition(sel Selection) Composition {
	on := sel.Resolve(d.panel)
	return Compose(d.panel.Since(on), on, d.panel.Order())
}

// Summary returns the total and the per category totals at the latest date of the panel.
func (d *Dashboard) Summary() Summary {
	return LatestSnapshot(d.panel.Since(d.panel.Last()), d.panel.Order())
}

// Balances returns the daily series of an account over the window, false if the account is unknown.
func (d *Dashboard) Balances(account, token string) ([]DailyBalance, bool) {
	series, ok := d.panel.Account(account)
	if !ok {
		return nil, false
	}
	from, bounded := ParseWindow(token).From(d.today())
	if !bounded {
		return series, true
	}
	var out []DailyBalance
	for _, b := range series {
		if !b.Date.Before(from) {
			out = append(out, b)
		}
	}
	return out, true
}
