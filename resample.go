package dashboard

import (
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/interp"
)

// DailyBalance is the balance of an account on a day.
// Observed is false when the balance has been interpolated.
type DailyBalance struct {
	Account  string `json:"account"`
	Date     Date   `json:"date"`
	Balance  Money  `json:"balance"`
	Observed bool   `json:"observed"`
}

// Resample converts each account's irregular observations into a gap-free daily series.
//
// Same-day observations are averaged, missing days between the first and last
// observation of an account are linearly interpolated, and nothing is extrapolated
// outside of that span. All balances are rounded to 2 decimals.
// The result is sorted by (account, date).
func Resample(observations []Observation) []DailyBalance {
	byAccount := make(map[string][]Observation)
	for _, obs := range observations {
		byAccount[obs.Account] = append(byAccount[obs.Account], obs)
	}
	accounts := make([]string, 0, len(byAccount))
	for account := range byAccount {
		accounts = append(accounts, account)
	}
	slices.Sort(accounts)

	var out []DailyBalance
	for _, account := range accounts {
		out = append(out, resampleAccount(account, byAccount[account])...)
	}
	return out
}

// resampleAccount resamples the observations of a single account.
func resampleAccount(account string, observations []Observation) []DailyBalance {
	known := dailyMeans(observations)
	if len(known) == 0 {
		return nil
	}

	first, last := known[0].on, known[len(known)-1].on
	span := NewRange(first, last)
	out := make([]DailyBalance, 0, span.Len())
	seg := newSegments(known)

	for day := range span.Days() {
		i, observed := seg.locate(day)
		if observed {
			out = append(out, DailyBalance{Account: account, Date: day, Balance: known[i].balance.Round(), Observed: true})
			continue
		}
		out = append(out, DailyBalance{Account: account, Date: day, Balance: blend(known[i], known[i+1], day)})
	}
	return out
}

// segments locates a day among the known days of an account.
//
// It interpolates the index of the known days, so that the integer part of the
// prediction is the segment the day falls in. Balances are never converted to
// float: blend computes them in decimal.
type segments struct {
	first Date
	pl    interp.PiecewiseLinear
	n     int
	known []dailyMean
}

func newSegments(known []dailyMean) *segments {
	s := &segments{first: known[0].on, n: len(known), known: known}
	// interp needs at least two points, a single day has nothing to fill anyway.
	if s.n < 2 {
		return s
	}
	xs := make([]float64, s.n)
	ys := make([]float64, s.n)
	for i, k := range known {
		xs[i] = float64(k.on.DaysSince(s.first))
		ys[i] = float64(i)
	}
	if err := s.pl.Fit(xs, ys); err != nil {
		// xs are strictly increasing by construction.
		panic(err)
	}
	return s
}

// locate returns i such that day is in [known[i], known[i+1]), and whether day is known[i] itself.
func (s *segments) locate(day Date) (i int, observed bool) {
	if s.n < 2 {
		return 0, true
	}
	i = int(math.Floor(s.pl.Predict(float64(day.DaysSince(s.first)))))
	i = max(0, min(i, s.n-1))
	return i, s.known[i].on == day
}

// blend linearly interpolates the balance on day between two known days, rounded to 2 decimals.
func blend(from, to dailyMean, day Date) Money {
	elapsed := decimal.NewFromInt(int64(day.DaysSince(from.on)))
	length := decimal.NewFromInt(int64(to.on.DaysSince(from.on)))
	delta := to.balance.Decimal().Sub(from.balance.Decimal())
	return M(from.balance.Decimal().Add(delta.Mul(elapsed).Div(length)).Round(2))
}

type dailyMean struct {
	on      Date
	balance Money
}

// dailyMeans collapses same-day observations into their arithmetic mean, sorted by date.
func dailyMeans(observations []Observation) []dailyMean {
	sorted := slices.Clone(observations)
	slices.SortStableFunc(sorted, func(a, b Observation) int {
		if c := strings.Compare(a.Account, b.Account); c != 0 {
			return c
		}
		return a.Date.Compare(b.Date)
	})

	var out []dailyMean
	var same []Money
	for i, obs := range sorted {
		same = append(same, obs.Balance)
		if i+1 < len(sorted) && sorted[i+1].Date == obs.Date {
			continue
		}
		out = append(out, dailyMean{on: obs.Date, balance: Mean(same...)})
		same = same[:0]
	}
	return out
}
