package dashboard

import "slices"

// DateTotal is the total balance of all accounts on a date.
type DateTotal struct {
	Date  Date  `json:"date"`
	Total Money `json:"total_balance"`
}

// TypeTotal is the total balance of the accounts of a category.
type TypeTotal struct {
	Category Category `json:"type"`
	Total    Money    `json:"balance"`
}

// DatedTypeTotal is the total balance of the accounts of a category on a date.
type DatedTypeTotal struct {
	Date     Date     `json:"date"`
	Category Category `json:"type"`
	Total    Money    `json:"balance"`
}

// Summary holds the headline figures of the portfolio on a date.
type Summary struct {
	Date   Date        `json:"date"`
	Total  Money       `json:"total_balance"`
	ByType []TypeTotal `json:"by_type"`
}

// maxDate returns the latest date in rows, zero if there are none.
func maxDate(rows []Row) Date {
	var last Date
	for _, r := range rows {
		if r.Date.After(last) {
			last = r.Date
		}
	}
	return last
}

// TotalsByDate sums the balances of all accounts for each date, ordered by date.
func TotalsByDate(rows []Row) []DateTotal {
	index := make(map[Date]int)
	var totals []DateTotal
	for _, r := range rows {
		i, ok := index[r.Date]
		if !ok {
			i = len(totals)
			index[r.Date] = i
			totals = append(totals, DateTotal{Date: r.Date})
		}
		totals[i].Total = totals[i].Total.Add(r.Balance)
	}
	slices.SortFunc(totals, func(a, b DateTotal) int { return a.Date.Compare(b.Date) })
	return totals
}

// TotalsByType sums the balances per category on a date.
//
// A zero date means the latest date in rows. Categories with no row on that date
// are absent from the result. The result follows the display order.
func TotalsByType(rows []Row, on Date, order *CategoryOrder) []TypeTotal {
	if on.IsZero() {
		on = maxDate(rows)
	}
	var totals []TypeTotal
	for _, r := range rows {
		if r.Date != on {
			continue
		}
		i := slices.IndexFunc(totals, func(t TypeTotal) bool { return t.Category == r.Category })
		if i < 0 {
			i = len(totals)
			totals = append(totals, TypeTotal{Category: r.Category})
		}
		totals[i].Total = totals[i].Total.Add(r.Balance)
	}
	slices.SortFunc(totals, func(a, b TypeTotal) int { return order.Compare(a.Category, b.Category) })
	return totals
}

// TypeTotalsByDate sums the balances per (date, category), ordered by date then display order.
func TypeTotalsByDate(rows []Row, order *CategoryOrder) []DatedTypeTotal {
	type key struct {
		on  Date
		cat Category
	}
	index := make(map[key]int)
	var totals []DatedTypeTotal
	for _, r := range rows {
		k := key{r.Date, r.Category}
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, DatedTypeTotal{Date: r.Date, Category: r.Category})
		}
		totals[i].Total = totals[i].Total.Add(r.Balance)
	}
	slices.SortFunc(totals, func(a, b DatedTypeTotal) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return order.Compare(a.Category, b.Category)
	})
	return totals
}

// LatestSnapshot returns the per category totals and the grand total at the latest date of rows.
func LatestSnapshot(rows []Row, order *CategoryOrder) Summary {
	on := maxDate(rows)
	s := Summary{Date: on, ByType: TotalsByType(rows, on, order)}
	for _, t := range s.ByType {
		s.Total = s.Total.Add(t.Total)
	}
	return s
}
