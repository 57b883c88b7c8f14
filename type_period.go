package dashboard

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period used to sample daily series for display.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Weekly:
		offset := int(time.Sunday - d.time().Weekday())
		if offset < 0 {
			offset += 7
		}
		return d.Add(offset)
	case Monthly:
		return NewDate(d.Year(), d.Month()+1, 0)
	case Quarterly:
		quarter := (d.Month() - 1) / 3          // in [0..3]
		endMonth := time.Month(quarter*3 + 3)   // in [1..12] hence the +3
		return NewDate(d.Year(), endMonth+1, 0) // last is next month on the day 0
	case Yearly:
		return NewDate(d.Year()+1, time.January, 0)
	default:
		return d
	}
}

// Sample keeps, for each period, the last total of the series, ordered by date.
// The last total is always kept even when its period is not over yet.
func Sample(totals []DateTotal, p Period) []DateTotal {
	if p == Daily {
		return totals
	}
	var out []DateTotal
	for i, t := range totals {
		if i+1 < len(totals) && !totals[i+1].Date.After(t.Date.EndOf(p)) {
			continue // a later day of the same period exists
		}
		out = append(out, t)
	}
	return out
}
