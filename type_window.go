package dashboard

import "strings"

// Window is a symbolic date window selector, resolved to a lower date bound.
type Window int

const (
	All Window = iota
	YTD
	OneYear
	TwoYears
	FiveYears
)

// Windows lists the selectable windows in display order.
var Windows = []Window{YTD, OneYear, TwoYears, FiveYears, All}

func (w Window) String() string {
	switch w {
	case YTD:
		return "YTD"
	case OneYear:
		return "1Y"
	case TwoYears:
		return "2Y"
	case FiveYears:
		return "5Y"
	default:
		return "all"
	}
}

// ParseWindow reads a window token (case insensitive).
// Unknown tokens resolve to All instead of failing.
func ParseWindow(token string) Window {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "YTD":
		return YTD
	case "1Y":
		return OneYear
	case "2Y":
		return TwoYears
	case "5Y":
		return FiveYears
	default:
		return All
	}
}

// From returns the lower bound of the window relative to today.
// It returns false for All, which has no bound of its own.
func (w Window) From(today Date) (Date, bool) {
	switch w {
	case YTD:
		return NewDate(today.Year(), 1, 1), true
	case OneYear:
		return today.AddYears(-1), true
	case TwoYears:
		return today.AddYears(-2), true
	case FiveYears:
		return today.AddYears(-5), true
	default:
		return Date{}, false
	}
}
