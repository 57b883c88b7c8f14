package dashboard

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DMYFormat is the day/month/year layout used by the balance files.
// Single digit days and months are accepted on read.
const DMYFormat = "2/1/2006"

// DateFormat is the ISO-8601 layout used to write dates.
const DateFormat = "2006-01-02"

const readDateFormat = "2006-1-2" // Permissive ISO read format (allows single-digit month/day).

// LongFormat renders a date with its full month name, e.g. "January 2, 2006".
const LongFormat = "January 2, 2006"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Long formats the date with its full month name.
func (d Date) Long() string { return d.time().Format(LongFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddYears returns a new Date with the given number of years added.
// Like time.AddDate, February 29 on a non leap year becomes March 1.
func (d Date) AddYears(i int) Date { return NewDate(d.y+i, d.m, d.d) }

// DaysSince returns the number of days between x and d (positive when d is after x).
// It counts in seconds rather than time.Duration, which saturates after about 292 years.
func (d Date) DaysSince(x Date) int { return int((d.time().Unix() - x.time().Unix()) / secondsPerDay) }

const secondsPerDay = 24 * 60 * 60

// ParseDMY parses a strict day/month/year date, as found in balance files.
func ParseDMY(str string) (Date, error) {
	on, err := time.Parse(DMYFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, "dd/mm/yyyy", err)
	}
	return NewDate(on.Date()), nil
}

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)

// ParseDate parses a Date from a user supplied string.
//
// It accepts ISO dates ("2025-07-01", "2025-7-1"), day/month/year dates ("1/7/2025")
// and dates relative to today ("-1d", "-2w", "-3m", "-1y").
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	if str == "0d" {
		return Today(), nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		today := Today()
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return NewDate(today.Year(), today.Month()+time.Month(num), today.Day()), nil
		case "y":
			return today.AddYears(num), nil
		}
	}

	if strings.Contains(str, "/") {
		return ParseDMY(str)
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParse is like ParseDate but panics on error.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON reads a date from an ISO json string. An empty string is the zero Date.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q, want format %q: %w", str, DateFormat, err)
	}
	*j = NewDate(on.Date())
	return nil
}

// MarshalJSON writes the date as an ISO json string, the zero Date is written as "".
func (j Date) MarshalJSON() ([]byte, error) {
	str := ""
	if !j.IsZero() {
		str = j.String()
	}
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
