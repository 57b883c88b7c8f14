package dashboard

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDMY(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"01/01/2024", NewDate(2024, time.January, 1), false},
		{"1/2/2024", NewDate(2024, time.February, 1), false},
		{" 31/12/2023 ", NewDate(2023, time.December, 31), false},
		{"29/02/2024", NewDate(2024, time.February, 29), false},
		{"29/02/2023", Date{}, true},
		{"32/01/2024", Date{}, true},
		{"2024-01-01", Date{}, true},
		{"01/13/2024", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, err := ParseDMY(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDMY(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if actual != tt.expected {
				t.Errorf("ParseDMY(%q) = %v, want %v", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// ISO Format
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// day/month/year Format
		{"15/01/2025", NewDate(2025, time.January, 15), false},
		{"15/13/2025", Date{}, true},

		// Relative Duration Format
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-0d", today, false},
		{"-2w", today.Add(-14), false},
		{"+1m", NewDate(today.Year(), today.Month()+1, today.Day()), false},
		{"-1y", today.AddYears(-1), false},
		{"-3q", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if actual != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestDate_AddYears(t *testing.T) {
	tests := []struct {
		on    Date
		years int
		want  Date
	}{
		{NewDate(2024, time.June, 15), -1, NewDate(2023, time.June, 15)},
		{NewDate(2024, time.June, 15), -5, NewDate(2019, time.June, 15)},
		// there is no February 29 in 2023, it rolls over to March 1.
		{NewDate(2024, time.February, 29), -1, NewDate(2023, time.March, 1)},
		{NewDate(2024, time.February, 29), -4, NewDate(2020, time.February, 29)},
	}
	for _, tt := range tests {
		if got := tt.on.AddYears(tt.years); got != tt.want {
			t.Errorf("%v.AddYears(%d) = %v, want %v", tt.on, tt.years, got, tt.want)
		}
	}
}

func TestDate_DaysSince(t *testing.T) {
	from := NewDate(2024, time.February, 27)
	tests := []struct {
		on   Date
		want int
	}{
		{from, 0},
		{NewDate(2024, time.March, 1), 3}, // leap year
		{NewDate(2024, time.February, 26), -1},
		{NewDate(2025, time.February, 27), 366},
		// wider than what a time.Duration can hold.
		{NewDate(1700, time.January, 1), -118395},
		{NewDate(2500, time.February, 27), 173856},
	}
	if got := NewDate(2024, time.January, 1).DaysSince(NewDate(1700, time.January, 1)); got != 118338 {
		t.Errorf("2024-01-01.DaysSince(1700-01-01) = %d, want 118338", got)
	}
	for _, tt := range tests {
		if got := tt.on.DaysSince(from); got != tt.want {
			t.Errorf("%v.DaysSince(%v) = %d, want %d", tt.on, from, got, tt.want)
		}
	}
}

func TestDate_Long(t *testing.T) {
	if got, want := NewDate(2024, time.January, 3).Long(), "January 3, 2024"; got != want {
		t.Errorf("Long() = %q, want %q", got, want)
	}
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		On Date `json:"on"`
	}

	data, err := json.Marshal(payload{On: NewDate(2024, time.March, 5)})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"on":"2024-03-05"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	data, err = json.Marshal(payload{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"on":""}`; got != want {
		t.Errorf("json.Marshal(zero) = %s, want %s", got, want)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"on":""}`), &p); err != nil || !p.On.IsZero() {
		t.Errorf("json.Unmarshal(empty) = %v, %v, want zero date", p.On, err)
	}
	if err := json.Unmarshal([]byte(`{"on":"05/03/2024"}`), &p); err == nil {
		t.Errorf("json.Unmarshal(dmy) succeeded, want an error")
	}
}
