package dashboard

import (
	"fmt"
	"reflect"
	"testing"
)

// samplePanel has two months of data over 4 accounts, one of them without type.
func samplePanel(t *testing.T) *Panel {
	t.Helper()
	s, err := NewStore([]RawObservation{
		{"Bank", "31/12/2023", "100"},
		{"Bank", "02/01/2024", "300"},
		{"House", "01/01/2024", "50000"},
		{"House", "02/01/2024", "50000"},
		{"Card", "01/01/2024", "-20"},
		{"Card", "02/01/2024", "0"},
		{"Ghost", "01/01/2024", "7"},
	}, []RawAccount{
		{"House", "real estate"},
		{"Bank", "checking"},
		{"Card", "Checking"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewPanel(s)
}

func rowsOf(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, fmt.Sprintf("%s %s %s %s", r.Date, r.Category, r.Account, r.Balance.Decimal().StringFixed(2)))
	}
	return out
}

func TestJoin(t *testing.T) {
	daily := []DailyBalance{
		{Account: "Bank", Date: NewDate(2024, 1, 1), Balance: M(1)},
		{Account: "Zed", Date: NewDate(2024, 1, 1), Balance: M(2)},
		{Account: "Ghost", Date: NewDate(2024, 1, 1), Balance: M(3)},
		{Account: "Ghost", Date: NewDate(2024, 1, 2), Balance: M(3)},
	}
	rows, dropped := Join(daily, []AccountMeta{{Account: "Bank", Type: "checking"}})

	if len(rows) != 1 || rows[0].Category != Checking || rows[0].Account != "Bank" {
		t.Errorf("Join() rows = %v, want only Bank as Checking", rows)
	}
	if want := []string{"Ghost", "Zed"}; !reflect.DeepEqual(dropped, want) {
		t.Errorf("Join() dropped = %v, want %v", dropped, want)
	}
}

func TestNewPanel(t *testing.T) {
	p := samplePanel(t)

	want := []string{
		"2023-12-31 Checking Bank 100.00",
		"2024-01-01 Checking Bank 200.00",
		"2024-01-01 Checking Card -20.00",
		"2024-01-01 Real estate House 50000.00",
		"2024-01-02 Checking Bank 300.00",
		"2024-01-02 Checking Card 0.00",
		"2024-01-02 Real estate House 50000.00",
	}
	if got := rowsOf(p.Rows()); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() =\n%v\nwant\n%v", got, want)
	}
	if got, want := p.Dropped(), []string{"Ghost"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Dropped() = %v, want %v", got, want)
	}
	if p.First() != NewDate(2023, 12, 31) || p.Last() != NewDate(2024, 1, 2) {
		t.Errorf("First(), Last() = %v, %v", p.First(), p.Last())
	}
	if got, want := p.Categories(), []Category{Checking, "Real estate"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
	want2 := []AccountMeta{{"Bank", Checking}, {"Card", Checking}, {"House", "Real estate"}}
	if got := p.AccountNames(); !reflect.DeepEqual(got, want2) {
		t.Errorf("AccountNames() = %v, want %v", got, want2)
	}
}

func TestPanel_Empty(t *testing.T) {
	s, err := NewStore(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPanel(s)
	if !p.IsEmpty() || !p.First().IsZero() || !p.Last().IsZero() {
		t.Errorf("empty panel: IsEmpty %v, First %v, Last %v", p.IsEmpty(), p.First(), p.Last())
	}
	if rows := p.Select(YTD, NewDate(2024, 1, 1)); len(rows) != 0 {
		t.Errorf("Select() on an empty panel = %v", rows)
	}
}

func TestPanel_Select(t *testing.T) {
	p := samplePanel(t)

	tests := []struct {
		w     Window
		today Date
		rows  int
	}{
		{All, NewDate(2024, 1, 2), 7},
		{YTD, NewDate(2024, 1, 2), 6},
		{YTD, NewDate(2024, 6, 1), 6},
		{YTD, NewDate(2025, 1, 1), 0},
		{OneYear, NewDate(2024, 12, 31), 7},
		{OneYear, NewDate(2025, 1, 2), 3},
	}
	for _, tt := range tests {
		if got := p.Select(tt.w, tt.today); len(got) != tt.rows {
			t.Errorf("Select(%v, %v) has %d rows, want %d", tt.w, tt.today, len(got), tt.rows)
		}
	}
}

func TestPanel_Account(t *testing.T) {
	p := samplePanel(t)

	series, ok := p.Account("Bank")
	if !ok || len(series) != 3 {
		t.Fatalf("Account(Bank) = %v, %v, want 3 days", series, ok)
	}
	if !series[0].Observed || series[1].Observed || !series[2].Observed {
		t.Errorf("Account(Bank) observed flags = %v", series)
	}
	if _, ok := p.Account("Ghost"); ok {
		t.Errorf("Account(Ghost) found, want dropped")
	}
}
