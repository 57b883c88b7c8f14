package dashboard

import (
	"fmt"
	"slices"
	"strings"
)

// RawObservation is a balance record as read from the balance file, not yet parsed.
type RawObservation struct {
	Account string
	Date    string // day/month/year
	Balance string
}

// RawAccount is an account metadata record as read from the accounts file.
type RawAccount struct {
	Account string
	Type    string
}

// Observation is the balance of an account observed on a given day, typically a statement.
type Observation struct {
	Account string
	Date    Date
	Balance Money
}

// AccountMeta holds the type of an account.
type AccountMeta struct {
	Account string   `json:"account"`
	Type    Category `json:"type"`
}

// ParseError reports a malformed input record. It is fatal: no partial store is ever built.
type ParseError struct {
	Kind  string // "observation" or "account"
	Line  int    // 1-based index of the record in its input
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s record %d: invalid %s %q", e.Kind, e.Line, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store holds the validated raw inputs of the pipeline.
type Store struct {
	observations []Observation // sorted by (account, date)
	accounts     []AccountMeta // in input order
}

// NewStore validates and types the raw records.
//
// Exact duplicate observations are removed, but observations sharing an
// account and a date with different balances are all kept: the resampler averages them.
func NewStore(observations []RawObservation, accounts []RawAccount) (*Store, error) {
	s := &Store{
		observations: make([]Observation, 0, len(observations)),
		accounts:     make([]AccountMeta, 0, len(accounts)),
	}

	type key struct {
		account string
		on      Date
		balance string
	}
	seen := make(map[key]struct{}, len(observations))
	for i, raw := range observations {
		obs, err := parseObservation(i+1, raw)
		if err != nil {
			return nil, err
		}
		k := key{obs.Account, obs.Date, obs.Balance.Decimal().String()}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		s.observations = append(s.observations, obs)
	}
	slices.SortStableFunc(s.observations, func(a, b Observation) int {
		if c := strings.Compare(a.Account, b.Account); c != 0 {
			return c
		}
		return a.Date.Compare(b.Date)
	})

	types := make(map[string]Category, len(accounts))
	for i, raw := range accounts {
		account := strings.TrimSpace(raw.Account)
		if account == "" {
			return nil, &ParseError{Kind: "account", Line: i + 1, Field: "account", Value: raw.Account}
		}
		typ := NormalizeCategory(raw.Type)
		if typ == "" {
			return nil, &ParseError{Kind: "account", Line: i + 1, Field: "type", Value: raw.Type}
		}
		if previous, exists := types[account]; exists {
			if previous != typ {
				return nil, &ParseError{Kind: "account", Line: i + 1, Field: "type", Value: raw.Type,
					Err: fmt.Errorf("account %q is already declared as %s", account, previous)}
			}
			continue
		}
		types[account] = typ
		s.accounts = append(s.accounts, AccountMeta{Account: account, Type: typ})
	}
	return s, nil
}

func parseObservation(line int, raw RawObservation) (Observation, error) {
	account := strings.TrimSpace(raw.Account)
	if account == "" {
		return Observation{}, &ParseError{Kind: "observation", Line: line, Field: "account", Value: raw.Account}
	}
	on, err := ParseDMY(raw.Date)
	if err != nil {
		return Observation{}, &ParseError{Kind: "observation", Line: line, Field: "date", Value: raw.Date, Err: err}
	}
	balance, err := ParseMoney(raw.Balance)
	if err != nil {
		return Observation{}, &ParseError{Kind: "observation", Line: line, Field: "balance", Value: raw.Balance, Err: err}
	}
	return Observation{Account: account, Date: on, Balance: balance}, nil
}

// Observations returns a copy of the observations sorted by (account, date).
func (s *Store) Observations() []Observation { return slices.Clone(s.observations) }

// Accounts returns a copy of the account metadata in input order.
func (s *Store) Accounts() []AccountMeta { return slices.Clone(s.accounts) }
