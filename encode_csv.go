package dashboard

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DecodeObservations reads balance records from a csv with an "account,date,balance" header.
// Columns are found by name, extra columns are ignored.
func DecodeObservations(r io.Reader) ([]RawObservation, error) {
	var out []RawObservation
	err := decodeCSV(r, []string{"account", "date", "balance"}, func(fields []string) {
		out = append(out, RawObservation{Account: fields[0], Date: fields[1], Balance: fields[2]})
	})
	if err != nil {
		return nil, fmt.Errorf("decoding balances: %w", err)
	}
	return out, nil
}

// DecodeAccounts reads account records from a csv with an "account,type" header.
func DecodeAccounts(r io.Reader) ([]RawAccount, error) {
	var out []RawAccount
	err := decodeCSV(r, []string{"account", "type"}, func(fields []string) {
		out = append(out, RawAccount{Account: fields[0], Type: fields[1]})
	})
	if err != nil {
		return nil, fmt.Errorf("decoding accounts: %w", err)
	}
	return out, nil
}

// decodeCSV calls record with the values of the named columns, in the order of columns.
func decodeCSV(r io.Reader, columns []string, record func([]string)) error {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("missing header %q", strings.Join(columns, ","))
	}
	if err != nil {
		return err
	}
	index := make([]int, len(columns))
	for i, col := range columns {
		index[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), col) {
				index[i] = j
				break
			}
		}
		if index[i] < 0 {
			return fmt.Errorf("missing column %q in header %q", col, strings.Join(header, ","))
		}
	}

	fields := make([]string, len(columns))
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		for i, j := range index {
			if j >= len(row) {
				line, _ := cr.FieldPos(0)
				return fmt.Errorf("line %d: missing column %q", line, columns[i])
			}
			fields[i] = row[j]
		}
		record(fields)
	}
}

// LoadStore reads both csv files and builds the validated Store.
func LoadStore(balancesPath, accountsPath string) (*Store, error) {
	observations, err := decodeFile(balancesPath, DecodeObservations)
	if err != nil {
		return nil, err
	}
	accounts, err := decodeFile(accountsPath, DecodeAccounts)
	if err != nil {
		return nil, err
	}
	return NewStore(observations, accounts)
}

func decodeFile[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
