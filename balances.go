package rebalance

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// ResolveBalanceFile returns the balance file to read, preferring a local
// override next to the configured path: for "balances.csv" it tries
// "balances_local.csv" first and falls back to "balances.csv". When neither
// exists the error names both attempted paths.
func ResolveBalanceFile(path string) (string, error) {
	ext := filepath.Ext(path)
	local := strings.TrimSuffix(path, ext) + "_local" + ext

	if _, err := os.Stat(local); err == nil {
		return local, nil
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("no balance file found: tried %q and %q: %w", local, path, fs.ErrNotExist)
}

// LoadBalances reads the balance CSV export and returns per-symbol balances.
// The configured cash-equivalent symbol never enters the result.
func LoadBalances(path string, cfg *Config) (map[string]decimal.Decimal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read balance file: %w", err)
	}
	defer f.Close()

	balances, err := readBalances(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("balance file %q: %w", path, err)
	}
	return balances, nil
}

// readBalances parses the export: one header row, then one record per
// security. Everything after the first blank line is footer noise
// (disclaimers, account summaries) and is ignored.
func readBalances(r io.Reader, cfg *Config) (map[string]decimal.Decimal, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = data[:footerStart(data)]

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	// header row
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty balance file")
		}
		return nil, err
	}

	balances := make(map[string]decimal.Decimal)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) <= cfg.SymbolColumn || len(record) <= cfg.AmountColumn {
			return nil, fmt.Errorf("row %d has %d columns, need at least %d", row, len(record), max(cfg.SymbolColumn, cfg.AmountColumn)+1)
		}

		symbol := strings.TrimSpace(record[cfg.SymbolColumn])
		if symbol == cfg.CashSymbol {
			continue
		}

		raw := strings.TrimSpace(record[cfg.AmountColumn])
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: malformed balance %q for symbol %q: %w", row, raw, symbol, err)
		}
		balances[symbol] = amount
	}
	return balances, nil
}

// footerStart returns the offset of the first blank line that is not inside
// a quoted CSV field, or len(data) when there is none. A newline embedded in
// a quoted field is record content, not a record boundary.
func footerStart(data []byte) int {
	inQuotes := false
	lineStart := 0
	for i, c := range data {
		switch c {
		case '"':
			inQuotes = !inQuotes
		case '\n':
			if inQuotes {
				continue
			}
			if len(bytes.TrimSpace(data[lineStart:i])) == 0 {
				return lineStart
			}
			lineStart = i + 1
		}
	}
	return len(data)
}

// ParseAmount parses a free-form monetary amount as typed by a user:
// surrounding spaces, a leading currency sign and thousands separators are
// tolerated. Negative amounts are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, errors.New("empty amount")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed amount %q", s)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount must not be negative, got %s", amount)
	}
	return amount, nil
}
