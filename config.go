package rebalance

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrConfigMissingKey reports a required configuration key that is absent.
var ErrConfigMissingKey = errors.New("missing required config key")

// Config is the validated run configuration.
type Config struct {
	// Categories maps a category name to the security symbols it groups.
	Categories map[string][]string
	// TargetAllocation maps each category to its target fraction of the
	// portfolio. Fractions are expected to sum to 1, but that is the user's
	// contract, not a load-time check (see Lint).
	TargetAllocation map[string]decimal.Decimal
	// CashSymbol is the ticker excluded from balance aggregation, treated
	// as uninvested cash rather than a holding.
	CashSymbol string
	// Currency is the reporting currency, used for formatting only.
	Currency string
	// SymbolColumn and AmountColumn locate the fields in the balance CSV,
	// zero-based.
	SymbolColumn int
	AmountColumn int
}

const (
	defaultCashSymbol = "VMFXX"
	defaultCurrency   = "USD"

	// column layout of the brokerage balance export
	defaultSymbolColumn = 2
	defaultAmountColumn = 5
)

// configTmp mirrors the YAML document. Fractions are kept as strings to
// preserve their exact decimal value through the YAML parser.
type configTmp struct {
	Categories       map[string][]string `yaml:"categories"`
	TargetAllocation map[string]string   `yaml:"target_allocation"`
	CashSymbol       string              `yaml:"cash_symbol,omitempty"`
	Currency         string              `yaml:"currency,omitempty"`
	BalanceCSV       struct {
		SymbolColumn *int `yaml:"symbol_column,omitempty"`
		AmountColumn *int `yaml:"amount_column,omitempty"`
	} `yaml:"balance_csv,omitempty"`
}

// LoadConfig reads and validates the YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	var tmp configTmp
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return nil, err
	}
	if tmp.Categories == nil {
		return nil, fmt.Errorf("%w: %q", ErrConfigMissingKey, "categories")
	}
	if tmp.TargetAllocation == nil {
		return nil, fmt.Errorf("%w: %q", ErrConfigMissingKey, "target_allocation")
	}

	cfg := &Config{
		Categories:       tmp.Categories,
		TargetAllocation: make(map[string]decimal.Decimal, len(tmp.TargetAllocation)),
		CashSymbol:       tmp.CashSymbol,
		Currency:         tmp.Currency,
		SymbolColumn:     defaultSymbolColumn,
		AmountColumn:     defaultAmountColumn,
	}
	if cfg.CashSymbol == "" {
		cfg.CashSymbol = defaultCashSymbol
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}
	if tmp.BalanceCSV.SymbolColumn != nil {
		cfg.SymbolColumn = *tmp.BalanceCSV.SymbolColumn
	}
	if tmp.BalanceCSV.AmountColumn != nil {
		cfg.AmountColumn = *tmp.BalanceCSV.AmountColumn
	}
	if cfg.SymbolColumn < 0 || cfg.AmountColumn < 0 {
		return nil, fmt.Errorf("balance_csv columns must not be negative")
	}

	one := decimal.NewFromInt(1)
	for category, raw := range tmp.TargetAllocation {
		fraction, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("incorrect 'target_allocation' fraction for %q: %w", category, err)
		}
		if fraction.IsNegative() || fraction.GreaterThan(one) {
			return nil, fmt.Errorf("'target_allocation' fraction for %q must be in [0,1], got %s", category, fraction)
		}
		if _, ok := tmp.Categories[category]; !ok {
			return nil, fmt.Errorf("%w: 'categories' has no entry for target %q", ErrConfigMissingKey, category)
		}
		cfg.TargetAllocation[category] = fraction
	}

	// the distribution indexes targets by category, so both key sets must match
	for category := range tmp.Categories {
		if _, ok := cfg.TargetAllocation[category]; !ok {
			return nil, fmt.Errorf("%w: 'target_allocation' has no entry for category %q", ErrConfigMissingKey, category)
		}
	}

	return cfg, nil
}
