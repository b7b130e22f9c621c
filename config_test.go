package rebalance

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validConfig = `
categories:
  Stocks: [VTI, VXUS]
  Bonds: [BND]
target_allocation:
  Stocks: "0.7"
  Bonds: "0.3"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	require.Equal(t, []string{"VTI", "VXUS"}, cfg.Categories["Stocks"])
	require.Equal(t, []string{"BND"}, cfg.Categories["Bonds"])
	require.True(t, cfg.TargetAllocation["Stocks"].Equal(d(t, "0.7")))
	require.True(t, cfg.TargetAllocation["Bonds"].Equal(d(t, "0.3")))

	// defaults
	require.Equal(t, "VMFXX", cfg.CashSymbol)
	require.Equal(t, "USD", cfg.Currency)
	require.Equal(t, 2, cfg.SymbolColumn)
	require.Equal(t, 5, cfg.AmountColumn)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig+`
cash_symbol: SPAXX
currency: EUR
balance_csv:
  symbol_column: 0
  amount_column: 1
`))
	require.NoError(t, err)
	require.Equal(t, "SPAXX", cfg.CashSymbol)
	require.Equal(t, "EUR", cfg.Currency)
	require.Equal(t, 0, cfg.SymbolColumn)
	require.Equal(t, 1, cfg.AmountColumn)
}

func TestLoadConfig_UnquotedFractions(t *testing.T) {
	// YAML users will write fractions as plain scalars; they must still
	// parse as exact decimals.
	cfg, err := LoadConfig(writeConfig(t, `
categories:
  Stocks: [VTI]
target_allocation:
  Stocks: 1
`))
	require.NoError(t, err)
	require.True(t, cfg.TargetAllocation["Stocks"].Equal(d(t, "1")))
}

func TestLoadConfig_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		content    string
		missingKey bool
	}{
		{
			name:       "missing categories",
			content:    "target_allocation:\n  Stocks: \"1\"\n",
			missingKey: true,
		},
		{
			name:       "missing target_allocation",
			content:    "categories:\n  Stocks: [VTI]\n",
			missingKey: true,
		},
		{
			name:       "target for unknown category",
			content:    "categories:\n  Stocks: [VTI]\ntarget_allocation:\n  Stocks: \"0.5\"\n  Gold: \"0.5\"\n",
			missingKey: true,
		},
		{
			name:       "category without target",
			content:    "categories:\n  Stocks: [VTI]\n  Gold: [IAU]\ntarget_allocation:\n  Stocks: \"1\"\n",
			missingKey: true,
		},
		{
			name:    "malformed fraction",
			content: "categories:\n  Stocks: [VTI]\ntarget_allocation:\n  Stocks: \"a lot\"\n",
		},
		{
			name:    "fraction out of range",
			content: "categories:\n  Stocks: [VTI]\ntarget_allocation:\n  Stocks: \"1.5\"\n",
		},
		{
			name:    "negative column",
			content: validConfig + "balance_csv:\n  symbol_column: -1\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			require.Error(t, err)
			if tc.missingKey {
				require.True(t, errors.Is(err, ErrConfigMissingKey), "want ErrConfigMissingKey, got %v", err)
			}
		})
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
