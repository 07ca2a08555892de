package domain

import "fmt"

// DefaultCurrencySymbol is the only currency counted in the aid total.
const DefaultCurrencySymbol = "€"

// Summary holds the header statistics, computed over the full dataset.
type Summary struct {
	// Total is the number of records.
	Total int `json:"total"`

	// Active is the number of records whose status is exactly "Active".
	Active int `json:"active"`

	// TotalAid is the sum of the amounts that could be parsed.
	TotalAid int64 `json:"totalAid"`

	// CurrencySymbol prefixes the formatted aid total.
	CurrencySymbol string `json:"currencySymbol"`
}

// FormatAid renders TotalAid in millions with two decimals, e.g. "€1.23M".
func (s Summary) FormatAid() string {
	symbol := s.CurrencySymbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return fmt.Sprintf("%s%.2fM", symbol, float64(s.TotalAid)/1_000_000)
}
