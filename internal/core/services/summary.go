package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// defaultAmountPattern matches the euro figure counted by default.
var defaultAmountPattern = amountPattern(domain.DefaultCurrencySymbol)

// amountPattern matches symbol followed by digits and thousands commas.
func amountPattern(symbol string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(symbol) + `([\d,]+)`)
}

// ParseAmount extracts the first figure introduced by symbol from a free-text
// amount, e.g. "Up to €50,000 in vouchers" -> 50000. Text without such a
// figure, or a figure that does not parse, yields 0.
func ParseAmount(amount, symbol string) int64 {
	symbol, pattern := patternFor(symbol)
	return parseAmount(amount, symbol, pattern)
}

// patternFor resolves the empty symbol to the default and returns its matcher.
func patternFor(symbol string) (string, *regexp.Regexp) {
	if symbol == "" || symbol == domain.DefaultCurrencySymbol {
		return domain.DefaultCurrencySymbol, defaultAmountPattern
	}
	return symbol, amountPattern(symbol)
}

func parseAmount(amount, symbol string, pattern *regexp.Regexp) int64 {
	if amount == "" || !strings.Contains(amount, symbol) {
		return 0
	}
	m := pattern.FindStringSubmatch(amount)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Summarize computes the header statistics over records.
func Summarize(records []domain.Organization, symbol string) domain.Summary {
	symbol, pattern := patternFor(symbol)

	summary := domain.Summary{
		Total:          len(records),
		CurrencySymbol: symbol,
	}
	for i := range records {
		if records[i].IsActive() {
			summary.Active++
		}
		summary.TotalAid += parseAmount(records[i].Amount, symbol, pattern)
	}
	return summary
}
