package util

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders v with thousands grouping and the given number of
// decimals, e.g. 6324.555 -> "6,324.56".
func FormatNumber(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "-"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	if decimals < 0 {
		decimals = 0
	}
	s := printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
	if s == "-0" || strings.HasPrefix(s, "-0.") && strings.Trim(s[3:], "0") == "" {
		s = s[1:]
	}
	return s
}

// FormatMoney prefixes a grouped amount with a currency symbol.
func FormatMoney(currency string, v float64, decimals int) string {
	if currency == "" {
		return FormatNumber(v, decimals)
	}
	return currency + " " + FormatNumber(v, decimals)
}
