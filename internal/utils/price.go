package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is a whole amount in the display currency. The flights table stores
// fares without a unit, so the currency is a presentation setting.
type Price int64

// Currency represents a currency with its formatting rules
type Currency struct {
	Code         string // ISO 4217 code (e.g., "INR")
	Symbol       string // Display symbol (e.g., "₹")
	SymbolFirst  bool   // True if symbol comes before amount
	ThousandsSep string // Thousands separator
}

// Currencies that fare datasets are commonly published in
var Currencies = map[string]Currency{
	"INR": {Code: "INR", Symbol: "₹", SymbolFirst: true, ThousandsSep: ","},
	"USD": {Code: "USD", Symbol: "$", SymbolFirst: true, ThousandsSep: ","},
	"EUR": {Code: "EUR", Symbol: "€", SymbolFirst: true, ThousandsSep: "."},
	"GBP": {Code: "GBP", Symbol: "£", SymbolFirst: true, ThousandsSep: ","},
	"JPY": {Code: "JPY", Symbol: "¥", SymbolFirst: true, ThousandsSep: ","},
	"AED": {Code: "AED", Symbol: "AED", SymbolFirst: true, ThousandsSep: ","},
	"SGD": {Code: "SGD", Symbol: "S$", SymbolFirst: true, ThousandsSep: ","},
	"SEK": {Code: "SEK", Symbol: "kr", SymbolFirst: false, ThousandsSep: " "},
}

// DefaultCurrency is used when a currency code is not found
var DefaultCurrency = Currencies["INR"]

// GetCurrency returns the currency configuration for a code, or the default if not found
func GetCurrency(code string) Currency {
	if c, ok := Currencies[strings.ToUpper(code)]; ok {
		return c
	}
	return DefaultCurrency
}

// Format formats the price with the given currency, e.g. "₹12,345"
func (p Price) Format(currencyCode string) string {
	currency := GetCurrency(currencyCode)

	negative := p < 0
	if negative {
		p = -p
	}

	result := formatWithSeparator(int64(p), currency.ThousandsSep)
	if currency.SymbolFirst {
		result = currency.Symbol + result
	} else {
		result = result + " " + currency.Symbol
	}

	if negative {
		result = "-" + result
	}
	return result
}

// FormatPrice is shorthand for Price(amount).Format(currencyCode)
func FormatPrice(amount int64, currencyCode string) string {
	return Price(amount).Format(currencyCode)
}

// FormatCount formats a count with thousands separators
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + formatWithSeparator(-n, ",")
	}
	return formatWithSeparator(n, ",")
}

// FormatDecimal formats f with two decimals, returning "0.00" for NaN or infinities
func FormatDecimal(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", f)
}

// formatWithSeparator adds thousands separators to a number
func formatWithSeparator(n int64, sep string) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 || sep == "" {
		return str
	}

	var result strings.Builder
	startOffset := len(str) % 3
	if startOffset == 0 {
		startOffset = 3
	}

	result.WriteString(str[:startOffset])
	for i := startOffset; i < len(str); i += 3 {
		result.WriteString(sep)
		result.WriteString(str[i : i+3])
	}

	return result.String()
}
