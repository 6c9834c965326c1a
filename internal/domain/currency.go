package domain

import "strings"

// knownCurrencies is the fixed set of recognized ISO-4217-style codes,
// majors and exotics alike. Unit strings from upstream feeds use these
// tokens both for absolute amounts and for per-unit prices.
var knownCurrencies = map[string]struct{}{
	// majors
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "CHF": {}, "CAD": {},
	"AUD": {}, "NZD": {}, "CNY": {}, "HKD": {}, "SGD": {}, "SEK": {},
	"NOK": {}, "DKK": {}, "KRW": {}, "INR": {}, "BRL": {}, "MXN": {},
	"RUB": {}, "TRY": {}, "ZAR": {}, "PLN": {}, "CZK": {}, "HUF": {},
	"ILS": {}, "THB": {}, "IDR": {}, "MYR": {}, "PHP": {}, "VND": {},
	"TWD": {}, "SAR": {}, "AED": {}, "QAR": {}, "KWD": {}, "BHD": {},
	"OMR": {}, "EGP": {}, "NGN": {}, "KES": {}, "GHS": {}, "ARS": {},
	"CLP": {}, "COP": {}, "PEN": {}, "UYU": {}, "BOB": {}, "PYG": {},
	"PKR": {}, "BDT": {}, "LKR": {}, "NPR": {}, "MMK": {}, "KHR": {},
	"LAK": {}, "UAH": {}, "RON": {}, "BGN": {}, "RSD": {}, "ISK": {},
	"MAD": {}, "TND": {}, "DZD": {}, "ETB": {}, "TZS": {}, "UGX": {},
	"ZMW": {}, "MWK": {}, "MZN": {}, "AOA": {}, "BWP": {}, "NAD": {},
	// exotics seen in real indicator feeds
	"XOF": {}, "XAF": {}, "ZWL": {}, "SSP": {}, "MDL": {}, "GNF": {},
	"CDF": {}, "BIF": {}, "RWF": {}, "DJF": {}, "KMF": {}, "SLL": {},
	"LRD": {}, "GMD": {}, "MRU": {}, "STN": {}, "SCR": {}, "MUR": {},
	"MGA": {}, "SZL": {}, "LSL": {}, "ERN": {}, "SDG": {}, "LYD": {},
	"IQD": {}, "IRR": {}, "AFN": {}, "SYP": {}, "YER": {}, "JOD": {},
	"LBP": {}, "AZN": {}, "GEL": {}, "AMD": {}, "KZT": {}, "KGS": {},
	"TJS": {}, "TMT": {}, "UZS": {}, "MNT": {}, "BTN": {}, "MVR": {},
	"BND": {}, "FJD": {}, "PGK": {}, "SBD": {}, "VUV": {}, "WST": {},
	"TOP": {}, "XPF": {}, "HTG": {}, "DOP": {}, "JMD": {}, "TTD": {},
	"BBD": {}, "BSD": {}, "BZD": {}, "GYD": {}, "SRD": {}, "AWG": {},
	"ANG": {}, "XCD": {}, "CUP": {}, "NIO": {}, "HNL": {}, "GTQ": {},
	"CRC": {}, "PAB": {}, "SVC": {}, "VES": {}, "ALL": {}, "MKD": {},
	"BAM": {}, "BYN": {}, "HRK": {}, "GIP": {}, "FKP": {}, "SHP": {},
}

// IsCurrencyCode reports whether tok is a recognized currency code.
// Matching is case-insensitive; codes are canonically upper-case.
func IsCurrencyCode(tok string) bool {
	if len(tok) != 3 {
		return false
	}
	_, ok := knownCurrencies[strings.ToUpper(tok)]
	return ok
}
