// Package currency holds the one static USD->THB exchange rate and the
// conversions derived from it. Both the admin console and the public price
// feed read the rate from here so the two surfaces cannot drift.
package currency

// THBPerUSD is the default static rate (1 USD = 35.5 THB). Overridable
// once at boot through EXCHANGE_RATE_THB; never fetched live.
const THBPerUSD = 35.5

// ToTHB converts a reference-currency (USD) amount for display.
func ToTHB(usd, rate float64) float64 {
	return usd * rate
}

// ToUSD recovers the reference amount from a THB display value. It is the
// exact multiplicative inverse of ToTHB, so selecting THB and saving
// without edits reproduces the stored value.
func ToUSD(thb, rate float64) float64 {
	return thb / rate
}
