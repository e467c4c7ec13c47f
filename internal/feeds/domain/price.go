package domain

import (
	"github.com/shopspring/decimal"
)

// Prices maps a crypto asset id to its price in each requested vs currency,
// e.g. Prices["bitcoin"]["usd"].
type Prices map[string]map[string]decimal.Decimal

// Price returns the price of asset in currency and whether it was quoted.
func (p Prices) Price(asset, currency string) (decimal.Decimal, bool) {
	quotes, ok := p[asset]
	if !ok {
		return decimal.Zero, false
	}
	price, ok := quotes[currency]
	return price, ok
}

// PriceOptions lists the crypto assets and fiat currencies offered to clients.
type PriceOptions struct {
	Crypto []string
	FX     []string
}
