package pricing

import (
	"github.com/shopspring/decimal"

	"leadmarket/internal/domain/entities"
)

// LocaleConverter turns a base-currency price range into a target locale's
// display currency. Display prices are not safety-critical, so an unknown
// locale falls back to the table's base locale instead of failing.
type LocaleConverter struct {
	table *Table
}

func NewLocaleConverter(table *Table) *LocaleConverter {
	return &LocaleConverter{table: table}
}

// Convert applies the locale's market multiplier first (local labor-cost
// adjustment, rounded in the base currency), then the exchange rate. The
// order matters: rounding between the two steps makes the composition
// non-commutative, and market adjustment must happen on base-currency prices.
func (c *LocaleConverter) Convert(base entities.PriceRange, locale string) (entities.PriceRange, string) {
	loc, ok := c.table.Locales[locale]
	if !ok {
		loc = c.table.Locales[c.table.BaseLocale]
	}

	market := decimal.NewFromFloat(loc.MarketMultiplier)
	rate := decimal.NewFromFloat(loc.ExchangeRate)

	convert := func(v int64) int64 {
		adjusted := roundToTen(decimal.NewFromInt(v).Mul(market))
		return roundToTen(decimal.NewFromInt(adjusted).Mul(rate))
	}

	return entities.PriceRange{Min: convert(base.Min), Max: convert(base.Max)}, loc.Currency
}
