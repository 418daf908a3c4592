// Package money fixes how amounts are represented and serialized.
//
// Amounts are decimals so that price × quantity sums never pick up float
// rounding. They marshal as bare JSON numbers ("price": 40) to keep the data
// files and the API in the shape the storefront already reads.
package money

import "github.com/shopspring/decimal"

type Amount = decimal.Decimal

var Zero = decimal.Zero

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

func FromInt(v int64) Amount { return decimal.NewFromInt(v) }

func Parse(s string) (Amount, error) { return decimal.NewFromString(s) }

func MustParse(s string) Amount { return decimal.RequireFromString(s) }

// Line returns price × quantity.
func Line(price Amount, quantity int) Amount {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
