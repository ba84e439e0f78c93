package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
)

// Amount is a currency argument parsed into a decimal.
type Amount struct {
	decimal.Decimal
}

// Decode implements kong.MapperValue.
func (a *Amount) Decode(ctx *kong.DecodeContext) error {
	var value string
	if err := ctx.Scan.PopValueInto("amount", &value); err != nil {
		return err
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", value, err)
	}

	a.Decimal = d
	return nil
}
