package costs

import "github.com/shopspring/decimal"

// VATRate is the fixed tax rate applied to every line. The tool models a
// single jurisdiction; per-line rates are not supported.
var VATRate = decimal.NewFromFloat(0.23)

var onePlusVAT = decimal.NewFromInt(1).Add(VATRate)

// DeriveUnitPrices fills in whichever unit price was not supplied. A zero
// value means "absent" since valid prices are strictly positive.
//
//   - net only:   gross = net × (1 + VATRate)
//   - gross only: net = gross / (1 + VATRate)
//   - both:       trusted as-is, no re-derivation
//
// Derived values are rounded to 2 decimal places. Negative inputs and the
// absence of both prices are rejected.
func DeriveUnitPrices(unitNet, unitGross decimal.Decimal) (net, gross decimal.Decimal, err error) {
	if unitNet.IsNegative() || unitGross.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrInvalidPrice
	}

	switch {
	case unitNet.IsPositive() && unitGross.IsPositive():
		return unitNet, unitGross, nil
	case unitNet.IsPositive():
		return unitNet, unitNet.Mul(onePlusVAT).Round(2), nil
	case unitGross.IsPositive():
		return unitGross.DivRound(onePlusVAT, 2), unitGross, nil
	default:
		return decimal.Zero, decimal.Zero, ErrInvalidPrice
	}
}
