package field

import "math/big"

// AddBounds returns [addMin, addMax): the half-open range a scalar
// argument to [Element.AddScalar] or [Element.SubScalar] must lie within,
// per spec.md §6: addMin = -(2^64 - 2^DigitBits), addMax = 2^DigitBits.
// addMin is returned as a *big.Int since its magnitude exceeds what an
// int64 scalar argument could ever represent in the first place — the
// bound exists to document the contract, not to be checked at runtime.
func (pp *Params) AddBounds() (min *big.Int, max int64) {
	max = int64(1) << uint(pp.DigitBits)
	min = new(big.Int).Lsh(big.NewInt(1), 64)
	min.Sub(min, big.NewInt(max))
	min.Neg(min)
	return min, max
}

// MulBounds returns [mulMin, mulMax): the half-open range a scalar
// argument to [Element.MulScalar] or [Element.DivScalar] must lie within,
// per spec.md §6: mulMin = -(2^32 - 2^MulDigitBits), mulMax = 2^MulDigitBits.
func (pp *Params) MulBounds() (min, max int64) {
	max = int64(1) << uint(pp.MulDigitBits)
	min = -(int64(1)<<32 - max)
	return min, max
}
