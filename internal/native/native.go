// Native backend: a thin adapter over math/big, the platform's own
// unbounded-integer primitive. Arithmetic, bitwise operations and shifts
// delegate directly to the primitive; the adapter contributes the contract's
// naming, the Euclidean mod normalization, the byte codec, and the error
// mapping for the modular subsystem.

package native

import (
	"math"
	"math/big"

	"github.com/openpgpjs/bigint/internal/values"
)

type impl struct{}

// Implementation is the native backend's factory.
var Implementation values.Implementation = impl{}

func (impl) Name() string { return "native" }

func (impl) FromString(s string) (values.Value, error) {
	neg, base, digits, err := values.SplitNumeric(s)
	if err != nil {
		return nil, err
	}
	z := &value{}
	if _, ok := z.v.SetString(digits, base); !ok {
		return nil, values.ErrInvalidInput
	}
	if neg {
		z.v.Neg(&z.v)
	}
	return z, nil
}

func (impl) FromInt64(v int64) values.Value {
	z := &value{}
	z.v.SetInt64(v)
	return z
}

func (impl) FromBytes(b []byte) values.Value {
	z := &value{}
	z.v.SetBytes(b)
	return z
}

type value struct {
	v big.Int
}

var _ values.Value = &value{}

var bigOne = big.NewInt(1)

// coerce views an operand as a *big.Int, rebuilding it from its sign and
// magnitude bytes when it was constructed under another backend.
func coerce(v values.Value) *big.Int {
	if x, ok := v.(*value); ok {
		return &x.v
	}
	w := new(big.Int).SetBytes(v.Bytes())
	if v.IsNegative() {
		w.Neg(w)
	}
	return w
}

func (z *value) Clone() values.Value {
	w := &value{}
	w.v.Set(&z.v)
	return w
}

// In-place arithmetic; the pure forms clone and delegate.

func (z *value) IAdd(y values.Value) values.Value {
	z.v.Add(&z.v, coerce(y))
	return z
}

func (z *value) ISub(y values.Value) values.Value {
	z.v.Sub(&z.v, coerce(y))
	return z
}

func (z *value) IMul(y values.Value) values.Value {
	z.v.Mul(&z.v, coerce(y))
	return z
}

func (z *value) IDiv(y values.Value) (values.Value, error) {
	d := coerce(y)
	if d.Sign() == 0 {
		return nil, values.ErrDivisionByZero
	}
	z.v.Quo(&z.v, d)
	return z, nil
}

func (z *value) IMod(m values.Value) (values.Value, error) {
	d := coerce(m)
	if d.Sign() == 0 {
		return nil, values.ErrDivisionByZero
	}
	// big.Int.Mod is already the Euclidean modulus: the result is in
	// [0, |m|) for any sign of the receiver.
	z.v.Mod(&z.v, d)
	return z, nil
}

func (z *value) IInc() values.Value {
	z.v.Add(&z.v, bigOne)
	return z
}

func (z *value) IDec() values.Value {
	z.v.Sub(&z.v, bigOne)
	return z
}

func (z *value) ILeftShift(k values.Value) values.Value  { return z.shift(k, false) }
func (z *value) IRightShift(k values.Value) values.Value { return z.shift(k, true) }

func (z *value) shift(k values.Value, right bool) values.Value {
	s, err := k.Int64()
	if err != nil || s == math.MinInt64 {
		panic("bigint: shift amount out of range")
	}
	if s < 0 {
		right = !right
		s = -s
	}
	if uint64(s) > math.MaxInt {
		panic("bigint: shift amount out of range")
	}
	if right {
		z.v.Rsh(&z.v, uint(s))
	} else {
		z.v.Lsh(&z.v, uint(s))
	}
	return z
}

func (z *value) IXor(y values.Value) values.Value {
	z.v.Xor(&z.v, coerce(y))
	return z
}

func (z *value) IAnd(y values.Value) values.Value {
	z.v.And(&z.v, coerce(y))
	return z
}

func (z *value) IOr(y values.Value) values.Value {
	z.v.Or(&z.v, coerce(y))
	return z
}

// Pure forms.

func (z *value) Add(y values.Value) values.Value { return z.Clone().IAdd(y) }
func (z *value) Sub(y values.Value) values.Value { return z.Clone().ISub(y) }
func (z *value) Mul(y values.Value) values.Value { return z.Clone().IMul(y) }
func (z *value) Inc() values.Value               { return z.Clone().IInc() }
func (z *value) Dec() values.Value               { return z.Clone().IDec() }

func (z *value) Div(y values.Value) (values.Value, error) { return z.Clone().IDiv(y) }
func (z *value) Mod(m values.Value) (values.Value, error) { return z.Clone().IMod(m) }

func (z *value) LeftShift(k values.Value) values.Value  { return z.Clone().ILeftShift(k) }
func (z *value) RightShift(k values.Value) values.Value { return z.Clone().IRightShift(k) }

func (z *value) Xor(y values.Value) values.Value { return z.Clone().IXor(y) }
func (z *value) And(y values.Value) values.Value { return z.Clone().IAnd(y) }
func (z *value) Or(y values.Value) values.Value  { return z.Clone().IOr(y) }

func (z *value) Abs() values.Value {
	w := &value{}
	w.v.Abs(&z.v)
	return w
}

func (z *value) Negate() values.Value {
	w := &value{}
	w.v.Neg(&z.v)
	return w
}

// Comparisons and predicates.

func (z *value) Equal(y values.Value) bool { return z.v.Cmp(coerce(y)) == 0 }
func (z *value) Lt(y values.Value) bool    { return z.v.Cmp(coerce(y)) < 0 }
func (z *value) Lte(y values.Value) bool   { return z.v.Cmp(coerce(y)) <= 0 }
func (z *value) Gt(y values.Value) bool    { return z.v.Cmp(coerce(y)) > 0 }
func (z *value) Gte(y values.Value) bool   { return z.v.Cmp(coerce(y)) >= 0 }

func (z *value) IsZero() bool     { return z.v.Sign() == 0 }
func (z *value) IsOne() bool      { return z.v.Sign() > 0 && z.v.Cmp(bigOne) == 0 }
func (z *value) IsNegative() bool { return z.v.Sign() < 0 }
func (z *value) IsEven() bool     { return z.v.Bit(0) == 0 }

// Modular subsystem.

func (z *value) Gcd(y values.Value) values.Value {
	a := new(big.Int).Abs(&z.v)
	b := new(big.Int).Abs(coerce(y))
	w := &value{}
	// The primitive's GCD zeroes the result for non-positive operands
	// instead of returning the other operand.
	switch {
	case a.Sign() == 0:
		w.v.Set(b)
	case b.Sign() == 0:
		w.v.Set(a)
	default:
		w.v.GCD(nil, nil, a, b)
	}
	return w
}

func (z *value) ModExp(e, n values.Value) (values.Value, error) {
	nn := coerce(n)
	if nn.Sign() == 0 {
		return nil, values.ErrDivisionByZero
	}
	m := new(big.Int).Abs(nn)
	if m.Cmp(bigOne) == 0 {
		return &value{}, nil
	}

	base := new(big.Int).Mod(&z.v, m)
	ee := coerce(e)
	if ee.Sign() < 0 {
		// The primitive requires an invertible base for negative
		// exponents; surface the failure as the contract's error.
		inv := new(big.Int).ModInverse(base, m)
		if inv == nil {
			return nil, values.ErrInverseDoesNotExist
		}
		base = inv
		ee = new(big.Int).Neg(ee)
	}

	w := &value{}
	w.v.Exp(base, ee, m)
	return w, nil
}

func (z *value) ModInv(n values.Value) (values.Value, error) {
	nn := coerce(n)
	if nn.Sign() == 0 {
		return nil, values.ErrDivisionByZero
	}
	m := new(big.Int).Abs(nn)
	if m.Cmp(bigOne) == 0 {
		return &value{}, nil
	}

	// Normalize into [0, m) first so negative receivers invert correctly.
	// ModInverse reports non-coprime operands by returning nil, which is
	// exactly the gcd(|a|, m) != 1 condition.
	a := new(big.Int).Mod(&z.v, m)
	w := &value{}
	if w.v.ModInverse(a, m) == nil {
		return nil, values.ErrInverseDoesNotExist
	}
	return w, nil
}

// Introspection and conversion.

func (z *value) BitLength() int  { return z.v.BitLen() }
func (z *value) ByteLength() int { return (z.v.BitLen() + 7) / 8 }
func (z *value) Bit(i int) uint  { return z.v.Bit(i) }

func (z *value) String() string { return z.v.String() }

func (z *value) Int64() (int64, error) {
	if !z.v.IsInt64() {
		return 0, values.ErrPrecisionLoss
	}
	return z.v.Int64(), nil
}

func (z *value) Bytes() []byte { return z.v.Bytes() }

func (z *value) Encode(endian values.Endian, length int) ([]byte, error) {
	return values.EncodeMagnitude(z.v.Bytes(), endian, length)
}
