// Fallback backend: implements the value contract on the limb engine in
// internal/arith, for use when the native unbounded-integer primitive is
// unavailable or ruled out. Results are bit-identical to the native backend
// for every operation in the contract; that parity, not shared code, is the
// portability guarantee.

package fallback

import (
	"math"
	"math/big"

	"filippo.io/bigmod"

	"github.com/openpgpjs/bigint/internal/arith"
	"github.com/openpgpjs/bigint/internal/values"
)

type impl struct{}

// Implementation is the fallback backend's factory.
var Implementation values.Implementation = impl{}

func (impl) Name() string { return "fallback" }

func (impl) FromString(s string) (values.Value, error) {
	neg, base, digits, err := values.SplitNumeric(s)
	if err != nil {
		return nil, err
	}
	z := &value{}
	if base == 16 {
		z.i.SetHex(digits)
	} else {
		z.i.SetDecimal(digits)
	}
	if neg {
		z.i.Neg(&z.i)
	}
	return z, nil
}

func (impl) FromInt64(v int64) values.Value {
	z := &value{}
	z.i.SetInt64(v)
	return z
}

func (impl) FromBytes(b []byte) values.Value {
	z := &value{}
	z.i.SetBytes(b)
	return z
}

type value struct {
	i arith.Int
}

var _ values.Value = &value{}

// coerce views an operand as a fallback value, rebuilding it from its sign
// and magnitude bytes when it was constructed under another backend.
func coerce(v values.Value) *value {
	if x, ok := v.(*value); ok {
		return x
	}
	w := &value{}
	w.i.SetBytes(v.Bytes())
	if v.IsNegative() {
		w.i.Neg(&w.i)
	}
	return w
}

func (z *value) Clone() values.Value {
	w := &value{}
	w.i.Set(&z.i)
	return w
}

// In-place arithmetic. The pure forms below clone and delegate here, which
// is what makes a.Op(b) == a.Clone().IOp(b) hold by construction.

func (z *value) IAdd(y values.Value) values.Value {
	z.i.Add(&z.i, &coerce(y).i)
	return z
}

func (z *value) ISub(y values.Value) values.Value {
	z.i.Sub(&z.i, &coerce(y).i)
	return z
}

func (z *value) IMul(y values.Value) values.Value {
	z.i.Mul(&z.i, &coerce(y).i)
	return z
}

func (z *value) IDiv(y values.Value) (values.Value, error) {
	d := coerce(y)
	if d.i.Sign() == 0 {
		return nil, values.ErrDivisionByZero
	}
	var r arith.Int
	z.i.QuoRem(&z.i, &d.i, &r)
	return z, nil
}

func (z *value) IMod(m values.Value) (values.Value, error) {
	d := coerce(m)
	if d.i.Sign() == 0 {
		return nil, values.ErrDivisionByZero
	}
	var mAbs arith.Int
	mAbs.Abs(&d.i)
	reduceInto(&z.i, &z.i, &mAbs)
	return z, nil
}

func (z *value) IInc() values.Value {
	z.i.Add(&z.i, arithOne)
	return z
}

func (z *value) IDec() values.Value {
	z.i.Sub(&z.i, arithOne)
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
		z.i.Rsh(&z.i, uint(s))
	} else {
		z.i.Lsh(&z.i, uint(s))
	}
	return z
}

func (z *value) IXor(y values.Value) values.Value {
	z.i.Xor(&z.i, &coerce(y).i)
	return z
}

func (z *value) IAnd(y values.Value) values.Value {
	z.i.And(&z.i, &coerce(y).i)
	return z
}

func (z *value) IOr(y values.Value) values.Value {
	z.i.Or(&z.i, &coerce(y).i)
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
	w.i.Abs(&z.i)
	return w
}

func (z *value) Negate() values.Value {
	w := &value{}
	w.i.Neg(&z.i)
	return w
}

// Comparisons and predicates.

func (z *value) Equal(y values.Value) bool { return z.i.Cmp(&coerce(y).i) == 0 }
func (z *value) Lt(y values.Value) bool    { return z.i.Cmp(&coerce(y).i) < 0 }
func (z *value) Lte(y values.Value) bool   { return z.i.Cmp(&coerce(y).i) <= 0 }
func (z *value) Gt(y values.Value) bool    { return z.i.Cmp(&coerce(y).i) > 0 }
func (z *value) Gte(y values.Value) bool   { return z.i.Cmp(&coerce(y).i) >= 0 }

func (z *value) IsZero() bool     { return z.i.Sign() == 0 }
func (z *value) IsOne() bool      { return z.i.IsOne() }
func (z *value) IsNegative() bool { return z.i.Sign() < 0 }
func (z *value) IsEven() bool     { return z.i.Bit(0) == 0 }

// Modular subsystem.

func (z *value) Gcd(y values.Value) values.Value {
	w := &value{}
	w.i.Gcd(&z.i, &coerce(y).i)
	return w
}

func (z *value) ModExp(e, n values.Value) (values.Value, error) {
	nv := coerce(n)
	if nv.i.Sign() == 0 {
		return nil, values.ErrDivisionByZero
	}
	var m arith.Int
	m.Abs(&nv.i)
	if m.IsOne() {
		return &value{}, nil
	}

	var base arith.Int
	reduceInto(&base, &z.i, &m)

	ev := coerce(e)
	if ev.i.Sign() < 0 {
		inv, err := (&value{i: base}).ModInv(&value{i: m})
		if err != nil {
			return nil, err
		}
		base.Set(&inv.(*value).i)
	}
	var eAbs arith.Int
	eAbs.Abs(&ev.i)
	if eAbs.Sign() == 0 {
		return Implementation.FromInt64(1), nil
	}

	// An odd modulus admits a Montgomery reduction context; an even one
	// falls back to square-and-multiply with generic reduction. Only the
	// numeric result is observable.
	if m.Bit(0) == 1 {
		if out, ok := modExpMontgomery(&base, &eAbs, &m); ok {
			return out, nil
		}
	}
	return modExpGeneric(&base, &eAbs, &m), nil
}

func modExpMontgomery(base, e, m *arith.Int) (*value, bool) {
	mod, err := bigmod.NewModulusFromBig(new(big.Int).SetBytes(m.Bytes()))
	if err != nil {
		return nil, false
	}
	x, err := bigmod.NewNat().SetBytes(base.Bytes(), mod)
	if err != nil {
		return nil, false
	}
	out := bigmod.NewNat().ExpandFor(mod)
	out.Exp(x, e.Bytes(), mod)

	z := &value{}
	z.i.SetBytes(out.Bytes(mod))
	return z, true
}

// modExpGeneric is a plain most-significant-bit-first square-and-multiply
// ladder; base must already be reduced into [0, m).
func modExpGeneric(base, e, m *arith.Int) *value {
	z := &value{}
	result := &z.i
	result.SetInt64(1)

	var t, q arith.Int
	for i := e.BitLen() - 1; i >= 0; i-- {
		t.Mul(result, result)
		q.QuoRem(&t, m, result)
		if e.Bit(i) == 1 {
			t.Mul(result, base)
			q.QuoRem(&t, m, result)
		}
	}
	return z
}

func (z *value) ModInv(n values.Value) (values.Value, error) {
	nv := coerce(n)
	if nv.i.Sign() == 0 {
		return nil, values.ErrDivisionByZero
	}
	var m arith.Int
	m.Abs(&nv.i)
	if m.IsOne() {
		return &value{}, nil
	}

	// Normalize the receiver into [0, m) so that negative operands invert
	// correctly, then run the extended Euclidean algorithm tracking the
	// coefficient of a.
	var a arith.Int
	reduceInto(&a, &z.i, &m)

	r0 := new(arith.Int).Set(&a)
	r1 := new(arith.Int).Set(&m)
	s0 := arith.NewInt(1)
	s1 := arith.NewInt(0)
	var q, t arith.Int
	for r1.Sign() != 0 {
		r2 := new(arith.Int)
		q.QuoRem(r0, r1, r2)
		r0, r1 = r1, r2

		t.Mul(&q, s1)
		s2 := new(arith.Int).Sub(s0, &t)
		s0, s1 = s1, s2
	}

	// The inverse exists exactly when gcd(a, m) == 1. Without this check
	// the Bézout coefficient would be returned for non-coprime operands
	// as a meaningless "inverse".
	if !r0.IsOne() {
		return nil, values.ErrInverseDoesNotExist
	}

	out := &value{}
	reduceInto(&out.i, s0, &m)
	return out, nil
}

// Introspection and conversion.

func (z *value) BitLength() int  { return z.i.BitLen() }
func (z *value) ByteLength() int { return (z.i.BitLen() + 7) / 8 }
func (z *value) Bit(i int) uint  { return z.i.Bit(i) }

func (z *value) String() string { return z.i.String() }

func (z *value) Int64() (int64, error) {
	if !z.i.IsInt64() {
		return 0, values.ErrPrecisionLoss
	}
	return z.i.Int64(), nil
}

func (z *value) Bytes() []byte { return z.i.Bytes() }

func (z *value) Encode(endian values.Endian, length int) ([]byte, error) {
	return values.EncodeMagnitude(z.i.Bytes(), endian, length)
}

var arithOne = arith.NewInt(1)

// reduceInto sets z = x mod m for m > 0, with the result in [0, m).
func reduceInto(z, x, m *arith.Int) {
	var q arith.Int
	q.QuoRem(x, m, z)
	if z.Sign() < 0 {
		z.Add(z, m)
	}
}
