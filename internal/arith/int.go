// Sign-magnitude signed integers over the nat limb engine. The API follows
// the receiver-result convention: z.Op(x, y) stores the result in z and
// returns z. Operands are never mutated, so a receiver may alias any of its
// operands.

package arith

type Int struct {
	neg bool // sign; always false for zero
	abs nat  // magnitude
}

// NewInt returns an Int with the given value.
func NewInt(v int64) *Int {
	return new(Int).SetInt64(v)
}

func (z *Int) SetInt64(v int64) *Int {
	z.neg = v < 0
	if v < 0 {
		// Negate via uint64 so that the minimum int64 survives.
		z.abs = natFromUint64(-uint64(v))
	} else {
		z.abs = natFromUint64(uint64(v))
	}
	return z
}

func (z *Int) SetUint64(v uint64) *Int {
	z.neg = false
	z.abs = natFromUint64(v)
	return z
}

// SetBytes sets z to the non-negative value of the big-endian magnitude b.
func (z *Int) SetBytes(b []byte) *Int {
	z.neg = false
	z.abs = natSetBytes(b)
	return z
}

// SetDecimal sets z to the non-negative value of the decimal digit string.
// The caller validates the digit set beforehand.
func (z *Int) SetDecimal(digits string) *Int {
	z.neg = false
	z.abs = natFromDecimal(digits)
	return z
}

// SetHex sets z to the non-negative value of the hex digit string (no 0x
// prefix). The caller validates the digit set beforehand.
func (z *Int) SetHex(digits string) *Int {
	z.neg = false
	z.abs = natFromHex(digits)
	return z
}

// Set copies x into z; the copy is deep, z and x share no storage.
func (z *Int) Set(x *Int) *Int {
	z.neg = x.neg
	z.abs = x.abs.clone()
	return z
}

func (x *Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

func (x *Int) IsOne() bool {
	return !x.neg && len(x.abs) == 1 && x.abs[0] == 1
}

func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.abs.cmp(y.abs)
	if x.neg {
		return -c
	}
	return c
}

func (z *Int) Neg(x *Int) *Int {
	z.abs = x.abs.clone()
	z.neg = len(z.abs) > 0 && !x.neg
	return z
}

func (z *Int) Abs(x *Int) *Int {
	z.abs = x.abs.clone()
	z.neg = false
	return z
}

func (z *Int) Add(x, y *Int) *Int {
	if x.neg == y.neg {
		z.abs = natAdd(x.abs, y.abs)
		z.neg = x.neg
	} else {
		switch x.abs.cmp(y.abs) {
		case 1:
			z.abs = natSub(x.abs, y.abs)
			z.neg = x.neg
		case -1:
			z.abs = natSub(y.abs, x.abs)
			z.neg = y.neg
		default:
			z.abs = nil
		}
	}
	if len(z.abs) == 0 {
		z.neg = false
	}
	return z
}

func (z *Int) Sub(x, y *Int) *Int {
	yn := Int{neg: !y.neg && len(y.abs) > 0, abs: y.abs}
	return z.Add(x, &yn)
}

func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	z.abs = natMul(x.abs, y.abs)
	z.neg = neg && len(z.abs) > 0
	return z
}

// QuoRem computes the truncated quotient q = x/y and remainder
// r = x - q*y, storing them in z and r. The remainder carries the sign of
// x. Panics if y is zero.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	xneg := x.neg
	qneg := x.neg != y.neg
	qabs, rabs := natDivMod(x.abs, y.abs)
	z.abs, r.abs = qabs, rabs
	z.neg = qneg && len(qabs) > 0
	r.neg = xneg && len(rabs) > 0
	return z, r
}

func (x *Int) BitLen() int {
	return x.abs.bitLen()
}

// Bit returns the i-th bit of x, interpreting negative values in infinite
// two's-complement form: Bit(-m, i) == 1 - Bit(m-1, i).
func (x *Int) Bit(i int) uint {
	if i < 0 {
		panic("arith: negative bit index")
	}
	if x.neg {
		t := natSub(x.abs, natOne)
		return 1 - t.bit(uint(i))
	}
	return x.abs.bit(uint(i))
}

func (z *Int) Lsh(x *Int, s uint) *Int {
	z.abs = natShl(x.abs, s)
	z.neg = x.neg && len(z.abs) > 0
	return z
}

// Rsh is an arithmetic right shift: negative values round towards negative
// infinity, so -m >> s == -((m-1)>>s + 1).
func (z *Int) Rsh(x *Int, s uint) *Int {
	if x.neg {
		t := natSub(x.abs, natOne)
		z.abs = natAdd(natShr(t, s), natOne)
		z.neg = true
		return z
	}
	z.abs = natShr(x.abs, s)
	z.neg = false
	return z
}

// And, Or and Xor use the infinite two's-complement interpretation for
// negative operands, decomposed into magnitude identities:
//
//	-a & -b == -(((a-1) | (b-1)) + 1)
//	 a & -b ==     a &^ (b-1)
//	-a | -b == -(((a-1) & (b-1)) + 1)
//	 a | -b == -(((b-1) &^ a) + 1)
//	-a ^ -b ==    (a-1) ^ (b-1)
//	 a ^ -b == -(( a ^ (b-1)) + 1)
func (z *Int) And(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			a1 := natSub(x.abs, natOne)
			b1 := natSub(y.abs, natOne)
			z.abs = natAdd(natOr(a1, b1), natOne)
			z.neg = true
			return z
		}
		z.abs = natAnd(x.abs, y.abs)
		z.neg = false
		return z
	}
	p, n := x, y
	if x.neg {
		p, n = y, x
	}
	z.abs = natAndNot(p.abs, natSub(n.abs, natOne))
	z.neg = false
	return z
}

func (z *Int) Or(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			a1 := natSub(x.abs, natOne)
			b1 := natSub(y.abs, natOne)
			z.abs = natAdd(natAnd(a1, b1), natOne)
			z.neg = true
			return z
		}
		z.abs = natOr(x.abs, y.abs)
		z.neg = false
		return z
	}
	p, n := x, y
	if x.neg {
		p, n = y, x
	}
	z.abs = natAdd(natAndNot(natSub(n.abs, natOne), p.abs), natOne)
	z.neg = true
	return z
}

func (z *Int) Xor(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			a1 := natSub(x.abs, natOne)
			b1 := natSub(y.abs, natOne)
			z.abs = natXor(a1, b1)
			z.neg = false
			return z
		}
		z.abs = natXor(x.abs, y.abs)
		z.neg = false
		return z
	}
	p, n := x, y
	if x.neg {
		p, n = y, x
	}
	z.abs = natAdd(natXor(p.abs, natSub(n.abs, natOne)), natOne)
	z.neg = true
	return z
}

// Gcd sets z to the greatest common divisor of x and y; the result is
// always non-negative.
func (z *Int) Gcd(x, y *Int) *Int {
	z.abs = natGCD(x.abs, y.abs)
	z.neg = false
	return z
}

// Bytes returns the minimal big-endian encoding of the magnitude of x.
func (x *Int) Bytes() []byte {
	return x.abs.bytes()
}

func (x *Int) IsInt64() bool {
	if x.abs.bitLen() < 64 {
		return true
	}
	return x.neg && x.abs.bitLen() == 64 && x.abs.low64() == 1<<63
}

// Int64 returns the value of x; the result is undefined if IsInt64 is
// false.
func (x *Int) Int64() int64 {
	v := int64(x.abs.low64())
	if x.neg {
		return -v
	}
	return v
}

func (x *Int) String() string {
	s := x.abs.decimal()
	if x.neg {
		return "-" + s
	}
	return s
}
