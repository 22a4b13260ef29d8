// Limb-vector arithmetic over unsigned multi-precision integers. A nat is a
// little-endian slice of Words, normalized so that the most significant limb
// is non-zero; the empty (or nil) nat represents zero. The signed layer on
// top lives in int.go.

package arith

import (
	"math/bits"
	"strconv"
	"strings"
)

type Word = uint

const (
	wordBits  = bits.UintSize
	wordBytes = wordBits / 8

	// Largest number of decimal digits that always fits a single Word:
	// floor(wordBits * log10(2)), 19 on 64-bit platforms and 9 on 32-bit.
	maxDecDigits = wordBits * 30103 / 100000
)

// pow10Word = 10^maxDecDigits, the chunk base for decimal conversion.
var pow10Word = pow10(maxDecDigits)

func pow10(n int) Word {
	p := Word(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

type nat []Word

var natOne = nat{1}

func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

func (x nat) cmp(y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*wordBits + bits.Len(x[len(x)-1])
}

// bit returns the value of the i-th bit of x.
func (x nat) bit(i uint) uint {
	w := int(i / wordBits)
	if w >= len(x) {
		return 0
	}
	return uint(x[w]>>(i%wordBits)) & 1
}

func (x nat) trailingZeroBits() uint {
	if len(x) == 0 {
		return 0
	}
	i := 0
	for x[i] == 0 {
		i++
	}
	return uint(i*wordBits + bits.TrailingZeros(x[i]))
}

// low64 returns the value of the lowest 64 bits of x.
func (x nat) low64() uint64 {
	if len(x) == 0 {
		return 0
	}
	v := uint64(x[0])
	if wordBits == 32 && len(x) > 1 {
		v |= uint64(x[1]) << 32
	}
	return v
}

// Word-vector primitives. These are the only places carries and borrows are
// threaded; everything above works in terms of whole vectors.

func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = bits.Add(x[i], y[i], c)
	}
	return
}

func subVV(z, x, y []Word) (b Word) {
	for i := range z {
		z[i], b = bits.Sub(x[i], y[i], b)
	}
	return
}

func addVW(z, x []Word, y Word) Word {
	c := y
	for i := range z {
		z[i], c = bits.Add(x[i], c, 0)
	}
	return c
}

func subVW(z, x []Word, y Word) Word {
	b := y
	for i := range z {
		z[i], b = bits.Sub(x[i], b, 0)
	}
	return b
}

// shlVU sets z = x << s for s in [0, wordBits) and returns the bits shifted
// out of the top limb.
func shlVU(z, x []Word, s uint) (out Word) {
	if len(x) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	out = x[len(x)-1] >> (wordBits - s)
	for i := len(x) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>(wordBits-s)
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z = x >> s for s in [0, wordBits) and returns the bits shifted
// out of the bottom limb (in the top bits of the result).
func shrVU(z, x []Word, s uint) (out Word) {
	if len(x) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	out = x[0] << (wordBits - s)
	for i := 0; i < len(x)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(wordBits-s)
	}
	z[len(x)-1] = x[len(x)-1] >> s
	return
}

// mulAddVWW sets z = x*y + r and returns the top carry limb.
func mulAddVWW(z, x []Word, y, r Word) Word {
	c := r
	for i := range z {
		hi, lo := bits.Mul(x[i], y)
		lo, cc := bits.Add(lo, c, 0)
		z[i] = lo
		c = hi + cc
	}
	return c
}

// addMulVVW sets z += x*y and returns the top carry limb.
func addMulVVW(z, x []Word, y Word) Word {
	var c Word
	for i := range z {
		hi, lo := bits.Mul(x[i], y)
		lo, c1 := bits.Add(lo, c, 0)
		lo, c2 := bits.Add(lo, z[i], 0)
		z[i] = lo
		c = hi + c1 + c2
	}
	return c
}

// Vector-level operations. All of these allocate their result and never
// mutate their operands, so results may freely alias into callers.

func natAdd(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	c = addVW(z[len(y):len(x)], x[len(y):], c)
	z[len(x)] = c
	return z.norm()
}

// natSub computes x - y; x must not be smaller than y.
func natSub(x, y nat) nat {
	if x.cmp(y) < 0 {
		panic("arith: underflow in nat subtraction")
	}
	z := make(nat, len(x))
	b := subVV(z[:len(y)], x[:len(y)], y)
	b = subVW(z[len(y):], x[len(y):], b)
	if b != 0 {
		panic("arith: inconsistent borrow in nat subtraction")
	}
	return z.norm()
}

func natMul(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(nat, len(x)+len(y))
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
	return z.norm()
}

// natDivMod computes the quotient and remainder of u / v; v must not be
// zero. The remainder satisfies 0 <= r < v.
func natDivMod(u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("arith: division by zero")
	}
	if u.cmp(v) < 0 {
		return nil, u.clone()
	}
	if len(v) == 1 {
		qq := make(nat, len(u))
		rr := divWVW(qq, u, v[0])
		if rr == 0 {
			return qq.norm(), nil
		}
		return qq.norm(), nat{rr}
	}
	return divKnuth(u, v)
}

// divWVW divides u by the single limb v, storing the quotient limbs in q and
// returning the remainder.
func divWVW(q, u []Word, v Word) (r Word) {
	for i := len(u) - 1; i >= 0; i-- {
		q[i], r = bits.Div(r, u[i], v)
	}
	return
}

// divKnuth is the schoolbook multi-limb division (Knuth's algorithm D).
// Preconditions: len(v) >= 2, u >= v, both normalized.
func divKnuth(u, v nat) (nat, nat) {
	n := len(v)
	m := len(u) - n

	// Normalize so that the top limb of the divisor has its high bit set;
	// the quotient-digit estimate below depends on it.
	s := uint(bits.LeadingZeros(v[n-1]))
	vn := make(nat, n)
	shlVU(vn, v, s)
	un := make(nat, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	q := make(nat, m+1)
	qhatv := make(nat, n+1)
	for j := m; j >= 0; j-- {
		// Estimate the quotient digit from the top two limbs of the
		// dividend window and the top limb of the divisor, then refine
		// it with the next limb. After refinement the estimate is at
		// most one too large.
		qhat := ^Word(0)
		if un[j+n] != vn[n-1] {
			var rhat Word
			qhat, rhat = bits.Div(un[j+n], un[j+n-1], vn[n-1])
			for {
				hi, lo := bits.Mul(qhat, vn[n-2])
				if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
					break
				}
				qhat--
				rhat += vn[n-1]
				if rhat < vn[n-1] {
					break
				}
			}
		}

		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		if subVV(un[j:j+n+1], un[j:j+n+1], qhatv) != 0 {
			// qhat was one too large; add the divisor back.
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	r := make(nat, n)
	shrVU(r, un[:n], s)
	return q.norm(), r.norm()
}

func natShl(x nat, s uint) nat {
	if len(x) == 0 {
		return nil
	}
	w := int(s / wordBits)
	b := s % wordBits
	z := make(nat, len(x)+w+1)
	z[len(x)+w] = shlVU(z[w:len(x)+w], x, b)
	return z.norm()
}

func natShr(x nat, s uint) nat {
	w := int(s / wordBits)
	if w >= len(x) {
		return nil
	}
	z := make(nat, len(x)-w)
	shrVU(z, x[w:], s%wordBits)
	return z.norm()
}

func natAnd(x, y nat) nat {
	if len(x) > len(y) {
		x, y = y, x
	}
	z := make(nat, len(x))
	for i := range z {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

func natOr(x, y nat) nat {
	if len(x) > len(y) {
		x, y = y, x
	}
	z := make(nat, len(y))
	for i := range x {
		z[i] = x[i] | y[i]
	}
	copy(z[len(x):], y[len(x):])
	return z.norm()
}

func natXor(x, y nat) nat {
	if len(x) > len(y) {
		x, y = y, x
	}
	z := make(nat, len(y))
	for i := range x {
		z[i] = x[i] ^ y[i]
	}
	copy(z[len(x):], y[len(x):])
	return z.norm()
}

// natAndNot computes x &^ y.
func natAndNot(x, y nat) nat {
	z := make(nat, len(x))
	for i := range x {
		if i < len(y) {
			z[i] = x[i] &^ y[i]
		} else {
			z[i] = x[i]
		}
	}
	return z.norm()
}

// natGCD computes the greatest common divisor by the binary algorithm.
func natGCD(a, b nat) nat {
	if len(a) == 0 {
		return b.clone()
	}
	if len(b) == 0 {
		return a.clone()
	}

	az := a.trailingZeroBits()
	bz := b.trailingZeroBits()
	shift := az
	if bz < shift {
		shift = bz
	}

	u := natShr(a, az)
	v := natShr(b, bz)
	for len(v) > 0 {
		v = natShr(v, v.trailingZeroBits())
		if u.cmp(v) > 0 {
			u, v = v, u
		}
		v = natSub(v, u)
	}
	return natShl(u, shift)
}

func natFromUint64(v uint64) nat {
	if v == 0 {
		return nil
	}
	if wordBits == 64 || v <= uint64(^Word(0)) {
		return nat{Word(v)}
	}
	return nat{Word(v), Word(v >> 32)}
}

// natSetBytes interprets b as a big-endian unsigned magnitude.
func natSetBytes(b []byte) nat {
	z := make(nat, (len(b)+wordBytes-1)/wordBytes)
	for i := 0; i < len(b); i++ {
		d := b[len(b)-1-i]
		z[i/wordBytes] |= Word(d) << (8 * (i % wordBytes))
	}
	return z.norm()
}

// bytes returns the minimal big-endian encoding of x; empty for zero.
func (x nat) bytes() []byte {
	buf := make([]byte, len(x)*wordBytes)
	for i, w := range x {
		for j := 0; j < wordBytes; j++ {
			buf[len(buf)-1-(i*wordBytes+j)] = byte(w >> (8 * j))
		}
	}
	k := 0
	for k < len(buf) && buf[k] == 0 {
		k++
	}
	return buf[k:]
}

// natFromDecimal parses a string of decimal digits (no sign, no prefix);
// the caller has already validated the digit set.
func natFromDecimal(digits string) nat {
	var z nat
	for len(digits) > 0 {
		n := maxDecDigits
		if n > len(digits) {
			n = len(digits)
		}
		chunk, err := strconv.ParseUint(digits[:n], 10, 64)
		if err != nil {
			panic("arith: invalid decimal chunk " + digits[:n])
		}
		digits = digits[n:]

		zz := make(nat, len(z)+1)
		zz[len(z)] = mulAddVWW(zz[:len(z)], z, pow10(n), Word(chunk))
		z = zz.norm()
	}
	return z
}

// natFromHex parses a string of hexadecimal digits (no sign, no 0x prefix);
// the caller has already validated the digit set.
func natFromHex(digits string) nat {
	z := make(nat, (len(digits)*4+wordBits-1)/wordBits)
	for i := 0; i < len(digits); i++ {
		d := hexDigit(digits[len(digits)-1-i])
		z[(i*4)/wordBits] |= Word(d) << ((i * 4) % wordBits)
	}
	return z.norm()
}

func hexDigit(c byte) Word {
	switch {
	case c >= '0' && c <= '9':
		return Word(c - '0')
	case c >= 'a' && c <= 'f':
		return Word(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return Word(c-'A') + 10
	}
	panic("arith: invalid hex digit " + string(c))
}

// decimal returns the decimal representation of x, extracting chunks of
// maxDecDigits digits by repeated division.
func (x nat) decimal() string {
	if len(x) == 0 {
		return "0"
	}

	var chunks []Word
	u := x.clone()
	for len(u) > 0 {
		q := make(nat, len(u))
		r := divWVW(q, u, pow10Word)
		u = q.norm()
		chunks = append(chunks, r)
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), 10)
		sb.WriteString(strings.Repeat("0", maxDecDigits-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}
