package bigint_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/openpgpjs/bigint"
)

func TestDecimalRoundTrip(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, r *bigint.Registry) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 200

		properties := gopter.NewProperties(parameters)
		properties.Property("new(s).String() == s", prop.ForAll(
			func(a int64) bool {
				s := strconv.FormatInt(a, 10)
				v, err := r.FromString(s)
				return err == nil && v.String() == s
			},
			gen.Int64(),
		))

		properties.TestingRun(t, gopter.ConsoleReporter(false))
	})
}

func TestPureInPlaceEquivalence(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, r *bigint.Registry) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 200

		type opPair struct {
			name string
			pure func(a, b bigint.Value) bigint.Value
			iop  func(a, b bigint.Value) bigint.Value
		}
		pairs := []opPair{
			{"add", func(a, b bigint.Value) bigint.Value { return a.Add(b) },
				func(a, b bigint.Value) bigint.Value { return a.IAdd(b) }},
			{"sub", func(a, b bigint.Value) bigint.Value { return a.Sub(b) },
				func(a, b bigint.Value) bigint.Value { return a.ISub(b) }},
			{"mul", func(a, b bigint.Value) bigint.Value { return a.Mul(b) },
				func(a, b bigint.Value) bigint.Value { return a.IMul(b) }},
			{"xor", func(a, b bigint.Value) bigint.Value { return a.Xor(b) },
				func(a, b bigint.Value) bigint.Value { return a.IXor(b) }},
			{"and", func(a, b bigint.Value) bigint.Value { return a.And(b) },
				func(a, b bigint.Value) bigint.Value { return a.IAnd(b) }},
			{"or", func(a, b bigint.Value) bigint.Value { return a.Or(b) },
				func(a, b bigint.Value) bigint.Value { return a.IOr(b) }},
		}

		properties := gopter.NewProperties(parameters)
		for _, p := range pairs {
			p := p
			properties.Property(p.name+": a.op(b) == a.clone().iop(b), a unchanged", prop.ForAll(
				func(a, b int64) bool {
					va, vb := r.FromInt64(a), r.FromInt64(b)
					before := va.String()
					pure := p.pure(va, vb)
					if va.String() != before {
						return false
					}
					return pure.Equal(p.iop(va.Clone(), vb))
				},
				gen.Int64(), gen.Int64(),
			))
		}

		properties.Property("div: a.Div(b) == a.Clone().IDiv(b), a unchanged", prop.ForAll(
			func(a, b int64) bool {
				if b == 0 {
					return true
				}
				va, vb := r.FromInt64(a), r.FromInt64(b)
				before := va.String()
				pure, err := va.Div(vb)
				if err != nil || va.String() != before {
					return false
				}
				ip, err := va.Clone().IDiv(vb)
				return err == nil && pure.Equal(ip)
			},
			gen.Int64(), gen.Int64(),
		))

		properties.Property("mod: a.Mod(b) == a.Clone().IMod(b), a unchanged", prop.ForAll(
			func(a, b int64) bool {
				if b == 0 {
					return true
				}
				va, vb := r.FromInt64(a), r.FromInt64(b)
				before := va.String()
				pure, err := va.Mod(vb)
				if err != nil || va.String() != before {
					return false
				}
				ip, err := va.Clone().IMod(vb)
				return err == nil && pure.Equal(ip)
			},
			gen.Int64(), gen.Int64(),
		))

		properties.Property("shifts: pure == clone().iop, a unchanged", prop.ForAll(
			func(a int64, k int) bool {
				va, vk := r.FromInt64(a), r.FromInt64(int64(k))
				before := va.String()
				l := va.LeftShift(vk)
				rr := va.RightShift(vk)
				if va.String() != before {
					return false
				}
				return l.Equal(va.Clone().ILeftShift(vk)) &&
					rr.Equal(va.Clone().IRightShift(vk))
			},
			gen.Int64(), gen.IntRange(-300, 300),
		))

		properties.TestingRun(t, gopter.ConsoleReporter(false))
	})
}

func TestAlgebraicLaws(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, r *bigint.Registry) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 200

		properties := gopter.NewProperties(parameters)

		properties.Property("a.add(b).sub(b) == a", prop.ForAll(
			func(a, b int64) bool {
				va, vb := r.FromInt64(a), r.FromInt64(b)
				return va.Add(vb).Sub(vb).Equal(va)
			},
			gen.Int64(), gen.Int64(),
		))

		properties.Property("a.leftShift(k) == a.rightShift(-k)", prop.ForAll(
			func(a int64, k int) bool {
				va := r.FromInt64(a)
				vk := r.FromInt64(int64(k))
				vnk := r.FromInt64(int64(-k))
				return va.LeftShift(vk).Equal(va.RightShift(vnk)) &&
					va.RightShift(vk).Equal(va.LeftShift(vnk))
			},
			gen.Int64(), gen.IntRange(-300, 300),
		))

		properties.Property("a.negate().negate() == a", prop.ForAll(
			func(a int64) bool {
				va := r.FromInt64(a)
				return va.Negate().Negate().Equal(va)
			},
			gen.Int64(),
		))

		properties.Property("a.negate().abs() == a.abs()", prop.ForAll(
			func(a int64) bool {
				va := r.FromInt64(a)
				return va.Negate().Abs().Equal(va.Abs())
			},
			gen.Int64(),
		))

		properties.Property("zero.sub(a) == a.negate()", prop.ForAll(
			func(a int64) bool {
				va := r.FromInt64(a)
				return r.FromInt64(0).Sub(va).Equal(va.Negate())
			},
			gen.Int64(),
		))

		properties.Property("mod result is in [0, |m|)", prop.ForAll(
			func(a, m int64) bool {
				if m == 0 {
					return true
				}
				va, vm := r.FromInt64(a), r.FromInt64(m)
				got, err := va.Mod(vm)
				if err != nil {
					return false
				}
				return !got.IsNegative() && got.Lt(vm.Abs())
			},
			gen.Int64(), gen.Int64(),
		))

		properties.Property("n.getBit(i) == n.rightShift(i).and(1)", prop.ForAll(
			func(a int64, i int) bool {
				if a < 0 {
					a = -a
				}
				if a < 0 { // MinInt64
					return true
				}
				va := r.FromInt64(a)
				want, err := va.RightShift(r.FromInt64(int64(i))).And(r.FromInt64(1)).Int64()
				if err != nil {
					return false
				}
				return va.Bit(i) == uint(want)
			},
			gen.Int64(), gen.IntRange(0, 128),
		))

		properties.Property("gcd is non-negative and divides both", prop.ForAll(
			func(a, b int64) bool {
				va, vb := r.FromInt64(a), r.FromInt64(b)
				g := va.Gcd(vb)
				if g.IsNegative() {
					return false
				}
				if g.IsZero() {
					return a == 0 && b == 0
				}
				ra, err := va.Abs().Mod(g)
				if err != nil || !ra.IsZero() {
					return false
				}
				rb, err := vb.Abs().Mod(g)
				return err == nil && rb.IsZero()
			},
			gen.Int64(), gen.Int64(),
		))

		properties.TestingRun(t, gopter.ConsoleReporter(false))
	})
}
