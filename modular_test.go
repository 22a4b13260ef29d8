package bigint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openpgpjs/bigint"
	"github.com/openpgpjs/bigint/internal/unsaferand"
)

// refModExp is an iterative square-and-multiply reference built only from
// Mul and Mod of the contract under test.
func refModExp(t *testing.T, r *bigint.Registry, x, e, n bigint.Value) bigint.Value {
	t.Helper()
	one := r.MustNew(1)

	result := one.Clone()
	base, err := x.Mod(n)
	require.NoError(t, err)

	exp := e.Clone()
	for !exp.IsZero() {
		if !exp.IsEven() {
			result, err = result.Mul(base).Mod(n)
			require.NoError(t, err)
		}
		base, err = base.Mul(base).Mod(n)
		require.NoError(t, err)
		exp = exp.IRightShift(one)
	}
	res, err := result.Mod(n)
	require.NoError(t, err)
	return res
}

func TestModExpMatchesReference(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, r *bigint.Registry) {
		rnd := unsaferand.New("modexp", r.Implementation().Name())
		for i := 0; i < 20; i++ {
			x := r.FromBytes(rnd.Bytes(24))
			e := r.FromBytes(rnd.Bytes(3))
			n := r.FromBytes(rnd.Bytes(20)).IInc() // non-zero modulus

			got, err := x.ModExp(e, n)
			require.NoError(t, err)
			require.True(t, got.Equal(refModExp(t, r, x, e, n)),
				"x=%s e=%s n=%s got=%s", x, e, n, got)
		}
	})
}

func TestModExpOddAndEvenModulus(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, r *bigint.Registry) {
		rnd := unsaferand.New("modexp parity", r.Implementation().Name())

		// Odd modulus (Montgomery-eligible) and even modulus (generic
		// reduction); the reduction strategy must not be observable.
		for _, low := range []byte{0x01, 0x00} {
			nb := rnd.Bytes(32)
			nb[0] |= 0x80
			nb[31] = low | 0x02
			n := r.FromBytes(nb)

			x := r.FromBytes(rnd.Bytes(40))
			e := r.MustNew(65537)

			got, err := x.ModExp(e, n)
			require.NoError(t, err)
			require.True(t, got.Equal(refModExp(t, r, x, e, n)))
			require.False(t, got.IsNegative())
			require.True(t, got.Lt(n))
		}
	})
}

func TestModExpEdgeCases(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, r *bigint.Registry) {
		_, err := r.MustNew(3).ModExp(r.MustNew(2), r.MustNew(0))
		require.ErrorIs(t, err, bigint.ErrDivisionByZero)

		// Modulus one collapses everything to zero.
		v, err := r.MustNew(12345).ModExp(r.MustNew(678), r.MustNew(1))
		require.NoError(t, err)
		require.True(t, v.IsZero())

		// Zero exponent yields one.
		v, err = r.MustNew(12345).ModExp(r.MustNew(0), r.MustNew(100))
		require.NoError(t, err)
		require.True(t, v.IsOne())

		// Negative base is reduced first: (-2)^3 mod 7 == 6.
		v, err = r.MustNew(-2).ModExp(r.MustNew(3), r.MustNew(7))
		require.NoError(t, err)
		require.Equal(t, "6", v.String())

		// Negative exponent inverts: 3^-1 mod 10 == 7, 3^-2 mod 10 == 9.
		v, err = r.MustNew(3).ModExp(r.MustNew(-1), r.MustNew(10))
		require.NoError(t, err)
		require.Equal(t, "7", v.String())
		v, err = r.MustNew(3).ModExp(r.MustNew(-2), r.MustNew(10))
		require.NoError(t, err)
		require.Equal(t, "9", v.String())

		// Negative exponent with a non-invertible base fails.
		_, err = r.MustNew(4).ModExp(r.MustNew(-1), r.MustNew(10))
		require.ErrorIs(t, err, bigint.ErrInverseDoesNotExist)
	})
}

func TestModInv(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, r *bigint.Registry) {
		// 2^127 - 1, a Mersenne prime.
		p := r.MustNew("170141183460469231731687303715884105727")

		rnd := unsaferand.New("modinv", r.Implementation().Name())
		for i := 0; i < 10; i++ {
			a := r.FromBytes(rnd.Bytes(12)).IInc() // 0 < a < p
			inv, err := a.ModInv(p)
			require.NoError(t, err)
			require.False(t, inv.IsNegative())
			require.True(t, inv.Lt(p))

			prod, err := a.Mul(inv).Mod(p)
			require.NoError(t, err)
			require.True(t, prod.IsOne(), "a=%s inv=%s", a, inv)
		}

		// Negative operands are normalized into [0, p) before inversion.
		a := r.MustNew(-3)
		inv, err := a.ModInv(p)
		require.NoError(t, err)
		prod, err := a.Mul(inv).Mod(p)
		require.NoError(t, err)
		require.True(t, prod.IsOne())

		// A multiple of p shares a factor with p and has no inverse.
		_, err = r.MustNew(7).Mul(p).ModInv(p)
		require.ErrorIs(t, err, bigint.ErrInverseDoesNotExist)
		_, err = r.MustNew(0).ModInv(p)
		require.ErrorIs(t, err, bigint.ErrInverseDoesNotExist)

		// Composite modulus, non-coprime operand.
		_, err = r.MustNew(6).ModInv(r.MustNew(9))
		require.ErrorIs(t, err, bigint.ErrInverseDoesNotExist)

		// Zero modulus.
		_, err = r.MustNew(3).ModInv(r.MustNew(0))
		require.ErrorIs(t, err, bigint.ErrDivisionByZero)
	})
}

func TestGcdExamples(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, r *bigint.Registry) {
		cases := []struct {
			a, b int64
			want string
		}{
			{12, 18, "6"},
			{-12, 18, "6"},
			{12, -18, "6"},
			{-12, -18, "6"},
			{0, 5, "5"},
			{5, 0, "5"},
			{0, 0, "0"},
			{1, 999999937, "1"},
		}
		for _, tc := range cases {
			g := r.MustNew(tc.a).Gcd(r.MustNew(tc.b))
			require.Equal(t, tc.want, g.String(), "gcd(%d, %d)", tc.a, tc.b)
		}
	})
}
