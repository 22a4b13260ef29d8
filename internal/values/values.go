// Abstract contract for arbitrary-precision signed integers. The concrete
// implementations (native and fallback backend) live in sibling packages and
// must produce bit-identical results for every operation defined here.

package values

// Endian selects the byte order of an encoded magnitude.
type Endian string

const (
	BigEndian    Endian = "be"
	LittleEndian Endian = "le"
)

// Value is an arbitrary-precision signed integer.
//
// Every binary operation exists in two forms: a pure form (Add, Sub, ...)
// that leaves the receiver unchanged and returns a new value, and an
// in-place form (IAdd, ISub, ...) that mutates the receiver and returns it
// for chaining. For any values a, b: a.Add(b) equals a.Clone().IAdd(b).
//
// Operands passed as arguments are never mutated. Arguments constructed
// under a different backend than the receiver are coerced through their
// sign and magnitude bytes.
type Value interface {
	// x.Add(y) returns x + y.
	Add(y Value) Value
	IAdd(y Value) Value

	// x.Sub(y) returns x - y.
	Sub(y Value) Value
	ISub(y Value) Value

	// x.Mul(y) returns x * y.
	Mul(y Value) Value
	IMul(y Value) Value

	// x.Div(y) returns the quotient of x / y, truncated towards zero.
	// Fails with ErrDivisionByZero if y is zero.
	Div(y Value) (Value, error)
	IDiv(y Value) (Value, error)

	// x.Mod(m) returns x mod m, always in [0, |m|) regardless of the sign
	// of x (Euclidean modulus, not the truncating remainder).
	// Fails with ErrDivisionByZero if m is zero.
	Mod(m Value) (Value, error)
	IMod(m Value) (Value, error)

	// x.Inc() returns x + 1, x.Dec() returns x - 1.
	Inc() Value
	IInc() Value
	Dec() Value
	IDec() Value

	// Comparisons, consistent with the total order on signed integers.
	Equal(y Value) bool
	Lt(y Value) bool
	Lte(y Value) bool
	Gt(y Value) bool
	Gte(y Value) bool

	IsZero() bool
	IsOne() bool
	IsNegative() bool
	IsEven() bool

	// x.Abs() returns |x|, x.Negate() returns -x.
	Abs() Value
	Negate() Value

	// x.LeftShift(k) returns x << k. A negative shift amount reverses the
	// direction, so x.LeftShift(-k) equals x.RightShift(k). Right shifts
	// of negative values are arithmetic (they round towards negative
	// infinity, matching the infinite two's-complement view).
	// Panics if the magnitude of k does not fit a platform int.
	LeftShift(k Value) Value
	ILeftShift(k Value) Value
	RightShift(k Value) Value
	IRightShift(k Value) Value

	// Bitwise operations, using the infinite two's-complement
	// interpretation for negative operands.
	Xor(y Value) Value
	IXor(y Value) Value
	And(y Value) Value
	IAnd(y Value) Value
	Or(y Value) Value
	IOr(y Value) Value

	// x.ModExp(e, n) returns x^e mod n, in [0, |n|). Fails with
	// ErrDivisionByZero if n is zero. A negative exponent first inverts x
	// modulo n and fails with ErrInverseDoesNotExist if no inverse exists.
	ModExp(e, n Value) (Value, error)

	// x.ModInv(n) returns the y in [0, n) with x*y ≡ 1 (mod n). Fails with
	// ErrInverseDoesNotExist exactly when gcd(|x|, n) != 1.
	ModInv(n Value) (Value, error)

	// x.Gcd(y) returns the greatest common divisor of x and y. The result
	// is always non-negative, for any combination of operand signs.
	Gcd(y Value) Value

	// BitLength returns the position of the highest set bit of the
	// magnitude plus one, and 0 for the value zero.
	BitLength() int

	// ByteLength returns ceil(BitLength()/8), and 0 for the value zero.
	ByteLength() int

	// Bit returns the value (0 or 1) of the i-th bit, using the infinite
	// two's-complement interpretation for negative values.
	Bit(i int) uint

	// String returns the canonical decimal representation: no leading
	// zeros, a leading '-' for negative values.
	String() string

	// Int64 returns the value as an int64, or ErrPrecisionLoss if it does
	// not fit exactly.
	Int64() (int64, error)

	// Bytes returns the minimal big-endian encoding of the magnitude.
	// The sign is not encoded; zero encodes to an empty slice.
	Bytes() []byte

	// Encode returns the magnitude in the requested byte order, padded
	// with zero bytes at the high-order end up to length. A length of 0
	// requests the minimal encoding. Fails with ErrPrecisionLoss if
	// length is non-zero and smaller than the minimal encoding.
	Encode(endian Endian, length int) ([]byte, error)

	// Clone returns a deep, independent copy of the value.
	Clone() Value
}

// Implementation is a backend: a factory for Values of one concrete type.
// All values constructed by one Implementation are interoperable.
type Implementation interface {
	// Name identifies the backend in logs.
	Name() string

	// FromString parses a decimal string, or a hexadecimal string with a
	// 0x prefix. A single leading '-' is accepted for either base.
	// Fails with ErrInvalidInput on an empty or malformed string.
	FromString(s string) (Value, error)

	// FromInt64 constructs a value from a platform integer.
	FromInt64(v int64) Value

	// FromBytes constructs a non-negative value from its big-endian
	// unsigned magnitude. An empty slice yields zero.
	FromBytes(b []byte) Value
}
