package unsaferand

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// UnsafeRand is a test implementation of io.Reader producing a deterministic
// byte stream from a SHAKE256 XOF. The generated sequence is not
// cryptographically secure and should only be used for testing purposes.
type UnsafeRand struct {
	shake sha3.ShakeHash
}

var _ io.Reader = &UnsafeRand{}

// Initializes a new UnsafeRand whose stream is deterministically derived
// from the given seed argument(s).
// Deterministic behavior depends on the fmt.Sprintf("%#v", seedArgs...)
// representation of the passed arguments. Map iteration order is not
// guaranteed, so passing a map as a seed argument may lead to
// non-deterministic behavior.
func New(seedArgs ...any) *UnsafeRand {
	shake := sha3.NewShake256()
	_, _ = fmt.Fprintf(shake, "%#v", seedArgs)
	return &UnsafeRand{shake}
}

func (r *UnsafeRand) Read(p []byte) (int, error) {
	return r.shake.Read(p)
}

// Bytes returns the next n bytes of the stream.
func (r *UnsafeRand) Bytes(n int) []byte {
	b := make([]byte, n)
	_, _ = r.shake.Read(b)
	return b
}

// Uint64 returns the next 8 bytes of the stream as a big-endian integer.
func (r *UnsafeRand) Uint64() uint64 {
	var b [8]byte
	_, _ = r.shake.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Intn returns a value in [0, n); n must be positive. The distribution is
// close enough to uniform for test operand generation.
func (r *UnsafeRand) Intn(n int) int {
	if n <= 0 {
		panic("unsaferand: non-positive bound")
	}
	return int(r.Uint64() % uint64(n))
}
