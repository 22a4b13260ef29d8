// Package wordrot provides the 64-bit word rotation and shift helpers used
// by the host system's hash and MAC layer. The helpers are trivial wrappers
// over the platform's word operations; their identities are cross-checked
// against the big-integer abstraction in the tests, which is the only
// relationship between the two.
package wordrot

import "math/bits"

// Rotl64 rotates x left by k bits; k is taken modulo 64.
func Rotl64(x uint64, k uint) uint64 {
	return bits.RotateLeft64(x, int(k%64))
}

// Rotr64 rotates x right by k bits; k is taken modulo 64.
func Rotr64(x uint64, k uint) uint64 {
	return bits.RotateLeft64(x, -int(k%64))
}

// Shr64 is a logical right shift; shifts of 64 or more bits yield zero.
func Shr64(x uint64, k uint) uint64 {
	if k >= 64 {
		return 0
	}
	return x >> k
}

// Shl64 is a logical left shift truncated to 64 bits; shifts of 64 or more
// bits yield zero.
func Shl64(x uint64, k uint) uint64 {
	if k >= 64 {
		return 0
	}
	return x << k
}
