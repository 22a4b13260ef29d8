package values

import "errors"

var (
	// ErrInvalidInput is returned when a value is constructed from a nil,
	// empty or malformed input.
	ErrInvalidInput = errors.New("bigint: invalid input")

	// ErrDivisionByZero is returned by Div, Mod and ModExp when the
	// divisor or modulus is zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrInverseDoesNotExist is returned by ModInv (and by ModExp with a
	// negative exponent) when the operand and modulus are not coprime.
	ErrInverseDoesNotExist = errors.New("bigint: modular inverse does not exist")

	// ErrImplementationAlreadySet is returned when a backend is installed
	// over an existing one without requesting replacement.
	ErrImplementationAlreadySet = errors.New("bigint: implementation already set")

	// ErrPrecisionLoss is returned by narrowing conversions that cannot
	// represent the value exactly: Int64 on an out-of-range value, and
	// Encode with a length shorter than the minimal encoding.
	ErrPrecisionLoss = errors.New("bigint: precision loss")
)
