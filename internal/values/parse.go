package values

import (
	"fmt"
	"strings"
)

// SplitNumeric validates the accepted textual grammar and splits a numeric
// string into its sign, base and bare digits: an optional leading '-',
// followed by either decimal digits or a 0x/0X prefix and hexadecimal
// digits. Both backends parse through this helper so that they accept
// exactly the same inputs.
func SplitNumeric(s string) (neg bool, base int, digits string, err error) {
	if s == "" {
		return false, 0, "", fmt.Errorf("%w: empty numeric string", ErrInvalidInput)
	}

	rest := s
	if rest[0] == '-' {
		neg = true
		rest = rest[1:]
	}

	base = 10
	if strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X") {
		base = 16
		rest = rest[2:]
	}

	if rest == "" {
		return false, 0, "", fmt.Errorf("%w: numeric string %q has no digits", ErrInvalidInput, s)
	}
	for i := 0; i < len(rest); i++ {
		if !validDigit(rest[i], base) {
			return false, 0, "", fmt.Errorf("%w: invalid base-%d digit %q in %q",
				ErrInvalidInput, base, rest[i], s)
		}
	}
	return neg, base, rest, nil
}

func validDigit(c byte, base int) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if base == 16 {
		return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return false
}
