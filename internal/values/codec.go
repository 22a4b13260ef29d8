package values

import "fmt"

// EncodeMagnitude lays out a minimal big-endian magnitude in the requested
// byte order, zero-padded at the high-order end up to length. For big-endian
// output the padding is prepended; for little-endian output the high-order
// end is the tail, so the padding is appended. A length of 0 requests the
// minimal encoding. Both backends route their Encode through this helper so
// that the padding rules cannot drift apart.
func EncodeMagnitude(magnitude []byte, endian Endian, length int) ([]byte, error) {
	switch endian {
	case BigEndian, LittleEndian:
	default:
		return nil, fmt.Errorf("%w: unknown byte order %q", ErrInvalidInput, endian)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative encoding length %d", ErrInvalidInput, length)
	}
	if length == 0 {
		length = len(magnitude)
	}
	if length < len(magnitude) {
		return nil, fmt.Errorf("%w: magnitude needs %d bytes, requested %d",
			ErrPrecisionLoss, len(magnitude), length)
	}

	out := make([]byte, length)
	if endian == BigEndian {
		copy(out[length-len(magnitude):], magnitude)
		return out, nil
	}
	for i, b := range magnitude {
		out[len(magnitude)-1-i] = b
	}
	return out, nil
}
