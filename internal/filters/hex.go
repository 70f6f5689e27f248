package filters

import (
	"fmt"
)

// ASCIIHexDecode decodes pairs of hexadecimal digits into bytes.
// Whitespace between digits is ignored and '>' ends the data. A trailing
// odd digit is treated as the high nibble of a final byte.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)/2)

	var (
		hi     byte
		filled bool
	)
	for i, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			break
		}
		v, ok := hexValue(c)
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q at offset %d", c, i)
		}
		if !filled {
			hi, filled = v, true
			continue
		}
		out = append(out, hi<<4|v)
		filled = false
	}
	if filled {
		out = append(out, hi<<4)
	}
	return out, nil
}

// hexValue returns the value of a hexadecimal digit.
func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}
