package jsonutil

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/buger/jsonparser"
)

var errNonFinite = errors.New("NaN and infinite values cannot be represented in JSON")

const hex = "0123456789abcdef"

// AppendString appends s to dst as a quoted JSON string. Unlike encoding/json it
// leaves '<', '>' and '&' alone, so ad markup keeps its original shape. Invalid
// UTF-8 is replaced with U+FFFD.
func AppendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if b >= 0x20 && b != '"' && b != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch b {
			case '"', '\\':
				dst = append(dst, '\\', b)
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hex[b>>4], hex[b&0xF])
			}
			i++
			start = i
			continue
		}
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, `\ufffd`...)
			i += size
			start = i
			continue
		}
		// U+2028 and U+2029 are valid JSON but break JavaScript consumers.
		if c == '\u2028' || c == '\u2029' {
			dst = append(dst, s[start:i]...)
			dst = append(dst, '\\', 'u', '2', '0', '2', hex[c&0xF])
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// AppendFloat appends f using the shortest representation that round-trips,
// switching to exponent notation for very small or very large magnitudes the same
// way encoding/json does.
func AppendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return dst, errNonFinite
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst, nil
}

// RawValue rebuilds the original JSON text of a value handed out by jsonparser,
// which strips the quotes from strings but leaves their escapes intact.
func RawValue(value []byte, dataType jsonparser.ValueType) json.RawMessage {
	if dataType == jsonparser.String {
		raw := make([]byte, 0, len(value)+2)
		raw = append(raw, '"')
		raw = append(raw, value...)
		return append(raw, '"')
	}
	raw := make([]byte, len(value))
	copy(raw, value)
	return raw
}

// ParseString unescapes the content of a JSON string as returned by jsonparser,
// without its quotes. Escapes jsonparser rejects, such as a lone UTF-16
// surrogate, are decoded the way encoding/json does it: as U+FFFD.
func ParseString(value []byte) (string, error) {
	if s, err := jsonparser.ParseString(value); err == nil {
		return s, nil
	}
	var s string
	err := json.Unmarshal(RawValue(value, jsonparser.String), &s)
	return s, err
}

// TypeName describes a jsonparser value type for error messages.
func TypeName(dataType jsonparser.ValueType) string {
	switch dataType {
	case jsonparser.String:
		return "string"
	case jsonparser.Number:
		return "number"
	case jsonparser.Object:
		return "object"
	case jsonparser.Array:
		return "array"
	case jsonparser.Boolean:
		return "boolean"
	case jsonparser.Null:
		return "null"
	default:
		return "unknown"
	}
}
