package leanarg

import (
	"encoding"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Leading whitespace tolerated by the integer conversions, matching
// the usual strtol behavior. Trailing whitespace is not: the token
// must be consumed completely.
const leadingSpace = " \t\n\v\f\r"

// Decode converts a command-line token into the pointed-to value.
// Built-in numeric types and strings are handled directly; any other
// type is decoded through encoding.TextUnmarshaler if its pointer
// implements it, or read with fmt.Fscan otherwise. Returns a
// *ParseError if the token is malformed, out of range, or not
// consumed completely; built-in targets are only written on success.
func decode[T any](token string, target *T) error {
	switch t := any(target).(type) {
	case *string:
		*t = token
		return nil

	case *int:
		n, err := parseSigned(token, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = int(n)
		return nil
	case *int8:
		n, err := parseSigned(token, 8)
		if err != nil {
			return err
		}
		*t = int8(n)
		return nil
	case *int16:
		n, err := parseSigned(token, 16)
		if err != nil {
			return err
		}
		*t = int16(n)
		return nil
	case *int32:
		n, err := parseSigned(token, 32)
		if err != nil {
			return err
		}
		*t = int32(n)
		return nil
	case *int64:
		n, err := parseSigned(token, 64)
		if err != nil {
			return err
		}
		*t = n
		return nil

	case *uint:
		n, err := parseUnsigned(token, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = uint(n)
		return nil
	case *uint8:
		n, err := parseUnsigned(token, 8)
		if err != nil {
			return err
		}
		*t = uint8(n)
		return nil
	case *uint16:
		n, err := parseUnsigned(token, 16)
		if err != nil {
			return err
		}
		*t = uint16(n)
		return nil
	case *uint32:
		n, err := parseUnsigned(token, 32)
		if err != nil {
			return err
		}
		*t = uint32(n)
		return nil
	case *uint64:
		n, err := parseUnsigned(token, 64)
		if err != nil {
			return err
		}
		*t = n
		return nil

	case *float32:
		f, err := parseFloat(token, 32)
		if err != nil {
			return err
		}
		*t = float32(f)
		return nil
	case *float64:
		f, err := parseFloat(token, 64)
		if err != nil {
			return err
		}
		*t = f
		return nil
	}

	if u, ok := any(target).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(token)); err != nil {
			return parseErrorf("cannot parse value: %s", token)
		}
		return nil
	}

	return scanValue(token, target)
}

// IntBase selects the conversion base for an integer token: base 16
// if the token contains an "x" or "X" anywhere, base 10 otherwise.
func intBase(token string) int {
	if strings.ContainsAny(token, "xX") {
		return 16
	}
	return 10
}

// StripHexPrefix removes a "0x" or "0X" marker, keeping an optional
// leading sign, so that the digits can be handed to strconv with an
// explicit base.
func stripHexPrefix(s string) string {
	sign, digits := "", s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	return sign + digits
}

func parseSigned(token string, bitSize int) (int64, error) {
	s := strings.TrimLeft(token, leadingSpace)

	base := intBase(s)
	if base == 16 {
		s = stripHexPrefix(s)
	}

	n, err := strconv.ParseInt(s, base, bitSize)
	if err != nil {
		return 0, parseErrorf("cannot parse integer: %s", token)
	}
	return n, nil
}

func parseUnsigned(token string, bitSize int) (uint64, error) {
	// Reject a minus sign anywhere up front; otherwise a negative
	// token would have to wrap around to a huge unsigned value to
	// be noticed.
	if strings.ContainsRune(token, '-') {
		return 0, parseErrorf("cannot parse unsigned integer: %s", token)
	}

	s := strings.TrimLeft(token, leadingSpace)

	base := intBase(s)
	if base == 16 {
		s = stripHexPrefix(s)
	}

	n, err := strconv.ParseUint(s, base, bitSize)
	if err != nil {
		return 0, parseErrorf("cannot parse integer: %s", token)
	}
	return n, nil
}

func parseFloat(token string, bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(token), bitSize)
	if err != nil {
		return 0, parseErrorf("cannot parse value: %s", token)
	}
	return f, nil
}

// ScanValue reads the token into target with fmt.Fscan, the formatted
// read that custom types hook into via fmt.Scanner. Anything but
// whitespace left over after the read is an error.
func scanValue(token string, target any) error {
	r := strings.NewReader(token)

	if _, err := fmt.Fscan(r, target); err != nil {
		return parseErrorf("cannot parse value: %s", token)
	}

	rest, err := io.ReadAll(r)
	if err != nil || strings.TrimSpace(string(rest)) != "" {
		return parseErrorf("cannot parse value: %s", token)
	}
	return nil
}

// EncodeValue renders a value for default-value display in the help
// text. It is never used during parsing. Integers are widened to 64
// bits, strings are wrapped in plain double quotes without escaping,
// and other types use encoding.TextMarshaler or their natural
// formatted output.
func encodeValue[T any](v T) string {
	switch t := any(v).(type) {
	case string:
		return "\"" + t + "\""

	case int:
		return strconv.FormatInt(int64(t), 10)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)

	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)

	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	}

	if m, ok := any(v).(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return ""
		}
		return string(b)
	}

	return fmt.Sprint(v)
}
