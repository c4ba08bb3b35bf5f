package leanarg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// ParseValueOption declares a single option "-i" bound to target and
// parses one token into it.
func parseValueOption[T any](t *testing.T, target *T, token string) error {
	t.Helper()

	p := NewParser("", "")
	AddOption(p, target, 'i', "", "", "", false)
	return p.Parse([]string{"", "-i", token})
}

func TestStringValue(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"leading whitespace", " \ts"},
		{"trailing whitespace", "s\t "},
		{"whitespace in-between", "s \t s"},
		{"stand-alone option prefix", "-"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := "s"
			require.NoError(t, parseValueOption(t, &s, test.token))
			require.Equal(t, test.token, s)
		})
	}
}

func TestIntegerSyntax(t *testing.T) {
	i := 1

	t.Run("leading whitespace", func(t *testing.T) {
		require.NoError(t, parseValueOption(t, &i, " -2"))
		require.Equal(t, -2, i)
	})
	t.Run("empty string", func(t *testing.T) {
		require.Error(t, parseValueOption(t, &i, ""))
	})
	t.Run("invalid character", func(t *testing.T) {
		require.Error(t, parseValueOption(t, &i, "1.0"))
	})
	t.Run("trailing character after valid prefix", func(t *testing.T) {
		err := parseValueOption(t, &i, "12-")
		require.EqualError(t, err, "cannot parse integer: 12-")
	})
}

func TestInt8Value(t *testing.T) {
	tests := []struct {
		token string
		want  int8
		ok    bool
	}{
		{"-128", -128, true},
		{"127", 127, true},
		{"-129", 0, false},
		{"128", 0, false},
	}

	for _, test := range tests {
		var i int8 = 1
		err := parseValueOption(t, &i, test.token)
		if test.ok {
			require.NoError(t, err, test.token)
			require.Equal(t, test.want, i)
		} else {
			require.Error(t, err, test.token)
		}
	}
}

func TestUint8Value(t *testing.T) {
	tests := []struct {
		token string
		want  uint8
		ok    bool
	}{
		{"0", 0, true},
		{"255", 255, true},
		{"-1", 0, false},
		{"256", 0, false},
	}

	for _, test := range tests {
		var i uint8 = 1
		err := parseValueOption(t, &i, test.token)
		if test.ok {
			require.NoError(t, err, test.token)
			require.Equal(t, test.want, i)
		} else {
			require.Error(t, err, test.token)
		}
	}
}

func TestInt32Value(t *testing.T) {
	tests := []struct {
		token string
		want  int32
		ok    bool
	}{
		{"-2147483648", -2147483648, true},
		{"2147483647", 2147483647, true},
		{"-2147483649", 0, false},
		{"2147483648", 0, false},
	}

	for _, test := range tests {
		var i int32 = 1
		err := parseValueOption(t, &i, test.token)
		if test.ok {
			require.NoError(t, err, test.token)
			require.Equal(t, test.want, i)
		} else {
			require.Error(t, err, test.token)
		}
	}
}

func TestUint32Value(t *testing.T) {
	tests := []struct {
		token string
		want  uint32
		ok    bool
	}{
		{"0", 0, true},
		{"4294967295", 4294967295, true},
		{"-1", 0, false},
		{"4294967296", 0, false},
	}

	for _, test := range tests {
		var i uint32 = 1
		err := parseValueOption(t, &i, test.token)
		if test.ok {
			require.NoError(t, err, test.token)
			require.Equal(t, test.want, i)
		} else {
			require.Error(t, err, test.token)
		}
	}
}

func TestInt64Value(t *testing.T) {
	tests := []struct {
		token string
		want  int64
		ok    bool
	}{
		{"-9223372036854775808", -9223372036854775808, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"-9223372036854775809", 0, false},
		{"9223372036854775808", 0, false},
	}

	for _, test := range tests {
		var i int64 = 1
		err := parseValueOption(t, &i, test.token)
		if test.ok {
			require.NoError(t, err, test.token)
			require.Equal(t, test.want, i)
		} else {
			require.Error(t, err, test.token)
		}
	}
}

func TestUint64Value(t *testing.T) {
	tests := []struct {
		token string
		want  uint64
		ok    bool
	}{
		{"0", 0, true},
		{"18446744073709551615", 18446744073709551615, true},
		{"-1", 0, false},
		{"18446744073709551616", 0, false},
	}

	for _, test := range tests {
		var i uint64 = 1
		err := parseValueOption(t, &i, test.token)
		if test.ok {
			require.NoError(t, err, test.token)
			require.Equal(t, test.want, i)
		} else {
			require.Error(t, err, test.token)
		}
	}
}

func TestHexadecimalFormat(t *testing.T) {
	tests := []struct {
		token string
		want  int32
		ok    bool
	}{
		{"0XABCDEF", 11259375, true},
		{"0xabcdef", 11259375, true},
		{"0x00000000", 0, true},
		{"-0x80000000", -2147483648, true},
		{"0x7fffffff", 2147483647, true},
		{"-0x80000001", 0, false},
		{"0x80000000", 0, false},
		{"ff", 0, false}, // no x, so decimal
		{"0x", 0, false},
		{"0xG", 0, false},
	}

	for _, test := range tests {
		var i int32 = 1
		err := parseValueOption(t, &i, test.token)
		if test.ok {
			require.NoError(t, err, test.token)
			require.Equal(t, test.want, i)
		} else {
			require.Error(t, err, test.token)
		}
	}
}

// Tokens with a leading zero are decimal, never octal.
func TestNoOctalFormat(t *testing.T) {
	i := 1

	require.NoError(t, parseValueOption(t, &i, "09"))
	require.Equal(t, 9, i)

	require.NoError(t, parseValueOption(t, &i, "010"))
	require.Equal(t, 10, i)
}

func TestNegativeUnsignedValue(t *testing.T) {
	var u uint = 1

	err := parseValueOption(t, &u, "-2")
	require.EqualError(t, err, "cannot parse unsigned integer: -2")
	require.Equal(t, uint(1), u)
}

// A failed conversion must leave the bound target untouched.
func TestFailedParseKeepsTarget(t *testing.T) {
	t.Run("malformed int", func(t *testing.T) {
		i := 42
		require.Error(t, parseValueOption(t, &i, "foo"))
		require.Equal(t, 42, i)
	})
	t.Run("out-of-range int", func(t *testing.T) {
		var i int8 = 42
		require.Error(t, parseValueOption(t, &i, "128"))
		require.Equal(t, int8(42), i)
	})
	t.Run("malformed uint", func(t *testing.T) {
		var u uint = 42
		require.Error(t, parseValueOption(t, &u, "0xG"))
		require.Equal(t, uint(42), u)
	})
	t.Run("malformed float", func(t *testing.T) {
		f := 0.5
		require.Error(t, parseValueOption(t, &f, "1e"))
		require.Equal(t, 0.5, f)
	})
}

func TestFloatValue(t *testing.T) {
	tests := []struct {
		token string
		want  float32
	}{
		{"0.0", 0.0},
		{"-1000000.0", -1000000.0},
		{"1000000.0", 1000000.0},
		{"1", 1.0},
		{"2.", 2.0},
		{".5", 0.5},
		{"1.0e-6", 0.000001},
		{"1e6", 1000000.0},
		{"-1e-6", -0.000001},
		{"-1e+6", -1000000.0},
		{"1E6", 1000000.0},
		{" 0.5 ", 0.5}, // whitespace on both sides tolerated
	}

	for _, test := range tests {
		var d float32 = 1.0
		require.NoError(t, parseValueOption(t, &d, test.token), test.token)
		require.InDelta(t, test.want, d, 1e-9, test.token)
	}
}

func TestFloatErrors(t *testing.T) {
	for _, token := range []string{"", "1.-", "e1", "1e", "0.5x"} {
		var d float64 = 1.0
		require.Error(t, parseValueOption(t, &d, token), token)
	}
}

// YesNo is a custom value type wired in through the encoding
// interfaces.
type yesNo struct {
	value bool
}

func (y *yesNo) UnmarshalText(text []byte) error {
	switch string(text) {
	case "yes":
		y.value = true
	case "no":
		y.value = false
	default:
		return fmt.Errorf("not a yes/no value: %s", text)
	}
	return nil
}

func (y yesNo) MarshalText() ([]byte, error) {
	if y.value {
		return []byte("yes"), nil
	}
	return []byte("no"), nil
}

func TestCustomTextValue(t *testing.T) {
	t.Run("no", func(t *testing.T) {
		y := yesNo{}
		require.NoError(t, parseValueOption(t, &y, "no"))
		require.False(t, y.value)
	})
	t.Run("yes", func(t *testing.T) {
		y := yesNo{}
		require.NoError(t, parseValueOption(t, &y, "yes"))
		require.True(t, y.value)
	})
	t.Run("invalid", func(t *testing.T) {
		y := yesNo{}
		err := parseValueOption(t, &y, "ja")
		require.EqualError(t, err, "cannot parse value: ja")
	})
}

// Loudness only implements fmt.Scanner, exercising the formatted-read
// fallback of the codec.
type loudness struct {
	db int
}

func (l *loudness) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	switch string(token) {
	case "quiet":
		l.db = 40
	case "loud":
		l.db = 80
	default:
		return fmt.Errorf("not a loudness: %s", token)
	}
	return nil
}

func TestCustomScannerValue(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		l := loudness{}
		require.NoError(t, parseValueOption(t, &l, "loud"))
		require.Equal(t, 80, l.db)
	})
	t.Run("invalid", func(t *testing.T) {
		l := loudness{}
		require.Error(t, parseValueOption(t, &l, "deafening"))
	})
	t.Run("leftover content", func(t *testing.T) {
		l := loudness{}
		err := parseValueOption(t, &l, "loud noises")
		require.EqualError(t, err, "cannot parse value: loud noises")
	})
	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		l := loudness{}
		require.NoError(t, parseValueOption(t, &l, " quiet "))
		require.Equal(t, 40, l.db)
	})
}

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{encodeValue(""), `""`},
		{encodeValue("hello"), `"hello"`},
		{encodeValue(int8(-128)), "-128"},
		{encodeValue(int8(127)), "127"},
		{encodeValue(uint8(255)), "255"},
		{encodeValue(int32(-2147483648)), "-2147483648"},
		{encodeValue(int32(2147483647)), "2147483647"},
		{encodeValue(uint32(4294967295)), "4294967295"},
		{encodeValue(int64(-9223372036854775808)), "-9223372036854775808"},
		{encodeValue(int64(9223372036854775807)), "9223372036854775807"},
		{encodeValue(uint64(18446744073709551615)), "18446744073709551615"},
		{encodeValue(float32(0.0)), "0"},
		{encodeValue(float32(0.5)), "0.5"},
		{encodeValue(yesNo{value: true}), "yes"},
	}

	for _, test := range tests {
		require.Equal(t, test.want, test.got)
	}
}

// Re-parsing a rendered default must reproduce the original value.
func TestRoundTrip(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		i := -42
		rendered := encodeValue(i)
		i = 0
		require.NoError(t, parseValueOption(t, &i, rendered))
		require.Equal(t, -42, i)
	})
	t.Run("float", func(t *testing.T) {
		f := 0.125
		rendered := encodeValue(f)
		f = 0
		require.NoError(t, parseValueOption(t, &f, rendered))
		require.Equal(t, 0.125, f)
	})
	t.Run("string", func(t *testing.T) {
		s := "hello"
		rendered := encodeValue(s)
		require.Equal(t, `"hello"`, rendered)

		// Strings parse as identity, so the quotes round-trip
		// verbatim: stripping them recovers the original.
		var got string
		require.NoError(t, parseValueOption(t, &got, rendered[1:len(rendered)-1]))
		require.Equal(t, s, got)
	})
}
