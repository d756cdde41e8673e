package native

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/unkn0wn-root/tnetstr"
)

func TestParseIntegerPaths(t *testing.T) {
	m := Model{}
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"007", 7}, // payload digits may be padded; only length prefixes may not
		{"+42", 42},
		{"-42", -42},
		{"99999999999999999", 99999999999999999},    // 17 digits, hand path
		{"999999999999999999", 999999999999999999},  // 18 digits, longest hand path
		{"1234567890123456789", 1234567890123456789}, // 19 digits, big path, fits int64
		{"-9223372036854775808", math.MinInt64},
		{"9223372036854775807", math.MaxInt64},
	}
	for _, tc := range cases {
		v, err := m.ParseInteger([]byte(tc.in))
		if err != nil {
			t.Fatalf("ParseInteger(%q): %v", tc.in, err)
		}
		n, ok := v.(int64)
		if !ok {
			t.Fatalf("ParseInteger(%q) = %T, want int64", tc.in, v)
		}
		if n != tc.want {
			t.Fatalf("ParseInteger(%q) = %d, want %d", tc.in, n, tc.want)
		}
	}
}

// Both numeric paths must agree wherever their input ranges overlap.
func TestParseIntegerPathsAgree(t *testing.T) {
	m := Model{}
	for _, n := range []int64{0, 1, -1, 42, math.MaxInt64 / 2, math.MinInt64 / 2} {
		short := strconv.FormatInt(n, 10)
		// left-pad with zeros onto the big path without changing the value
		var long string
		if n < 0 {
			long = "-" + strings19pad(short[1:])
		} else {
			long = strings19pad(short)
		}

		a, err := m.ParseInteger([]byte(short))
		if err != nil {
			t.Fatalf("short %q: %v", short, err)
		}
		b, err := m.ParseInteger([]byte(long))
		if err != nil {
			t.Fatalf("long %q: %v", long, err)
		}
		if a != b {
			t.Fatalf("paths disagree for %d: %v vs %v", n, a, b)
		}
	}
}

func strings19pad(digits string) string {
	for len(digits) < 20 {
		digits = "0" + digits
	}
	return digits
}

func TestParseIntegerOverflowsToBig(t *testing.T) {
	m := Model{}
	v, err := m.ParseInteger([]byte("9999999999999999999")) // 19 nines > MaxInt64
	if err != nil {
		t.Fatalf("ParseInteger: %v", err)
	}
	z, ok := v.(*big.Int)
	if !ok {
		t.Fatalf("got %T, want *big.Int", v)
	}
	if z.String() != "9999999999999999999" {
		t.Fatalf("big value = %s", z)
	}
}

func TestParseIntegerRejects(t *testing.T) {
	m := Model{}
	for _, in := range []string{"", "+", "-", "1x", "x1", "1 ", " 1", "1.5", "1e3", "--1", "0b1"} {
		if _, err := m.ParseInteger([]byte(in)); err == nil {
			t.Fatalf("ParseInteger(%q) succeeded", in)
		}
	}
}

func TestParseFloat(t *testing.T) {
	m := Model{}
	cases := []struct {
		in   string
		want float64
	}{
		{"0.1", 0.1},
		{"-2.5", -2.5},
		{"1e10", 1e10},
		{"1.5E-3", 1.5e-3},
		{"+0.5", 0.5},
		{"3", 3},
	}
	for _, tc := range cases {
		v, err := m.ParseFloat([]byte(tc.in))
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", tc.in, err)
		}
		if v.(float64) != tc.want {
			t.Fatalf("ParseFloat(%q) = %v, want %v", tc.in, v, tc.want)
		}
	}
}

// The stdlib parser is laxer than the wire format; everything it would
// wave through must still be rejected here.
func TestParseFloatRejectsStdlibExtensions(t *testing.T) {
	m := Model{}
	for _, in := range []string{"", "inf", "Inf", "+Inf", "NaN", "nan", "0x1p-2", "1_000.5", " 1.0", "1.0 ", "1.0\n"} {
		if _, err := m.ParseFloat([]byte(in)); err == nil {
			t.Fatalf("ParseFloat(%q) succeeded", in)
		}
		var ne *tnetstr.NumberError
		_, err := m.ParseFloat([]byte(in))
		if !errors.As(err, &ne) {
			t.Fatalf("ParseFloat(%q) err = %v, want NumberError", in, err)
		}
	}
}

func TestRenderNumberTypes(t *testing.T) {
	m := Model{}
	cases := []struct {
		v    any
		want string
	}{
		{int(7), "7"},
		{int8(-8), "-8"},
		{int16(-16), "-16"},
		{int32(32), "32"},
		{int64(-64), "-64"},
		{uint(1), "1"},
		{uint8(8), "8"},
		{uint16(16), "16"},
		{uint32(32), "32"},
		{uint64(math.MaxUint64), "18446744073709551615"},
		{big.NewInt(-12345), "-12345"},
		{float32(0.5), "0.5"},
		{float64(0.1), "0.1"},
	}
	for _, tc := range cases {
		b, err := m.RenderNumber(tc.v)
		if err != nil {
			t.Fatalf("RenderNumber(%#v): %v", tc.v, err)
		}
		if string(b) != tc.want {
			t.Fatalf("RenderNumber(%#v) = %q, want %q", tc.v, b, tc.want)
		}
	}

	if _, err := m.RenderNumber("nope"); !errors.Is(err, tnetstr.ErrNotSerializable) {
		t.Fatalf("RenderNumber(string) err = %v", err)
	}
}

func TestClassify(t *testing.T) {
	m := Model{}
	cases := []struct {
		v    any
		want tnetstr.Tag
	}{
		{nil, tnetstr.TagNull},
		{true, tnetstr.TagBool},
		{"s", tnetstr.TagString},
		{[]byte("b"), tnetstr.TagString},
		{int64(1), tnetstr.TagInteger},
		{big.NewInt(1), tnetstr.TagInteger},
		{1.5, tnetstr.TagFloat},
		{[]any{}, tnetstr.TagList},
		{Dict{}, tnetstr.TagDict},
		{map[string]any{}, tnetstr.TagDict},
	}
	for _, tc := range cases {
		tag, err := m.Classify(tc.v)
		if err != nil {
			t.Fatalf("Classify(%#v): %v", tc.v, err)
		}
		if tag != tc.want {
			t.Fatalf("Classify(%#v) = %v, want %v", tc.v, tag, tc.want)
		}
	}

	if _, err := m.Classify(struct{}{}); !errors.Is(err, tnetstr.ErrNotSerializable) {
		t.Fatalf("Classify(struct{}{}) err = %v", err)
	}
}

func TestMapModelPut(t *testing.T) {
	m := Model{MapDicts: true}
	d := m.NewDict()

	d, err := m.Put(d, "k", int64(1))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	d, err = m.Put(d, "k", int64(2))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	got := d.(map[string]any)
	if got["k"] != int64(2) {
		t.Fatalf("last write did not win: %#v", got)
	}

	if _, err := m.Put(d, int64(1), "v"); err == nil {
		t.Fatalf("Put with non-string key succeeded")
	}
}
