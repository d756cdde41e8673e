package tnetstr_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/unkn0wn-root/tnetstr"
	"github.com/unkn0wn-root/tnetstr/native"
)

// randomValue mirrors the generator the historical test suite thrashed the
// codec with: scalars get likelier as depth grows, so trees bottom out.
func randomValue(r *rand.Rand, depth int) any {
	if depth < 8 && r.Intn(11-depth)+depth <= 4 {
		if r.Intn(2) == 0 {
			n := r.Intn(8)
			l := []any{}
			for i := 0; i < n; i++ {
				l = append(l, randomValue(r, depth+1))
			}
			return l
		}
		n := r.Intn(8)
		d := native.Dict{}
		for i := 0; i < n; i++ {
			d = append(d, tnetstr.Pair[any]{
				Key: randomString(r),
				Val: randomValue(r, depth+1),
			})
		}
		return d
	}

	switch r.Intn(6) {
	case 0:
		return nil
	case 1:
		return true
	case 2:
		return false
	case 3:
		n := r.Int63()
		if r.Intn(2) == 0 {
			n = -n
		}
		return n
	case 4:
		// limited to halves so shortest-repr formatting is exact here
		return float64(r.Intn(1000)) / 2
	default:
		return randomString(r)
	}
}

func randomString(r *rand.Rand) string {
	b := make([]byte, r.Intn(40))
	for i := range b {
		b[i] = byte(r.Intn(95) + 32)
	}
	return string(b)
}

func TestRoundtripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		v := randomValue(r, 0)

		enc, err := native.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%#v): %v", v, err)
		}
		back, err := native.Unmarshal(enc)
		if err != nil {
			t.Fatalf("Unmarshal(%q): %v", enc, err)
		}
		if !reflect.DeepEqual(back, v) {
			t.Fatalf("round trip mismatch:\n in: %#v\nout: %#v", v, back)
		}

		// pop with trailing bytes hands the extras back untouched
		withExtra := append(append([]byte{}, enc...), "extra"...)
		back, rest, err := native.Pop(withExtra)
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if !reflect.DeepEqual(back, v) || string(rest) != "extra" {
			t.Fatalf("pop mismatch: rest=%q", rest)
		}
	}
}
