package outbuf

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrependOrdering(t *testing.T) {
	b := New()
	b.PutByte('!')
	b.Put([]byte("world"))
	b.Put([]byte("hello "))
	if got := string(b.Bytes()); got != "hello world!" {
		t.Fatalf("Bytes() = %q", got)
	}
}

func TestLen(t *testing.T) {
	b := New()
	if b.Len() != 0 {
		t.Fatalf("fresh Len = %d", b.Len())
	}
	b.Put([]byte("abc"))
	b.PutByte('d')
	if b.Len() != 4 {
		t.Fatalf("Len = %d, want 4", b.Len())
	}
}

func TestGrowthAcrossInitialSize(t *testing.T) {
	chunk := []byte(strings.Repeat("x", 50))
	b := New()
	for i := 0; i < 100; i++ {
		b.Put(chunk)
	}
	want := bytes.Repeat(chunk, 100)
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("grown buffer corrupted: len=%d want=%d", b.Len(), len(want))
	}
}

func TestGrowthSingleOversizedPut(t *testing.T) {
	big := bytes.Repeat([]byte("abcdefgh"), 1000)
	b := New()
	b.PutByte('!')
	b.Put(big)
	want := append(append([]byte{}, big...), '!')
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("oversized put corrupted buffer")
	}
}

func TestPutUint(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{12345, "12345"},
		{999999999, "999999999"},
	}
	for _, tc := range cases {
		b := New()
		b.PutUint(tc.n)
		if got := string(b.Bytes()); got != tc.want {
			t.Fatalf("PutUint(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFramingShape(t *testing.T) {
	// the encoder's write order: tag, payload, ':', length digits
	b := New()
	b.PutByte(',')
	b.Put([]byte("hello"))
	b.PutByte(':')
	b.PutUint(5)
	if got := string(b.Bytes()); got != "5:hello," {
		t.Fatalf("frame = %q", got)
	}
}
