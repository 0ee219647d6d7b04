package number

import (
	"math"
	"strconv"
	"testing"
)

func TestParseUnsigned(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{"9", 9, true},
		{"10", 10, true},
		{"13", 13, true},
		{"007", 7, true},
		{"4294967296", 4294967296, true},
		{"9007199254740992", 9007199254740992, true}, // 2^53
		{"", 0, true},                                // пустая строка: известная особенность
		{"a", 0, false},
		{"1a", 0, false},
		{"a1", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1.5", 0, false},
		{" 1", 0, false},
		{"1 ", 0, false},
		{"/", 0, false},
		{":", 0, false}, // '9'+1
		{"٣", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseUnsigned(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseUnsigned(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseUnsigned(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseUnsignedEmptyIsZero(t *testing.T) {
	v, ok := ParseUnsigned("")
	if !ok || v != 0 || math.Signbit(v) {
		t.Fatalf("ParseUnsigned(\"\") = %v, %v; want +0, true", v, ok)
	}
}

// Below 2^53 positional accumulation is exact, so it must agree with strconv.
func TestParseUnsignedMatchesStrconvForExactRange(t *testing.T) {
	for _, n := range []uint64{0, 1, 42, 999, 65535, 1 << 31, 1<<53 - 1} {
		s := strconv.FormatUint(n, 10)
		got, ok := ParseUnsigned(s)
		if !ok {
			t.Fatalf("ParseUnsigned(%q) rejected", s)
		}
		if got != float64(n) {
			t.Errorf("ParseUnsigned(%q) = %v, want %v", s, got, float64(n))
		}
	}
}

func TestParseUnsignedHugeStaysFinite(t *testing.T) {
	s := "1"
	for range 300 {
		s += "0"
	}
	got, ok := ParseUnsigned(s)
	if !ok {
		t.Fatal("digits-only input rejected")
	}
	if math.IsInf(got, 0) || got < 1e299 {
		t.Errorf("ParseUnsigned(1e300 digits) = %v", got)
	}
}

func FuzzParseUnsigned(f *testing.F) {
	for _, seed := range []string{"", "0", "13", "1a", "-1", "99999999999"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, ok := ParseUnsigned(s)
		digits := true
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				digits = false
				break
			}
		}
		if ok != digits {
			t.Fatalf("ParseUnsigned(%q) ok = %v, digits-only = %v", s, ok, digits)
		}
		if !ok && v != 0 {
			t.Fatalf("rejected input must yield 0, got %v", v)
		}
		if ok && (v < 0 || math.IsNaN(v)) {
			t.Fatalf("ParseUnsigned(%q) = %v", s, v)
		}
	})
}

func BenchmarkParseUnsigned(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseUnsigned("1234567890")
	}
}
