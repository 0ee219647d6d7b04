package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"1 2 +", "1 2 +", false},
		{"1\r\n2", "1\n2", true},
		{"1\r2", "1\r2", false},
		{"\r\n\r\n", "\n\n", true},
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if string(got) != tt.want || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q,%v want %q,%v", tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestNormalizeNFC(t *testing.T) {
	// "e" + combining acute -> precomposed "é"
	decomposed := []byte("e\u0301")
	got, changed := normalizeNFC(decomposed)
	if !changed {
		t.Fatal("expected NFC normalization to change decomposed input")
	}
	if string(got) != "\u00e9" {
		t.Errorf("normalizeNFC = %q, want %q", got, "\u00e9")
	}

	ascii := []byte("1 2 +")
	if _, changed := normalizeNFC(ascii); changed {
		t.Error("ASCII input must already be NFC")
	}
}

func TestToLineColOnNewline(t *testing.T) {
	idx := buildLineIndex([]byte("ab\ncd"))
	// сам \n принадлежит первой строке
	if got := toLineCol(idx, 2); got != (LineCol{Line: 1, Col: 3}) {
		t.Errorf("toLineCol(newline) = %v", got)
	}
	if got := toLineCol(idx, 3); got != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("toLineCol(after newline) = %v", got)
	}
}
