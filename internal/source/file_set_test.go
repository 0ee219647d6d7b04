package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	// Добавляем файл первый раз
	id1 := fs.Add("exprs.rpn", []byte("1 2 +"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// Тот же путь с новым содержимым получает новый ID
	id2 := fs.Add("exprs.rpn", []byte("3 4 *"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	if got := string(fs.Get(id1).Content); got != "1 2 +" {
		t.Errorf("first file content = %q, want %q", got, "1 2 +")
	}
	if got := string(fs.Get(id2).Content); got != "3 4 *" {
		t.Errorf("second file content = %q, want %q", got, "3 4 *")
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

// TestAddVirtualLineIdx проверяет правильность построения LineIdx для AddVirtual
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("argv", []byte("1\n2 +\n"))
	file := fs.Get(id)

	expected := []uint32{1, 5}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("argv", []byte("1 2 +\n13 4 -"))

	tests := []struct {
		name       string
		span       Span
		start, end LineCol
	}{
		{"first token", Span{File: id, Start: 0, End: 1}, LineCol{1, 1}, LineCol{1, 2}},
		{"operator on line one", Span{File: id, Start: 4, End: 5}, LineCol{1, 5}, LineCol{1, 6}},
		{"second line start", Span{File: id, Start: 6, End: 8}, LineCol{2, 1}, LineCol{2, 3}},
		{"last token", Span{File: id, Start: 11, End: 12}, LineCol{2, 6}, LineCol{2, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.start || end != tt.end {
				t.Errorf("Resolve(%v) = %v..%v, want %v..%v", tt.span, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestGetLineAndLineCount(t *testing.T) {
	tests := []struct {
		content string
		lines   []string
	}{
		{"", nil},
		{"1 2 +", []string{"1 2 +"}},
		{"1 2 +\n", []string{"1 2 +"}},
		{"1\n\n2", []string{"1", "", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			fs := NewFileSet()
			f := fs.Get(fs.AddVirtual("t", []byte(tt.content)))
			if got := f.LineCount(); int(got) != len(tt.lines) {
				t.Fatalf("LineCount() = %d, want %d", got, len(tt.lines))
			}
			for i, want := range tt.lines {
				if got := f.GetLine(uint32(i + 1)); got != want {
					t.Errorf("GetLine(%d) = %q, want %q", i+1, got, want)
				}
			}
			if got := f.GetLine(0); got != "" {
				t.Errorf("GetLine(0) = %q, want empty", got)
			}
			if got := f.GetLine(uint32(len(tt.lines) + 5)); got != "" {
				t.Errorf("GetLine(out of range) = %q, want empty", got)
			}
		})
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.rpn")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("1 2 +\r\n3 4 *\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if got := string(f.Content); got != "1 2 +\n3 4 *\n" {
		t.Errorf("content = %q", got)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if f.Flags&FileVirtual != 0 {
		t.Error("loaded file must not be virtual")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.rpn")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
