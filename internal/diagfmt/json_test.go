package diagfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"rpncalc/internal/diag"
	"rpncalc/internal/source"
	"rpncalc/internal/token"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("calc.rpn", []byte("1 2 +\na b +\n"))

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.EvalInvalidToken, source.Span{File: fileID, Start: 6, End: 7}, "invalid number").
		WithNote(source.Span{File: fileID, Start: 6, End: 11}, "expression"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "EVL3002" || d.Message != "invalid number" {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 || d.Location.EndCol != 2 {
		t.Fatalf("unexpected location: %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "expression" {
		t.Fatalf("unexpected notes: %+v", d.Notes)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("calc.rpn", []byte("1 +"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.EvalArity, source.Span{File: fileID, Start: 2, End: 3}, "incorrect number of arguments"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 0 || loc.StartByte != 2 || loc.EndByte != 3 {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("<arg 1>", []byte("12 +"))
	tokens := []token.Token{
		{Kind: token.Number, Text: "12", Span: source.Span{File: fileID, Start: 0, End: 2}},
		{Kind: token.Plus, Text: "+", Span: source.Span{File: fileID, Start: 3, End: 4},
			Leading: []token.Trivia{{Kind: token.TriviaSpace}}},
		{Kind: token.EOF, Span: source.Span{File: fileID, Start: 4, End: 4}},
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  1: Number") || !strings.Contains(lines[0], `"12" at 1:1-1:3`) {
		t.Fatalf("line 1 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "(leading: Space)") {
		t.Fatalf("line 2 = %q", lines[1])
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 3 || out[1].Kind != "Plus" || out[1].Col != 4 || out[2].Kind != "EOF" {
		t.Fatalf("unexpected tokens: %+v", out)
	}
}

func TestFormatResults(t *testing.T) {
	rows := []ResultRow{
		{Path: "<arg 1>", Line: 1, Expr: "1 2 +", Value: 3},
		{Path: "<arg 2>", Line: 1, Expr: "1 +", Err: errors.New("incorrect number of arguments")},
		{Path: "<arg 3>", Line: 1, Expr: "1 0 /", Value: math.Inf(1)},
		{Path: "<arg 4>", Line: 1, Expr: "1 3 /", Value: 1.0 / 3},
	}

	var buf bytes.Buffer
	if err := FormatResultsPretty(&buf, rows, ResultOpts{Precision: 3}); err != nil {
		t.Fatal(err)
	}
	want := "<arg 1>:1  1 2 +  = 3\n" +
		"<arg 2>:1  1 +    ! incorrect number of arguments\n" +
		"<arg 3>:1  1 0 /  = +Inf\n" +
		"<arg 4>:1  1 3 /  = 0.333\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}

	out := BuildResultsOutput(rows, ResultOpts{Precision: -1})
	if out.Count != 4 || out.Failed != 1 {
		t.Fatalf("count/failed = %d/%d", out.Count, out.Failed)
	}
	if out.Results[0].Value == nil || out.Results[0].Value.String() != "3" {
		t.Fatalf("finite value missing: %+v", out.Results[0])
	}
	if out.Results[2].Value != nil || out.Results[2].Text != "+Inf" {
		t.Fatalf("infinite value should be text only: %+v", out.Results[2])
	}

	buf.Reset()
	if err := FormatResultsJSON(&buf, rows, ResultOpts{Precision: -1}); err != nil {
		t.Fatal(err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Fatalf("invalid JSON:\n%s", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{3, -1, "3"},
		{0.5, -1, "0.5"},
		{-1, -1, "-1"},
		{1e21, -1, "1e+21"},
		{2.0 / 3, 2, "0.67"},
		{math.NaN(), -1, "NaN"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.prec); got != tt.want {
			t.Errorf("FormatValue(%v, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}
