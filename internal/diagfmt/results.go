package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// ResultRow is one evaluated expression as seen by the renderers.
type ResultRow struct {
	Path  string // file path or virtual name
	Line  uint32
	Expr  string
	Value float64
	Err   error // nil on success
}

// FormatValue renders v with strconv 'g' at the given precision.
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// FormatResultsPretty prints "path:line  expr  = value" with the expression
// column padded to a common display width. Failures print "! message".
func FormatResultsPretty(w io.Writer, rows []ResultRow, opts ResultOpts) error {
	pal := newPalette(opts.Color)
	locs := make([]string, len(rows))
	locWidth, exprWidth := 0, 0
	for i, r := range rows {
		locs[i] = fmt.Sprintf("%s:%d", formatPath(r.Path, opts.PathMode, opts.BaseDir), r.Line)
		locWidth = max(locWidth, runewidth.StringWidth(locs[i]))
		exprWidth = max(exprWidth, runewidth.StringWidth(displayLine(r.Expr)))
	}

	for i, r := range rows {
		prefix := runewidth.FillRight(locs[i], locWidth) + "  " + runewidth.FillRight(displayLine(r.Expr), exprWidth)
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "%s  %s %s\n", prefix, pal.err.Sprint("!"), r.Err)
		} else {
			_, err = fmt.Fprintf(w, "%s  = %s\n", prefix, pal.caret.Sprint(FormatValue(r.Value, opts.Precision)))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ResultJSON: результат одного выражения. Value отсутствует для ошибок и
// для ±Inf/NaN, которые JSON не умеет; Text есть всегда при успехе.
type ResultJSON struct {
	Path  string       `json:"path"`
	Line  uint32       `json:"line"`
	Expr  string       `json:"expr"`
	Value *json.Number `json:"value,omitempty"`
	Text  string       `json:"text,omitempty"`
	Error string       `json:"error,omitempty"`
}

type ResultsOutput struct {
	Results []ResultJSON `json:"results"`
	Count   int          `json:"count"`
	Failed  int          `json:"failed"`
}

func BuildResultsOutput(rows []ResultRow, opts ResultOpts) ResultsOutput {
	out := ResultsOutput{Results: make([]ResultJSON, 0, len(rows))}
	for _, r := range rows {
		rj := ResultJSON{Path: formatPath(r.Path, opts.PathMode, opts.BaseDir), Line: r.Line, Expr: r.Expr}
		if r.Err != nil {
			rj.Error = r.Err.Error()
			out.Failed++
		} else {
			rj.Text = FormatValue(r.Value, opts.Precision)
			if !math.IsInf(r.Value, 0) && !math.IsNaN(r.Value) {
				n := json.Number(rj.Text)
				rj.Value = &n
			}
		}
		out.Results = append(out.Results, rj)
	}
	out.Count = len(out.Results)
	return out
}

func FormatResultsJSON(w io.Writer, rows []ResultRow, opts ResultOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildResultsOutput(rows, opts))
}
