package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rpncalc/internal/diag"
	"rpncalc/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, gutter    *color.Color
	caret, note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for i := range items {
		d := &items[i]
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		path := displayPath(f, opts.PathMode, opts.BaseDir)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			path, start.Line, start.Col,
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message)
		writeSnippet(w, f, d.Primary, start, opts.Context, pal)

		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			nf := fs.Get(note.Span.File)
			ns, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				pal.note.Sprint("note:"),
				displayPath(nf, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, note.Msg)
		}
	}
}

func writeSnippet(w io.Writer, f *source.File, sp source.Span, start source.LineCol, context int8, pal palette) {
	if f == nil || start.Line == 0 {
		return
	}
	first := start.Line
	if context > 0 {
		if uint32(context) >= first {
			first = 1
		} else {
			first -= uint32(context)
		}
	}
	gutterWidth := len(strconv.FormatUint(uint64(start.Line), 10))

	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, " %s %s\n",
			pal.gutter.Sprintf("%*d |", gutterWidth, ln),
			displayLine(f.GetLine(ln)))
	}

	line := f.LineSpan(start.Line)
	// подчёркиваем только часть спана на первой строке
	from := min(max(sp.Start, line.Start), line.End)
	to := min(max(sp.End, from), line.End)
	pad := runewidth.StringWidth(displayLine(string(f.Content[line.Start:from])))
	width := max(runewidth.StringWidth(displayLine(string(f.Content[from:to]))), 1)

	fmt.Fprintf(w, " %s %s%s\n",
		pal.gutter.Sprintf("%*s |", gutterWidth, ""),
		strings.Repeat(" ", pad),
		pal.caret.Sprint("^"+strings.Repeat("~", width-1)))
}

// табы и прочие управляющие символы ломают выравнивание каретки
func displayLine(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\v' || r == '\f' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}
