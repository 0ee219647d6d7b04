package diag

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"rpncalc/internal/source"
)

// shortLine is one rendered "sev CODE path:line:col message" entry.
type shortLine struct {
	sev  string
	code string
	path string
	pos  source.LineCol
	msg  string
}

func (l shortLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.pos.Line, l.pos.Col, l.msg)
}

func compareShort(a, b shortLine) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.pos.Line, b.pos.Line),
		cmp.Compare(a.pos.Col, b.pos.Col),
		cmp.Compare(a.sev, b.sev),
		cmp.Compare(a.code, b.code),
	)
}

// shortLines resolves diags (and optionally their notes) into ordered lines.
func shortLines(diags []Diagnostic, fs *source.FileSet, includeNotes bool) []shortLine {
	if fs == nil || len(diags) == 0 {
		return nil
	}
	at := func(sp source.Span, sev string, code Code, msg string) shortLine {
		start, _ := fs.Resolve(sp)
		return shortLine{
			sev:  sev,
			code: code.ID(),
			path: fs.Get(sp.File).Path,
			pos:  start,
			// одна запись = одна строка
			msg: strings.Join(strings.Fields(msg), " "),
		}
	}

	lines := make([]shortLine, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		lines = append(lines, at(d.Primary, d.Severity.Label(), d.Code, d.Message))
		if includeNotes {
			for _, note := range d.Notes {
				lines = append(lines, at(note.Span, "note", d.Code, note.Msg))
			}
		}
	}
	slices.SortStableFunc(lines, compareShort)
	return lines
}

// FormatShortDiagnostics renders one line per diagnostic, ordered by path,
// position, severity and code, with no trailing newline. Notes become "note"
// lines when includeNotes is set.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	lines := shortLines(diags, fs, includeNotes)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

// WriteShort writes the FormatShortDiagnostics lines to w, each newline-terminated.
func WriteShort(w io.Writer, diags []Diagnostic, fs *source.FileSet, includeNotes bool) error {
	for _, l := range shortLines(diags, fs, includeNotes) {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}
