package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"vb6syntax/source"
)

// PrettyOpts configures human-readable rendering.
type PrettyOpts struct {
	Color bool
	// Context controls whether the offending source line and a caret
	// underline are printed below each diagnostic.
	Context bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	noteColor = color.New(color.FgHiBlack)
)

func sevColor(sev Severity) *color.Color {
	switch sev {
	case SevError:
		return errColor
	case SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

// Pretty renders diagnostics for humans. Call bag.Sort() first for
// deterministic order. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed, when opts.Context is set, by the source line and a caret
// underline covering the primary span, then the notes.
func Pretty(w io.Writer, bag *Bag, fs *source.FileSet, opts PrettyOpts) {
	prevNoColor := color.NoColor
	color.NoColor = !opts.Color
	defer func() { color.NoColor = prevNoColor }()

	for _, d := range bag.Items() {
		writeHeader(w, fs, d)
		if opts.Context {
			writeContext(w, fs, d.Primary)
		}
		for _, n := range d.Notes {
			writeNote(w, fs, n)
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, d Diagnostic) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		f.Path, start.Line, start.Col,
		sevColor(d.Severity).Sprint(d.Severity.String()),
		d.Code.String(), d.Message)
}

func writeNote(w io.Writer, fs *source.FileSet, n Note) {
	if n.Span.Empty() && n.Span.File == 0 && n.Span.Start == 0 {
		fmt.Fprintf(w, "  %s %s\n", noteColor.Sprint("note:"), n.Msg)
		return
	}
	start, _ := fs.Resolve(n.Span)
	f := fs.Get(n.Span.File)
	fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
		noteColor.Sprint("note:"), f.Path, start.Line, start.Col, n.Msg)
}

// writeContext prints the first line of the span with a caret underline.
// Column math uses display widths so tabs and wide runes line up.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	prefix := line
	if col-1 <= len(line) {
		prefix = line[:col-1]
	}
	pad := runewidth.StringWidth(prefix)

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		seg := line
		if int(end.Col-1) <= len(line) {
			seg = line[col-1 : end.Col-1]
		} else if col-1 <= len(line) {
			seg = line[col-1:]
		}
		if sw := runewidth.StringWidth(seg); sw > 0 {
			width = sw
		}
	}

	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), sevColor(SevError).Sprint(marker))
}
