package diag

import (
	"vb6syntax/source"
)

// Severity ranks a diagnostic. Bags order same-position entries by
// descending severity, and only SevError makes HasErrors true.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String returns the upper-case label the renderer prints.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Note is a secondary span/message attached to a diagnostic. The parser
// uses one note per failure to describe the recovery action it took.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one recorded failure or remark. Primary points at the
// token where the problem was detected; it never aborts processing.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
