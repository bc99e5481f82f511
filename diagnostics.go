package h2m

import "fmt"

// Severity mirrors the teacher's lsp/model.go DiagnosticSeverity, trimmed
// to the two levels the core actually distinguishes (§4.7: warnings vs
// errors).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one reported condition, carrying the source location it
// applies to (§4.7: "Every warning carries (file, line, column)"). Err is
// set only for diagnostics raised from a concrete error value (currently
// just NullNodeError); callers that don't care can ignore it and read
// Message.
type Diagnostic struct {
	Severity Severity
	Message  string
	Loc      SourceLocation
	Err      error
}

// FormatCLI renders a Diagnostic the way a command-line tool would print
// it, modeled on the teacher's Diagnostic.FormatCLI used by GrammarError.
func (d Diagnostic) FormatCLI() string {
	if d.Loc.File == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Loc.File, d.Loc.Line, d.Loc.Column, d.Severity, d.Message)
}

// Diagnostics is the uniform warning/error surface described in spec.md
// §4.7: three verbosity levels, silent suppressing everything, quiet
// suppressing informational warnings but keeping errors, default emitting
// both. It accumulates every reported Diagnostic so a driver can print or
// inspect them after a run, rather than writing straight to stderr the way
// the original tool's errs() calls did — the collected-and-returned shape
// matches the teacher's own Diagnostic-collecting queries
// (query_errors.go) rather than fire-and-forget logging.
type Diagnostics struct {
	Silent bool
	Quiet  bool

	items []Diagnostic
}

// NewDiagnostics builds a Diagnostics sink configured from cfg's silent
// and quiet settings.
func NewDiagnostics(cfg *Config) *Diagnostics {
	return &Diagnostics{Silent: cfg.GetSilent(), Quiet: cfg.GetQuiet()}
}

// Warn records a warning-level diagnostic, unless silent or quiet
// suppresses it.
func (d *Diagnostics) Warn(loc SourceLocation, format string, args ...any) {
	if d.Silent || d.Quiet {
		return
	}
	d.items = append(d.items, Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// Error records an error-level diagnostic, unless silent suppresses it.
// Quiet does not suppress errors (§4.7).
func (d *Diagnostics) Error(loc SourceLocation, format string, args ...any) {
	if d.Silent {
		return
	}
	d.items = append(d.items, Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// ReportAlways records an error-level diagnostic regardless of silent or
// quiet — for the one class of condition spec.md requires always be
// reported: null expression nodes in aggregate initializers (§4.7, §7).
func (d *Diagnostics) ReportAlways(loc SourceLocation, format string, args ...any) {
	d.items = append(d.items, Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// ReportNullNode records a NullNodeError for a nil expression node
// encountered while walking an aggregate initializer (§4.7, §7): the one
// condition that is always reported, regardless of silent or quiet,
// mirroring the original's unconditional nullptr guards in its init-list
// loop (var_decl_formatter.cpp).
func (d *Diagnostics) ReportNullNode(loc SourceLocation, context string) {
	err := NullNodeError{Context: context}
	d.items = append(d.items, Diagnostic{Severity: SeverityError, Message: err.Error(), Loc: loc, Err: err})
}

// Items returns every diagnostic recorded so far, in report order.
func (d *Diagnostics) Items() []Diagnostic {
	return d.items
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, it := range d.items {
		if it.Severity == SeverityError {
			return true
		}
	}
	return false
}
