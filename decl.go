package h2m

// SourceLocation is a presumed (file, line, column) triple, as produced by
// the AST provider's source_location(). Line and Column are 1-based.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// SourceRange is a (begin, end) pair of byte offsets into a translation
// unit's source buffer, as produced by the AST provider's source_range().
type SourceRange struct {
	Begin int
	End   int
}

// VariableDecl is the input view of a single C variable declaration, as
// the AST provider hands it to DeclEmitter. It is read-only during
// translation (§3 Lifecycle).
type VariableDecl struct {
	Name           string
	Type           TypeDescriptor
	Init           InitExpr // nil means "declared, not initialized"
	Range          SourceRange
	Loc            SourceLocation
	InSystemHeader bool
}

// Emission is the per-declaration output record: the rendered text plus
// whether it renders cleanly (Okay) or had to be commented out. It is
// created once per declaration by DeclEmitter and consumed by the driver.
type Emission struct {
	Text string
	Okay bool
}

// TypeFormatter is the external collaborator that renders a TypeDescriptor
// as Fortran source text and computes a legal Fortran identifier for a
// type name. The core depends only on this interface; see
// internal/typefmt for the concrete implementation.
type TypeFormatter interface {
	// FortranType renders t as an iso_c_binding type expression, e.g.
	// "INTEGER(C_INT)". withKind controls whether the kind parameter is
	// included at all (withKind=false yields just the bare type name,
	// e.g. "INTEGER"). problem is true when
	// the type cannot be soundly expressed (e.g. an anonymous struct).
	FortranType(t TypeDescriptor, withKind bool) (text string, problem bool)

	// FortranID returns name unchanged; NamePolicy is solely responsible
	// for identifier legalization. The type formatter only ever needs to
	// pass a name through unchanged, matching the teacher's pattern of
	// keeping name legalization in exactly one place.
	FortranID(name string) string
}

// NameRegistry is the process-wide identifier table used for duplicate
// detection (§3 invariant 6, §5). The core depends only on this
// interface; see internal/registry for the concrete, mutex-guarded
// implementation.
type NameRegistry interface {
	// Register returns true if id was not previously registered (and is
	// now), false if it was already present.
	Register(id string) bool
}

// LexerView is the external collaborator that returns the literal C
// source text for a range, used to preserve otherwise-untranslatable
// constructs in comments (§9 Design Notes: source-text fallback). The
// core depends only on this interface; see internal/sourcetext for the
// concrete implementation backed by a translation unit's source buffer.
type LexerView interface {
	SourceText(r SourceRange) string
}
