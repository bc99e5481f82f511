package h2m

// Kind identifies the category of an rvalue the AST provider folded an
// expression down to.
type Kind int

const (
	KindUnknown Kind = iota
	KindInt
	KindReal
	KindComplexFloat
	KindComplexInt
	KindChar
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindComplexFloat:
		return "complex-float"
	case KindComplexInt:
		return "complex-int"
	case KindChar:
		return "char"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// EvaluatedRValue is the AST provider's evaluate_as_rvalue() result: a
// constant the front-end could fold without executing user code. Real and
// Imag are only meaningful for the two complex kinds; Repr carries the
// canonical textual form for every other kind.
type EvaluatedRValue struct {
	Kind Kind
	Repr string
	Real string
	Imag string
}

// InitExpr is the sum type for a variable's initializer: absent entirely
// (a nil InitExpr means "declared, not initialized"), a scalar the front
// end folded to a constant, a string literal reached through an implicit
// array-to-pointer cast, a braced aggregate list, or anything else
// (preserved verbatim for commenting out).
type InitExpr interface {
	isInitExpr()
}

// EvaluatableInit is an expression the front end folded to an rvalue.
type EvaluatableInit struct {
	Value EvaluatedRValue
}

func (EvaluatableInit) isInitExpr() {}

// StringLiteralInit is a C string constant, reached through an implicit
// cast. Bytes holds the raw (unescaped) literal contents.
type StringLiteralInit struct {
	Bytes string
}

func (StringLiteralInit) isInitExpr() {}

// AggregateInit is a brace-enclosed initializer list, for an array or a
// struct.
type AggregateInit struct {
	Elements []InitExpr
}

func (AggregateInit) isInitExpr() {}

// OtherInit is anything the core can't fold or classify. SourceText is the
// literal C text for the expression's range, preserved so a caller can
// comment it out without losing information.
type OtherInit struct {
	SourceText string
}

func (OtherInit) isInitExpr() {}
