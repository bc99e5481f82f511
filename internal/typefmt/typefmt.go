// Package typefmt implements h2m.TypeFormatter, rendering a TypeDescriptor
// as an iso_c_binding Fortran type expression. It is grounded on the
// original tool's CToFTypeFormatter (var_decl_formatter.cpp): the default
// kind-name table, and the "anonymous at" substring check used to flag
// anonymous struct types as a formatting problem.
package typefmt

import (
	"fmt"
	"strings"

	"h2m"
)

// FortranTypeFormatter is the default h2m.TypeFormatter.
type FortranTypeFormatter struct{}

// New returns a FortranTypeFormatter.
func New() *FortranTypeFormatter {
	return &FortranTypeFormatter{}
}

// FortranType renders t as an iso_c_binding type expression. problem is
// true when t cannot be soundly expressed: an anonymous struct (detected
// the way the original formatter does, by name prefix or the "anonymous
// at" qualifier Clang-style front ends embed in a synthesized name) or an
// unrecognized type.
func (f *FortranTypeFormatter) FortranType(t h2m.TypeDescriptor, withKind bool) (text string, problem bool) {
	switch v := t.(type) {
	case h2m.ScalarType:
		return f.scalarType(v, withKind), false

	case h2m.PointerType:
		if v.IsFunction {
			return "TYPE(C_FUNPTR)", false
		}
		return "TYPE(C_PTR)", false

	case h2m.ArrayType:
		return f.FortranType(v.Element, withKind)

	case h2m.StructType:
		if isAnonymous(v.Name) {
			return fmt.Sprintf("TYPE(%s)", fallbackStructName(v.Name)), true
		}
		return fmt.Sprintf("TYPE(%s)", v.Name), false

	case h2m.OtherType:
		return fmt.Sprintf("! unrepresentable type: %s", v.Desc), true

	default:
		return "! unrepresentable type", true
	}
}

// FortranID returns name unchanged. NamePolicy is solely responsible for
// identifier legalization; the type formatter never renames.
func (f *FortranTypeFormatter) FortranID(name string) string {
	return name
}

func (f *FortranTypeFormatter) scalarType(s h2m.ScalarType, withKind bool) string {
	kind := s.FortranKind
	base := "INTEGER"
	switch s.Kind {
	case h2m.ScalarInt:
		base, kind = "INTEGER", defaultKind(kind, "C_INT")
	case h2m.ScalarReal:
		base, kind = "REAL", defaultKind(kind, "C_DOUBLE")
	case h2m.ScalarComplexFloat:
		base, kind = "COMPLEX", defaultKind(kind, "C_FLOAT_COMPLEX")
	case h2m.ScalarComplexInt:
		base, kind = "COMPLEX", defaultKind(kind, "C_INT")
	case h2m.ScalarChar:
		base, kind = "CHARACTER", defaultKind(kind, "C_CHAR")
	default:
		base, kind = "INTEGER", defaultKind(kind, "C_INT")
	}
	if !withKind {
		return base
	}
	return fmt.Sprintf("%s(%s)", base, kind)
}

func defaultKind(kind, fallback string) string {
	if kind == "" {
		return fallback
	}
	return kind
}

// isAnonymous reports whether a struct name looks like a Clang-style
// synthesized name for an anonymous or unnamed struct: it carries the
// "anonymous at" qualifier, or begins with one of the path-separator
// characters such names are prefixed with.
func isAnonymous(name string) bool {
	if strings.Contains(name, "anonymous at") {
		return true
	}
	if name == "" {
		return true
	}
	switch name[0] {
	case '/', '_', '\\':
		return true
	}
	return false
}

func fallbackStructName(name string) string {
	if name == "" {
		return "AnonymousStruct"
	}
	return "AnonymousStruct"
}
