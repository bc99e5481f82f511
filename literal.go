package h2m

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderLiteral converts one evaluated rvalue into its Fortran literal form
// (§4.1 LiteralRenderer). declared is the *declared* element type, not the
// evaluated kind — char reinterpretation dispatches on declared type, per
// the design note in §9 ("Centralize it in LiteralRenderer and dispatch on
// declared type rather than evaluated kind").
func RenderLiteral(declared TypeDescriptor, v EvaluatedRValue) (text string, ok bool) {
	if IsChar(declared) {
		return renderCharLiteral(v.Repr)
	}
	switch v.Kind {
	case KindInt, KindReal:
		return v.Repr, true
	case KindComplexFloat, KindComplexInt:
		return fmt.Sprintf("(%s,%s)", v.Real, v.Imag), true
	case KindChar:
		return renderCharLiteral(v.Repr)
	default:
		return "!unrenderable value", false
	}
}

// renderCharLiteral reinterprets the AST provider's integer character code
// as a single quoted Fortran character literal (§4.1, §9 "Char
// reinterpretation point"). The provider always yields the integer code,
// even for declared char elements.
func renderCharLiteral(repr string) (string, bool) {
	code, err := strconv.Atoi(strings.TrimSpace(repr))
	if err != nil || code < 0 || code > 255 {
		return "!unrenderable char value", false
	}
	return fmt.Sprintf("'%c'", byte(code)), true
}

// RenderStringLiteral double-quotes a string literal's raw contents, the
// form both char arrays-as-strings and char pointer initializers share
// (§4.1 "string pointer initializer", §4.6 seed scenarios 5 and 6).
func RenderStringLiteral(bytes string) string {
	return fmt.Sprintf("\"%s\"", bytes)
}
