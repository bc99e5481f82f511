package h2m

import (
	"strconv"
	"strings"
)

// joinComma renders a slice of already-formatted tokens as a ", "-joined
// list, the shared join rule for RESHAPE operands, struct initializer
// fields, and extent lists.
func joinComma(items []string) string {
	return strings.Join(items, ", ")
}

// renderExtents renders an array's extent vector as a comma-separated
// list, applying the same transpose convention ArrayFlattener uses so an
// uninitialized array's declared shape matches an initialized one's.
func renderExtents(extents []int, transpose bool) string {
	out := append([]int{}, extents...)
	if transpose {
		reverseInts(out)
	}
	parts := make([]string, len(out))
	for i, n := range out {
		parts[i] = strconv.Itoa(n)
	}
	return joinComma(parts)
}

// formatReshape renders the ArrayFlattener output as the operand of
// Fortran's RESHAPE intrinsic (§4.3 "Output form").
func formatReshape(values []string, shape []int) string {
	shapeParts := make([]string, len(shape))
	for i, n := range shape {
		shapeParts[i] = strconv.Itoa(n)
	}
	return "RESHAPE((/ " + joinComma(values) + " /), (/ " + joinComma(shapeParts) + " /))"
}

// bindGroup renders the BIND(C[, name="..."]) clause. bindName is empty
// unless the identifier was renamed under autobind (§3 invariant 5).
func bindGroup(bindName string) string {
	if bindName == "" {
		return "BIND(C)"
	}
	return "BIND(C, name=\"" + bindName + "\")"
}
