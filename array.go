package h2m

// FlattenResult is the output of ArrayFlattener (§4.3): the leaf values in
// Fortran element order and the shape vector RESHAPE needs, or Ok=false if
// the initializer could not be flattened at all.
type FlattenResult struct {
	Values []string
	Shape  []int
	Ok     bool
}

// FlattenArray walks init (expected to be an AggregateInit) against arr's
// declared extents, producing the (/ values /) and (/ shape /) operands of
// a RESHAPE expression. The walk assumes rectangular initialization; a
// sibling sublist whose length disagrees with the declared extent is
// raggedness, and the declaration is failed explicitly rather than
// producing a mis-shaped RESHAPE (§9 "Open question — non-rectangular
// initializers", resolved in favor of explicit failure over silent
// provider-padding assumptions).
//
// transpose controls dimension order only; leaf values are always walked
// in the AST's declaration order, so reversing just the shape vector turns
// a row-major walk into Fortran's column-major transpose (§8 "Round-trip
// for integer arrays").
func FlattenArray(arr ArrayType, init InitExpr, transpose bool, diags *Diagnostics, loc SourceLocation) FlattenResult {
	agg, ok := init.(AggregateInit)
	if !ok {
		return FlattenResult{Ok: false}
	}
	base := BaseElementType(arr)
	values, ok := flattenLevel(agg, arr.Extents, base, diags, loc)
	if !ok {
		return FlattenResult{Ok: false}
	}
	shape := append([]int{}, arr.Extents...)
	if transpose {
		reverseInts(shape)
	}
	return FlattenResult{Values: values, Shape: shape, Ok: true}
}

// flattenLevel recurses one declared dimension at a time. A nil node here
// is the AST-contract violation §7 requires always be reported (not merely
// treated as a failed/ragged field), mirroring the original's unconditional
// `element == nullptr` guard inside its init-list walk.
func flattenLevel(node InitExpr, dims []int, base TypeDescriptor, diags *Diagnostics, loc SourceLocation) ([]string, bool) {
	if node == nil {
		diags.ReportNullNode(loc, "array initializer element")
		return nil, false
	}
	if len(dims) == 0 {
		return flattenLeaf(node, base)
	}
	agg, ok := node.(AggregateInit)
	if !ok {
		return nil, false
	}
	if len(agg.Elements) != dims[0] {
		// ragged: sibling sublist length disagrees with the declared extent
		return nil, false
	}
	var values []string
	for _, el := range agg.Elements {
		sub, ok := flattenLevel(el, dims[1:], base, diags, loc)
		if !ok {
			return nil, false
		}
		values = append(values, sub...)
	}
	return values, true
}

func flattenLeaf(node InitExpr, base TypeDescriptor) ([]string, bool) {
	ev, ok := node.(EvaluatableInit)
	if !ok {
		// neither evaluatable nor an AggregateList (§4.3)
		return nil, false
	}
	text, ok := RenderLiteral(base, ev.Value)
	if !ok {
		return nil, false
	}
	return []string{text}, true
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
