package h2m

// ClassifyPointer decides the Fortran replacement for a pointer-valued
// initializer (§4.2 PointerPolicy). pointee is the pointer's target type,
// isFunction marks a function pointer. init is the initializer expression,
// if any; sourceText is the original C text to preserve in an inline
// comment when the pointer is demoted to a null sentinel.
//
// Exactly one of {string literal, C_NULL_FUNPTR, C_NULL_PTR} is returned,
// matching the exhaustiveness invariant in §8.
func ClassifyPointer(pointee TypeDescriptor, isFunction bool, init InitExpr, sourceText string, diags *Diagnostics, loc SourceLocation) (text string, inlineComment string) {
	if IsChar(pointee) {
		if sl, ok := init.(StringLiteralInit); ok {
			return RenderStringLiteral(sl.Bytes), ""
		}
	}
	if isFunction {
		diags.Warn(loc, "function pointer initializer replaced with C_NULL_FUNPTR: %s", sourceText)
		return "C_NULL_FUNPTR", "! Function pointer " + sourceText + " set to C_NULL_FUNPTR"
	}
	diags.Warn(loc, "pointer initializer replaced with C_NULL_PTR: %s", sourceText)
	return "C_NULL_PTR", "! Pointer value " + sourceText + " set to C_NULL_PTR"
}
