package h2m

// TypeDescriptor is the sum type describing a C variable's type, as
// produced by the AST provider: scalar kind, pointer-to-T, array-of-T with
// extents, struct-with-fields, function pointer, or anything else. The
// core never imports a concrete front-end; it only ever holds one of the
// concrete types below behind this interface.
type TypeDescriptor interface {
	isTypeDescriptor()
}

// ScalarKind distinguishes the scalar categories the formatter must tell
// apart: char needs reinterpretation (§4.1), the rest render as-is.
type ScalarKind int

const (
	ScalarUnknown ScalarKind = iota
	ScalarInt
	ScalarReal
	ScalarComplexFloat
	ScalarComplexInt
	ScalarChar
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarInt:
		return "int"
	case ScalarReal:
		return "real"
	case ScalarComplexFloat:
		return "complex-float"
	case ScalarComplexInt:
		return "complex-int"
	case ScalarChar:
		return "char"
	default:
		return "unknown"
	}
}

// ScalarType is a scalar C type: int, real (float/double), complex, char.
type ScalarType struct {
	Kind ScalarKind
	// FortranKind is the iso_c_binding kind name to use, e.g. "C_INT",
	// "C_DOUBLE". Left empty, the type formatter picks a default for Kind.
	FortranKind string
}

func (ScalarType) isTypeDescriptor() {}

// PointerType is a pointer to another type. IsFunction marks a function
// pointer, which PointerPolicy always demotes to C_NULL_FUNPTR.
type PointerType struct {
	Pointee    TypeDescriptor
	IsFunction bool
}

func (PointerType) isTypeDescriptor() {}

// ArrayType is a fixed-shape, possibly multi-dimensional C array. Extents
// are in C declaration order (outermost first), matching the AST
// provider's as_array_unsafe() contract.
type ArrayType struct {
	Extents []int
	Element TypeDescriptor
}

func (ArrayType) isTypeDescriptor() {}

// StructField is one member of a StructType.
type StructField struct {
	Name string
	Type TypeDescriptor
}

// StructType is a C struct (record) type with a Fortran-visible name and
// an ordered field list.
type StructType struct {
	Name   string
	Fields []StructField
}

func (StructType) isTypeDescriptor() {}

// OtherType covers anything the formatter doesn't specifically recognize.
// Desc carries whatever description the AST provider offers, for
// diagnostics only.
type OtherType struct {
	Desc string
}

func (OtherType) isTypeDescriptor() {}

// IsChar reports whether t is a scalar char.
func IsChar(t TypeDescriptor) bool {
	s, ok := t.(ScalarType)
	return ok && s.Kind == ScalarChar
}

// IsInteger reports whether t is a scalar integer.
func IsInteger(t TypeDescriptor) bool {
	s, ok := t.(ScalarType)
	return ok && s.Kind == ScalarInt
}

// IsReal reports whether t is a scalar real.
func IsReal(t TypeDescriptor) bool {
	s, ok := t.(ScalarType)
	return ok && s.Kind == ScalarReal
}

// IsComplex reports whether t is complex (float or int parts).
func IsComplex(t TypeDescriptor) bool {
	s, ok := t.(ScalarType)
	return ok && (s.Kind == ScalarComplexFloat || s.Kind == ScalarComplexInt)
}

// IsPointer reports whether t is any pointer, function or otherwise.
func IsPointer(t TypeDescriptor) bool {
	_, ok := t.(PointerType)
	return ok
}

// IsFunctionPointer reports whether t is specifically a function pointer.
func IsFunctionPointer(t TypeDescriptor) bool {
	p, ok := t.(PointerType)
	return ok && p.IsFunction
}

// IsArray reports whether t is an array type.
func IsArray(t TypeDescriptor) bool {
	_, ok := t.(ArrayType)
	return ok
}

// IsStructure reports whether t is a struct type.
func IsStructure(t TypeDescriptor) bool {
	_, ok := t.(StructType)
	return ok
}

// ElementType returns the element type of an array, or nil if t is not an
// array. This is the AST provider's element_type() for one dimension.
func ElementType(t TypeDescriptor) TypeDescriptor {
	a, ok := t.(ArrayType)
	if !ok {
		return nil
	}
	return a.Element
}

// BaseElementType walks through every array dimension and returns the
// innermost non-array element type, matching the AST provider's
// base_element_type(). If t is not an array, t is returned unchanged.
func BaseElementType(t TypeDescriptor) TypeDescriptor {
	for {
		a, ok := t.(ArrayType)
		if !ok {
			return t
		}
		t = a.Element
	}
}

// ArrayExtentsAndElement is the AST provider's as_array_unsafe(): the
// declared extents and element type of an array. Callers must only use
// this after confirming IsArray(t).
func ArrayExtentsAndElement(t TypeDescriptor) ([]int, TypeDescriptor) {
	a := t.(ArrayType)
	return a.Extents, a.Element
}

// PointeeType returns the pointee of a pointer type, or nil otherwise.
func PointeeType(t TypeDescriptor) TypeDescriptor {
	p, ok := t.(PointerType)
	if !ok {
		return nil
	}
	return p.Pointee
}
