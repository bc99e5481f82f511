// Package transunit decodes a translation unit's variable declarations
// from JSON, standing in for the AST provider that spec.md places out of
// core scope (§1 "the C front-end that parses source and yields the
// AST"). The JSON shape mirrors the VariableDeclaration/TypeDescriptor/
// InitExpr sum types of §3, the way the teacher's grammar_import_loaders.go
// decodes an external grammar file into the teacher's own AST shape.
package transunit

import (
	"encoding/json"
	"fmt"

	"h2m"
)

type declJSON struct {
	Name  string     `json:"name"`
	Type  typeJSON   `json:"type"`
	Init  *initJSON  `json:"init,omitempty"`
	Range rangeJSON  `json:"range"`
	Loc   locJSON    `json:"loc"`
	InSys bool       `json:"in_system_header"`
}

type rangeJSON struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

type locJSON struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type typeJSON struct {
	Kind        string      `json:"kind"` // scalar | pointer | array | struct | other
	ScalarKind  string      `json:"scalar_kind,omitempty"`
	FortranKind string      `json:"fortran_kind,omitempty"`
	Pointee     *typeJSON   `json:"pointee,omitempty"`
	IsFunction  bool        `json:"is_function,omitempty"`
	Extents     []int       `json:"extents,omitempty"`
	Element     *typeJSON   `json:"element,omitempty"`
	Name        string      `json:"name,omitempty"`
	Fields      []fieldJSON `json:"fields,omitempty"`
	Desc        string      `json:"desc,omitempty"`
}

type fieldJSON struct {
	Name string   `json:"name"`
	Type typeJSON `json:"type"`
}

type initJSON struct {
	Kind       string     `json:"kind"` // evaluatable | string | aggregate | other
	EvalKind   string     `json:"eval_kind,omitempty"`
	Repr       string     `json:"repr,omitempty"`
	Real       string     `json:"real,omitempty"`
	Imag       string     `json:"imag,omitempty"`
	Bytes      string     `json:"bytes,omitempty"`
	Elements   []initJSON `json:"elements,omitempty"`
	SourceText string     `json:"source_text,omitempty"`
}

// DecodeUnit decodes a JSON array of declarations into the core's
// VariableDecl slice, in array order — the AST provider's traversal order
// (spec.md §5 "Ordering guarantees").
func DecodeUnit(data []byte) ([]*h2m.VariableDecl, error) {
	var raw []declJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding translation unit: %w", err)
	}
	decls := make([]*h2m.VariableDecl, 0, len(raw))
	for _, d := range raw {
		typ, err := d.Type.toTypeDescriptor()
		if err != nil {
			return nil, fmt.Errorf("decl %q: %w", d.Name, err)
		}
		var init h2m.InitExpr
		if d.Init != nil {
			init, err = d.Init.toInitExpr()
			if err != nil {
				return nil, fmt.Errorf("decl %q: %w", d.Name, err)
			}
		}
		decls = append(decls, &h2m.VariableDecl{
			Name: d.Name,
			Type: typ,
			Init: init,
			Range: h2m.SourceRange{
				Begin: d.Range.Begin,
				End:   d.Range.End,
			},
			Loc: h2m.SourceLocation{
				File:   d.Loc.File,
				Line:   d.Loc.Line,
				Column: d.Loc.Column,
			},
			InSystemHeader: d.InSys,
		})
	}
	return decls, nil
}

func (tj *typeJSON) toTypeDescriptor() (h2m.TypeDescriptor, error) {
	switch tj.Kind {
	case "scalar":
		kind, err := scalarKindFromString(tj.ScalarKind)
		if err != nil {
			return nil, err
		}
		return h2m.ScalarType{Kind: kind, FortranKind: tj.FortranKind}, nil

	case "pointer":
		if tj.Pointee == nil {
			return nil, fmt.Errorf("pointer type missing pointee")
		}
		pointee, err := tj.Pointee.toTypeDescriptor()
		if err != nil {
			return nil, err
		}
		return h2m.PointerType{Pointee: pointee, IsFunction: tj.IsFunction}, nil

	case "array":
		if tj.Element == nil {
			return nil, fmt.Errorf("array type missing element")
		}
		elem, err := tj.Element.toTypeDescriptor()
		if err != nil {
			return nil, err
		}
		return h2m.ArrayType{Extents: tj.Extents, Element: elem}, nil

	case "struct":
		fields := make([]h2m.StructField, len(tj.Fields))
		for i, f := range tj.Fields {
			ft, err := f.Type.toTypeDescriptor()
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			fields[i] = h2m.StructField{Name: f.Name, Type: ft}
		}
		return h2m.StructType{Name: tj.Name, Fields: fields}, nil

	case "other", "":
		return h2m.OtherType{Desc: tj.Desc}, nil

	default:
		return nil, fmt.Errorf("unknown type kind %q", tj.Kind)
	}
}

func scalarKindFromString(s string) (h2m.ScalarKind, error) {
	switch s {
	case "int":
		return h2m.ScalarInt, nil
	case "real":
		return h2m.ScalarReal, nil
	case "complex-float":
		return h2m.ScalarComplexFloat, nil
	case "complex-int":
		return h2m.ScalarComplexInt, nil
	case "char":
		return h2m.ScalarChar, nil
	default:
		return h2m.ScalarUnknown, fmt.Errorf("unknown scalar kind %q", s)
	}
}

func (ij *initJSON) toInitExpr() (h2m.InitExpr, error) {
	switch ij.Kind {
	case "evaluatable":
		kind, err := evalKindFromString(ij.EvalKind)
		if err != nil {
			return nil, err
		}
		return h2m.EvaluatableInit{Value: h2m.EvaluatedRValue{
			Kind: kind,
			Repr: ij.Repr,
			Real: ij.Real,
			Imag: ij.Imag,
		}}, nil

	case "string":
		return h2m.StringLiteralInit{Bytes: ij.Bytes}, nil

	case "aggregate":
		elements := make([]h2m.InitExpr, len(ij.Elements))
		for i := range ij.Elements {
			el, err := ij.Elements[i].toInitExpr()
			if err != nil {
				return nil, err
			}
			elements[i] = el
		}
		return h2m.AggregateInit{Elements: elements}, nil

	case "other", "":
		return h2m.OtherInit{SourceText: ij.SourceText}, nil

	default:
		return nil, fmt.Errorf("unknown init kind %q", ij.Kind)
	}
}

func evalKindFromString(s string) (h2m.Kind, error) {
	switch s {
	case "int":
		return h2m.KindInt, nil
	case "real":
		return h2m.KindReal, nil
	case "complex-float":
		return h2m.KindComplexFloat, nil
	case "complex-int":
		return h2m.KindComplexInt, nil
	case "char":
		return h2m.KindChar, nil
	case "other", "":
		return h2m.KindOther, nil
	default:
		return h2m.KindUnknown, fmt.Errorf("unknown evaluated kind %q", s)
	}
}
