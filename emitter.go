package h2m

import "fmt"

// DeclEmitter is the top-level dispatcher (§4.6): given one variable
// declaration it chooses the scalar / pointer / array / struct code path,
// assembles the final line(s), and applies the commenting policy. It is
// the state machine described in §4.6: classify_type → render_body →
// name_check → length_check → done, with any failure flag set along the
// way routing to comment_pass instead.
type DeclEmitter struct {
	Config  *Config
	Diags   *Diagnostics
	Names   *NamePolicy
	TypeFmt TypeFormatter
	Lex     LexerView
}

// NewDeclEmitter builds a DeclEmitter wired to its external collaborators.
func NewDeclEmitter(cfg *Config, diags *Diagnostics, names *NamePolicy, tf TypeFormatter, lex LexerView) *DeclEmitter {
	return &DeclEmitter{Config: cfg, Diags: diags, Names: names, TypeFmt: tf, Lex: lex}
}

// Emit renders decl to an Emission. A declaration in a system header
// produces the empty string — absent from output, not commented (§3
// invariant 1).
func (e *DeclEmitter) Emit(decl *VariableDecl) Emission {
	if decl.InSystemHeader {
		return Emission{Text: "", Okay: true}
	}

	id, bindName := e.Names.Legalize(decl.Name, decl.Loc)
	failure := !e.Names.Register(id)
	if failure {
		e.Diags.Error(decl.Loc, "commenting out name conflict for %q", id)
	}

	fortranType, problem := e.TypeFmt.FortranType(decl.Type, true)
	if problem {
		e.Diags.Warn(decl.Loc, "type formatter reported a problem rendering %q", id)
		if e.Config.GetDetectInvalid() {
			failure = true
		}
	}

	body, bodyFailed := e.renderBody(decl, id, fortranType, bindName)
	if bodyFailed {
		failure = true
	}

	if failure {
		return Emission{Text: commentLines(body), Okay: false}
	}

	e.Names.CheckLine(body, decl.Loc)
	return Emission{Text: body + "\n", Okay: true}
}

func (e *DeclEmitter) renderBody(decl *VariableDecl, id, fortranType, bindName string) (string, bool) {
	switch t := decl.Type.(type) {
	case StructType:
		return e.renderStructDecl(decl, t, id, fortranType, bindName)
	case ArrayType:
		return e.renderArrayDecl(decl, t, id, fortranType, bindName)
	case PointerType:
		return e.renderPointerDecl(decl, t, id, fortranType, bindName)
	default:
		return e.renderScalarDecl(decl, decl.Type, id, fortranType, bindName)
	}
}

func (e *DeclEmitter) renderStructDecl(decl *VariableDecl, t StructType, id, fortranType, bindName string) (string, bool) {
	if decl.Init == nil {
		return fmt.Sprintf("%s, public, %s :: %s", fortranType, bindGroup(bindName), id), false
	}
	initText, ok := RenderStruct(t, decl.Init, e.Config, e.Diags, decl.Loc)
	body := fmt.Sprintf("%s, public, %s :: %s = %s", fortranType, bindGroup(bindName), id, initText)
	return body, !ok
}

func (e *DeclEmitter) renderArrayDecl(decl *VariableDecl, t ArrayType, id, fortranType, bindName string) (string, bool) {
	if IsChar(BaseElementType(t)) {
		if sl, ok := decl.Init.(StringLiteralInit); ok {
			return fmt.Sprintf("%s, parameter, public :: %s = %s", fortranType, id, RenderStringLiteral(sl.Bytes)), false
		}
	}
	if decl.Init == nil {
		extents := renderExtents(t.Extents, e.Config.GetArrayTranspose())
		return fmt.Sprintf("%s, public, %s :: %s(%s)", fortranType, bindGroup(bindName), id, extents), false
	}
	agg, isAgg := decl.Init.(AggregateInit)
	if !isAgg {
		return fmt.Sprintf("untranslatable array initializer: %s", describeSource(decl.Init)), true
	}
	res := FlattenArray(t, agg, e.Config.GetArrayTranspose(), e.Diags, decl.Loc)
	if !res.Ok {
		return fmt.Sprintf("UntranslatableArray ! %s", describeSource(decl.Init)), true
	}
	shapeText := renderExtents(res.Shape, false)
	body := fmt.Sprintf("%s, %s :: %s(%s) = %s", fortranType, bindGroup(bindName), id, shapeText, formatReshape(res.Values, res.Shape))
	return body, false
}

func (e *DeclEmitter) renderPointerDecl(decl *VariableDecl, t PointerType, id, fortranType, bindName string) (string, bool) {
	if IsChar(t.Pointee) {
		if sl, ok := decl.Init.(StringLiteralInit); ok {
			return fmt.Sprintf("%s, parameter, public :: %s = %s", fortranType, id, RenderStringLiteral(sl.Bytes)), false
		}
	}
	nullText, comment := ClassifyPointer(t.Pointee, t.IsFunction, decl.Init, describeSource(decl.Init), e.Diags, decl.Loc)
	body := fmt.Sprintf("%s, public, %s :: %s = %s", fortranType, bindGroup(bindName), id, nullText)
	if comment != "" {
		body += " " + comment
	}
	return body, false
}

func (e *DeclEmitter) renderScalarDecl(decl *VariableDecl, t TypeDescriptor, id, fortranType, bindName string) (string, bool) {
	if decl.Init == nil {
		return fmt.Sprintf("%s, public, %s :: %s", fortranType, bindGroup(bindName), id), false
	}
	ev, isEval := decl.Init.(EvaluatableInit)
	if !isEval {
		return fmt.Sprintf("untranslatable scalar initializer: %s", describeSource(decl.Init)), true
	}
	lit, ok := RenderLiteral(t, ev.Value)
	if ok {
		// scalar, parameter-form initializer (§4.6). A renamed identifier
		// under autobind needs BIND(C, name="...") to preserve the original
		// C linkage name, which cannot coexist with "parameter" on the same
		// line (§3 invariant 4, §8 "Storage-class exclusion") — so the
		// renamed case drops "parameter" and keeps the value as a plain
		// BIND(C) initial value instead.
		if bindName == "" {
			return fmt.Sprintf("%s, parameter, public :: %s = %s", fortranType, id, lit), false
		}
		return fmt.Sprintf("%s, public, %s :: %s = %s", fortranType, bindGroup(bindName), id, lit), false
	}
	// unrenderable initializer rides along as a trailing comment; the
	// declaration itself stays a valid, uninitialized scalar (§4.6).
	return fmt.Sprintf("%s, public, %s :: %s %s", fortranType, bindGroup(bindName), id, lit), false
}
