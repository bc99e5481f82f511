package h2m

// RenderStruct renders a struct-typed aggregate initializer as
// "<StructName>(field1, field2, …)" (§4.4 StructRenderer), recursing into
// ArrayFlattener and itself for nested aggregate fields, and into
// PointerPolicy for pointer fields. On any field failure the whole
// rendering fails; the caller (DeclEmitter) comments out the entire
// enclosing declaration (§3 invariant 3).
func RenderStruct(t StructType, init InitExpr, cfg *Config, diags *Diagnostics, loc SourceLocation) (text string, ok bool) {
	agg, isAgg := init.(AggregateInit)
	if !isAgg || len(agg.Elements) != len(t.Fields) {
		return t.Name + "(untranslatable: malformed initializer)", false
	}

	fields := make([]string, len(t.Fields))
	success := true
	for i, field := range t.Fields {
		if agg.Elements[i] == nil {
			diags.ReportNullNode(loc, "struct field initializer for "+field.Name)
			fields[i] = "untranslatable component: nil initializer"
			success = false
			continue
		}
		rendered, fieldOk := renderStructField(field, agg.Elements[i], cfg, diags, loc)
		fields[i] = rendered
		if !fieldOk {
			success = false
		}
	}
	return t.Name + "(" + joinComma(fields) + ")", success
}

func renderStructField(field StructField, elem InitExpr, cfg *Config, diags *Diagnostics, loc SourceLocation) (string, bool) {
	switch ft := field.Type.(type) {
	case PointerType:
		if IsChar(ft.Pointee) {
			if sl, ok := elem.(StringLiteralInit); ok {
				return RenderStringLiteral(sl.Bytes), true
			}
		}
		text, comment := ClassifyPointer(ft.Pointee, ft.IsFunction, elem, describeSource(elem), diags, loc)
		if comment != "" {
			ow := newOutputWriter("")
			ow.writel("& " + comment)
			ow.write(text)
			return ow.String(), true
		}
		return text, true

	case ScalarType:
		if ev, ok := elem.(EvaluatableInit); ok {
			lit, litOk := RenderLiteral(ft, ev.Value)
			if litOk {
				return lit, true
			}
		}
		return "untranslatable component: " + describeSource(elem), false

	case ArrayType:
		if IsChar(BaseElementType(ft)) {
			if sl, ok := elem.(StringLiteralInit); ok {
				return RenderStringLiteral(sl.Bytes), true
			}
		}
		if agg, ok := elem.(AggregateInit); ok {
			res := FlattenArray(ft, agg, cfg.GetArrayTranspose(), diags, loc)
			if res.Ok {
				return formatReshape(res.Values, res.Shape), true
			}
		}
		return "UntranslatableArray ! " + describeSource(elem), false

	case StructType:
		if agg, ok := elem.(AggregateInit); ok {
			nested, nestedOk := RenderStruct(ft, agg, cfg, diags, loc)
			return nested, nestedOk
		}
		return "untranslatable component: " + describeSource(elem), false

	default:
		return "untranslatable component: " + describeSource(elem), false
	}
}

// describeSource returns whatever original C text is available for an
// initializer that could not be rendered, so a failure's inline comment or
// placeholder still carries useful information.
func describeSource(elem InitExpr) string {
	switch e := elem.(type) {
	case OtherInit:
		return e.SourceText
	case EvaluatableInit:
		return e.Value.Repr
	default:
		return ""
	}
}
