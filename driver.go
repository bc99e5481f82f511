package h2m

import "strings"

// Translator orchestrates one translation unit's worth of declarations
// through a DeclEmitter, composing the external collaborators the same
// way the teacher's api.go composes its optional grammar transformation
// steps from cfg.GetBool checks.
type Translator struct {
	Config  *Config
	TypeFmt TypeFormatter
	Names   NameRegistry
	Lex     LexerView
}

// NewTranslator builds a Translator. cfg may be nil, in which case
// NewConfig()'s defaults are used.
func NewTranslator(cfg *Config, tf TypeFormatter, names NameRegistry, lex LexerView) *Translator {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Translator{Config: cfg, TypeFmt: tf, Names: names, Lex: lex}
}

// TranslateUnit renders every declaration in decls into a single Fortran
// text stream (§6 "Persisted outputs: One Fortran text stream per
// translation unit"), in the order given — the AST provider's traversal
// order, typically source order (§5 "Ordering guarantees").
func (tr *Translator) TranslateUnit(decls []*VariableDecl) (string, *Diagnostics) {
	diags := NewDiagnostics(tr.Config)
	names := &NamePolicy{Autobind: tr.Config.GetAutobind(), Registry: tr.Names, Diags: diags}
	emitter := NewDeclEmitter(tr.Config, diags, names, tr.TypeFmt, tr.Lex)

	var out strings.Builder
	for _, decl := range decls {
		em := emitter.Emit(decl)
		if em.Text == "" {
			continue
		}
		out.WriteString(em.Text)
	}
	return out.String(), diags
}
