package h2m

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h2m/internal/registry"
	"h2m/internal/typefmt"
)

func newTestEmitter(cfg *Config) (*DeclEmitter, *Diagnostics) {
	diags := NewDiagnostics(cfg)
	names := &NamePolicy{Autobind: cfg.GetAutobind(), Registry: registry.New(), Diags: diags}
	return NewDeclEmitter(cfg, diags, names, typefmt.New(), nil), diags
}

func TestDeclEmitterSeedScenarios(t *testing.T) {
	t.Run("scalar int with literal", func(t *testing.T) {
		cfg := NewConfig()
		e, _ := newTestEmitter(cfg)
		decl := &VariableDecl{
			Name: "n",
			Type: ScalarType{Kind: ScalarInt},
			Init: EvaluatableInit{Value: EvaluatedRValue{Kind: KindInt, Repr: "42"}},
		}
		em := e.Emit(decl)
		assert.True(t, em.Okay)
		assert.Equal(t, "INTEGER(C_INT), parameter, public :: n = 42\n", em.Text)
	})

	t.Run("char with numeric init", func(t *testing.T) {
		cfg := NewConfig()
		e, _ := newTestEmitter(cfg)
		decl := &VariableDecl{
			Name: "c",
			Type: ScalarType{Kind: ScalarChar},
			Init: EvaluatableInit{Value: EvaluatedRValue{Kind: KindInt, Repr: "97"}},
		}
		em := e.Emit(decl)
		assert.True(t, em.Okay)
		assert.Equal(t, "CHARACTER(C_CHAR), parameter, public :: c = 'a'\n", em.Text)
	})

	t.Run("underscore identifier with autobind on", func(t *testing.T) {
		cfg := NewConfig()
		cfg.SetBool("autobind", true)
		e, diags := newTestEmitter(cfg)
		decl := &VariableDecl{
			Name: "_x",
			Type: ScalarType{Kind: ScalarReal},
			Init: EvaluatableInit{Value: EvaluatedRValue{Kind: KindReal, Repr: "1.5"}},
		}
		em := e.Emit(decl)
		assert.True(t, em.Okay)
		assert.Equal(t, "REAL(C_DOUBLE), public, BIND(C, name=\"_x\") :: h2m_x = 1.5\n", em.Text)
		assert.NotEmpty(t, diags.Items())
	})

	t.Run("2x3 int array with transpose on", func(t *testing.T) {
		cfg := NewConfig()
		e, _ := newTestEmitter(cfg)
		decl := &VariableDecl{
			Name: "a",
			Type: ArrayType{Extents: []int{2, 3}, Element: ScalarType{Kind: ScalarInt}},
			Init: AggregateInit{Elements: []InitExpr{
				AggregateInit{Elements: []InitExpr{intElem(1), intElem(2), intElem(3)}},
				AggregateInit{Elements: []InitExpr{intElem(4), intElem(5), intElem(6)}},
			}},
		}
		em := e.Emit(decl)
		assert.True(t, em.Okay)
		assert.Equal(t, "INTEGER(C_INT), BIND(C) :: a(3, 2) = RESHAPE((/ 1, 2, 3, 4, 5, 6 /), (/ 3, 2 /))\n", em.Text)
	})

	t.Run("char array as string", func(t *testing.T) {
		cfg := NewConfig()
		e, _ := newTestEmitter(cfg)
		decl := &VariableDecl{
			Name: "s",
			Type: ArrayType{Extents: []int{6}, Element: ScalarType{Kind: ScalarChar}},
			Init: StringLiteralInit{Bytes: "hello"},
		}
		em := e.Emit(decl)
		assert.True(t, em.Okay)
		assert.Equal(t, `CHARACTER(C_CHAR), parameter, public :: s = "hello"`+"\n", em.Text)
	})

	t.Run("struct with mixed init", func(t *testing.T) {
		cfg := NewConfig()
		e, _ := newTestEmitter(cfg)
		st := StructType{
			Name: "S",
			Fields: []StructField{
				{Name: "a", Type: ScalarType{Kind: ScalarInt}},
				{Name: "p", Type: PointerType{Pointee: ScalarType{Kind: ScalarChar}}},
				{Name: "fn", Type: PointerType{IsFunction: true}},
				{Name: "b", Type: ArrayType{Extents: []int{2}, Element: ScalarType{Kind: ScalarInt}}},
			},
		}
		decl := &VariableDecl{
			Name: "s",
			Type: st,
			Init: AggregateInit{Elements: []InitExpr{
				intElem(7),
				StringLiteralInit{Bytes: "hi"},
				EvaluatableInit{Value: EvaluatedRValue{Kind: KindInt, Repr: "0"}},
				AggregateInit{Elements: []InitExpr{intElem(1), intElem(2)}},
			}},
		}
		em := e.Emit(decl)
		require.True(t, em.Okay)
		want := "TYPE(S), public, BIND(C) :: s = S(7, \"hi\", & ! Function pointer 0 set to C_NULL_FUNPTR\n" +
			"C_NULL_FUNPTR, RESHAPE((/ 1, 2 /), (/ 2 /)))\n"
		assert.Equal(t, want, em.Text)
	})
}

func TestDeclEmitterInvariants(t *testing.T) {
	t.Run("header isolation produces the empty string", func(t *testing.T) {
		cfg := NewConfig()
		e, _ := newTestEmitter(cfg)
		decl := &VariableDecl{Name: "n", Type: ScalarType{Kind: ScalarInt}, InSystemHeader: true}
		em := e.Emit(decl)
		assert.Equal(t, "", em.Text)
	})

	t.Run("duplicate identifiers comment out the second emission", func(t *testing.T) {
		cfg := NewConfig()
		e, _ := newTestEmitter(cfg)
		first := e.Emit(&VariableDecl{Name: "n", Type: ScalarType{Kind: ScalarInt}})
		second := e.Emit(&VariableDecl{Name: "n", Type: ScalarType{Kind: ScalarInt}})
		assert.True(t, first.Okay)
		assert.False(t, second.Okay)
		for _, line := range strings.Split(strings.TrimRight(second.Text, "\n"), "\n") {
			assert.True(t, strings.HasPrefix(line, "! "))
		}
	})

	t.Run("no emitted line mixes parameter and BIND(C", func(t *testing.T) {
		cfg := NewConfig()
		cfg.SetBool("autobind", true)
		e, _ := newTestEmitter(cfg)
		em := e.Emit(&VariableDecl{
			Name: "_x",
			Type: ScalarType{Kind: ScalarInt},
			Init: EvaluatableInit{Value: EvaluatedRValue{Kind: KindInt, Repr: "1"}},
		})
		assert.False(t, strings.Contains(em.Text, "parameter") && strings.Contains(em.Text, "BIND(C"))
	})

	t.Run("renamed identifier never starts with underscore", func(t *testing.T) {
		cfg := NewConfig()
		e, _ := newTestEmitter(cfg)
		em := e.Emit(&VariableDecl{Name: "_y", Type: ScalarType{Kind: ScalarInt}})
		assert.False(t, strings.Contains(em.Text, ":: _y"))
		assert.Contains(t, em.Text, "h2m_y")
	})
}
