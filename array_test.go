package h2m

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intElem(n int) InitExpr {
	return EvaluatableInit{Value: EvaluatedRValue{Kind: KindInt, Repr: strconv.Itoa(n)}}
}

func TestFlattenArray(t *testing.T) {
	arr := ArrayType{Extents: []int{2, 3}, Element: ScalarType{Kind: ScalarInt}}
	init := AggregateInit{Elements: []InitExpr{
		AggregateInit{Elements: []InitExpr{intElem(1), intElem(2), intElem(3)}},
		AggregateInit{Elements: []InitExpr{intElem(4), intElem(5), intElem(6)}},
	}}

	loc := SourceLocation{File: "t.h", Line: 1, Column: 1}

	t.Run("transpose on reverses the shape, keeps value order", func(t *testing.T) {
		diags := &Diagnostics{}
		res := FlattenArray(arr, init, true, diags, loc)
		assert.True(t, res.Ok)
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, res.Values)
		assert.Equal(t, []int{3, 2}, res.Shape)
	})

	t.Run("transpose off keeps declared shape order", func(t *testing.T) {
		diags := &Diagnostics{}
		res := FlattenArray(arr, init, false, diags, loc)
		assert.True(t, res.Ok)
		assert.Equal(t, []int{2, 3}, res.Shape)
	})

	t.Run("ragged sibling sublist fails explicitly", func(t *testing.T) {
		ragged := AggregateInit{Elements: []InitExpr{
			AggregateInit{Elements: []InitExpr{intElem(1), intElem(2), intElem(3)}},
			AggregateInit{Elements: []InitExpr{intElem(4), intElem(5)}},
		}}
		diags := &Diagnostics{}
		res := FlattenArray(arr, ragged, true, diags, loc)
		assert.False(t, res.Ok)
	})

	t.Run("non-evaluatable leaf fails the whole array", func(t *testing.T) {
		bad := AggregateInit{Elements: []InitExpr{
			AggregateInit{Elements: []InitExpr{intElem(1), intElem(2), OtherInit{SourceText: "foo()"}}},
			AggregateInit{Elements: []InitExpr{intElem(4), intElem(5), intElem(6)}},
		}}
		diags := &Diagnostics{}
		res := FlattenArray(arr, bad, true, diags, loc)
		assert.False(t, res.Ok)
	})

	t.Run("not an aggregate at all fails", func(t *testing.T) {
		diags := &Diagnostics{}
		res := FlattenArray(arr, EvaluatableInit{Value: EvaluatedRValue{Kind: KindInt, Repr: "1"}}, true, diags, loc)
		assert.False(t, res.Ok)
	})

	t.Run("nil element inside aggregate always reports and fails", func(t *testing.T) {
		withNil := AggregateInit{Elements: []InitExpr{
			AggregateInit{Elements: []InitExpr{intElem(1), intElem(2), nil}},
			AggregateInit{Elements: []InitExpr{intElem(4), intElem(5), intElem(6)}},
		}}
		diags := &Diagnostics{Silent: true, Quiet: true}
		res := FlattenArray(arr, withNil, true, diags, loc)
		assert.False(t, res.Ok)
		require.Len(t, diags.Items(), 1)
		assert.True(t, isNullNodeError(diags.Items()[0].Err))
	})
}
