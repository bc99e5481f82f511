package h2m

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypePredicates(t *testing.T) {
	charT := ScalarType{Kind: ScalarChar}
	intT := ScalarType{Kind: ScalarInt}
	ptr := PointerType{Pointee: charT}
	funPtr := PointerType{IsFunction: true}
	arr := ArrayType{Extents: []int{3}, Element: intT}
	st := StructType{Name: "S"}

	assert.True(t, IsChar(charT))
	assert.False(t, IsChar(intT))
	assert.True(t, IsInteger(intT))
	assert.True(t, IsPointer(ptr))
	assert.True(t, IsFunctionPointer(funPtr))
	assert.False(t, IsFunctionPointer(ptr))
	assert.True(t, IsArray(arr))
	assert.True(t, IsStructure(st))
}

func TestBaseElementTypeWalksNestedArrays(t *testing.T) {
	inner := ArrayType{Extents: []int{3}, Element: ScalarType{Kind: ScalarInt}}
	outer := ArrayType{Extents: []int{2}, Element: inner}
	assert.Equal(t, ScalarType{Kind: ScalarInt}, BaseElementType(outer))
}

func TestArrayExtentsAndElement(t *testing.T) {
	arr := ArrayType{Extents: []int{2, 3}, Element: ScalarType{Kind: ScalarInt}}
	extents, elem := ArrayExtentsAndElement(arr)
	assert.Equal(t, []int{2, 3}, extents)
	assert.Equal(t, ScalarType{Kind: ScalarInt}, elem)
}

func TestPointeeType(t *testing.T) {
	p := PointerType{Pointee: ScalarType{Kind: ScalarChar}}
	assert.Equal(t, ScalarType{Kind: ScalarChar}, PointeeType(p))
	assert.Nil(t, PointeeType(ScalarType{Kind: ScalarInt}))
}
