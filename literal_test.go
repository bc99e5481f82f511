package h2m

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLiteral(t *testing.T) {
	tests := []struct {
		Name     string
		Declared TypeDescriptor
		Value    EvaluatedRValue
		Want     string
		WantOk   bool
	}{
		{
			Name:     "int literal passes through unchanged",
			Declared: ScalarType{Kind: ScalarInt},
			Value:    EvaluatedRValue{Kind: KindInt, Repr: "42"},
			Want:     "42",
			WantOk:   true,
		},
		{
			Name:     "real literal passes through unchanged",
			Declared: ScalarType{Kind: ScalarReal},
			Value:    EvaluatedRValue{Kind: KindReal, Repr: "1.5"},
			Want:     "1.5",
			WantOk:   true,
		},
		{
			Name:     "char reinterprets the integer code declared char",
			Declared: ScalarType{Kind: ScalarChar},
			Value:    EvaluatedRValue{Kind: KindInt, Repr: "97"},
			Want:     "'a'",
			WantOk:   true,
		},
		{
			Name:     "complex float renders both parts",
			Declared: ScalarType{Kind: ScalarComplexFloat},
			Value:    EvaluatedRValue{Kind: KindComplexFloat, Real: "1.0", Imag: "2.0"},
			Want:     "(1.0,2.0)",
			WantOk:   true,
		},
		{
			Name:     "unknown kind yields a commentable placeholder",
			Declared: ScalarType{Kind: ScalarInt},
			Value:    EvaluatedRValue{Kind: KindUnknown, Repr: "??"},
			WantOk:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			text, ok := RenderLiteral(tc.Declared, tc.Value)
			assert.Equal(t, tc.WantOk, ok)
			if tc.WantOk {
				assert.Equal(t, tc.Want, text)
			} else {
				require.Truef(t, len(text) > 0 && text[0] == '!', "placeholder should begin with '!', got %q", text)
			}
		})
	}
}

func TestRenderStringLiteral(t *testing.T) {
	assert.Equal(t, `"hello"`, RenderStringLiteral("hello"))
}
