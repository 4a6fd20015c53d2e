package highlighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classes(s string) []Class {
	out := make([]Class, len(s))
	for i := range s {
		switch s[i] {
		case 'n':
			out[i] = Number
		case 's':
			out[i] = String
		case 'c':
			out[i] = Comment
		case 'k':
			out[i] = KeywordPrimary
		case 't':
			out[i] = KeywordSecondary
		default:
			out[i] = Normal
		}
	}
	return out
}

func TestClassify_KeywordBoundary(t *testing.T) {
	syn := &Syntax{Keywords: []string{"int"}}

	assert.Equal(t, classes("...."), Classify([]byte("intx"), syn))
	assert.Equal(t, classes("kkk.."), Classify([]byte("int x"), syn))
}

func TestClassify(t *testing.T) {
	syn := DefaultTable().Lookup("main.c")
	require.NotNil(t, syn)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"control keyword", "if (x)", "kk...."},
		{"type keyword", "int x;", "ttt..."},
		{"keyword before separator", "return;", "kkkkkk."},
		{"keyword as prefix", "iffy", "...."},
		{"keyword not after separator", "xif", "..."},
		{"integer", "x = 42;", "....nn."},
		{"decimal", "3.14", "nnnn"},
		{"digits inside identifier", "x1", ".."},
		{"double quoted", `a "b" c`, `..sss..`},
		{"single quoted", `'x'`, `sss`},
		{"escaped quote", `"a\"b"`, `ssssss`},
		{"unterminated string", `"abc`, `ssss`},
		{"comment", "x; // hi", "...ccccc"},
		{"comment inside string", `"//"`, `ssss`},
		{"number after string", `"a"1`, `sssn`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]byte(tt.input), syn)
			require.Len(t, got, len(tt.input))
			assert.Equal(t, classes(tt.want), got)
		})
	}
}

func TestClassify_NilSyntax(t *testing.T) {
	got := Classify([]byte("int 42 // x"), nil)
	assert.Equal(t, make([]Class, 11), got)
}

func TestClassify_FlagsDisableStringsAndNumbers(t *testing.T) {
	syn := &Syntax{SingleLineComment: "//"}
	assert.Equal(t, make([]Class, 8), Classify([]byte(`x: "a" 1`), syn))
}

func TestClassify_OneByteCommentMarker(t *testing.T) {
	syn := DefaultTable().Lookup("script.py")
	require.NotNil(t, syn)
	assert.Equal(t, classes("kkkkkk.cccc"), Classify([]byte("return # xx"), syn))
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte(" \x00,.()+-/*=~%<>[];") {
		assert.True(t, IsSeparator(c), "%q", c)
	}
	for _, c := range []byte("aZ_09\"'{}\t") {
		assert.False(t, IsSeparator(c), "%q", c)
	}
}
