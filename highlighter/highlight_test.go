package highlighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassColor(t *testing.T) {
	want := map[Class]int{
		Normal:           39,
		Number:           31,
		String:           35,
		Comment:          36,
		BlockComment:     36,
		KeywordPrimary:   33,
		KeywordSecondary: 32,
		Match:            34,
	}
	for c := Normal; c < numClasses; c++ {
		assert.Equal(t, want[c], c.Color(), c.String())
	}
	assert.Equal(t, 39, Class(200).Color())
}

func TestTableLookup(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		filename string
		want     string
	}{
		{"main.c", "c"},
		{"dir/header.h", "c"},
		{"x.cpp", "c"},
		{"server.go", "go"},
		{"tool.py", "python"},
		{"README.md", ""},
		{"", ""},
		{"noext", ""},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			syn := table.Lookup(tt.filename)
			if tt.want == "" {
				assert.Nil(t, syn)
				return
			}
			require.NotNil(t, syn)
			assert.Equal(t, tt.want, syn.Name())
		})
	}
}

func TestTableLookup_SubstringPattern(t *testing.T) {
	table := NewTable(Syntax{FileType: "make", FileMatch: []string{"Makefile"}})

	syn := table.Lookup("src/Makefile")
	require.NotNil(t, syn)
	assert.Equal(t, "make", syn.FileType)
	assert.Nil(t, table.Lookup("Rakefile"))
}

func TestNilTable(t *testing.T) {
	var table *Table
	assert.Nil(t, table.Lookup("main.c"))
	assert.Zero(t, table.Len())
}

func TestSelect(t *testing.T) {
	table := DefaultTable()

	h := Select(table, "main.go", false)
	require.NotNil(t, h)
	assert.Equal(t, "go", h.Name())

	assert.Nil(t, Select(table, "lib.rs", false))
	assert.Nil(t, Select(table, "", true))

	h = Select(table, "lib.rs", true)
	require.NotNil(t, h)
	assert.Equal(t, "rust", h.Name())
}

func TestChroma_SpanMatchesRender(t *testing.T) {
	h := NewChroma("lib.rs")
	require.NotNil(t, h)

	render := []byte(`fn main() { let x: u32 = 42; // note`)
	hl := h.Highlight(render)
	require.Len(t, hl, len(render))

	assert.Equal(t, KeywordPrimary, hl[0], "fn")
	assert.Equal(t, Number, hl[25], "42")
	assert.Equal(t, Comment, hl[len(render)-1], "comment")

	assert.Empty(t, h.Highlight(nil))
}

func TestChroma_Unknown(t *testing.T) {
	assert.Nil(t, NewChroma("file.unknown-extension-xyz"))

	h := NewChroma("main.go")
	require.NotNil(t, h)
	assert.Equal(t, "go", h.Name())
}

func TestPlain(t *testing.T) {
	assert.Equal(t, []Class{Normal, Normal}, Plain([]byte("ab")))
}
