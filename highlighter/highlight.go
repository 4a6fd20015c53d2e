package highlighter

// Class is the highlight classification of a single rendered byte.
type Class uint8

const (
	Normal Class = iota
	Comment
	BlockComment // reserved: multi-line carry-over is not wired
	String
	Number
	KeywordPrimary
	KeywordSecondary
	Match // temporary search overlay

	numClasses
)

// classColors maps each Class to its ANSI foreground color (30-39).
var classColors = [...]int{
	Normal:           39,
	Comment:          36,
	BlockComment:     36,
	String:           35,
	Number:           31,
	KeywordPrimary:   33,
	KeywordSecondary: 32,
	Match:            34,
}

// Fails to compile unless every Class has a color.
var _ = [1]struct{}{}[len(classColors)-int(numClasses)]

// Color returns the ANSI foreground color code used to draw c.
func (c Class) Color() int {
	if c >= numClasses {
		return classColors[Normal]
	}
	return classColors[c]
}

func (c Class) String() string {
	switch c {
	case Normal:
		return "normal"
	case Comment:
		return "comment"
	case BlockComment:
		return "block-comment"
	case String:
		return "string"
	case Number:
		return "number"
	case KeywordPrimary:
		return "keyword"
	case KeywordSecondary:
		return "type"
	case Match:
		return "match"
	}
	return "unknown"
}

// Highlighter classifies a rendered row.
//
// Implementations must return exactly one Class per byte of render.
type Highlighter interface {
	Name() string
	Highlight(render []byte) []Class
}

// Plain returns a span of Normal classes sized to render.
func Plain(render []byte) []Class {
	return make([]Class, len(render))
}

// Select picks the highlighter for filename: the static table first, then,
// when fallback is set, a chroma lexer matched by file name. It returns nil
// when nothing matches.
func Select(table *Table, filename string, fallback bool) Highlighter {
	if filename == "" {
		return nil
	}
	if syn := table.Lookup(filename); syn != nil {
		return syn
	}
	if fallback {
		if c := NewChroma(filename); c != nil {
			return c
		}
	}
	return nil
}
