package highlighter

import (
	"path/filepath"
	"strings"
)

// Flags toggle optional classification passes for a Syntax.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// TypeMarker is the trailing byte that marks a keyword as a type keyword.
const TypeMarker = '|'

// Syntax is one language definition of the static table.
type Syntax struct {
	FileType  string
	FileMatch []string // ".ext" patterns match the extension, others match a substring of the name
	Keywords  []string // entries ending in TypeMarker are type keywords

	SingleLineComment     string
	MultiLineCommentStart string
	MultiLineCommentEnd   string

	Flags Flags
}

// Name implements Highlighter.
func (s *Syntax) Name() string { return s.FileType }

// Highlight implements Highlighter.
func (s *Syntax) Highlight(render []byte) []Class { return Classify(render, s) }

// Table is an immutable registry of language definitions.
type Table struct {
	entries []Syntax
}

// NewTable builds a table from the given definitions. The slice is copied.
func NewTable(entries ...Syntax) *Table {
	return &Table{entries: append([]Syntax(nil), entries...)}
}

// DefaultTable returns the built-in language definitions.
func DefaultTable() *Table {
	return NewTable(cSyntax, goSyntax, pythonSyntax)
}

// Len returns the number of definitions.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the first definition whose file match patterns accept
// filename, or nil.
func (t *Table) Lookup(filename string) *Syntax {
	if t == nil || filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	base := filepath.Base(filename)
	for i := range t.entries {
		for _, pattern := range t.entries[i].FileMatch {
			isExt := strings.HasPrefix(pattern, ".")
			if isExt && ext == pattern {
				return &t.entries[i]
			}
			if !isExt && strings.Contains(base, pattern) {
				return &t.entries[i]
			}
		}
	}
	return nil
}

var cSyntax = Syntax{
	FileType:  "c",
	FileMatch: []string{".c", ".h", ".cpp", ".hpp", ".cc"},
	Keywords: []string{
		"switch", "if", "while", "for", "break", "continue", "return", "else",
		"struct", "union", "typedef", "static", "enum", "class", "case",
		"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
		"void|",
	},
	SingleLineComment:     "//",
	MultiLineCommentStart: "/*",
	MultiLineCommentEnd:   "*/",
	Flags:                 HighlightNumbers | HighlightStrings,
}

var goSyntax = Syntax{
	FileType:  "go",
	FileMatch: []string{".go"},
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
		"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
		"bool|", "byte|", "error|", "float32|", "float64|", "int|", "int8|", "int16|",
		"int32|", "int64|", "rune|", "string|", "uint|", "uint8|", "uint16|",
		"uint32|", "uint64|", "uintptr|", "any|",
	},
	SingleLineComment:     "//",
	MultiLineCommentStart: "/*",
	MultiLineCommentEnd:   "*/",
	Flags:                 HighlightNumbers | HighlightStrings,
}

var pythonSyntax = Syntax{
	FileType:  "python",
	FileMatch: []string{".py"},
	Keywords: []string{
		"and", "as", "assert", "break", "class", "continue", "def", "del", "elif",
		"else", "except", "finally", "for", "from", "global", "if", "import", "in",
		"is", "lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
		"while", "with", "yield",
		"int|", "float|", "str|", "bool|", "list|", "dict|", "tuple|", "set|",
		"None|", "True|", "False|",
	},
	SingleLineComment: "#",
	Flags:             HighlightNumbers | HighlightStrings,
}
