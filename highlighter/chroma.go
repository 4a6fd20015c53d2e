package highlighter

import (
	"log"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Chroma highlights rows with a chroma lexer for file types the static
// table does not cover. Rows are tokenised one at a time.
type Chroma struct {
	lexer chroma.Lexer
	name  string
}

// NewChroma returns a highlighter for the lexer matching filename, or nil
// when chroma has no lexer for it.
func NewChroma(filename string) *Chroma {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	return &Chroma{
		lexer: chroma.Coalesce(lexer),
		name:  strings.ToLower(lexer.Config().Name),
	}
}

// Name implements Highlighter.
func (c *Chroma) Name() string { return c.name }

// Highlight implements Highlighter.
func (c *Chroma) Highlight(render []byte) []Class {
	hl := make([]Class, len(render))
	if len(render) == 0 {
		return hl
	}

	iterator, err := c.lexer.Tokenise(nil, string(render))
	if err != nil {
		log.Printf("chroma %s: tokenise: %v", c.name, err)
		return hl
	}

	pos := 0
	for _, token := range iterator.Tokens() {
		class := classForToken(token.Type)
		for j := 0; j < len(token.Value) && pos < len(hl); j++ {
			hl[pos] = class
			pos++
		}
		if pos >= len(hl) {
			break
		}
	}
	return hl
}

func classForToken(t chroma.TokenType) Class {
	switch {
	case t == chroma.KeywordType:
		return KeywordSecondary
	case t.InCategory(chroma.Keyword):
		return KeywordPrimary
	case t.InCategory(chroma.Comment):
		return Comment
	case t.InSubCategory(chroma.LiteralString):
		return String
	case t.InSubCategory(chroma.LiteralNumber):
		return Number
	}
	return Normal
}
