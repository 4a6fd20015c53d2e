package highlighter

import (
	"bytes"
	"strings"
)

const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether c delimits tokens for keyword and number
// classification.
func IsSeparator(c byte) bool {
	return c == ' ' || c == 0 || strings.IndexByte(separators, c) >= 0
}

// Classify assigns a Class to every byte of render using syn. A nil syn
// yields an all-Normal span. The scan is a single left-to-right pass and
// does not carry state between rows.
func Classify(render []byte, syn *Syntax) []Class {
	hl := make([]Class, len(render))
	if syn == nil {
		return hl
	}

	comment := []byte(syn.SingleLineComment)
	prevSep := true
	var inString byte

	i := 0
scan:
	for i < len(render) {
		c := render[i]
		var prev Class
		if i > 0 {
			prev = hl[i-1]
		}

		if inString == 0 && len(comment) > 0 && bytes.HasPrefix(render[i:], comment) {
			for ; i < len(render); i++ {
				hl[i] = Comment
			}
			break
		}

		if syn.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if syn.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prev == Number)) || (c == '.' && prev == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			for _, kw := range syn.Keywords {
				class := KeywordPrimary
				n := len(kw)
				if n > 0 && kw[n-1] == TypeMarker {
					n--
					class = KeywordSecondary
				}
				if n == 0 || i+n > len(render) {
					continue
				}
				if i+n < len(render) && !IsSeparator(render[i+n]) {
					continue
				}
				if string(render[i:i+n]) != kw[:n] {
					continue
				}
				for j := i; j < i+n; j++ {
					hl[j] = class
				}
				i += n
				prevSep = false
				continue scan
			}
		}

		prevSep = IsSeparator(c)
		i++
	}
	return hl
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
