package interp

import (
	"regexp"
	"strings"
)

// tokenKind identifies the category of a scanned token.
type tokenKind int

const (
	tokIdent tokenKind = iota
	tokNumber
	tokString
	tokOp
	tokComma
	tokEOL
)

type token struct {
	kind tokenKind
	text string
}

// tokenRe mirrors the teacher's single master regexp tokenizer
// (basement/parser.go's inlineTokenRe), repurposed from markdown inline
// spans to deskbasic's small token set.
var tokenRe = regexp.MustCompile(`"[^"]*"|[A-Za-z_][A-Za-z0-9_]*|[0-9]+(\.[0-9]+)?|<=|>=|!=|[=<>+\-*/%(),]`)

// tokenizeLine scans a single source line into tokens, dropping comments
// introduced by "//" and blank trailing content.
func tokenizeLine(line string) []token {
	if idx := strings.Index(line, "//"); idx >= 0 {
		line = line[:idx]
	}
	matches := tokenRe.FindAllString(line, -1)
	toks := make([]token, 0, len(matches)+1)
	for _, m := range matches {
		switch {
		case strings.HasPrefix(m, `"`):
			toks = append(toks, token{kind: tokString, text: strings.Trim(m, `"`)})
		case isIdentStart(m[0]):
			toks = append(toks, token{kind: tokIdent, text: m})
		case isDigit(m[0]):
			toks = append(toks, token{kind: tokNumber, text: m})
		case m == ",":
			toks = append(toks, token{kind: tokComma, text: m})
		default:
			toks = append(toks, token{kind: tokOp, text: m})
		}
	}
	toks = append(toks, token{kind: tokEOL})
	return toks
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
