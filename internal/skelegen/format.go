package skelegen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Formatter pretty-prints a stylesheet
type Formatter func(src string) (string, error)

// printer keeps indentation state while re-emitting parsed CSS
type printer struct {
	b         strings.Builder
	depth     int
	selectors []string // pending selectors of a comma-separated prelude
}

// FormatCSS re-emits src with one declaration per line, two-space
// indentation and a blank line between top-level blocks.
func FormatCSS(src string) (string, error) {
	p := css.NewParser(parse.NewInputString(src), false)
	pr := &printer{}

	for {
		gt, tt, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if errors.Is(p.Err(), io.EOF) {
				if pr.depth != 0 {
					return "", fmt.Errorf("unbalanced braces at end of stylesheet")
				}
				return pr.b.String(), nil
			}
			return "", fmt.Errorf("parse css at offset %d: %w", p.Offset(), p.Err())

		case css.CommentGrammar:
			pr.separate()
			pr.line(string(data))

		case css.AtRuleGrammar:
			pr.separate()
			pr.line(strings.TrimSpace(string(data)+" "+joinTokens(p.Values())) + ";")

		case css.BeginAtRuleGrammar:
			pr.separate()
			pr.line(strings.TrimSpace(string(data)+" "+joinTokens(p.Values())) + " {")
			pr.depth++

		case css.QualifiedRuleGrammar:
			pr.selectors = append(pr.selectors, joinTokens(p.Values()))

		case css.BeginRulesetGrammar:
			selectors := append(pr.selectors, joinTokens(p.Values()))
			pr.selectors = nil
			pr.separate()
			pr.line(strings.Join(selectors, ", ") + " {")
			pr.depth++

		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			if pr.depth == 0 {
				return "", fmt.Errorf("unexpected } at offset %d", p.Offset())
			}
			pr.depth--
			pr.line("}")

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			pr.line(string(data) + ": " + joinTokens(p.Values()) + ";")

		case css.TokenGrammar:
			if tt == css.WhitespaceToken {
				continue
			}
			return "", fmt.Errorf("unexpected token %q at offset %d", data, p.Offset())
		}
	}
}

// separate inserts a blank line before every top-level block but the first
func (pr *printer) separate() {
	if pr.depth == 0 && pr.b.Len() > 0 {
		pr.b.WriteByte('\n')
	}
}

func (pr *printer) line(s string) {
	pr.b.WriteString(strings.Repeat("  ", pr.depth))
	pr.b.WriteString(s)
	pr.b.WriteByte('\n')
}

// joinTokens concatenates token data, collapsing whitespace runs and
// writing every comma as ", "
func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			space = b.Len() > 0
			continue
		case css.CommaToken:
			b.WriteByte(',')
			space = true
			continue
		case css.CustomPropertyValueToken:
			// custom property values arrive as one raw token
			if v := joinTokens(lexTokens(t.Data)); v != "" {
				if space {
					b.WriteByte(' ')
				}
				b.WriteString(v)
				space = false
			}
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.Write(t.Data)
	}
	return b.String()
}

// lexTokens splits raw CSS text into tokens
func lexTokens(data []byte) []css.Token {
	l := css.NewLexer(parse.NewInputString(string(data)))
	var tokens []css.Token
	for {
		tt, text := l.Next()
		if tt == css.ErrorToken {
			return tokens
		}
		tokens = append(tokens, css.Token{TokenType: tt, Data: append([]byte(nil), text...)})
	}
}
