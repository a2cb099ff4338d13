package classify

import (
	"strings"
)

// cursor is a tiny lexer over one statement's text. Keywords are matched
// case-insensitively; identifiers are returned with quoting normalized, so
// "Foo" and an unquoted spelling of the same identifier compare equal.
type cursor struct {
	s string
	i int
}

func newCursor(s string) *cursor {
	c := &cursor{s: s}
	c.skipTrivia()
	return c
}

// skipTrivia advances past whitespace, line comments and block comments.
func (c *cursor) skipTrivia() {
	for c.i < len(c.s) {
		ch := c.s[c.i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v':
			c.i++
		case ch == '-' && c.i+1 < len(c.s) && c.s[c.i+1] == '-':
			nl := strings.IndexByte(c.s[c.i:], '\n')
			if nl < 0 {
				c.i = len(c.s)
			} else {
				c.i += nl + 1
			}
		case ch == '/' && c.i+1 < len(c.s) && c.s[c.i+1] == '*':
			depth := 1
			c.i += 2
			for c.i < len(c.s) && depth > 0 {
				if c.i+1 < len(c.s) && c.s[c.i] == '/' && c.s[c.i+1] == '*' {
					depth++
					c.i += 2
				} else if c.i+1 < len(c.s) && c.s[c.i] == '*' && c.s[c.i+1] == '/' {
					depth--
					c.i += 2
				} else {
					c.i++
				}
			}
		default:
			return
		}
	}
}

func isIdentByte(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') || ch >= 0x80
}

// peekWord returns the next bare word uppercased without consuming it.
// Returns "" at end of input or if the next token is not a bare word.
func (c *cursor) peekWord() string {
	j := c.i
	for j < len(c.s) && isIdentByte(c.s[j]) {
		j++
	}
	if j == c.i {
		return ""
	}
	return strings.ToUpper(c.s[c.i:j])
}

// accept consumes the next word if it equals the given keyword
// (case-insensitive) and reports whether it did.
func (c *cursor) accept(keyword string) bool {
	if c.peekWord() != keyword {
		return false
	}
	c.i += len(keyword)
	c.skipTrivia()
	return true
}

// acceptRune consumes the next byte if it matches.
func (c *cursor) acceptRune(ch byte) bool {
	if c.i >= len(c.s) || c.s[c.i] != ch {
		return false
	}
	c.i++
	c.skipTrivia()
	return true
}

// ident consumes one identifier, quoted or unquoted, and returns it with
// quoting normalized ("" collapses to " inside quoted identifiers).
// Returns false if the cursor is not positioned at an identifier.
func (c *cursor) ident() (string, bool) {
	if c.i >= len(c.s) {
		return "", false
	}
	if c.s[c.i] == '"' {
		var b strings.Builder
		j := c.i + 1
		for j < len(c.s) {
			if c.s[j] == '"' {
				if j+1 < len(c.s) && c.s[j+1] == '"' {
					b.WriteByte('"')
					j += 2
					continue
				}
				c.i = j + 1
				c.skipTrivia()
				return b.String(), true
			}
			b.WriteByte(c.s[j])
			j++
		}
		return "", false // unterminated; the scanner would have rejected this
	}

	j := c.i
	for j < len(c.s) && isIdentByte(c.s[j]) {
		j++
	}
	if j == c.i {
		return "", false
	}
	name := c.s[c.i:j]
	c.i = j
	c.skipTrivia()
	return name, true
}

// done reports whether only the statement terminator (or nothing) remains.
func (c *cursor) done() bool {
	return c.i >= len(c.s) || c.s[c.i] == ';'
}

// operatorSymbol consumes an operator name (+, <->, ~=~ and the like).
// Operator names draw from a fixed symbol alphabet and are never quoted.
func (c *cursor) operatorSymbol() (string, bool) {
	j := c.i
	for j < len(c.s) && strings.IndexByte("+-*/<>=~!@#%^&|`?", c.s[j]) >= 0 {
		j++
	}
	if j == c.i {
		return "", false
	}
	sym := c.s[c.i:j]
	c.i = j
	c.skipTrivia()
	return sym, true
}

// qualified consumes schema.name or a bare name. A bare name is reported
// with an empty schema; callers decide the default.
func (c *cursor) qualified() (schema, name string, ok bool) {
	first, ok := c.ident()
	if !ok {
		return "", "", false
	}
	if !c.acceptRune('.') {
		return "", first, true
	}
	second, ok := c.ident()
	if !ok {
		return "", "", false
	}
	return first, second, true
}

// signature consumes a parenthesized argument list, including nested
// parentheses and quoted regions, and returns it with whitespace collapsed
// to single spaces. Used to give function overloads distinct identities.
// Reports false if the cursor is not positioned at an open parenthesis.
func (c *cursor) signature() (string, bool) {
	if c.i >= len(c.s) || c.s[c.i] != '(' {
		return "", false
	}
	var b strings.Builder
	depth := 0
	lastSpace := false
	for c.i < len(c.s) {
		ch := c.s[c.i]
		switch ch {
		case '(':
			depth++
			b.WriteByte(ch)
			lastSpace = false
			c.i++
		case ')':
			depth--
			b.WriteByte(ch)
			c.i++
			if depth == 0 {
				c.skipTrivia()
				return b.String(), true
			}
			lastSpace = false
		case ' ', '\t', '\n', '\r':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			c.i++
		default:
			b.WriteByte(ch)
			lastSpace = false
			c.i++
		}
	}
	return "", false
}

// findKeyword advances the cursor past tokens until the given keyword is
// found at parenthesis depth zero, consuming it. Quoted regions are skipped
// wholesale so a keyword inside a literal does not match. Reports whether
// the keyword was found.
func (c *cursor) findKeyword(keyword string) bool {
	depth := 0
	for c.i < len(c.s) {
		c.skipTrivia()
		if c.i >= len(c.s) {
			return false
		}
		ch := c.s[c.i]
		switch {
		case ch == '(':
			depth++
			c.i++
		case ch == ')':
			depth--
			c.i++
		case ch == '\'':
			c.skipQuoted('\'')
		case ch == '"':
			c.skipQuoted('"')
		case isIdentByte(ch):
			if depth == 0 && c.peekWord() == keyword {
				c.accept(keyword)
				return true
			}
			for c.i < len(c.s) && isIdentByte(c.s[c.i]) {
				c.i++
			}
		default:
			c.i++
		}
	}
	return false
}

// skipQuoted advances past a quoted region delimited by q, honoring the
// doubled-delimiter escape.
func (c *cursor) skipQuoted(q byte) {
	c.i++ // opening delimiter
	for c.i < len(c.s) {
		if c.s[c.i] == q {
			if c.i+1 < len(c.s) && c.s[c.i+1] == q {
				c.i += 2
				continue
			}
			c.i++
			return
		}
		c.i++
	}
}
