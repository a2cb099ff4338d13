package scan

import (
	"strings"
)

// RawStatement is one top-level SQL statement sliced out of the dump text.
// Text includes any comments and blank lines that preceded the statement,
// the statement itself, and its terminating semicolon. Offset is the byte
// offset of the first non-whitespace, non-comment character of the
// statement body, used for diagnostics.
type RawStatement struct {
	Text   string
	Offset int
}

// scanState tracks which quoting or comment region the scanner is inside.
type scanState int

const (
	stateNormal scanState = iota
	stateLineComment
	stateBlockComment
	stateSingleQuote
	stateDoubleQuote
	stateDollarQuote
)

func (s scanState) String() string {
	switch s {
	case stateLineComment:
		return "line comment"
	case stateBlockComment:
		return "block comment"
	case stateSingleQuote:
		return "string literal"
	case stateDoubleQuote:
		return "quoted identifier"
	case stateDollarQuote:
		return "dollar-quoted body"
	default:
		return "statement"
	}
}

// Statements splits the full dump text into top-level statements.
//
/// A statement ends at a semicolon that is outside every quoted region:
// single-quoted literals (with '' as an escaped quote), double-quoted
// identifiers, and dollar-quoted bodies where the closing delimiter must
// repeat the exact opening tag. Line comments run to end of line; block
// comments nest. Comments are preserved verbatim in the statement text but
// never terminate a statement. A backslash at the start of a statement
// opens a psql meta-command, which runs to end of line without a semicolon
// and is emitted as a statement of its own.
//
// An unterminated quote or comment at end of input returns a *ScanError;
// no partial result is produced in that case.
func Statements(dump string) ([]RawStatement, error) {
	var stmts []RawStatement

	state := stateNormal
	blockDepth := 0
	dollarTag := ""
	regionStart := 0 // offset where the current non-normal region began

	start := 0       // start of the current statement slice, including leading comments
	bodyOffset := -1 // offset of the first significant byte of the statement body

	i := 0
	for i < len(dump) {
		ch := dump[i]
		var next byte
		if i+1 < len(dump) {
			next = dump[i+1]
		}

		switch state {
		case stateNormal:
			switch {
			case ch == '-' && next == '-':
				state = stateLineComment
				regionStart = i
				i += 2
			case ch == '/' && next == '*':
				state = stateBlockComment
				regionStart = i
				blockDepth = 1
				i += 2
			case ch == '\'':
				if bodyOffset < 0 {
					bodyOffset = i
				}
				state = stateSingleQuote
				regionStart = i
				i++
			case ch == '"':
				if bodyOffset < 0 {
					bodyOffset = i
				}
				state = stateDoubleQuote
				regionStart = i
				i++
			case ch == '$':
				tag := extractDollarTag(dump, i)
				if tag != "" {
					if bodyOffset < 0 {
						bodyOffset = i
					}
					state = stateDollarQuote
					regionStart = i
					dollarTag = tag
					i += len(tag)
				} else {
					if bodyOffset < 0 {
						bodyOffset = i
					}
					i++
				}
			case ch == '\\' && bodyOffset < 0:
				// A psql meta-command line (\restrict, \unrestrict emitted
				// by pg_dump 17.6+). Meta-commands end at the newline, not
				// at a semicolon.
				end := strings.IndexByte(dump[i:], '\n')
				if end < 0 {
					end = len(dump)
				} else {
					end = i + end + 1
				}
				stmts = append(stmts, RawStatement{
					Text:   dump[start:end],
					Offset: i,
				})
				start = end
				bodyOffset = -1
				i = end

			case ch == ';':
				if bodyOffset < 0 {
					bodyOffset = i
				}
				stmts = append(stmts, RawStatement{
					Text:   dump[start : i+1],
					Offset: bodyOffset,
				})
				start = i + 1
				bodyOffset = -1
				i++
			default:
				if bodyOffset < 0 && !isSpace(ch) {
					bodyOffset = i
				}
				i++
			}

		case stateLineComment:
			if ch == '\n' {
				state = stateNormal
			}
			i++

		case stateBlockComment:
			if ch == '/' && next == '*' {
				blockDepth++
				i += 2
			} else if ch == '*' && next == '/' {
				blockDepth--
				i += 2
				if blockDepth == 0 {
					state = stateNormal
				}
			} else {
				i++
			}

		case stateSingleQuote:
			if ch == '\'' {
				if next == '\'' {
					i += 2
				} else {
					state = stateNormal
					i++
				}
			} else {
				i++
			}

		case stateDoubleQuote:
			if ch == '"' {
				if next == '"' {
					i += 2
				} else {
					state = stateNormal
					i++
				}
			} else {
				i++
			}

		case stateDollarQuote:
			if matchesTag(dump, i, dollarTag) {
				i += len(dollarTag)
				state = stateNormal
				dollarTag = ""
			} else {
				i++
			}
		}
	}

	if state != stateNormal {
		return nil, &ScanError{
			Offset: regionStart,
			Region: state.String(),
		}
	}

	// Trailing text after the last semicolon must be comments and
	// whitespace only; pg_dump ends its output with a completion comment.
	if bodyOffset >= 0 && strings.TrimSpace(stripTrailingComments(dump[start:])) != "" {
		return nil, &ScanError{
			Offset:  bodyOffset,
			Region:  "statement",
			Message: "input ends with an unterminated statement",
		}
	}

	return stmts, nil
}

// stripTrailingComments removes line comments from text that follows the
// final semicolon, so a dump footer does not read as a dangling statement.
func stripTrailingComments(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// extractDollarTag extracts a dollar-quote tag (e.g. "$$" or "$tag$")
// starting at position i. Returns empty string if not a valid tag.
func extractDollarTag(s string, i int) string {
	if i >= len(s) || s[i] != '$' {
		return ""
	}

	j := i + 1
	for j < len(s) {
		ch := s[j]
		if ch == '$' {
			return s[i : j+1]
		}
		if j == i+1 {
			if !isTagStart(ch) {
				return ""
			}
		} else {
			if !isTagContinue(ch) {
				return ""
			}
		}
		j++
	}

	return ""
}

func isTagStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isTagContinue(ch byte) bool {
	return isTagStart(ch) || (ch >= '0' && ch <= '9')
}

// matchesTag checks if the string at position i starts with the given tag.
func matchesTag(s string, i int, tag string) bool {
	if i+len(tag) > len(s) {
		return false
	}
	return s[i:i+len(tag)] == tag
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
