package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// SHA256 computes content digests for split output.
//
// Two strategies are offered:
//   - raw: hash of the exact bytes, used to fingerprint rendered trees so
//     determinism can be checked across runs
//   - normalized: hash after stripping SQL comments, lowercasing, and
//     collapsing whitespace, giving statements a formatting-independent
//     identity
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines; pass it by value.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(Normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

// Normalize strips SQL comments, lowercases, and collapses whitespace runs
// to single spaces. Two spellings of the same statement that differ only in
// comments or formatting normalize identically.
func Normalize(content string) string {
	cleaned := removeComments(content)

	var b strings.Builder
	b.Grow(len(cleaned))

	lastWasSpace := false
	for _, r := range cleaned {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(unicode.ToLower(r))
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

type commentState int

const (
	csNormal commentState = iota
	csLineComment
	csBlockComment
	csSingleQuote
	csDollarQuote
)

// removeComments removes SQL comments while preserving string literals.
// Handles single-quoted strings (''), dollar-quoted strings ($$...$$,
// $tag$...$tag$), and nested block comments.
func removeComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := csNormal
	blockDepth := 0
	dollarTag := ""
	i := 0

	for i < len(content) {
		ch := content[i]
		var next byte
		if i+1 < len(content) {
			next = content[i+1]
		}

		switch state {
		case csNormal:
			if ch == '-' && next == '-' {
				state = csLineComment
				b.WriteByte(' ')
				i += 2
			} else if ch == '/' && next == '*' {
				state = csBlockComment
				blockDepth = 1
				b.WriteByte(' ')
				i += 2
			} else if ch == '\'' {
				state = csSingleQuote
				b.WriteByte(ch)
				i++
			} else if ch == '$' {
				tag := extractDollarTag(content, i)
				if tag != "" {
					state = csDollarQuote
					dollarTag = tag
					b.WriteString(tag)
					i += len(tag)
				} else {
					b.WriteByte(ch)
					i++
				}
			} else {
				b.WriteByte(ch)
				i++
			}

		case csLineComment:
			if ch == '\n' {
				b.WriteByte(ch)
				state = csNormal
			}
			i++

		case csBlockComment:
			if ch == '/' && next == '*' {
				blockDepth++
				i += 2
			} else if ch == '*' && next == '/' {
				blockDepth--
				i += 2
				if blockDepth == 0 {
					state = csNormal
				}
			} else {
				i++
			}

		case csSingleQuote:
			b.WriteByte(ch)
			if ch == '\'' {
				if next == '\'' {
					b.WriteByte(next)
					i += 2
				} else {
					state = csNormal
					i++
				}
			} else {
				i++
			}

		case csDollarQuote:
			if matchesTag(content, i, dollarTag) {
				b.WriteString(dollarTag)
				i += len(dollarTag)
				state = csNormal
				dollarTag = ""
			} else {
				b.WriteByte(ch)
				i++
			}
		}
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
