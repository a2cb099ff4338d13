// Package vtemplate resolves version-conditional fixture templates into the
// exact plain-text file expected for one concrete server version.
//
// Expected-output fixtures differ across PostgreSQL versions (equivalent
// DDL is phrased differently between pg_dump releases). Rather than keep
// one fixture tree per version, a template carries directive lines:
//
//	-- pgsplit:if >= 140000
//	CREATE OR REPLACE VIEW ...
//	-- pgsplit:end
//
// The block between a directive and its matching end is emitted only when
// the comparison holds for the requested version number. Blocks nest; a
// nested block is emitted only if every enclosing condition holds.
//
// The splitting engine itself never reads or emits these directives; this
// is test-support tooling only.
package vtemplate

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	directiveIf  = "-- pgsplit:if"
	directiveEnd = "-- pgsplit:end"
)

// Resolve expands src for the given numeric server version (for example
// 140005 for 14.5). It fails on malformed directives or unbalanced blocks:
// a fixture that silently loses a block would make a test pass vacuously.
func Resolve(src string, version int) (string, error) {
	var b strings.Builder
	// Each stack entry records whether its block's condition (and every
	// enclosing one) holds.
	var stack []bool
	emitting := true

	lines := strings.Split(src, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, directiveIf):
			ok, err := evaluate(strings.TrimSpace(trimmed[len(directiveIf):]), version)
			if err != nil {
				return "", fmt.Errorf("line %d: %w", i+1, err)
			}
			stack = append(stack, emitting && ok)
			emitting = emitting && ok

		case trimmed == directiveEnd:
			if len(stack) == 0 {
				return "", fmt.Errorf("line %d: end directive without a matching if", i+1)
			}
			stack = stack[:len(stack)-1]
			emitting = true
			for _, e := range stack {
				emitting = emitting && e
			}

		default:
			if emitting {
				b.WriteString(line)
				if i < len(lines)-1 {
					b.WriteByte('\n')
				}
			}
		}
	}

	if len(stack) != 0 {
		return "", fmt.Errorf("unterminated version directive (%d open at end of input)", len(stack))
	}

	return b.String(), nil
}

// evaluate parses "<op> <integer>" and applies it to version.
func evaluate(expr string, version int) (bool, error) {
	fields := strings.Fields(expr)
	if len(fields) != 2 {
		return false, fmt.Errorf("malformed version directive %q: want <op> <integer>", expr)
	}

	bound, err := strconv.Atoi(fields[1])
	if err != nil {
		return false, fmt.Errorf("malformed version directive %q: %w", expr, err)
	}

	switch fields[0] {
	case "<":
		return version < bound, nil
	case "<=":
		return version <= bound, nil
	case "=", "==":
		return version == bound, nil
	case ">=":
		return version >= bound, nil
	case ">":
		return version > bound, nil
	case "!=":
		return version != bound, nil
	default:
		return false, fmt.Errorf("unknown comparison operator %q", fields[0])
	}
}
