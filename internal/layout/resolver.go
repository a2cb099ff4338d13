package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/pgsplit/internal/classify"
	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// Category directory names: uppercase plural English, one per object
// category. The directory disambiguates same-named objects of different
// categories within a schema.
var categoryDirs = map[pgsplit.Category]string{
	pgsplit.CategoryTable:           "TABLES",
	pgsplit.CategoryView:            "VIEWS",
	pgsplit.CategorySequence:        "SEQUENCES",
	pgsplit.CategoryFunction:        "FUNCTIONS",
	pgsplit.CategoryTriggerFunction: "TRIGGER_FUNCTIONS",
	pgsplit.CategoryTrigger:         "TRIGGERS",
	pgsplit.CategoryType:            "TYPES",
	pgsplit.CategoryShellType:       "SHELL_TYPES",
	pgsplit.CategoryDomain:          "DOMAINS",
	pgsplit.CategoryRule:            "RULES",
	pgsplit.CategoryForeignKey:      "FK_CONSTRAINTS",
}

// Top-level directories for objects that are not schema-scoped.
var topLevelDirs = map[pgsplit.Category]string{
	pgsplit.CategorySchema:      "SCHEMAS",
	pgsplit.CategoryExtension:   "EXTENSIONS",
	pgsplit.CategoryPublication: "PUBLICATIONS",
}

// PathFor maps an object identity to its canonical relative path:
// <schema>/<CATEGORY>/<name>.sql for schema-scoped objects, or
// <CATEGORY>/<name>.sql for schemas, extensions and publications.
//
// The base name is the object's unqualified name used verbatim (routines
// drop their argument signature, so overloads share one file); only bytes
// the filesystem cannot represent are escaped, reversibly.
func PathFor(ref pgsplit.ObjectRef) (string, error) {
	// All operators of a schema share one file at schema level; operator
	// names are symbols and cannot become file names.
	if ref.Category == pgsplit.CategoryOperator {
		return EscapeName(ref.Schema) + "/operators" + pgsplit.SQLFileSuffix, nil
	}

	name := ref.Name
	if ref.Category == pgsplit.CategoryFunction || ref.Category == pgsplit.CategoryTriggerFunction {
		name = classify.BaseName(name)
	}
	base := EscapeName(name) + pgsplit.SQLFileSuffix

	if dir, ok := topLevelDirs[ref.Category]; ok {
		return dir + "/" + base, nil
	}
	dir, ok := categoryDirs[ref.Category]
	if !ok {
		return "", fmt.Errorf("no directory mapping for category %s (object %s)", ref.Category, ref)
	}
	return EscapeName(ref.Schema) + "/" + dir + "/" + base, nil
}

// Bytes that cannot appear in a path segment. '%' itself must be escaped
// so that EscapeName stays invertible.
func needsEscape(ch byte) bool {
	return ch == '/' || ch == '\\' || ch == '%' || ch < 0x20
}

// EscapeName substitutes filesystem-illegal bytes in an identifier with
// %XX sequences. Identifiers that merely need SQL quoting (uppercase,
// spaces, reserved words) pass through verbatim.
func EscapeName(name string) string {
	escaped := false
	for i := 0; i < len(name); i++ {
		if needsEscape(name[i]) {
			escaped = true
			break
		}
	}
	if !escaped {
		return name
	}

	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if needsEscape(ch) {
			fmt.Fprintf(&b, "%%%02X", ch)
		} else {
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// UnescapeName reverses EscapeName.
func UnescapeName(name string) (string, error) {
	if !strings.ContainsRune(name, '%') {
		return name, nil
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); {
		ch := name[i]
		if ch != '%' {
			b.WriteByte(ch)
			i++
			continue
		}
		if i+3 > len(name) {
			return "", fmt.Errorf("truncated escape sequence in %q", name)
		}
		v, err := strconv.ParseUint(name[i+1:i+3], 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid escape sequence in %q: %w", name, err)
		}
		b.WriteByte(byte(v))
		i += 3
	}
	return b.String(), nil
}
