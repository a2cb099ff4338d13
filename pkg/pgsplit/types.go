package pgsplit

import "fmt"

// Category identifies the kind of database object a statement belongs to.
// The set is closed: the classifier only ever emits one of these values,
// and adding a new object kind means adding a variant here plus a
// classification rule.
type Category int

const (
	CategoryUnknown Category = iota
	CategorySchema
	CategoryExtension
	CategoryTable
	CategoryView
	CategorySequence
	CategoryFunction
	CategoryTrigger
	CategoryType
	CategoryDomain
	CategoryPublication
	// CategoryForeignKey groups the FOREIGN KEY constraints of one table.
	// They are split away from the table definition so that a restore can
	// create all tables before wiring up cross-table references.
	CategoryForeignKey

	// CategoryShellType is the argument-less forward declaration of a base
	// type (CREATE TYPE name;). pg_dump emits it before the I/O functions
	// that the full CREATE TYPE then references, so shell and full type are
	// distinct objects with distinct restore positions.
	CategoryShellType

	CategoryRule

	// CategoryOperator groups every operator of one schema into a single
	// unit; operator names are symbols, not identifiers, so they get one
	// shared file rather than per-object files.
	CategoryOperator

	// CategoryTriggerFunction is a rendering category only: trigger
	// functions keep CategoryFunction identity during aggregation and are
	// re-categorized for path resolution.
	CategoryTriggerFunction
)

// String returns the category name as used in diagnostics.
func (c Category) String() string {
	switch c {
	case CategorySchema:
		return "SCHEMA"
	case CategoryExtension:
		return "EXTENSION"
	case CategoryTable:
		return "TABLE"
	case CategoryView:
		return "VIEW"
	case CategorySequence:
		return "SEQUENCE"
	case CategoryFunction:
		return "FUNCTION"
	case CategoryTrigger:
		return "TRIGGER"
	case CategoryType:
		return "TYPE"
	case CategoryDomain:
		return "DOMAIN"
	case CategoryPublication:
		return "PUBLICATION"
	case CategoryForeignKey:
		return "FK CONSTRAINT"
	case CategoryShellType:
		return "SHELL TYPE"
	case CategoryRule:
		return "RULE"
	case CategoryOperator:
		return "OPERATOR"
	case CategoryTriggerFunction:
		return "TRIGGER FUNCTION"
	default:
		return "UNKNOWN"
	}
}

// ObjectRef is the identity key of a database object: (schema, category,
// name). Two statements with equal ObjectRef belong to the same output unit.
//
// Names are stored with identifier quoting already normalized (a quoted and
// an unquoted spelling of the same identifier compare equal). For functions
// the Name includes the argument signature, so overloads have distinct
// identities; the file base name strips the signature again.
//
// Schema is empty for objects that are not schema-scoped (schemas themselves
// and extensions).
type ObjectRef struct {
	Schema   string
	Category Category
	Name     string
}

// String formats the reference for error messages and verbose logs.
func (r ObjectRef) String() string {
	if r.Schema == "" {
		return fmt.Sprintf("%s %s", r.Category, r.Name)
	}
	return fmt.Sprintf("%s %s.%s", r.Category, r.Schema, r.Name)
}

// OutputFormat selects how the split tree is materialized.
type OutputFormat int

const (
	// FormatTar writes a single tar archive with deterministic entry
	// ordering and constant metadata.
	FormatTar OutputFormat = iota
	// FormatDirectory writes the tree as plain files under a directory.
	FormatDirectory
)

// ParseOutputFormat maps the CLI flag spellings to an OutputFormat.
// Accepted values are "t" (tar) and "d" (directory).
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch s {
	case "t":
		return FormatTar, true
	case "d":
		return FormatDirectory, true
	default:
		return FormatTar, false
	}
}
