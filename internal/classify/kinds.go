package classify

// Kind is the closed enumeration of statement shapes the dump tool is known
// to emit. Extending the tool to a new shape means adding a variant here and
// a rule in Classify; there is no open-ended hierarchy.
type Kind int

const (
	// KindIgnored marks allow-listed session statements (SET ...,
	// SELECT pg_catalog.set_config(...)) that carry no schema content.
	KindIgnored Kind = iota

	KindCreateSchema
	KindCreateExtension
	KindCreateTable
	KindCreateView
	KindCreateSequence
	KindCreateFunction
	KindCreateTrigger
	KindCreateType
	KindCreateDomain
	KindCreatePublication
	KindCreateRule

	// KindCreateShellType is the argument-less CREATE TYPE name; forward
	// declaration that precedes a base type's I/O functions in the dump.
	KindCreateShellType

	// KindCreateOperator is not a definition kind: every operator of a
	// schema lands in the same shared unit, so repeats are legal.
	KindCreateOperator

	// KindCreateIndex attaches to the indexed table's unit rather than
	// forming an object of its own.
	KindCreateIndex

	KindAlterOwner
	KindSequenceOwnedBy
	KindAddConstraint
	KindAddForeignKey
	KindColumnDefault
	KindPublicationAddTable
	KindComment
	KindRevoke
	KindGrant
)

var kindNames = map[Kind]string{
	KindIgnored:             "ignored",
	KindCreateSchema:        "CREATE SCHEMA",
	KindCreateExtension:     "CREATE EXTENSION",
	KindCreateTable:         "CREATE TABLE",
	KindCreateView:          "CREATE VIEW",
	KindCreateSequence:      "CREATE SEQUENCE",
	KindCreateFunction:      "CREATE FUNCTION",
	KindCreateTrigger:       "CREATE TRIGGER",
	KindCreateType:          "CREATE TYPE",
	KindCreateDomain:        "CREATE DOMAIN",
	KindCreatePublication:   "CREATE PUBLICATION",
	KindCreateRule:          "CREATE RULE",
	KindCreateShellType:     "CREATE SHELL TYPE",
	KindCreateOperator:      "CREATE OPERATOR",
	KindCreateIndex:         "CREATE INDEX",
	KindAlterOwner:          "OWNER TO",
	KindSequenceOwnedBy:     "SEQUENCE OWNED BY",
	KindAddConstraint:       "ADD CONSTRAINT",
	KindAddForeignKey:       "ADD FOREIGN KEY",
	KindColumnDefault:       "COLUMN DEFAULT",
	KindPublicationAddTable: "PUBLICATION ADD TABLE",
	KindComment:             "COMMENT ON",
	KindRevoke:              "REVOKE",
	KindGrant:               "GRANT",
}

// String returns the kind name as used in diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsDefinition reports whether the kind is a primary object definition.
// A second definition for the same object identity is a dump consistency
// violation; secondary fragments (owners, grants, comments, ...) may repeat.
func (k Kind) IsDefinition() bool {
	switch k {
	case KindCreateSchema, KindCreateExtension, KindCreateTable, KindCreateView,
		KindCreateSequence, KindCreateFunction, KindCreateTrigger,
		KindCreateType, KindCreateDomain, KindCreatePublication,
		KindCreateRule, KindCreateShellType:
		return true
	default:
		return false
	}
}

// Rank gives the canonical position of a statement within its object's
// output file. The ordering is imposed regardless of where the statements
// appeared in the dump, because different pg_dump versions emit secondary
// fragments in different relative orders and the output must stay stable.
//
// REVOKE ranks before GRANT; ties within a rank are broken byte-wise by the
// aggregator, which together reproduce sorted ACL blocks.
func (k Kind) Rank() int {
	switch {
	case k.IsDefinition(), k == KindCreateOperator:
		return 0
	case k == KindAlterOwner:
		return 1
	case k == KindSequenceOwnedBy:
		return 2
	case k == KindAddConstraint || k == KindAddForeignKey || k == KindPublicationAddTable:
		return 3
	case k == KindColumnDefault:
		return 4
	case k == KindCreateIndex:
		return 5
	case k == KindComment:
		return 6
	case k == KindRevoke:
		return 7
	case k == KindGrant:
		return 8
	default:
		return 9
	}
}
