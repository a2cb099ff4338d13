package classify

import (
	"strings"

	"github.com/vvka-141/pgsplit/internal/scan"
	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// DefaultSchema is assumed for unqualified names. pg_dump qualifies every
// name when run with an empty search_path, so this only matters for
// hand-written inputs.
const DefaultSchema = "public"

// Statement is a RawStatement plus its classification: the statement kind
// and the object identity it belongs to.
type Statement struct {
	Raw  scan.RawStatement
	Kind Kind

	// Ref is the primary target: the object whose output unit this
	// statement becomes a member of.
	Ref pgsplit.ObjectRef

	// Table is the owning table for statements that reference one without
	// belonging to it: triggers, FOREIGN KEY groups and indexes. It is a
	// location hint only, never an ownership edge.
	Table pgsplit.ObjectRef

	// IndexName is set for CREATE INDEX statements; the aggregator uses it
	// to re-home COMMENT ON INDEX fragments onto the indexed table.
	IndexName string

	// OnIndex marks a fragment whose target is an index name. Ref then
	// tentatively names the index; the aggregator resolves it to the
	// indexed table at end of input.
	OnIndex bool

	// ReturnsTrigger marks a routine definition declaring RETURNS trigger.
	// Trigger functions keep their function identity but render into a
	// separate directory.
	ReturnsTrigger bool
}

// Classifier recognizes the closed set of statement shapes pg_dump emits.
// The zero value is not usable; construct with New.
type Classifier struct {
	allowPrefixes []string
}

// New creates a Classifier. extraAllow lists additional statement prefixes
// (matched case-insensitively against the whitespace-collapsed statement
// body) to drop as cosmetic, on top of the built-in allow-list.
func New(extraAllow ...string) *Classifier {
	prefixes := make([]string, 0, len(extraAllow))
	for _, p := range extraAllow {
		prefixes = append(prefixes, strings.ToUpper(strings.Join(strings.Fields(p), " ")))
	}
	return &Classifier{allowPrefixes: prefixes}
}

// Classify determines the statement kind and object reference of one raw
// statement. Allow-listed session statements come back with KindIgnored.
// Anything unrecognized is a *ClassificationError.
func (cl *Classifier) Classify(raw scan.RawStatement) (Statement, error) {
	c := newCursor(raw.Text)
	body := c.s[c.i:]

	fail := func(reason string) (Statement, error) {
		return Statement{}, &ClassificationError{
			Offset:  raw.Offset,
			Preview: preview(body),
			Reason:  reason,
		}
	}

	if cl.allowListed(body) {
		return Statement{Raw: raw, Kind: KindIgnored}, nil
	}

	// psql meta-command lines (\restrict, \unrestrict from pg_dump 17.6+)
	// carry no schema content.
	if c.i < len(c.s) && c.s[c.i] == '\\' {
		return Statement{Raw: raw, Kind: KindIgnored}, nil
	}

	switch c.peekWord() {
	case "SET":
		return Statement{Raw: raw, Kind: KindIgnored}, nil

	case "SELECT":
		c.accept("SELECT")
		schema, name, ok := c.qualified()
		if ok && schema == "pg_catalog" && name == "set_config" {
			return Statement{Raw: raw, Kind: KindIgnored}, nil
		}
		return fail("only SELECT pg_catalog.set_config(...) is allow-listed")

	case "CREATE":
		c.accept("CREATE")
		return cl.classifyCreate(raw, c, fail)

	case "ALTER":
		c.accept("ALTER")
		return cl.classifyAlter(raw, c, fail)

	case "COMMENT":
		c.accept("COMMENT")
		if !c.accept("ON") {
			return fail("COMMENT without ON")
		}
		return cl.classifyComment(raw, c, fail)

	case "GRANT":
		c.accept("GRANT")
		return cl.classifyACL(raw, c, KindGrant, fail)

	case "REVOKE":
		c.accept("REVOKE")
		return cl.classifyACL(raw, c, KindRevoke, fail)
	}

	return fail("unknown leading keyword")
}

// allowListed checks the operator-supplied extra prefixes.
func (cl *Classifier) allowListed(body string) bool {
	if len(cl.allowPrefixes) == 0 {
		return false
	}
	collapsed := strings.ToUpper(strings.Join(strings.Fields(body), " "))
	for _, p := range cl.allowPrefixes {
		if strings.HasPrefix(collapsed, p) {
			return true
		}
	}
	return false
}

type failFunc func(reason string) (Statement, error)

func (cl *Classifier) classifyCreate(raw scan.RawStatement, c *cursor, fail failFunc) (Statement, error) {
	if c.accept("OR") {
		if !c.accept("REPLACE") {
			return fail("CREATE OR without REPLACE")
		}
	}
	c.accept("UNIQUE") // CREATE UNIQUE INDEX

	switch {
	case c.accept("SCHEMA"):
		name, ok := c.ident()
		if !ok {
			return fail("CREATE SCHEMA without a name")
		}
		return stmt(raw, KindCreateSchema, pgsplit.ObjectRef{Category: pgsplit.CategorySchema, Name: name}), nil

	case c.accept("EXTENSION"):
		if c.accept("IF") {
			if !c.accept("NOT") || !c.accept("EXISTS") {
				return fail("malformed IF NOT EXISTS")
			}
		}
		name, ok := c.ident()
		if !ok {
			return fail("CREATE EXTENSION without a name")
		}
		return stmt(raw, KindCreateExtension, pgsplit.ObjectRef{Category: pgsplit.CategoryExtension, Name: name}), nil

	case c.accept("TABLE"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("CREATE TABLE without a name")
		}
		return stmt(raw, KindCreateTable, ref), nil

	case c.accept("VIEW"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryView)
		if !ok {
			return fail("CREATE VIEW without a name")
		}
		return stmt(raw, KindCreateView, ref), nil

	case c.accept("MATERIALIZED"):
		if !c.accept("VIEW") {
			return fail("CREATE MATERIALIZED without VIEW")
		}
		ref, ok := qualifiedRef(c, pgsplit.CategoryView)
		if !ok {
			return fail("CREATE MATERIALIZED VIEW without a name")
		}
		return stmt(raw, KindCreateView, ref), nil

	case c.accept("SEQUENCE"):
		ref, ok := qualifiedRef(c, pgsplit.CategorySequence)
		if !ok {
			return fail("CREATE SEQUENCE without a name")
		}
		return stmt(raw, KindCreateSequence, ref), nil

	case c.accept("FUNCTION"), c.accept("PROCEDURE"), c.accept("AGGREGATE"):
		ref, ok := functionRef(c)
		if !ok {
			return fail("routine name or signature not recognized")
		}
		st := stmt(raw, KindCreateFunction, ref)
		if c.accept("RETURNS") {
			st.ReturnsTrigger = c.peekWord() == "TRIGGER"
		}
		return st, nil

	case c.accept("TYPE"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryType)
		if !ok {
			return fail("CREATE TYPE without a name")
		}
		if c.done() {
			// Argument-less CREATE TYPE name; is the shell declaration a
			// base type's I/O functions need before the full definition.
			ref.Category = pgsplit.CategoryShellType
			return stmt(raw, KindCreateShellType, ref), nil
		}
		return stmt(raw, KindCreateType, ref), nil

	case c.accept("RULE"):
		name, ok := c.ident()
		if !ok {
			return fail("CREATE RULE without a name")
		}
		if !c.findKeyword("TO") {
			return fail("CREATE RULE without TO <table>")
		}
		table, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("CREATE RULE with unparseable table name")
		}
		return Statement{
			Raw:  raw,
			Kind: KindCreateRule,
			Ref: pgsplit.ObjectRef{
				Schema:   table.Schema,
				Category: pgsplit.CategoryRule,
				Name:     name,
			},
			Table: table,
		}, nil

	case c.accept("OPERATOR"):
		if w := c.peekWord(); w == "CLASS" || w == "FAMILY" {
			return fail("CREATE OPERATOR " + w + " is not supported")
		}
		ref, ok := operatorRef(c)
		if !ok {
			return fail("CREATE OPERATOR without a name")
		}
		return stmt(raw, KindCreateOperator, ref), nil

	case c.accept("DOMAIN"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryDomain)
		if !ok {
			return fail("CREATE DOMAIN without a name")
		}
		return stmt(raw, KindCreateDomain, ref), nil

	case c.accept("PUBLICATION"):
		name, ok := c.ident()
		if !ok {
			return fail("CREATE PUBLICATION without a name")
		}
		return stmt(raw, KindCreatePublication, pgsplit.ObjectRef{Category: pgsplit.CategoryPublication, Name: name}), nil

	case c.accept("CONSTRAINT"), c.accept("TRIGGER"):
		// CREATE [CONSTRAINT] TRIGGER; the CONSTRAINT branch consumed the
		// word, so TRIGGER may still be pending.
		c.accept("TRIGGER")
		name, ok := c.ident()
		if !ok {
			return fail("CREATE TRIGGER without a name")
		}
		if !c.findKeyword("ON") {
			return fail("CREATE TRIGGER without ON <table>")
		}
		table, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("CREATE TRIGGER with unparseable table name")
		}
		return Statement{
			Raw:  raw,
			Kind: KindCreateTrigger,
			Ref: pgsplit.ObjectRef{
				Schema:   table.Schema,
				Category: pgsplit.CategoryTrigger,
				Name:     name,
			},
			Table: table,
		}, nil

	case c.accept("INDEX"):
		name, ok := c.ident()
		if !ok {
			return fail("CREATE INDEX without a name")
		}
		if !c.findKeyword("ON") {
			return fail("CREATE INDEX without ON <table>")
		}
		c.accept("ONLY")
		table, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("CREATE INDEX with unparseable table name")
		}
		return Statement{
			Raw:       raw,
			Kind:      KindCreateIndex,
			Ref:       table,
			Table:     table,
			IndexName: name,
		}, nil
	}

	return fail("unsupported CREATE target")
}

func (cl *Classifier) classifyAlter(raw scan.RawStatement, c *cursor, fail failFunc) (Statement, error) {
	switch {
	case c.accept("TABLE"):
		c.accept("ONLY")
		ref, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("ALTER TABLE without a name")
		}
		switch {
		case c.accept("OWNER"):
			if !c.accept("TO") {
				return fail("OWNER without TO")
			}
			return stmt(raw, KindAlterOwner, ref), nil
		case c.accept("ADD"):
			if !c.accept("CONSTRAINT") {
				return fail("ALTER TABLE ADD without CONSTRAINT")
			}
			if _, ok := c.ident(); !ok {
				return fail("ADD CONSTRAINT without a name")
			}
			if c.peekWord() == "FOREIGN" {
				return Statement{
					Raw:  raw,
					Kind: KindAddForeignKey,
					Ref: pgsplit.ObjectRef{
						Schema:   ref.Schema,
						Category: pgsplit.CategoryForeignKey,
						Name:     ref.Name,
					},
					Table: ref,
				}, nil
			}
			return stmt(raw, KindAddConstraint, ref), nil
		case c.accept("ALTER"):
			c.accept("COLUMN")
			if _, ok := c.ident(); !ok {
				return fail("ALTER COLUMN without a name")
			}
			if !c.accept("SET") || !c.accept("DEFAULT") {
				return fail("unsupported ALTER TABLE ALTER COLUMN form")
			}
			return stmt(raw, KindColumnDefault, ref), nil
		}
		return fail("unsupported ALTER TABLE form")

	case c.accept("VIEW"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryView)
		if !ok {
			return fail("ALTER VIEW without a name")
		}
		if c.accept("OWNER") && c.accept("TO") {
			return stmt(raw, KindAlterOwner, ref), nil
		}
		return fail("unsupported ALTER VIEW form")

	case c.accept("MATERIALIZED"):
		if !c.accept("VIEW") {
			return fail("ALTER MATERIALIZED without VIEW")
		}
		ref, ok := qualifiedRef(c, pgsplit.CategoryView)
		if !ok {
			return fail("ALTER MATERIALIZED VIEW without a name")
		}
		if c.accept("OWNER") && c.accept("TO") {
			return stmt(raw, KindAlterOwner, ref), nil
		}
		return fail("unsupported ALTER MATERIALIZED VIEW form")

	case c.accept("SEQUENCE"):
		ref, ok := qualifiedRef(c, pgsplit.CategorySequence)
		if !ok {
			return fail("ALTER SEQUENCE without a name")
		}
		switch {
		case c.accept("OWNED"):
			if !c.accept("BY") {
				return fail("OWNED without BY")
			}
			// The owning column is metadata only; the sequence stays the
			// primary target.
			return stmt(raw, KindSequenceOwnedBy, ref), nil
		case c.accept("OWNER"):
			if !c.accept("TO") {
				return fail("OWNER without TO")
			}
			return stmt(raw, KindAlterOwner, ref), nil
		}
		return fail("unsupported ALTER SEQUENCE form")

	case c.accept("FUNCTION"), c.accept("PROCEDURE"), c.accept("AGGREGATE"):
		ref, ok := functionRef(c)
		if !ok {
			return fail("routine name or signature not recognized")
		}
		if c.accept("OWNER") && c.accept("TO") {
			return stmt(raw, KindAlterOwner, ref), nil
		}
		return fail("unsupported ALTER routine form")

	case c.accept("TYPE"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryType)
		if !ok {
			return fail("ALTER TYPE without a name")
		}
		if c.accept("OWNER") && c.accept("TO") {
			return stmt(raw, KindAlterOwner, ref), nil
		}
		return fail("unsupported ALTER TYPE form")

	case c.accept("DOMAIN"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryDomain)
		if !ok {
			return fail("ALTER DOMAIN without a name")
		}
		if c.accept("OWNER") && c.accept("TO") {
			return stmt(raw, KindAlterOwner, ref), nil
		}
		return fail("unsupported ALTER DOMAIN form")

	case c.accept("SCHEMA"):
		name, ok := c.ident()
		if !ok {
			return fail("ALTER SCHEMA without a name")
		}
		ref := pgsplit.ObjectRef{Category: pgsplit.CategorySchema, Name: name}
		if c.accept("OWNER") && c.accept("TO") {
			return stmt(raw, KindAlterOwner, ref), nil
		}
		return fail("unsupported ALTER SCHEMA form")

	case c.accept("OPERATOR"):
		ref, ok := operatorRef(c)
		if !ok {
			return fail("ALTER OPERATOR without a name")
		}
		c.signature() // argument types, not part of the shared-unit identity
		if c.accept("OWNER") && c.accept("TO") {
			return stmt(raw, KindAlterOwner, ref), nil
		}
		return fail("unsupported ALTER OPERATOR form")

	case c.accept("PUBLICATION"):
		name, ok := c.ident()
		if !ok {
			return fail("ALTER PUBLICATION without a name")
		}
		ref := pgsplit.ObjectRef{Category: pgsplit.CategoryPublication, Name: name}
		switch {
		case c.accept("OWNER"):
			if !c.accept("TO") {
				return fail("OWNER without TO")
			}
			return stmt(raw, KindAlterOwner, ref), nil
		case c.accept("ADD"):
			return stmt(raw, KindPublicationAddTable, ref), nil
		}
		return fail("unsupported ALTER PUBLICATION form")
	}

	return fail("unsupported ALTER target")
}

func (cl *Classifier) classifyComment(raw scan.RawStatement, c *cursor, fail failFunc) (Statement, error) {
	switch {
	case c.accept("SCHEMA"):
		name, ok := c.ident()
		if !ok {
			return fail("COMMENT ON SCHEMA without a name")
		}
		return stmt(raw, KindComment, pgsplit.ObjectRef{Category: pgsplit.CategorySchema, Name: name}), nil

	case c.accept("EXTENSION"):
		name, ok := c.ident()
		if !ok {
			return fail("COMMENT ON EXTENSION without a name")
		}
		return stmt(raw, KindComment, pgsplit.ObjectRef{Category: pgsplit.CategoryExtension, Name: name}), nil

	case c.accept("TABLE"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("COMMENT ON TABLE without a name")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("VIEW"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryView)
		if !ok {
			return fail("COMMENT ON VIEW without a name")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("MATERIALIZED"):
		if !c.accept("VIEW") {
			return fail("COMMENT ON MATERIALIZED without VIEW")
		}
		ref, ok := qualifiedRef(c, pgsplit.CategoryView)
		if !ok {
			return fail("COMMENT ON MATERIALIZED VIEW without a name")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("COLUMN"):
		// schema.table.column or table.column; the comment belongs to the
		// table's unit either way.
		first, ok := c.ident()
		if !ok {
			return fail("COMMENT ON COLUMN without a name")
		}
		if !c.acceptRune('.') {
			return fail("COMMENT ON COLUMN without a qualified column")
		}
		second, ok := c.ident()
		if !ok {
			return fail("COMMENT ON COLUMN with unparseable column")
		}
		schema, table := DefaultSchema, first
		if c.acceptRune('.') {
			if _, ok := c.ident(); !ok {
				return fail("COMMENT ON COLUMN with unparseable column")
			}
			schema, table = first, second
		}
		return stmt(raw, KindComment, pgsplit.ObjectRef{
			Schema:   schema,
			Category: pgsplit.CategoryTable,
			Name:     table,
		}), nil

	case c.accept("FUNCTION"), c.accept("PROCEDURE"), c.accept("AGGREGATE"):
		ref, ok := functionRef(c)
		if !ok {
			return fail("routine name or signature not recognized")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("TYPE"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryType)
		if !ok {
			return fail("COMMENT ON TYPE without a name")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("DOMAIN"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryDomain)
		if !ok {
			return fail("COMMENT ON DOMAIN without a name")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("SEQUENCE"):
		ref, ok := qualifiedRef(c, pgsplit.CategorySequence)
		if !ok {
			return fail("COMMENT ON SEQUENCE without a name")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("TRIGGER"):
		name, ok := c.ident()
		if !ok {
			return fail("COMMENT ON TRIGGER without a name")
		}
		if !c.accept("ON") {
			return fail("COMMENT ON TRIGGER without ON <table>")
		}
		table, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("COMMENT ON TRIGGER with unparseable table name")
		}
		return Statement{
			Raw:  raw,
			Kind: KindComment,
			Ref: pgsplit.ObjectRef{
				Schema:   table.Schema,
				Category: pgsplit.CategoryTrigger,
				Name:     name,
			},
			Table: table,
		}, nil

	case c.accept("CONSTRAINT"):
		if _, ok := c.ident(); !ok {
			return fail("COMMENT ON CONSTRAINT without a name")
		}
		if !c.accept("ON") {
			return fail("COMMENT ON CONSTRAINT without ON <table>")
		}
		category := pgsplit.CategoryTable
		if c.accept("DOMAIN") {
			category = pgsplit.CategoryDomain
		}
		ref, ok := qualifiedRef(c, category)
		if !ok {
			return fail("COMMENT ON CONSTRAINT with unparseable target")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("OPERATOR"):
		ref, ok := operatorRef(c)
		if !ok {
			return fail("COMMENT ON OPERATOR without a name")
		}
		return stmt(raw, KindComment, ref), nil

	case c.accept("RULE"):
		name, ok := c.ident()
		if !ok {
			return fail("COMMENT ON RULE without a name")
		}
		if !c.accept("ON") {
			return fail("COMMENT ON RULE without ON <table>")
		}
		table, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("COMMENT ON RULE with unparseable table name")
		}
		return Statement{
			Raw:  raw,
			Kind: KindComment,
			Ref: pgsplit.ObjectRef{
				Schema:   table.Schema,
				Category: pgsplit.CategoryRule,
				Name:     name,
			},
			Table: table,
		}, nil

	case c.accept("INDEX"):
		// The index's table is not named here; the aggregator resolves it
		// from the CREATE INDEX statements seen in the same dump.
		ref, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("COMMENT ON INDEX without a name")
		}
		st := stmt(raw, KindComment, ref)
		st.OnIndex = true
		return st, nil
	}

	return fail("unsupported COMMENT ON target")
}

// classifyACL handles GRANT and REVOKE. The privilege list before ON may
// contain parenthesized column lists, so the target keyword is located at
// parenthesis depth zero.
func (cl *Classifier) classifyACL(raw scan.RawStatement, c *cursor, kind Kind, fail failFunc) (Statement, error) {
	if !c.findKeyword("ON") {
		return fail("GRANT/REVOKE without ON")
	}

	switch {
	case c.accept("SCHEMA"):
		name, ok := c.ident()
		if !ok {
			return fail("ACL on SCHEMA without a name")
		}
		return stmt(raw, kind, pgsplit.ObjectRef{Category: pgsplit.CategorySchema, Name: name}), nil

	case c.accept("SEQUENCE"):
		ref, ok := qualifiedRef(c, pgsplit.CategorySequence)
		if !ok {
			return fail("ACL on SEQUENCE without a name")
		}
		return stmt(raw, kind, ref), nil

	case c.accept("FUNCTION"), c.accept("PROCEDURE"), c.accept("ROUTINE"):
		ref, ok := functionRef(c)
		if !ok {
			return fail("routine name or signature not recognized")
		}
		return stmt(raw, kind, ref), nil

	case c.accept("TYPE"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryType)
		if !ok {
			return fail("ACL on TYPE without a name")
		}
		return stmt(raw, kind, ref), nil

	case c.accept("DOMAIN"):
		ref, ok := qualifiedRef(c, pgsplit.CategoryDomain)
		if !ok {
			return fail("ACL on DOMAIN without a name")
		}
		return stmt(raw, kind, ref), nil

	default:
		// TABLE keyword, or a bare relation name. ACLs do not distinguish
		// tables from views; the aggregator re-homes these onto a view or
		// sequence unit of the same name when one exists.
		c.accept("TABLE")
		ref, ok := qualifiedRef(c, pgsplit.CategoryTable)
		if !ok {
			return fail("ACL target not recognized")
		}
		return stmt(raw, kind, ref), nil
	}
}

func stmt(raw scan.RawStatement, kind Kind, ref pgsplit.ObjectRef) Statement {
	return Statement{Raw: raw, Kind: kind, Ref: ref}
}

// qualifiedRef parses schema.name (or a bare name, defaulting the schema)
// into an ObjectRef of the given category.
func qualifiedRef(c *cursor, category pgsplit.Category) (pgsplit.ObjectRef, bool) {
	schema, name, ok := c.qualified()
	if !ok {
		return pgsplit.ObjectRef{}, false
	}
	if schema == "" {
		schema = DefaultSchema
	}
	return pgsplit.ObjectRef{Schema: schema, Category: category, Name: name}, true
}

// functionRef parses a routine reference including its argument signature.
// The signature is part of the identity so overloads stay distinct; a
// missing signature (legal in COMMENT/GRANT for non-overloaded names) yields
// the bare name and relies on the aggregator's base-name fallback.
func functionRef(c *cursor) (pgsplit.ObjectRef, bool) {
	schema, name, ok := c.qualified()
	if !ok {
		return pgsplit.ObjectRef{}, false
	}
	if schema == "" {
		schema = DefaultSchema
	}
	if sig, ok := c.signature(); ok {
		name += sig
	}
	return pgsplit.ObjectRef{Schema: schema, Category: pgsplit.CategoryFunction, Name: name}, true
}

// operatorRef parses schema.<symbol> (or a bare symbol, defaulting the
// schema) into the shared per-schema operator unit. The symbol itself is
/// discarded: every operator of a schema aggregates into one unit, because
// operator names cannot become file names.
func operatorRef(c *cursor) (pgsplit.ObjectRef, bool) {
	schema := DefaultSchema
	if name, ok := c.ident(); ok {
		if !c.acceptRune('.') {
			return pgsplit.ObjectRef{}, false
		}
		schema = name
	}
	if _, ok := c.operatorSymbol(); !ok {
		return pgsplit.ObjectRef{}, false
	}
	return pgsplit.ObjectRef{Schema: schema, Category: pgsplit.CategoryOperator, Name: "operators"}, true
}

// BaseName strips the argument signature from a routine identity, yielding
// the file base name shared by all overloads.
func BaseName(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		return name[:i]
	}
	return name
}
