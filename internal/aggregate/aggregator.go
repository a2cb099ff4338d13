package aggregate

import (
	"sort"
	"strings"

	"github.com/vvka-141/pgsplit/internal/classify"
	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// Unit is the aggregation of all classified statements sharing one object
// identity. After Finalize its statements are in canonical order.
type Unit struct {
	Ref pgsplit.ObjectRef

	// Table is a location hint for units that belong near a table without
	// being part of it (triggers, FOREIGN KEY groups). Zero otherwise.
	Table pgsplit.ObjectRef

	Statements []classify.Statement

	// TriggerFunction marks a routine whose definition declares RETURNS
	// trigger. The identity stays a plain function; only path resolution
	// routes it to a different directory.
	TriggerFunction bool

	hasDefinition bool
}

type relKey struct {
	schema string
	name   string
}

// Aggregator builds one Unit per distinct ObjectRef over a single forward
// pass. Units are finalized only at end of input: forward references are
// legal (a trigger may precede its table, an index comment its index).
//
// Aggregator is not safe for concurrent use; the split is a single-threaded
// batch transform and the object index is owned by that one pass.
type Aggregator struct {
	units map[pgsplit.ObjectRef]*Unit

	// indexTables maps an index name to the table it indexes, built from
	// CREATE INDEX statements. COMMENT ON INDEX fragments are parked in
	// pendingIndex until the map is complete.
	indexTables  map[relKey]pgsplit.ObjectRef
	pendingIndex []classify.Statement
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{
		units:       make(map[pgsplit.ObjectRef]*Unit),
		indexTables: make(map[relKey]pgsplit.ObjectRef),
	}
}

// Add files one classified statement under its object identity.
// Ignored statements are dropped here so callers can feed the classifier
// output through unconditionally.
//
// A second primary definition for an identity already holding one is a dump
// consistency violation and fails immediately; it is never overwritten.
func (a *Aggregator) Add(st classify.Statement) error {
	if st.Kind == classify.KindIgnored {
		return nil
	}

	if st.OnIndex {
		a.pendingIndex = append(a.pendingIndex, st)
		return nil
	}

	if st.Kind == classify.KindCreateIndex {
		a.indexTables[relKey{st.Ref.Schema, st.IndexName}] = st.Table
	}

	unit := a.unit(st.Ref)
	if st.Kind.IsDefinition() {
		if unit.hasDefinition {
			return &AggregationError{
				Ref:     st.Ref,
				Message: "duplicate primary definition",
			}
		}
		unit.hasDefinition = true
		unit.TriggerFunction = st.ReturnsTrigger
	}
	if unit.Table == (pgsplit.ObjectRef{}) {
		unit.Table = st.Table
	}
	unit.Statements = append(unit.Statements, st)
	return nil
}

func (a *Aggregator) unit(ref pgsplit.ObjectRef) *Unit {
	if u, ok := a.units[ref]; ok {
		return u
	}
	u := &Unit{Ref: ref}
	a.units[ref] = u
	return u
}

// Finalize resolves deferred cross-references, re-homes fragments whose
// textual target differs from their logical owner, imposes the canonical
// member order on every unit, and returns the units sorted by identity.
// The Aggregator must not be used after Finalize.
func (a *Aggregator) Finalize() ([]*Unit, error) {
	if err := a.resolveIndexComments(); err != nil {
		return nil, err
	}
	a.rehomeRelationFragments()
	a.rehomeRoutineFragments()

	units := make([]*Unit, 0, len(a.units))
	for _, u := range a.units {
		if len(u.Statements) == 0 {
			continue
		}
		sortCanonical(u.Statements)
		units = append(units, u)
	}

	sort.Slice(units, func(i, j int) bool {
		return refLess(units[i].Ref, units[j].Ref)
	})
	return units, nil
}

// resolveIndexComments attaches COMMENT ON INDEX fragments to the unit of
// the indexed table. An index never seen in a CREATE INDEX statement means
// the dump is inconsistent.
func (a *Aggregator) resolveIndexComments() error {
	for _, st := range a.pendingIndex {
		table, ok := a.indexTables[relKey{st.Ref.Schema, st.Ref.Name}]
		if !ok {
			return &AggregationError{
				Ref:     st.Ref,
				Message: "comment on an index that was never created",
			}
		}
		st.Ref = table
		st.OnIndex = false
		a.unit(table).Statements = append(a.unit(table).Statements, st)
	}
	a.pendingIndex = nil
	return nil
}

// rehomeRelationFragments merges secondary-only TABLE units into the VIEW
// or SEQUENCE unit of the same schema and name when one exists. Plain-text
// ACL and comment statements say ON TABLE for every relation kind, so a
// view's grants arrive keyed as a table.
func (a *Aggregator) rehomeRelationFragments() {
	for ref, u := range a.units {
		if ref.Category != pgsplit.CategoryTable || u.hasDefinition {
			continue
		}
		for _, category := range []pgsplit.Category{pgsplit.CategoryView, pgsplit.CategorySequence} {
			target := pgsplit.ObjectRef{Schema: ref.Schema, Category: category, Name: ref.Name}
			if owner, ok := a.units[target]; ok && owner.hasDefinition {
				owner.Statements = append(owner.Statements, u.Statements...)
				u.Statements = nil
				delete(a.units, ref)
				break
			}
		}
	}
}

// rehomeRoutineFragments merges signature-less routine fragments (COMMENT
// and ACL statements may omit the argument list for non-overloaded names)
// into the definition unit sharing the base name. With several overloads
// the lexically first identity wins; all overloads render into one file, so
// placement within the family does not change the output.
func (a *Aggregator) rehomeRoutineFragments() {
	for ref, u := range a.units {
		if ref.Category != pgsplit.CategoryFunction || u.hasDefinition {
			continue
		}
		if strings.ContainsRune(ref.Name, '(') {
			// Carries a signature; a matching definition would share the
			// exact identity already.
			continue
		}
		var target *Unit
		var targetRef pgsplit.ObjectRef
		for cand, cu := range a.units {
			if cand.Category != pgsplit.CategoryFunction || !cu.hasDefinition {
				continue
			}
			if cand.Schema != ref.Schema || classify.BaseName(cand.Name) != ref.Name {
				continue
			}
			if target == nil || cand.Name < targetRef.Name {
				target = cu
				targetRef = cand
			}
		}
		if target != nil {
			target.Statements = append(target.Statements, u.Statements...)
			u.Statements = nil
			delete(a.units, ref)
		}
	}
}

// sortCanonical imposes the canonical member order: definition, ownership,
// owned-by, constraints, defaults, indexes, comments, revokes, grants.
// Ties within one rank are broken byte-wise on the trimmed statement text,
// so the result does not depend on the statements' order in the dump.
func sortCanonical(stmts []classify.Statement) {
	sort.SliceStable(stmts, func(i, j int) bool {
		ri, rj := stmts[i].Kind.Rank(), stmts[j].Kind.Rank()
		if ri != rj {
			return ri < rj
		}
		return strings.TrimSpace(stmts[i].Raw.Text) < strings.TrimSpace(stmts[j].Raw.Text)
	})
}

func refLess(a, b pgsplit.ObjectRef) bool {
	if a.Schema != b.Schema {
		return a.Schema < b.Schema
	}
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	return a.Name < b.Name
}
