package engine

import (
	"sort"
	"strings"

	"github.com/vvka-141/pgsplit/internal/aggregate"
	"github.com/vvka-141/pgsplit/internal/checksum"
	"github.com/vvka-141/pgsplit/internal/classify"
	"github.com/vvka-141/pgsplit/internal/layout"
	"github.com/vvka-141/pgsplit/internal/scan"
	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// Engine runs the full split: scan the dump text into statements, classify
// each by the object it affects, aggregate per object, resolve paths, and
// render the output tree. All stages are fail-fast; on any error no output
// is produced at all.
type Engine struct {
	log        pgsplit.Logger
	classifier *classify.Classifier
	calculator checksum.SHA256
}

// New creates an Engine. extraAllow lists additional statement prefixes to
// drop as cosmetic (see classify.New). Panics if log is nil; pass a
// logging.NullLogger to discard output.
func New(log pgsplit.Logger, extraAllow ...string) *Engine {
	if log == nil {
		panic("log cannot be nil")
	}
	return &Engine{
		log:        log,
		classifier: classify.New(extraAllow...),
		calculator: checksum.New(),
	}
}

// Split transforms one dump into its output tree.
func (e *Engine) Split(dump []byte) (*Tree, error) {
	stmts, err := scan.Statements(string(dump))
	if err != nil {
		return nil, err
	}
	e.log.Verbose("scanned %d statements from %d bytes", len(stmts), len(dump))

	agg := aggregate.New()
	ignored := 0
	for _, raw := range stmts {
		st, err := e.classifier.Classify(raw)
		if err != nil {
			return nil, err
		}
		if st.Kind == classify.KindIgnored {
			ignored++
		}
		if err := agg.Add(st); err != nil {
			return nil, err
		}
	}
	e.log.Verbose("classified %d statements (%d ignored)", len(stmts), ignored)

	units, err := agg.Finalize()
	if err != nil {
		return nil, err
	}
	e.log.Verbose("aggregated %d object units", len(units))

	return e.render(units)
}

// render maps every unit to its path and materializes file contents.
// Routine overloads legitimately share one file; any other multi-unit path
// is a collision the tool refuses to resolve.
func (e *Engine) render(units []*aggregate.Unit) (*Tree, error) {
	files := make(map[string]string, len(units)+1)
	owners := make(map[string]pgsplit.ObjectRef, len(units))

	for _, u := range units {
		ref := u.Ref
		if u.TriggerFunction {
			ref.Category = pgsplit.CategoryTriggerFunction
		}
		path, err := layout.PathFor(ref)
		if err != nil {
			return nil, err
		}

		if prev, taken := owners[path]; taken {
			if !sharedPath(u.Ref.Category) || u.Ref.Category != prev.Category {
				return nil, &layout.PathCollisionError{Path: path, A: prev, B: u.Ref}
			}
			// Overload family or per-schema operator file: units arrive
			// sorted by identity, so the concatenation order is
			// deterministic.
			files[path] = files[path] + "\n" + renderUnit(u)
			continue
		}

		owners[path] = u.Ref
		files[path] = renderUnit(u)
	}

	files[pgsplit.IndexFileName] = renderIndex(files)
	return newTree(files), nil
}

// sharedPath lists the categories whose distinct units may legitimately
/// render into one file: routine overloads share a base name, and every
// operator of a schema shares operators.sql.
func sharedPath(c pgsplit.Category) bool {
	return c == pgsplit.CategoryFunction || c == pgsplit.CategoryOperator
}

// renderUnit concatenates a unit's member statements in canonical order,
// separated by one blank line, with exactly one trailing newline.
func renderUnit(u *aggregate.Unit) string {
	var b strings.Builder
	for i, st := range u.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimSpace(st.Raw.Text))
		b.WriteString("\n")
	}
	return b.String()
}

// renderIndex produces the root include script: one \ir line per emitted
// file, in sorted path order.
func renderIndex(files map[string]string) string {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		b.WriteString("\\ir ")
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

// Checksum returns the SHA-256 over the rendered tree (paths and bytes),
// used for verbose logging and determinism checks in tests.
func (e *Engine) Checksum(t *Tree) string {
	var b strings.Builder
	for _, p := range t.Paths() {
		content, _ := t.Content(p)
		b.WriteString(p)
		b.WriteByte(0)
		b.WriteString(content)
		b.WriteByte(0)
	}
	return e.calculator.CalculateRaw([]byte(b.String()))
}
