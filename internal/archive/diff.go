package archive

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// FileDiff is a unified diff of one path present in both archives with
// differing content.
type FileDiff struct {
	Path    string
	Unified string
}

// Report is the outcome of comparing two archives.
type Report struct {
	Diffs   []FileDiff
	OnlyInA []string
	OnlyInB []string
}

// Empty reports whether the two archives had identical contents.
func (r Report) Empty() bool {
	return len(r.Diffs) == 0 && len(r.OnlyInA) == 0 && len(r.OnlyInB) == 0
}

// Compare diffs two archive content maps. aname and bname label the sides
// in the unified diff headers. Results are sorted by path.
func Compare(a, b map[string]string, aname, bname string) (Report, error) {
	var report Report

	paths := make([]string, 0, len(a))
	for p := range a {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		contentA := a[p]
		contentB, ok := b[p]
		if !ok {
			report.OnlyInA = append(report.OnlyInA, p)
			continue
		}
		if contentA == contentB {
			continue
		}

		unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(contentA),
			B:        difflib.SplitLines(contentB),
			FromFile: aname + "/" + p,
			ToFile:   bname + "/" + p,
			Context:  6,
		})
		if err != nil {
			return Report{}, fmt.Errorf("failed to diff %s: %w", p, err)
		}
		report.Diffs = append(report.Diffs, FileDiff{Path: p, Unified: unified})
	}

	for p := range b {
		if _, ok := a[p]; !ok {
			report.OnlyInB = append(report.OnlyInB, p)
		}
	}
	sort.Strings(report.OnlyInB)

	return report, nil
}
