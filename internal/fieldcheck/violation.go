package fieldcheck

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gabapcia/fieldguard/internal/pkg/types"
)

// Violation records that the field at Path failed the null check.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// String renders the violation as "path: message".
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// compareViolations orders violations by path, then by message.
func compareViolations(a, b Violation) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Message, b.Message),
	)
}

// Result is the set of violations produced by a validation pass.
//
// Violations are compared by (Path, Message), so identical pairs collapse.
type Result struct {
	set types.Set[Violation]
}

// NewResult builds a Result from the given violations.
func NewResult(violations ...Violation) Result {
	return Result{set: types.NewSet(violations...)}
}

// Len returns the number of distinct violations.
func (r Result) Len() int {
	return r.set.Len()
}

// Valid reports whether the pass produced no violations.
func (r Result) Valid() bool {
	return r.Len() == 0
}

// Has reports whether the result contains v.
func (r Result) Has(v Violation) bool {
	return r.set.Has(v)
}

// Equal reports whether both results hold the same violations.
func (r Result) Equal(other Result) bool {
	return r.set.Equal(other.set)
}

// Violations returns the violations sorted by path and message. The slice
// is never nil.
func (r Result) Violations() []Violation {
	out := slices.AppendSeq(make([]Violation, 0, r.Len()), r.set.ToIter())
	slices.SortFunc(out, compareViolations)
	return out
}

// Strings returns the sorted violations rendered as "path: message".
func (r Result) Strings() []string {
	violations := r.Violations()

	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.String()
	}

	return out
}
