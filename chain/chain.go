package chain

import (
	"fmt"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/operators"
)

// Result is the outcome of a pairwise chain check.
type Result struct {
	// Valid whether the first operator's output can feed the second
	Valid bool
	// Reason human-readable mismatch description, empty when valid
	Reason string
}

// Violation is one broken link in a chain, with its position so callers can
// report every problem in a single pass.
type Violation struct {
	// Index position of the link: the violation sits between ids[Index]
	// and ids[Index+1]
	Index int
	// FromID upstream operator
	FromID string
	// ToID downstream operator
	ToID string
	// Reason mismatch description
	Reason string
}

// CanChain decides whether operator idA's output is an acceptable input for
// operator idB: the kinds match, idB accepts any, or a declared coercion
// path exists between the two kinds.
func CanChain(idA, idB string) Result {
	a, ok := operators.Get(idA)
	if !ok {
		return Result{Reason: fmt.Sprintf("unknown operator: %s", idA)}
	}
	b, ok := operators.Get(idB)
	if !ok {
		return Result{Reason: fmt.Sprintf("unknown operator: %s", idB)}
	}

	out := a.OutputType
	in := b.FirstInput()
	if coerce.Allowed(out, in) {
		return Result{Valid: true}
	}
	return Result{
		Reason: fmt.Sprintf("%s outputs %s which does not coerce to the %s input expected by %s",
			a.ID, out, in, b.ID),
	}
}

// ValidateChain runs pairwise checks over an ordered operator list and
// returns all violations, not just the first.
func ValidateChain(ids []string) []Violation {
	var violations []Violation
	for i := 0; i+1 < len(ids); i++ {
		r := CanChain(ids[i], ids[i+1])
		if r.Valid {
			continue
		}
		violations = append(violations, Violation{
			Index:  i,
			FromID: ids[i],
			ToID:   ids[i+1],
			Reason: r.Reason,
		})
	}
	return violations
}
