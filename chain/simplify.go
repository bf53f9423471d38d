package chain

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/operators"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// Rule names the algebraic rule a simplification applied.
type Rule string

const (
	// RuleIdentity an identity element was eliminated
	RuleIdentity Rule = "identity"
	// RuleAbsorbing an absorbing element collapsed the call
	RuleAbsorbing Rule = "absorbing"
	// RuleIdempotent equal arguments collapsed to one
	RuleIdempotent Rule = "idempotent"
)

// Simplification reports whether an operator call can be eliminated
// algebraically and what it reduces to.
type Simplification struct {
	// Simplified whether any rule fired
	Simplified bool
	// Rule the rule that fired
	Rule Rule
	// Result the value the call reduces to
	Result types.Value
}

// CanSimplify inspects an operator's declared algebraic properties against
// concrete two-argument calls. Rules are checked in a fixed, authoritative
// order — identity, then absorbing, then idempotence — and the first match
// wins; MULTIPLY(0, 0) is therefore an absorbing simplification even though
// the idempotence shape also matches.
func CanSimplify(id string, args []types.Value) Simplification {
	d, ok := operators.Get(id)
	if !ok || len(args) != 2 {
		return Simplification{}
	}

	if d.Identity != nil {
		if args[0].Equal(*d.Identity) {
			return Simplification{Simplified: true, Rule: RuleIdentity, Result: args[1]}
		}
		if args[1].Equal(*d.Identity) {
			return Simplification{Simplified: true, Rule: RuleIdentity, Result: args[0]}
		}
	}

	if d.Absorbing != nil {
		if args[0].Equal(*d.Absorbing) || args[1].Equal(*d.Absorbing) {
			return Simplification{Simplified: true, Rule: RuleAbsorbing, Result: *d.Absorbing}
		}
	}

	if d.Properties.Has(operators.Idempotent) && args[0].Equal(args[1]) {
		return Simplification{Simplified: true, Rule: RuleIdempotent, Result: args[0]}
	}

	return Simplification{}
}
