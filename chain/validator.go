package chain

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/operators"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// Validator binds the chain operations to a NULL regime so hosts holding an
// engine can check and run pipelines without assembling an operator context
// per call. Zero-cost to create; all state lives in the registry.
type Validator struct {
	mode coerce.Mode
}

// NewValidator creates a validator running pipelines under the given regime.
func NewValidator(mode coerce.Mode) *Validator {
	return &Validator{mode: mode}
}

// CanChain reports whether the first operator's output can feed the second.
func (v *Validator) CanChain(idA, idB string) Result {
	return CanChain(idA, idB)
}

// ValidateChain reports every broken link in an ordered operator list.
func (v *Validator) ValidateChain(ids []string) []Violation {
	return ValidateChain(ids)
}

// CanSimplify applies the declared algebraic rules to a concrete call.
func (v *Validator) CanSimplify(id string, args []types.Value) Simplification {
	return CanSimplify(id, args)
}

// Run composes a pipeline and executes it against a record under the
// validator's regime.
func (v *Validator) Run(steps []Step, record map[string]interface{}) (types.Value, error) {
	fn, err := Compose(steps)
	if err != nil {
		return types.Null(), err
	}
	return fn(&operators.Context{Record: record, Mode: v.mode})
}

// Trace executes a pipeline with per-step tracing under the validator's
// regime.
func (v *Validator) Trace(steps []Step, record map[string]interface{}) ([]TraceStep, error) {
	return ExecuteWithTrace(&operators.Context{Record: record, Mode: v.mode}, steps)
}
