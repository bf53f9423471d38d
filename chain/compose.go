package chain

import (
	"fmt"

	"github.com/clovenbradshaw-ctrl/fieldformula/operators"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// StepArg is one argument of a pipeline step: either a literal value or a
// back-reference to the result of an earlier step.
type StepArg struct {
	literal types.Value
	ref     int
	isRef   bool
}

// Literal wraps a constant argument.
func Literal(v types.Value) StepArg {
	return StepArg{literal: v}
}

// Ref references the result of a prior step by index.
func Ref(step int) StepArg {
	return StepArg{ref: step, isRef: true}
}

// Step is one operator call in a composed pipeline.
type Step struct {
	// OperatorID operator to invoke
	OperatorID string
	// Args literal values and back-references to earlier steps
	Args []StepArg
}

// TraceStep records what one pipeline step did: the resolved arguments,
// whether a simplification rule fired instead of a real evaluation, and the
// intermediate result, in a shape suitable for display.
type TraceStep struct {
	// Index step position
	Index int
	// OperatorID operator invoked
	OperatorID string
	// Args arguments after back-reference resolution
	Args []types.Value
	// Simplified whether an algebraic rule replaced evaluation
	Simplified bool
	// Rule the rule that fired, empty when Simplified is false
	Rule Rule
	// Result the intermediate result of this step
	Result types.Value
}

// Compose validates a pipeline and builds an evaluator function over it.
// Each step's results land in an arena indexed by step number; back-references
// read that arena. The pipeline's value is the last step's result.
func Compose(steps []Step) (func(ctx *operators.Context) (types.Value, error), error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty pipeline")
	}
	if err := validateSteps(steps); err != nil {
		return nil, err
	}

	return func(ctx *operators.Context) (types.Value, error) {
		arena := make([]types.Value, len(steps))
		for i, step := range steps {
			result, _, err := runStep(ctx, step, arena)
			if err != nil {
				return types.Null(), fmt.Errorf("step %d (%s): %w", i, step.OperatorID, err)
			}
			arena[i] = result
		}
		return arena[len(arena)-1], nil
	}, nil
}

// ExecuteWithTrace runs the same composition as Compose but records, per
// step, the arguments used, whether simplification fired and the
// intermediate result.
func ExecuteWithTrace(ctx *operators.Context, steps []Step) ([]TraceStep, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty pipeline")
	}
	if err := validateSteps(steps); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = &operators.Context{}
	}

	arena := make([]types.Value, len(steps))
	trace := make([]TraceStep, 0, len(steps))
	for i, step := range steps {
		result, entry, err := runStep(ctx, step, arena)
		if err != nil {
			return trace, fmt.Errorf("step %d (%s): %w", i, step.OperatorID, err)
		}
		entry.Index = i
		arena[i] = result
		trace = append(trace, entry)
	}
	return trace, nil
}

// runStep resolves a step's arguments against the arena, applies the
// simplifier, and evaluates the operator only when no rule fired.
func runStep(ctx *operators.Context, step Step, arena []types.Value) (types.Value, TraceStep, error) {
	args := make([]types.Value, len(step.Args))
	for j, a := range step.Args {
		if a.isRef {
			args[j] = arena[a.ref]
		} else {
			args[j] = a.literal
		}
	}

	entry := TraceStep{OperatorID: step.OperatorID, Args: args}

	if s := CanSimplify(step.OperatorID, args); s.Simplified {
		entry.Simplified = true
		entry.Rule = s.Rule
		entry.Result = s.Result
		return s.Result, entry, nil
	}

	result, err := operators.Execute(step.OperatorID, ctx, args)
	if err != nil {
		return types.Null(), entry, err
	}
	entry.Result = result
	return result, entry, nil
}

// validateSteps checks operator ids and back-reference ordering: a step may
// only reference results of strictly earlier steps.
func validateSteps(steps []Step) error {
	for i, step := range steps {
		if _, ok := operators.Get(step.OperatorID); !ok {
			return fmt.Errorf("step %d: unknown operator: %s", i, step.OperatorID)
		}
		for j, a := range step.Args {
			if a.isRef && (a.ref < 0 || a.ref >= i) {
				return fmt.Errorf("step %d argument %d: back-reference to step %d is out of range", i, j, a.ref)
			}
		}
	}
	return nil
}
