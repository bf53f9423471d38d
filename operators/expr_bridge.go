package operators

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// ExprBridge exposes the operator catalog to expr-lang/expr so hosts can run
// free-form expr-lang expressions against the same records the formula
// language sees. Every registered operator becomes a callable function in
// the expr environment under its canonical id.
type ExprBridge struct {
	mu       sync.RWMutex
	programs map[string]*vm.Program
}

var (
	bridgeInstance *ExprBridge
	bridgeOnce     sync.Once
)

// GetExprBridge returns the process-wide bridge instance.
func GetExprBridge() *ExprBridge {
	bridgeOnce.Do(func() {
		bridgeInstance = &ExprBridge{programs: make(map[string]*vm.Program)}
	})
	return bridgeInstance
}

// EvaluateExpression compiles and runs an expr-lang expression against a
// record. Compiled programs are cached by source text.
func (b *ExprBridge) EvaluateExpression(source string, data map[string]interface{}, mode coerce.Mode) (interface{}, error) {
	env := b.buildEnv(data, mode)

	b.mu.RLock()
	program, ok := b.programs[source]
	b.mu.RUnlock()

	if !ok {
		var err error
		program, err = expr.Compile(source, expr.AllowUndefinedVariables())
		if err != nil {
			return nil, fmt.Errorf("expression compile failed: %w", err)
		}
		b.mu.Lock()
		b.programs[source] = program
		b.mu.Unlock()
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("expression run failed: %w", err)
	}
	return out, nil
}

// buildEnv merges the record with one wrapper function per registered
// operator. Record fields shadow operator names on collision.
func (b *ExprBridge) buildEnv(data map[string]interface{}, mode coerce.Mode) map[string]interface{} {
	env := make(map[string]interface{}, len(data)+64)

	for id, d := range ListAll() {
		descriptor := d
		env[id] = func(params ...interface{}) (interface{}, error) {
			args := make([]types.Value, len(params))
			for i, p := range params {
				args[i] = types.FromAny(p)
			}
			out, err := Execute(descriptor.ID, &Context{Record: data, Mode: mode}, args)
			if err != nil {
				return nil, err
			}
			return types.ToAny(out), nil
		}
	}

	for k, v := range data {
		if cell, ok := v.(*types.ObservationCell); ok {
			env[k] = types.ToAny(cell.Resolve())
			continue
		}
		env[k] = v
	}
	return env
}

// registerExprOperator adds the EXPR escape hatch: it evaluates an embedded
// expr-lang expression string from inside a formula, against the current
// record.
func registerExprOperator() {
	mustRegister(&Descriptor{
		ID:          "EXPR",
		DisplayName: "embedded expression",
		Category:    CategoryLogic,
		InputTypes:  []types.Kind{types.KindText},
		OutputType:  types.KindAny,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if args[0].Kind() != types.KindText {
				return types.Null(), fmt.Errorf("EXPR requires a text argument")
			}
			out, err := GetExprBridge().EvaluateExpression(args[0].Str(), ctx.Record, ctx.Mode)
			if err != nil {
				return types.Null(), err
			}
			return types.FromAny(out), nil
		},
	})
}
