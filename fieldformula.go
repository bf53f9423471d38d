package fieldformula

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/chain"
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/expr"
	"github.com/clovenbradshaw-ctrl/fieldformula/logger"
	"github.com/clovenbradshaw-ctrl/fieldformula/operators"
)

// Engine is the library surface hosts program against: parse formulas,
// evaluate them against records, and reach the raw-expression bridge. An
// Engine is safe for concurrent use; the parse cache is its only shared
// mutable state and is internally locked.
type Engine struct {
	parser *expr.Parser
	mode   coerce.Mode
	log    logger.Logger
}

// New creates an engine. Defaults: Codd NULL regime, parse cache capacity
// 1000, the package default logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		mode: coerce.ModeCodd,
		log:  logger.GetDefault(),
	}
	capacity := expr.DefaultCacheCapacity
	for _, opt := range opts {
		opt(e, &capacity)
	}
	e.parser = expr.NewParser(capacity, e.log)
	return e
}

// Mode returns the engine's active NULL regime.
func (e *Engine) Mode() coerce.Mode { return e.mode }

// Parse parses a formula, memoized. The returned result owns its dependency
// slice; callers may mutate it freely.
func (e *Engine) Parse(source string) *expr.ParseResult {
	return e.parser.Parse(source)
}

// Evaluate parses (or retrieves) a formula and evaluates it against a
// record. The record maps field names to scalars, Values or observation
// cells; it is never mutated. All failures land in the result, not a panic.
func (e *Engine) Evaluate(source string, record map[string]interface{}) *expr.EvaluationResult {
	return expr.EvaluateParsed(e.parser.Parse(source), record, e.mode)
}

// EvaluateRaw runs a free-form expr-lang expression against a record through
// the operator bridge, for host expressions outside the formula grammar.
func (e *Engine) EvaluateRaw(source string, record map[string]interface{}) (interface{}, error) {
	return e.Bridge().EvaluateExpression(source, record, e.mode)
}

// Chain returns a pipeline validator bound to the engine's NULL regime, for
// checking and running operator pipelines built outside formula text.
func (e *Engine) Chain() *chain.Validator {
	return chain.NewValidator(e.mode)
}

// Bridge returns the process-wide expr-lang bridge.
func (e *Engine) Bridge() *operators.ExprBridge {
	return operators.GetExprBridge()
}

// CacheLen reports the number of memoized parses, mainly for diagnostics.
func (e *Engine) CacheLen() int { return e.parser.Len() }
