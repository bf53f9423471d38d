package operators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// Category groups operators into families for enumeration.
type Category string

const (
	// CategoryMath arithmetic operators
	CategoryMath Category = "math"
	// CategoryComparison comparison operators
	CategoryComparison Category = "comparison"
	// CategoryLogic boolean and conditional operators
	CategoryLogic Category = "logic"
	// CategoryString text operators
	CategoryString Category = "string"
	// CategoryAggregate aggregate operators
	CategoryAggregate Category = "aggregate"
	// CategoryDateTime date and time operators
	CategoryDateTime Category = "datetime"
	// CategoryTypeCheck type test operators
	CategoryTypeCheck Category = "typecheck"
	// CategoryNull NULL-aware operators, available regardless of regime
	CategoryNull Category = "null"
)

// Properties is the set of algebraic guarantees an operator declares.
// The chain simplifier exploits these; declaring one that does not hold is a
// registration bug, not something the engine can detect.
type Properties uint16

const (
	// Associative (a op b) op c == a op (b op c)
	Associative Properties = 1 << iota
	// Commutative a op b == b op a
	Commutative
	// Idempotent a op a == a
	Idempotent
	// Involutory op(op(a)) == a
	Involutory
	// Distributive distributes over the inverse-family operator
	Distributive
)

// Has reports whether all properties in q are declared.
func (p Properties) Has(q Properties) bool { return p&q == q }

// Context carries per-evaluation state into operator implementations: the
// record under evaluation and the active NULL regime.
type Context struct {
	// Record current record, may be nil for record-free evaluation
	Record map[string]interface{}
	// Mode active NULL regime
	Mode coerce.Mode
}

// EvalFunc is the evaluation rule of an operator. It must be total over
// coerced inputs except for explicitly declared failure modes such as
// division by zero under the legacy regime.
type EvalFunc func(ctx *Context, args []types.Value) (types.Value, error)

// Example documents one input/output pair for an operator.
type Example struct {
	// Args example arguments
	Args []types.Value
	// Want expected result
	Want types.Value
}

// Descriptor declares one atomic operator: its identity, type signature,
// algebraic properties and evaluation rule. Descriptors are registered once
// at process start and are read-only afterwards.
type Descriptor struct {
	// ID canonical upper-case identifier, unique within a registry
	ID string
	// DisplayName human readable name
	DisplayName string
	// Symbol infix symbol the parser maps to this operator, empty if none
	Symbol string
	// Category operator family
	Category Category
	// InputTypes expected kind per argument position; for variadic
	// operators the last entry repeats for all further arguments
	InputTypes []types.Kind
	// OutputType kind of the result
	OutputType types.Kind
	// MinArgs minimum argument count
	MinArgs int
	// MaxArgs maximum argument count, -1 means unlimited
	MaxArgs int
	// Properties declared algebraic properties
	Properties Properties
	// Identity identity element, nil if none declared
	Identity *types.Value
	// Absorbing absorbing element, nil if none declared
	Absorbing *types.Value
	// InverseID identifier of the inverse operator, empty if none
	InverseID string
	// Evaluate the evaluation rule
	Evaluate EvalFunc
	// Examples documented input/output pairs
	Examples []Example
}

// Variadic reports whether the operator accepts an unbounded argument list.
func (d *Descriptor) Variadic() bool { return d.MaxArgs < 0 }

// FirstInput returns the kind expected at argument position zero, KindAny
// when the operator declares no positional types.
func (d *Descriptor) FirstInput() types.Kind {
	if len(d.InputTypes) == 0 {
		return types.KindAny
	}
	return d.InputTypes[0]
}

// ValidateArgCount checks an argument count against the declared arity.
func (d *Descriptor) ValidateArgCount(n int) error {
	if n < d.MinArgs {
		return fmt.Errorf("operator %s requires at least %d arguments, got %d", d.ID, d.MinArgs, n)
	}
	if d.MaxArgs >= 0 && n > d.MaxArgs {
		return fmt.Errorf("operator %s accepts at most %d arguments, got %d", d.ID, d.MaxArgs, n)
	}
	return nil
}

// ErrNotFound is returned when an operator id is not registered.
var ErrNotFound = errors.New("operator not found")

// Registry is the catalog of operator descriptors. It is populated during
// init and treated as immutable shared state afterwards; the lock only
// guards against a host registering custom operators while another goroutine
// reads, which is discouraged but must not corrupt the maps.
type Registry struct {
	mu         sync.RWMutex
	ops        map[string]*Descriptor
	bySymbol   map[string]*Descriptor
	categories map[Category][]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops:        make(map[string]*Descriptor),
		bySymbol:   make(map[string]*Descriptor),
		categories: make(map[Category][]*Descriptor),
	}
}

// Register adds a descriptor, rejecting duplicate ids and duplicate symbols.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil || d.ID == "" {
		return fmt.Errorf("operator descriptor requires an id")
	}
	if d.Evaluate == nil {
		return fmt.Errorf("operator %s has no evaluation rule", d.ID)
	}

	id := strings.ToUpper(d.ID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ops[id]; exists {
		return fmt.Errorf("operator %s already registered", id)
	}
	if d.Symbol != "" {
		if prev, exists := r.bySymbol[d.Symbol]; exists {
			return fmt.Errorf("symbol %q already bound to operator %s", d.Symbol, prev.ID)
		}
	}

	d.ID = id
	r.ops[id] = d
	if d.Symbol != "" {
		r.bySymbol[d.Symbol] = d
	}
	r.categories[d.Category] = append(r.categories[d.Category], d)
	return nil
}

// Get returns the descriptor for an id, case-insensitively.
func (r *Registry) Get(id string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.ops[strings.ToUpper(id)]
	return d, ok
}

// BySymbol returns the descriptor bound to an infix symbol.
func (r *Registry) BySymbol(symbol string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.bySymbol[symbol]
	return d, ok
}

// ByCategory returns the descriptors of one family in registration order.
// The returned slice is a copy and safe to iterate repeatedly.
func (r *Registry) ByCategory(c Category) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, len(r.categories[c]))
	copy(out, r.categories[c])
	return out
}

// Categories returns the non-empty categories in sorted order.
func (r *Registry) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, 0, len(r.categories))
	for c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ListAll returns a copy of the full id→descriptor map.
func (r *Registry) ListAll() map[string]*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Descriptor, len(r.ops))
	for id, d := range r.ops {
		out[id] = d
	}
	return out
}

// defaultRegistry is the global catalog, populated by init.
var defaultRegistry = NewRegistry()

// Default returns the global registry.
func Default() *Registry { return defaultRegistry }

// Register adds a descriptor to the global registry.
func Register(d *Descriptor) error { return defaultRegistry.Register(d) }

// Get looks an operator up in the global registry.
func Get(id string) (*Descriptor, bool) { return defaultRegistry.Get(id) }

// BySymbol looks an infix symbol up in the global registry.
func BySymbol(symbol string) (*Descriptor, bool) { return defaultRegistry.BySymbol(symbol) }

// ByCategory enumerates one family of the global registry.
func ByCategory(c Category) []*Descriptor { return defaultRegistry.ByCategory(c) }

// Categories enumerates the global registry's families.
func Categories() []Category { return defaultRegistry.Categories() }

// ListAll lists the global registry.
func ListAll() map[string]*Descriptor { return defaultRegistry.ListAll() }

// RegisterCustomOperator registers a host-supplied operator with the given
// arity bounds and evaluation rule. Intended for init time only.
func RegisterCustomOperator(id, displayName string, category Category,
	minArgs, maxArgs int, output types.Kind, eval EvalFunc) error {

	return Register(&Descriptor{
		ID:          id,
		DisplayName: displayName,
		Category:    category,
		OutputType:  output,
		MinArgs:     minArgs,
		MaxArgs:     maxArgs,
		Evaluate:    eval,
	})
}

// Execute looks up an operator, validates arity and runs its evaluation
// rule. Unknown ids surface ErrNotFound.
func Execute(id string, ctx *Context, args []types.Value) (types.Value, error) {
	d, ok := Get(id)
	if !ok {
		return types.Null(), fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := d.ValidateArgCount(len(args)); err != nil {
		return types.Null(), err
	}
	if ctx == nil {
		ctx = &Context{}
	}
	return d.Evaluate(ctx, args)
}
