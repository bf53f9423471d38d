package expr

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovenbradshaw-ctrl/fieldformula/logger"
)

func newTestParser(capacity int) *Parser {
	return NewParser(capacity, logger.NewDiscardLogger())
}

func TestParserCachesValidResults(t *testing.T) {
	p := newTestParser(10)

	first := p.Parse("{A} + 1")
	require.True(t, first.Valid)
	assert.Equal(t, 1, p.Len())

	second := p.Parse("{A} + 1")
	require.True(t, second.Valid)
	assert.Equal(t, 1, p.Len())
	assert.Same(t, first.AST, second.AST, "cached retrievals share the AST")
}

func TestParserHandsOutFreshDependencySlices(t *testing.T) {
	p := newTestParser(10)

	first := p.Parse("{A} + {B}")
	second := p.Parse("{A} + {B}")

	first.Dependencies[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, second.Dependencies)

	third := p.Parse("{A} + {B}")
	assert.Equal(t, []string{"A", "B"}, third.Dependencies)
}

func TestParserNeverCachesErrors(t *testing.T) {
	p := newTestParser(10)

	res := p.Parse("1 +")
	assert.False(t, res.Valid)
	assert.Equal(t, 0, p.Len())

	res = p.Parse("1 +")
	assert.False(t, res.Valid)
	assert.Equal(t, 0, p.Len())
}

func TestParserEvictsLeastRecentlyUsed(t *testing.T) {
	p := newTestParser(2)

	p.Parse("{A}")
	p.Parse("{B}")
	assert.Equal(t, 2, p.Len())

	// Touch {A} so {B} becomes the eviction candidate.
	p.Parse("{A}")
	p.Parse("{C}")
	assert.Equal(t, 2, p.Len())

	a1 := p.Parse("{A}")
	a2 := p.Parse("{A}")
	assert.Same(t, a1.AST, a2.AST, "{A} survived eviction")

	b1 := p.Parse("{B}")
	assert.True(t, b1.Valid, "evicted sources still re-parse fine")
}

func TestParserCapacityFallback(t *testing.T) {
	p := NewParser(0, nil)
	assert.NotNil(t, p)

	for i := 0; i < 5; i++ {
		p.Parse(fmt.Sprintf("{F%d}", i))
	}
	assert.Equal(t, 5, p.Len())
}

func TestParserConcurrentAccess(t *testing.T) {
	p := newTestParser(50)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				src := fmt.Sprintf("{F%d} + %d", i%10, g)
				res := p.Parse(src)
				assert.True(t, res.Valid)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, p.Len(), 50)
}
