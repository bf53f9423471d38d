package expr

import (
	"container/list"
	"sync"

	"github.com/clovenbradshaw-ctrl/fieldformula/logger"
)

// DefaultCacheCapacity bounds the parse cache when no capacity is configured.
const DefaultCacheCapacity = 1000

// cacheEntry is one cached parse, stored in the recency list.
type cacheEntry struct {
	key    string
	result *ParseResult
}

// Parser memoizes Parse results in a bounded LRU cache. The cache is the
// only shared mutable state in the engine, so insert, promotion and eviction
// all run under one lock; parse results themselves are immutable and every
// retrieval hands out a fresh dependency slice.
type Parser struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
	log      logger.Logger
}

// NewParser creates a caching parser. A capacity below 1 falls back to
// DefaultCacheCapacity.
func NewParser(capacity int, log logger.Logger) *Parser {
	if capacity < 1 {
		capacity = DefaultCacheCapacity
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Parser{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
		log:      log,
	}
}

// Parse returns the memoized parse of source, parsing on miss. Failed parses
// are returned but never cached; the same broken text re-parses next call.
func (p *Parser) Parse(source string) *ParseResult {
	p.mu.Lock()
	if el, ok := p.items[source]; ok {
		p.ll.MoveToFront(el)
		res := el.Value.(*cacheEntry).result
		p.mu.Unlock()
		return res.clone()
	}
	p.mu.Unlock()

	result := Parse(source)
	if !result.Valid {
		p.log.Debug("parse failed: %s", result.Error)
		return result
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another goroutine may have parsed the same source meanwhile; keep the
	// existing entry and hand out a copy of ours, they are equivalent.
	if _, ok := p.items[source]; !ok {
		if p.ll.Len() >= p.capacity {
			p.evict()
		}
		p.items[source] = p.ll.PushFront(&cacheEntry{key: source, result: result})
	}
	return result.clone()
}

// Len returns the number of cached parses.
func (p *Parser) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ll.Len()
}

// evict drops the least recently used entry. Caller holds the lock.
func (p *Parser) evict() {
	back := p.ll.Back()
	if back == nil {
		return
	}
	entry := back.Value.(*cacheEntry)
	p.ll.Remove(back)
	delete(p.items, entry.key)
	p.log.Debug("parse cache evicted: %q", entry.key)
}
