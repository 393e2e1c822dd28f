package validator

import (
	"container/list"
	"regexp"
	"sync"
)

// Patterns compiled from configuration (character classes, custom username
// formats) are cached so repeated validation calls do not recompile them.
var patterns = newPatternCache(256)

type compiled struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// patternCache is a bounded LRU of compiled expressions. Compile failures are
// cached as well, an invalid pattern stays invalid.
type patternCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newPatternCache(capacity int) *patternCache {
	if capacity <= 0 {
		panic("pattern cache capacity must be positive")
	}
	return &patternCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// compile returns the cached expression for pattern, compiling it on a miss.
func (c *patternCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[pattern]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*compiled)
		return entry.re, entry.err
	}

	re, err := regexp.Compile(pattern)
	c.items[pattern] = c.eviction.PushFront(&compiled{pattern: pattern, re: re, err: err})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}

	return re, err
}

// match reports whether value matches pattern. An invalid pattern never matches.
func (c *patternCache) match(pattern, value string) bool {
	re, err := c.compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Must be called with lock held.
func (c *patternCache) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*compiled).pattern)
}
