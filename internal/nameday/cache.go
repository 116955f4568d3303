package nameday

import (
	"slices"
	"sync"
)

// Cache memoizes built indexes by year. An index is built at most once per
// year and the same instance is returned on every later call. There is no
// eviction: the resident set grows with the number of distinct years
// queried, which stays small for this dataset.
type Cache struct {
	mu     sync.Mutex
	byYear map[int]*Index

	fixed    []*Entry
	resolver *Resolver
}

func newCache(fixed []*Entry, resolver *Resolver) *Cache {
	return &Cache{
		byYear:   make(map[int]*Index),
		fixed:    fixed,
		resolver: resolver,
	}
}

// Index returns the index for a year, building it on first access. The
// build-and-publish step runs under the lock so a concurrent first access
// for the same year cannot produce two instances.
func (c *Cache) Index(year int) *Index {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.byYear[year]; ok {
		return idx
	}
	idx := buildIndex(c.fixed, c.resolver, year)
	c.byYear[year] = idx
	return idx
}

// Years reports which years currently have a resident index, sorted.
func (c *Cache) Years() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	years := make([]int, 0, len(c.byYear))
	for y := range c.byYear {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}
