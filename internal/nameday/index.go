package nameday

// Index is the per-year lookup structure: three maps over one entry set,
// plus the flat set itself in insertion order. An Index is fully built
// before it is published and never mutated afterwards, so concurrent
// readers need no locking.
type Index struct {
	byName    map[string][]*Entry
	byDate    map[string][]*Entry
	byHoliday map[string][]*Entry
	entries   []*Entry
	year      int
}

// buildIndex merges the fixed entries with the year's resolved movable
// entries. Each entry is registered under its name keys (canonical form,
// every variant, every Latin form), its "MM-DD" date key, and its
// normalized holiday key. Buckets keep insertion order: fixed entries
// first, then movable, both in catalogue order.
func buildIndex(fixed []*Entry, resolver *Resolver, year int) *Index {
	movable := resolver.ExpandRoster(year)

	idx := &Index{
		byName:    make(map[string][]*Entry),
		byDate:    make(map[string][]*Entry),
		byHoliday: make(map[string][]*Entry),
		entries:   make([]*Entry, 0, len(fixed)+len(movable)),
		year:      year,
	}
	for _, e := range fixed {
		idx.add(e)
	}
	for _, e := range movable {
		idx.add(e)
	}
	return idx
}

func (idx *Index) add(e *Entry) {
	idx.entries = append(idx.entries, e)

	idx.byName[normalizeKey(e.Name)] = append(idx.byName[normalizeKey(e.Name)], e)
	for _, v := range e.Variants {
		k := normalizeKey(v)
		idx.byName[k] = append(idx.byName[k], e)
	}
	for _, l := range e.Latin {
		k := normalizeKey(l)
		idx.byName[k] = append(idx.byName[k], e)
	}

	dk := dateKey(e.Month, e.Day)
	idx.byDate[dk] = append(idx.byDate[dk], e)

	hk := normalizeKey(e.Holiday)
	idx.byHoliday[hk] = append(idx.byHoliday[hk], e)
}

// Year reports which year this index was built for.
func (idx *Index) Year() int {
	return idx.year
}
