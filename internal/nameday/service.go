package nameday

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"
)

// Clock abstracts "now" so tests can pin the current date.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Service implements the public lookup operations over the per-year index
// cache. All free-text input is normalized before matching. Invalid or
// unknown input yields an empty result, never an error: a name that is not
// in the dataset is an expected outcome.
type Service struct {
	cache  *Cache
	clock  Clock
	logger *slog.Logger
}

// NewService builds a Service over the given dataset. Both the fixed
// entries and the movable catalogue are treated as immutable after this
// call; no write path exists afterwards.
func NewService(fixed []Entry, catalogue []MovableHoliday, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	ptrs := make([]*Entry, len(fixed))
	for i := range fixed {
		ptrs[i] = &fixed[i]
	}
	return &Service{
		cache:  newCache(ptrs, NewResolver(catalogue, logger)),
		clock:  systemClock{},
		logger: logger,
	}
}

// WithClock replaces the service clock. Intended for tests.
func (s *Service) WithClock(c Clock) *Service {
	s.clock = c
	return s
}

// year resolves an optional year parameter; values <= 0 mean the current
// calendar year.
func (s *Service) year(year int) int {
	if year > 0 {
		return year
	}
	return s.clock.Now().Year()
}

// toResult projects an entry into a fresh Result with its own variant
// slice, so callers can safely mutate what they get back.
func toResult(e *Entry) Result {
	return Result{
		Name:         e.Name,
		Month:        e.Month,
		Day:          e.Day,
		Holiday:      e.Holiday,
		HolidayLatin: e.HolidayLatin,
		Tradition:    e.Tradition,
		Variants:     slices.Clone(e.Variants),
		IsMovable:    e.MovableID != "",
	}
}

// FindByName returns the name-day record(s) for a name, matched against
// the canonical form, any variant, or any Latin transliteration,
// case-insensitively. A name celebrating on several dates yields one
// record per distinct (name, date) pair, in index order. Nil means no
// match.
func (s *Service) FindByName(name string, year int) []Result {
	key := normalizeKey(name)
	if key == "" {
		return nil
	}

	idx := s.cache.Index(s.year(year))
	entries := idx.byName[key]
	if len(entries) == 0 {
		return nil
	}

	// The same entry is reachable through its canonical key and each of
	// its variant and Latin keys; dedup by (name, date).
	seen := make(map[string]bool, len(entries))
	var results []Result
	for _, e := range entries {
		k := e.Name + "|" + dateKey(e.Month, e.Day)
		if seen[k] {
			continue
		}
		seen[k] = true
		results = append(results, toResult(e))
	}
	return results
}

// NamesOnDate returns every celebrating name (canonical plus variants) for
// a zero-padded "MM-DD" key, in index order. Each entry contributes its
// own names once; names are not deduplicated across entries.
func (s *Service) NamesOnDate(date string, year int) []string {
	key := strings.TrimSpace(date)
	if !isDateKey(key) {
		return nil
	}
	return s.namesForKey(key, s.year(year))
}

// NamesOn returns the celebrating names for a concrete date. The date's
// own year drives movable resolution.
func (s *Service) NamesOn(date time.Time) []string {
	if date.IsZero() {
		return nil
	}
	return s.namesForKey(dateKey(int(date.Month()), date.Day()), date.Year())
}

func (s *Service) namesForKey(key string, year int) []string {
	idx := s.cache.Index(year)
	entries := idx.byDate[key]
	if len(entries) == 0 {
		return nil
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
		names = append(names, e.Variants...)
	}
	return names
}

// TodayNames returns the names celebrating on the current day.
func (s *Service) TodayNames() []string {
	return s.NamesOn(s.clock.Now())
}

// IsCelebrating reports whether the name has its name day on the given
// date, with movable feasts resolved against the date's year.
func (s *Service) IsCelebrating(name string, date time.Time) bool {
	key := normalizeKey(name)
	if key == "" || date.IsZero() {
		return false
	}

	idx := s.cache.Index(date.Year())
	month, day := int(date.Month()), date.Day()
	for _, e := range idx.byName[key] {
		if e.Month == month && e.Day == day {
			return true
		}
	}
	return false
}

// SearchByPrefix scans every name key for the normalized prefix and
// returns one record per distinct (name, date) pair reached, sorted by
// date then name. A name reached through two prefix-matching keys (say
// its Cyrillic and Latin forms) appears once per date.
func (s *Service) SearchByPrefix(prefix string, year int) []SearchResult {
	key := normalizeKey(prefix)
	if key == "" {
		return nil
	}

	idx := s.cache.Index(s.year(year))
	seen := make(map[string]bool)
	var results []SearchResult
	for nameKey, entries := range idx.byName {
		if !strings.HasPrefix(nameKey, key) {
			continue
		}
		for _, e := range entries {
			dk := dateKey(e.Month, e.Day)
			rk := e.Name + "|" + dk
			if seen[rk] {
				continue
			}
			seen[rk] = true
			results = append(results, SearchResult{Name: e.Name, Date: dk, Holiday: e.Holiday})
		}
	}

	// Map iteration order is random; fix a stable output order.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Date != results[j].Date {
			return results[i].Date < results[j].Date
		}
		return results[i].Name < results[j].Name
	})
	return results
}

// NamesForHoliday returns the deduplicated celebrating names of every
// holiday whose normalized name contains the query as a substring. First
// occurrence wins; matching holiday keys are visited in sorted order so
// output is stable.
func (s *Service) NamesForHoliday(query string, year int) []string {
	key := normalizeKey(query)
	if key == "" {
		return nil
	}

	idx := s.cache.Index(s.year(year))
	var matched []string
	for hk := range idx.byHoliday {
		if strings.Contains(hk, key) {
			matched = append(matched, hk)
		}
	}
	slices.Sort(matched)

	seen := make(map[string]bool)
	var names []string
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for _, hk := range matched {
		for _, e := range idx.byHoliday[hk] {
			add(e.Name)
			for _, v := range e.Variants {
				add(v)
			}
		}
	}
	return names
}

// Upcoming scans day by day from start (inclusive) for windowDays days and
// returns the celebrations in calendar order. Entries on one day are
// grouped by holiday, each group carrying the deduplicated union of
// canonical and variant names. Every scanned day resolves against its own
// year, so a window crossing December 31 uses the following year's Easter
// for the January dates.
func (s *Service) Upcoming(windowDays int, start time.Time) []UpcomingDay {
	if windowDays < 1 {
		return nil
	}
	if start.IsZero() {
		start = s.clock.Now()
	}

	var results []UpcomingDay
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i)
		idx := s.cache.Index(day.Year())
		entries := idx.byDate[dateKey(int(day.Month()), day.Day())]
		if len(entries) == 0 {
			continue
		}

		var order []string
		groups := make(map[string][]string)
		seen := make(map[string]map[string]bool)
		for _, e := range entries {
			if _, ok := seen[e.Holiday]; !ok {
				order = append(order, e.Holiday)
				seen[e.Holiday] = make(map[string]bool)
			}
			add := func(n string) {
				if !seen[e.Holiday][n] {
					seen[e.Holiday][n] = true
					groups[e.Holiday] = append(groups[e.Holiday], n)
				}
			}
			add(e.Name)
			for _, v := range e.Variants {
				add(v)
			}
		}

		for _, h := range order {
			results = append(results, UpcomingDay{
				Month:   int(day.Month()),
				Day:     day.Day(),
				Holiday: h,
				Names:   groups[h],
			})
		}
	}
	return results
}

// All returns every entry for the year, fixed plus resolved movable, as
// independent result records in index order.
func (s *Service) All(year int) []Result {
	idx := s.cache.Index(s.year(year))
	results := make([]Result, len(idx.entries))
	for i, e := range idx.entries {
		results[i] = toResult(e)
	}
	return results
}

// CachedYears reports which years currently have a resident index.
func (s *Service) CachedYears() []int {
	return s.cache.Years()
}
