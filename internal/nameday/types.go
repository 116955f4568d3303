// Package nameday implements the Bulgarian name-day engine: movable feast
// resolution against Orthodox Easter, per-year indexing of the name-day
// dataset, and the public lookup operations.
package nameday

// Tradition identifies the calendar tradition an entry belongs to.
type Tradition string

const (
	TraditionOrthodox Tradition = "orthodox"
	TraditionFolk     Tradition = "folk"
	TraditionBoth     Tradition = "both"
)

// MonthDay is a concrete calendar date without a year. Month and Day are
// 1-based.
type MonthDay struct {
	Month int
	Day   int
}

// Entry is one name-day record as stored in the dataset.
//
// For a fixed entry (MovableID == "") Month and Day are the authoritative
// date. For a movable entry they are meaningless placeholders; the
// authoritative date for a year comes only from the resolver. Entries
// emitted by the resolver carry the resolved date, so everything reachable
// through an Index is already concrete.
type Entry struct {
	Name         string
	Variants     []string
	Latin        []string
	Month        int
	Day          int
	Holiday      string
	HolidayLatin string
	Tradition    Tradition
	MovableID    string
}

// RosterName is one name record inside a movable holiday's roster.
type RosterName struct {
	Name     string
	Variants []string
	Latin    []string
}

// MovableHoliday is one catalogue record for a feast whose date is defined
// as a signed day offset from Orthodox Easter.
type MovableHoliday struct {
	ID           string
	Holiday      string
	HolidayLatin string
	OffsetDays   int
	Tradition    Tradition
	Roster       []RosterName
}

// Result is the public projection of an entry. Every Result is freshly
// constructed with its own variant slice; mutating one never affects the
// index or other callers.
type Result struct {
	Name         string    `json:"name"`
	Month        int       `json:"month"`
	Day          int       `json:"day"`
	Holiday      string    `json:"holiday"`
	HolidayLatin string    `json:"holidayLatin"`
	Tradition    Tradition `json:"tradition"`
	Variants     []string  `json:"variants"`
	IsMovable    bool      `json:"isMovable"`
}

// SearchResult is one prefix-search hit: a (name, date) pair and the
// holiday it falls on.
type SearchResult struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Holiday string `json:"holiday"`
}

// UpcomingDay is one holiday on one scanned day, with all celebrating
// names for that holiday.
type UpcomingDay struct {
	Month   int      `json:"month"`
	Day     int      `json:"day"`
	Holiday string   `json:"holiday"`
	Names   []string `json:"names"`
}
