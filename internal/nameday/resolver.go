package nameday

import (
	"log/slog"
	"slices"

	"github.com/bgcalendar/nameday-api/internal/calendar"
)

// Resolver projects the movable-holiday catalogue onto concrete calendar
// dates for a given year.
type Resolver struct {
	catalogue []MovableHoliday
	logger    *slog.Logger
}

// NewResolver creates a resolver over an immutable catalogue.
func NewResolver(catalogue []MovableHoliday, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{catalogue: catalogue, logger: logger}
}

// MovableDates computes the concrete (month, day) of every catalogue
// holiday for a year by offsetting from Orthodox Easter. Offsets roll
// across month boundaries, e.g. an early-April Easter with offset -43
// lands in February.
func (r *Resolver) MovableDates(year int) map[string]MonthDay {
	easter := calendar.OrthodoxEaster(year)
	dates := make(map[string]MonthDay, len(r.catalogue))
	for _, h := range r.catalogue {
		d := easter.AddDate(0, 0, h.OffsetDays)
		dates[h.ID] = MonthDay{Month: int(d.Month()), Day: d.Day()}
	}
	return dates
}

// ResolveEntryDate returns the authoritative date of an entry for a year.
// Fixed entries return their own date with ok=true. Movable entries are
// looked up in the catalogue; if the id is missing (catalogue drift, not a
// normal condition) the entry's placeholder date is returned with ok=false.
func (r *Resolver) ResolveEntryDate(e *Entry, year int) (MonthDay, bool) {
	if e.MovableID == "" {
		return MonthDay{Month: e.Month, Day: e.Day}, true
	}
	return r.resolveEntryDate(e, r.MovableDates(year))
}

func (r *Resolver) resolveEntryDate(e *Entry, dates map[string]MonthDay) (MonthDay, bool) {
	if e.MovableID == "" {
		return MonthDay{Month: e.Month, Day: e.Day}, true
	}
	d, ok := dates[e.MovableID]
	if !ok {
		r.logger.Warn("movable id missing from catalogue, using placeholder date",
			slog.String("movable_id", e.MovableID),
			slog.String("name", e.Name))
		return MonthDay{Month: e.Month, Day: e.Day}, false
	}
	return d, true
}

// ExpandRoster emits a complete Entry for every roster member of every
// movable holiday, with Month and Day set to the year's resolved date so
// downstream consumers never re-resolve.
func (r *Resolver) ExpandRoster(year int) []*Entry {
	dates := r.MovableDates(year)
	var entries []*Entry
	for _, h := range r.catalogue {
		d, ok := dates[h.ID]
		if !ok {
			continue
		}
		for _, n := range h.Roster {
			entries = append(entries, &Entry{
				Name:         n.Name,
				Variants:     slices.Clone(n.Variants),
				Latin:        slices.Clone(n.Latin),
				Month:        d.Month,
				Day:          d.Day,
				Holiday:      h.Holiday,
				HolidayLatin: h.HolidayLatin,
				Tradition:    h.Tradition,
				MovableID:    h.ID,
			})
		}
	}
	return entries
}
