package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bgcalendar/nameday-api/internal/calendar"
	"github.com/bgcalendar/nameday-api/internal/config"
	"github.com/bgcalendar/nameday-api/internal/nameday"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	svc    *nameday.Service
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(svc *nameday.Service, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		svc:    svc,
		cfg:    cfg,
		logger: logger,
	}
}

var monthDayPattern = regexp.MustCompile(`^\d{2}-\d{2}$`)

// easterYearRange bounds the years for which the Easter calculation holds.
const (
	easterYearMin = 1900
	easterYearMax = 2099
)

// HealthCheck handles GET /health.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// yearParam reads an optional ?year= query parameter. Zero means the
// current year.
func yearParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}

// GetName handles GET /api/v1/names/{name}.
// Returns the name-day record(s) for a single name, matched against the
// canonical form, variants, or Latin transliteration.
func (h *Handlers) GetName(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		WriteBadRequest(w, "Invalid name parameter")
		return
	}

	year, err := yearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	results := h.svc.FindByName(name, year)
	if len(results) == 0 {
		WriteNotFound(w, fmt.Sprintf("No name day found for %q", name))
		return
	}

	WriteSuccess(w, results)
}

// GetToday handles GET /api/v1/dates/today.
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	names := h.svc.NamesOn(now)

	WriteSuccess(w, map[string]any{
		"date":  calendar.FormatDate(now),
		"names": names,
		"count": len(names),
	})
}

// GetDate handles GET /api/v1/dates/{date}.
// The date is a zero-padded "MM-DD" key; an optional ?year= parameter
// drives movable-feast resolution.
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !monthDayPattern.MatchString(date) {
		WriteBadRequest(w, "Date must be in MM-DD format, e.g. 05-06")
		return
	}

	year, err := yearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	names := h.svc.NamesOnDate(date, year)

	WriteSuccess(w, map[string]any{
		"date":  date,
		"names": names,
		"count": len(names),
	})
}

// Check handles GET /api/v1/check?name=X&date=YYYY-MM-DD.
// Reports whether the name celebrates on the given date. The date
// defaults to today.
func (h *Handlers) Check(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		WriteBadRequest(w, "Missing name parameter")
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := calendar.ParseDateString(raw)
		if err != nil {
			WriteBadRequest(w, "Date must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	WriteSuccess(w, map[string]any{
		"name":        name,
		"date":        calendar.FormatDate(date),
		"celebrating": h.svc.IsCelebrating(name, date),
	})
}

// Search handles GET /api/v1/search?q=prefix.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		WriteBadRequest(w, "Missing q parameter")
		return
	}

	year, err := yearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	results := h.svc.SearchByPrefix(query, year)

	WriteSuccess(w, map[string]any{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

// GetHolidayNames handles GET /api/v1/holidays/{holiday}/names.
// Matches holidays whose name contains the query as a substring.
func (h *Handlers) GetHolidayNames(w http.ResponseWriter, r *http.Request) {
	holiday, err := url.PathUnescape(chi.URLParam(r, "holiday"))
	if err != nil {
		WriteBadRequest(w, "Invalid holiday parameter")
		return
	}

	year, err := yearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	names := h.svc.NamesForHoliday(holiday, year)
	if len(names) == 0 {
		WriteNotFound(w, fmt.Sprintf("No holiday matching %q", holiday))
		return
	}

	WriteSuccess(w, map[string]any{
		"holiday": holiday,
		"names":   names,
		"count":   len(names),
	})
}

// GetUpcoming handles GET /api/v1/upcoming?days=N&from=YYYY-MM-DD.
// Days defaults to 7 and is capped at 366; from defaults to today.
func (h *Handlers) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteBadRequest(w, "days must be a positive integer")
			return
		}
		days = parsed
	}
	if days > 366 {
		days = 366
	}

	var from time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := calendar.ParseDateString(raw)
		if err != nil {
			WriteBadRequest(w, "from must be in YYYY-MM-DD format")
			return
		}
		from = parsed
	}

	results := h.svc.Upcoming(days, from)

	WriteSuccess(w, map[string]any{
		"days":    days,
		"results": results,
		"count":   len(results),
	})
}

// GetEaster handles GET /api/v1/easter/{year}.
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}
	if year < easterYearMin || year > easterYearMax {
		WriteBadRequest(w, fmt.Sprintf("Year must be between %d and %d", easterYearMin, easterYearMax))
		return
	}

	easter := calendar.OrthodoxEaster(year)

	WriteSuccess(w, map[string]any{
		"year":   year,
		"easter": calendar.FormatDate(easter),
	})
}

// GetCacheInfo handles GET /api/v1/admin/cache.
// Reports which years currently hold a resident index.
func (h *Handlers) GetCacheInfo(w http.ResponseWriter, r *http.Request) {
	years := h.svc.CachedYears()

	WriteSuccess(w, map[string]any{
		"cachedYears": years,
		"count":       len(years),
	})
}
