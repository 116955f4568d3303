package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bgcalendar/nameday-api/internal/config"
	"github.com/bgcalendar/nameday-api/internal/nameday"
	"github.com/bgcalendar/nameday-api/internal/nameday/namedata"
)

func testRouter(cfg *config.Config) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := nameday.NewService(namedata.Fixed, namedata.MovableHolidays, logger)
	return SetupRoutes(svc, cfg, logger)
}

func devConfig() *config.Config {
	return &config.Config{
		Port:      8080,
		Env:       config.EnvDevelopment,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func doRequest(t *testing.T, handler http.Handler, method, path string, headers map[string]string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, resp
}

func dataMap(t *testing.T, resp Response) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("response data is %T, want object", resp.Data)
	}
	return m
}

func TestHealthCheck(t *testing.T) {
	rec, resp := doRequest(t, testRouter(devConfig()), http.MethodGet, "/health", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !resp.Success {
		t.Error("expected success response")
	}
	if dataMap(t, resp)["status"] != "healthy" {
		t.Error("expected healthy status")
	}
}

func TestGetName(t *testing.T) {
	router := testRouter(devConfig())

	t.Run("known name", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/names/Георги", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		results, ok := resp.Data.([]any)
		if !ok || len(results) != 1 {
			t.Fatalf("expected one result, got %v", resp.Data)
		}
		first := results[0].(map[string]any)
		if first["name"] != "Георги" {
			t.Errorf("name = %v, want Георги", first["name"])
		}
		if first["holiday"] != "Гергьовден" {
			t.Errorf("holiday = %v, want Гергьовден", first["holiday"])
		}
	})

	t.Run("movable name with year", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/names/Цветан?year=2026", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		results := resp.Data.([]any)
		first := results[0].(map[string]any)
		if first["month"] != float64(4) || first["day"] != float64(5) {
			t.Errorf("date = %v-%v, want 4-5", first["month"], first["day"])
		}
		if first["isMovable"] != true {
			t.Error("expected movable result")
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/names/Несъществуващ", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if resp.Success || resp.Error == nil {
			t.Error("expected error response")
		}
	})

	t.Run("invalid year", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/names/Георги?year=abc", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestGetToday(t *testing.T) {
	rec, resp := doRequest(t, testRouter(devConfig()), http.MethodGet, "/api/v1/dates/today", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := dataMap(t, resp)
	if _, ok := data["date"]; !ok {
		t.Error("expected date field")
	}
	if _, ok := data["count"]; !ok {
		t.Error("expected count field")
	}
}

func TestGetDate(t *testing.T) {
	router := testRouter(devConfig())

	t.Run("valid date", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/dates/05-06", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		data := dataMap(t, resp)
		if data["count"].(float64) < 1 {
			t.Error("expected names on May 6")
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/dates/5-6", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestCheck(t *testing.T) {
	router := testRouter(devConfig())

	t.Run("celebrating", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/check?name=Георги&date=2026-05-06", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if dataMap(t, resp)["celebrating"] != true {
			t.Error("expected celebrating = true")
		}
	})

	t.Run("not celebrating", func(t *testing.T) {
		_, resp := doRequest(t, router, http.MethodGet, "/api/v1/check?name=Георги&date=2026-05-07", nil)
		if dataMap(t, resp)["celebrating"] != false {
			t.Error("expected celebrating = false")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/check?date=2026-05-06", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/check?name=Георги&date=06.05.2026", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestSearch(t *testing.T) {
	router := testRouter(devConfig())

	t.Run("prefix match", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/search?q=Цвет&year=2026", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if dataMap(t, resp)["count"] != float64(3) {
			t.Errorf("count = %v, want 3", dataMap(t, resp)["count"])
		}
	})

	t.Run("missing query", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/search", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestGetHolidayNames(t *testing.T) {
	router := testRouter(devConfig())

	t.Run("known holiday", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/holidays/Гергьовден/names", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if dataMap(t, resp)["count"].(float64) < 1 {
			t.Error("expected names for Гергьовден")
		}
	})

	t.Run("unknown holiday", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/holidays/Никаквден/names", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestGetUpcoming(t *testing.T) {
	router := testRouter(devConfig())

	t.Run("explicit window", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/upcoming?days=3&from=2026-05-05", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		data := dataMap(t, resp)
		if data["days"] != float64(3) {
			t.Errorf("days = %v, want 3", data["days"])
		}
		// May 5 (Ирина) and May 6 (Гергьовден) both fall in the window.
		if data["count"].(float64) < 2 {
			t.Errorf("count = %v, want at least 2", data["count"])
		}
	})

	t.Run("default window", func(t *testing.T) {
		_, resp := doRequest(t, router, http.MethodGet, "/api/v1/upcoming", nil)
		if dataMap(t, resp)["days"] != float64(7) {
			t.Error("expected default 7-day window")
		}
	})

	t.Run("invalid days", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/upcoming?days=abc", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("oversized window is capped", func(t *testing.T) {
		_, resp := doRequest(t, router, http.MethodGet, "/api/v1/upcoming?days=9999&from=2026-01-01", nil)
		if dataMap(t, resp)["days"] != float64(366) {
			t.Error("expected window capped at 366 days")
		}
	})
}

func TestGetEaster(t *testing.T) {
	router := testRouter(devConfig())

	t.Run("known year", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/easter/2026", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if dataMap(t, resp)["easter"] != "2026-04-12" {
			t.Errorf("easter = %v, want 2026-04-12", dataMap(t, resp)["easter"])
		}
	})

	t.Run("year out of range", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/easter/1800", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("non-numeric year", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/easter/abc", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestAdminCacheAuth(t *testing.T) {
	cfg := devConfig()
	cfg.Env = config.EnvProduction
	cfg.APIKey = "test-key"
	router := testRouter(cfg)

	t.Run("missing key", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/admin/cache", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/admin/cache", map[string]string{"X-API-Key": "wrong"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid key", func(t *testing.T) {
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/admin/cache", map[string]string{"X-API-Key": "test-key"})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if _, ok := dataMap(t, resp)["cachedYears"]; !ok {
			t.Error("expected cachedYears field")
		}
	})

	t.Run("open in development without key", func(t *testing.T) {
		rec, _ := doRequest(t, testRouter(devConfig()), http.MethodGet, "/api/v1/admin/cache", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})
}
