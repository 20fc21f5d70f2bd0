package calendarific

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/studentplanner/core/internal/infrastructure/config"
	"github.com/studentplanner/core/internal/infrastructure/logger"
)

func testClient(baseURL string) *Client {
	return New(config.HolidaysConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Country:        "PH",
		Timeout:        2 * time.Second,
		RequestsPerSec: 1000,
	}, logger.NewNop())
}

func TestFetchYearNormalizes(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"response": {
				"holidays": [
					{
						"name": "New Year's Day",
						"description": "First day of the year",
						"date": {"iso": "2025-01-01"},
						"type": ["National holiday", "Public"]
					},
					{
						"name": "Araw ng Kagitingan",
						"date": {"iso": "2025-04-09T00:00:00Z"},
						"type": []
					},
					{
						"name": "",
						"date": {"iso": "2025-05-01"}
					},
					{
						"name": "Broken Date",
						"date": {"iso": "someday"}
					}
				]
			}
		}`))
	}))
	defer srv.Close()

	holidays, err := testClient(srv.URL).FetchYear(context.Background(), 2025)
	if err != nil {
		t.Fatalf("FetchYear: %v", err)
	}

	if gotQuery != "api_key=test-key&country=PH&year=2025" {
		t.Errorf("unexpected upstream query: %s", gotQuery)
	}

	// Nameless and unparsable-date records are skipped.
	if len(holidays) != 2 {
		t.Fatalf("expected 2 holidays, got %d: %+v", len(holidays), holidays)
	}

	first := holidays[0]
	if first.ID != "new-year-s-day-2025-01-01" {
		t.Errorf("id = %q", first.ID)
	}
	if first.Type != "National holiday" || first.Description != "First day of the year" {
		t.Errorf("first holiday = %+v", first)
	}
	if !first.IsOfficial {
		t.Error("fetched holiday not flagged official")
	}

	second := holidays[1]
	if second.Date != "2025-04-09" {
		t.Errorf("timestamped iso date not truncated: %q", second.Date)
	}
	if second.Type != "Official" {
		t.Errorf("missing type should default to Official, got %q", second.Type)
	}
	if second.Description != "" {
		t.Errorf("missing description should default to empty, got %q", second.Description)
	}
}

func TestFetchYearUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).FetchYear(context.Background(), 2025); err == nil {
		t.Error("expected error for upstream 500")
	}
}

func TestFetchYearMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).FetchYear(context.Background(), 2025); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestFetchYearTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	if _, err := testClient(srv.URL).FetchYear(context.Background(), 2025); err == nil {
		t.Error("expected error for unreachable upstream")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct{ in, want string }{
		{"New Year's Day", "new-year-s-day"},
		{"Eid al-Fitr", "eid-al-fitr"},
		{"  All Saints' Day  ", "all-saints-day"},
		{"EDSA Revolution Anniversary", "edsa-revolution-anniversary"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
