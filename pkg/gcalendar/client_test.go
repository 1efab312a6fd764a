package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"markdown-task-calendar/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const mockCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClient(t *testing.T) {
	dir := t.TempDir()

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app with saved token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		tok := &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
		if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
			t.Fatalf("SaveToken: %v", err)
		}

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}

		got, err := gcalendar.ReadToken(tokenPath)
		if err != nil || got.AccessToken != "dummy" {
			t.Errorf("ReadToken() = %+v, %v", got, err)
		}
	})

	t.Run("Installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "bad.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Missing credentials file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "missing.json"), ""); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestUpsertEvent(t *testing.T) {
	t.Run("Update existing", func(t *testing.T) {
		var body map[string]interface{}
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPut && r.URL.Path == "/calendar/v3/calendars/primary/events/abc123" {
				raw, _ := io.ReadAll(r.Body)
				json.Unmarshal(raw, &body)
				w.Write([]byte(`{"id": "abc123", "htmlLink": "https://calendar.google.com/abc"}`))
				return
			}
			w.WriteHeader(http.StatusBadRequest)
		})

		day := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
		ev, err := client.UpsertEvent(context.Background(), gcalendar.UpsertEventRequest{
			ID:      "abc123",
			Summary: "Ship release",
			Start:   day,
			End:     day.AddDate(0, 0, 9),
			AllDay:  true,
			Source:  "work.md",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.HtmlLink != "https://calendar.google.com/abc" {
			t.Errorf("unexpected link: %s", ev.HtmlLink)
		}

		end, _ := body["end"].(map[string]interface{})
		if end["date"] != "2025-11-30" {
			t.Errorf("expected exclusive all-day end 2025-11-30, got %v", end["date"])
		}
		props, _ := body["extendedProperties"].(map[string]interface{})
		private, _ := props["private"].(map[string]interface{})
		if private[gcalendar.SourceProperty] != "work.md" {
			t.Errorf("expected source property, got %v", body["extendedProperties"])
		}
	})

	t.Run("Insert when missing", func(t *testing.T) {
		inserted := false
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPut:
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error": {"code": 404, "message": "Not Found"}}`))
			case r.Method == http.MethodPost && r.URL.Path == "/calendar/v3/calendars/work/events":
				inserted = true
				w.Write([]byte(`{"id": "abc123"}`))
			default:
				w.WriteHeader(http.StatusBadRequest)
			}
		})

		start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		_, err := client.UpsertEvent(context.Background(), gcalendar.UpsertEventRequest{
			CalendarID: "work",
			ID:         "abc123",
			Summary:    "Standup",
			Start:      start,
			End:        start.Add(30 * time.Minute),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !inserted {
			t.Errorf("expected fallback insert")
		}
	})

	t.Run("Server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := client.UpsertEvent(context.Background(), gcalendar.UpsertEventRequest{ID: "abc123"}); err == nil {
			t.Fatalf("expected upsert error")
		}
	})

	t.Run("Missing id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		if _, err := client.UpsertEvent(context.Background(), gcalendar.UpsertEventRequest{}); err == nil {
			t.Fatalf("expected missing id error")
		}
	})
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			if got := r.URL.Query().Get("privateExtendedProperty"); got != "source=work.md" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-123",
						"summary": "Existing Event",
						"start": { "date": "2024-05-01" },
						"end": { "date": "2024-05-02" },
						"extendedProperties": { "private": { "source": "work.md" } }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{Source: "work.md"})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Summary != "Existing Event" || !ev.AllDay || ev.Source != "work.md" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if !ev.EndTime.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected inclusive end, got %v", ev.EndTime)
	}

	if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"}); err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events/gone":
			w.WriteHeader(http.StatusGone)
			w.Write([]byte(`{"error": {"code": 410, "message": "Gone"}}`))
		case "/calendar/v3/calendars/primary/events/ok":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	if err := client.DeleteEvent(context.Background(), "", "ok"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "", "gone"); err != nil {
		t.Errorf("deleting an already deleted event should succeed: %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "", "boom"); err == nil {
		t.Errorf("expected delete error")
	}
}
