package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIndex_RedirectsToCurrentMonth(t *testing.T) {
	s, _ := newTestStores()
	mux := setupHandlerTest(s)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Header().Get("Location"), "/calendar/") {
		t.Errorf("expected redirect to a month page, got %q", rec.Header().Get("Location"))
	}
}

func TestMonth_HidesPrivateEventsFromAnonymous(t *testing.T) {
	s, events := newTestStores()
	mux := setupHandlerTest(s)
	seedEvent(events, "evt-public", false)
	seedEvent(events, "evt-secret", true)
	secret := events.events["evt-secret"]
	secret.Title = "Interne Sitzung"
	events.events["evt-secret"] = secret

	req := httptest.NewRequest("GET", "/calendar/2026/07", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Sommerfest") {
		t.Error("expected public event on the month page")
	}
	if strings.Contains(body, "Interne Sitzung") {
		t.Error("private event must not appear for anonymous visitors")
	}
}

func TestMonth_ShowsPrivateEventsToMembers(t *testing.T) {
	s, events := newTestStores()
	mux := setupHandlerTest(s)
	seedEvent(events, "evt-secret", true)
	secret := events.events["evt-secret"]
	secret.Title = "Interne Sitzung"
	events.events["evt-secret"] = secret

	req := httptest.NewRequest("GET", "/calendar/2026/07", nil)
	req = requestWithSession(req, managerSession())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Interne Sitzung") {
		t.Error("expected private event visible to logged-in member")
	}
}

func TestMonth_NavigationLinks(t *testing.T) {
	s, _ := newTestStores()
	mux := setupHandlerTest(s)

	req := httptest.NewRequest("GET", "/calendar/2026/01", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/calendar/2025/12") {
		t.Error("expected link to previous month across the year boundary")
	}
	if !strings.Contains(body, "/calendar/2026/02") {
		t.Error("expected link to next month")
	}
}
