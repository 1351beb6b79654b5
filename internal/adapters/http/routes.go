package web

import (
	"fmt"
	"net/http"
)

// registerRoutes attaches all application handlers to the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleIndex)

	mux.HandleFunc("GET /calendar", handleMonth)
	mux.HandleFunc("GET /calendar/{year}/{month}", handleMonth)

	mux.HandleFunc("GET /events/new", handleCreateForm)
	mux.HandleFunc("GET /events/new/{year}/{month}/{day}", handleCreateForm)
	mux.HandleFunc("GET /events/new/{year}/{month}/{day}/{template}", handleCreateForm)
	mux.HandleFunc("POST /events", handleStoreEvent)
	mux.HandleFunc("GET /events/{id}", handleShowEvent)
	mux.HandleFunc("POST /events/{id}", handleUpdateEvent)
	mux.HandleFunc("POST /events/{id}/delete", handleDeleteEvent)

	mux.HandleFunc("GET /login", handleLoginForm)
	mux.HandleFunc("POST /login", handleLogin)
	mux.HandleFunc("POST /logout", handleLogout)

	mux.HandleFunc("GET /api/admin/perf", handlePerfSnapshot)
}

// handleIndex sends visitors to the current month.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	redirectToCurrentMonth(w, r)
}

// monthPath builds the calendar URL for a given month.
func monthPath(year, month int) string {
	return fmt.Sprintf("/calendar/%d/%02d", year, month)
}
