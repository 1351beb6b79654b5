package web

import (
	"encoding/json"
	"net/http"
	"time"

	"clubplan/internal/adapters/http/middleware"
	domainAccount "clubplan/internal/domain/account"
)

// handlePerfSnapshot serves aggregated request/query timings as JSON.
// Clubleitung only; the numbers expose internal paths.
func handlePerfSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || sess.Group != domainAccount.GroupClubleitung {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusServiceUnavailable)
		return
	}

	window := time.Hour
	if v := r.URL.Query().Get("window"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			window = parsed
		}
	}

	snapshot := perfCollector.Snapshot(timeNow().Add(-window), 20)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		internalError(w, err)
	}
}
