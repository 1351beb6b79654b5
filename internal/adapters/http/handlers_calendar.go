package web

import (
	"net/http"

	"clubplan/internal/adapters/http/middleware"
	"clubplan/internal/application/projections"
)

// handleMonth renders the month overview, the app's landing page and the
// target of every access-denied redirect.
func handleMonth(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMonthOverview(r.Context(), projections.GetMonthOverviewQuery{
		Year:          pathInt(r, "year"),
		Month:         pathInt(r, "month"),
		Authenticated: middleware.IsAuthenticated(r.Context()),
	}, projections.GetMonthOverviewDeps{
		EventStore: stores.EventStore,
		PlaceStore: stores.PlaceStore,
		Now:        timeNow,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "month.html", map[string]any{
		"Year":      result.Year,
		"Month":     result.Month,
		"MonthName": result.MonthName,
		"Events":    result.Events,
		"PrevPath":  monthPath(result.PrevYear, result.PrevMonth),
		"NextPath":  monthPath(result.NextYear, result.NextMonth),
	})
}
