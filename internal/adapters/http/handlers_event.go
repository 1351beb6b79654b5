package web

import (
	"errors"
	"net/http"
	"strconv"

	"clubplan/internal/adapters/http/middleware"
	"clubplan/internal/application/orchestrators"
	"clubplan/internal/application/projections"
	"clubplan/internal/domain/clubevent"
)

// handleCreateForm renders the event creation form, optionally prefilled
// with a date and a roster template.
func handleCreateForm(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsEventManager(r.Context()) {
		flashes.Set(w, message("access-denied"), middleware.FlashDanger)
		redirectToCurrentMonth(w, r)
		return
	}

	query := projections.GetCreateFormQuery{
		Year:       pathInt(r, "year"),
		Month:      pathInt(r, "month"),
		Day:        pathInt(r, "day"),
		TemplateID: r.PathValue("template"),
	}
	// A literal 0 segment means "no template", like an absent one.
	if query.TemplateID == "0" {
		query.TemplateID = ""
	}

	result, err := projections.QueryGetCreateForm(r.Context(), query, projections.GetCreateFormDeps{
		PlaceStore:    stores.PlaceStore,
		ScheduleStore: stores.ScheduleStore,
		EntryStore:    stores.EntryStore,
		JobTypeStore:  stores.JobTypeStore,
		Now:           timeNow,
	})
	if errors.Is(err, projections.ErrTemplateNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "create_event.html", map[string]any{
		"Date":           result.Date,
		"PlaceTitles":    result.PlaceTitles,
		"Templates":      result.Templates,
		"JobTypes":       result.JobTypes,
		"ActiveTemplate": result.ActiveTemplate,
		"TemplateSlots":  result.TemplateSlots,
		"EventTypes":     clubevent.TypeLabels,
		"Form":           orchestrators.EventForm{},
	})
}

// handleStoreEvent creates an event with its schedule and roster.
func handleStoreEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}
	form := eventFormFromRequest(r)

	result, err := orchestrators.ExecuteCreateEvent(r.Context(), orchestrators.CreateEventInput{
		Form:     form,
		Actor:    actorFromRequest(r),
		ClientIP: clientIP(r),
	}, orchestrators.CreateEventDeps{
		EventStore:   stores.EventStore,
		JobTypeStore: stores.JobTypeStore,
		PlaceStore:   stores.PlaceStore,
		EmailSender:  emailSender,
		NotifyTo:     notifyAddress,
		Location:     appLocation,
		GenerateID:   generateID,
		Now:          timeNow,
	})
	if errors.Is(err, orchestrators.ErrPasswordMismatch) {
		// Re-render the form with the submitted values so nothing is lost.
		flashes.Set(w, message("password-mismatch"), middleware.FlashDanger)
		renderCreateFormWithInput(w, r, form)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/events/"+result.ID, http.StatusSeeOther)
}

// renderCreateFormWithInput re-renders the creation form preserving the
// rejected submission.
func renderCreateFormWithInput(w http.ResponseWriter, r *http.Request, form orchestrators.EventForm) {
	result, err := projections.QueryGetCreateForm(r.Context(), projections.GetCreateFormQuery{}, projections.GetCreateFormDeps{
		PlaceStore:    stores.PlaceStore,
		ScheduleStore: stores.ScheduleStore,
		EntryStore:    stores.EntryStore,
		JobTypeStore:  stores.JobTypeStore,
		Now:           timeNow,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "create_event.html", map[string]any{
		"Date":           result.Date,
		"PlaceTitles":    result.PlaceTitles,
		"Templates":      result.Templates,
		"JobTypes":       result.JobTypes,
		"ActiveTemplate": result.ActiveTemplate,
		"TemplateSlots":  result.TemplateSlots,
		"EventTypes":     clubevent.TypeLabels,
		"Form":           form,
	})
}

// handleShowEvent renders the event detail page with roster and history.
func handleShowEvent(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetEventDetail(r.Context(), projections.GetEventDetailQuery{
		EventID: r.PathValue("id"),
	}, projections.GetEventDetailDeps{
		EventStore:    stores.EventStore,
		PlaceStore:    stores.PlaceStore,
		ScheduleStore: stores.ScheduleStore,
		EntryStore:    stores.EntryStore,
		JobTypeStore:  stores.JobTypeStore,
		PersonStore:   stores.PersonStore,
		ClubStore:     stores.ClubStore,
		Cache:         personsCache,
		Now:           timeNow,
	})
	if errors.Is(err, clubevent.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	if result.Event.Private && !middleware.IsAuthenticated(r.Context()) {
		flashes.Set(w, message("access-denied"), middleware.FlashDanger)
		redirectToCurrentMonth(w, r)
		return
	}

	renderTemplate(w, r, "event_detail.html", map[string]any{
		"Event":      result.Event,
		"PlaceTitle": result.PlaceTitle,
		"Roster":     result.Roster,
		"Persons":    result.Persons,
		"ClubTitles": result.ClubTitles,
		"Revisions":  result.Revisions,
	})
}

// handleUpdateEvent is not implemented; the route exists so the detail
// page's form targets resolve.
func handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "not implemented", http.StatusNotImplemented)
}

// handleDeleteEvent removes an event with its schedule and roster.
func handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsEventManager(r.Context()) {
		flashes.Set(w, message("access-denied"), middleware.FlashDanger)
		redirectToCurrentMonth(w, r)
		return
	}

	err := orchestrators.ExecuteDeleteEvent(r.Context(), orchestrators.DeleteEventInput{
		EventID: r.PathValue("id"),
		Actor:   actorFromRequest(r),
	}, orchestrators.DeleteEventDeps{EventStore: stores.EventStore})
	if errors.Is(err, clubevent.ErrNotFound) {
		flashes.Set(w, message("event-doesnt-exist"), middleware.FlashDanger)
		redirectBack(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	flashes.Set(w, message("event-delete-ok"), middleware.FlashSuccess)
	redirectToCurrentMonth(w, r)
}

// redirectBack returns to the referring page, or the current month when
// the referer is missing.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	if ref := r.Referer(); ref != "" {
		http.Redirect(w, r, ref, http.StatusSeeOther)
		return
	}
	redirectToCurrentMonth(w, r)
}

// eventFormFromRequest maps the posted form onto the typed input struct.
func eventFormFromRequest(r *http.Request) orchestrators.EventForm {
	eventType, _ := strconv.Atoi(r.PostFormValue("evnt_type"))

	var amounts []int
	for _, raw := range r.PostForm["amount[]"] {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			n = 0
		}
		amounts = append(amounts, n)
	}

	return orchestrators.EventForm{
		Title:          r.PostFormValue("title"),
		Subtitle:       r.PostFormValue("subtitle"),
		PublicInfo:     r.PostFormValue("publicInfo"),
		PrivateDetails: r.PostFormValue("privateDetails"),
		Type:           eventType,
		Place:          r.PostFormValue("place"),
		BeginDate:      r.PostFormValue("beginDate"),
		EndDate:        r.PostFormValue("endDate"),
		BeginTime:      r.PostFormValue("beginTime"),
		EndTime:        r.PostFormValue("endTime"),
		IsPrivate:      r.PostFormValue("isPrivate"),
		Password:       r.PostFormValue("password"),
		PasswordDouble: r.PostFormValue("passwordDouble"),
		SaveAsTemplate: r.PostFormValue("saveAsTemplate") == "1",
		TemplateID:     r.PostFormValue("template"),
		JobTypeIDs:     r.PostForm["jobType[]"],
		Amounts:        amounts,
	}
}

// pathInt reads a numeric path segment, 0 when absent or malformed.
func pathInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0
	}
	return n
}
