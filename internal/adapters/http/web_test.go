package web

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"clubplan/internal/adapters/http/middleware"
	accountStorage "clubplan/internal/adapters/storage/account"
	"clubplan/internal/application/cache"
	accountDomain "clubplan/internal/domain/account"
	clubDomain "clubplan/internal/domain/club"
	"clubplan/internal/domain/clubevent"
	jobtypeDomain "clubplan/internal/domain/jobtype"
	personDomain "clubplan/internal/domain/person"
	placeDomain "clubplan/internal/domain/place"
	scheduleDomain "clubplan/internal/domain/schedule"
	entryDomain "clubplan/internal/domain/scheduleentry"
)

// Map-backed mock stores for handler tests.

type mockAccountStore struct {
	accounts map[string]accountDomain.Account
}

func (m *mockAccountStore) GetByID(_ context.Context, id string) (accountDomain.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return accountDomain.Account{}, accountStorage.ErrNotFound
	}
	return a, nil
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (accountDomain.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return accountDomain.Account{}, accountStorage.ErrNotFound
}

func (m *mockAccountStore) Save(_ context.Context, a accountDomain.Account) error {
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountStore) Count(_ context.Context) (int, error) {
	return len(m.accounts), nil
}

type mockEventStore struct {
	events    map[string]clubevent.Event
	schedules map[string]scheduleDomain.Schedule
	entries   map[string]entryDomain.Entry
}

func newMockEventStore() *mockEventStore {
	return &mockEventStore{
		events:    make(map[string]clubevent.Event),
		schedules: make(map[string]scheduleDomain.Schedule),
		entries:   make(map[string]entryDomain.Entry),
	}
}

func (m *mockEventStore) GetByID(_ context.Context, id string) (clubevent.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return clubevent.Event{}, clubevent.ErrNotFound
	}
	return e, nil
}

func (m *mockEventStore) Save(_ context.Context, e clubevent.Event) error {
	m.events[e.ID] = e
	return nil
}

func (m *mockEventStore) List(_ context.Context) ([]clubevent.Event, error) {
	var out []clubevent.Event
	for _, e := range m.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (m *mockEventStore) ListByDateRange(_ context.Context, startDate, endDate string) ([]clubevent.Event, error) {
	var out []clubevent.Event
	for _, e := range m.events {
		if e.StartDate >= startDate && e.StartDate <= endDate {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (m *mockEventStore) CreateWithSchedule(_ context.Context, event clubevent.Event, sched scheduleDomain.Schedule, entries []entryDomain.Entry) error {
	m.events[event.ID] = event
	m.schedules[sched.ID] = sched
	for _, e := range entries {
		m.entries[e.ID] = e
	}
	return nil
}

func (m *mockEventStore) DeleteCascade(_ context.Context, eventID string) error {
	for id, s := range m.schedules {
		if s.EventID != eventID {
			continue
		}
		for entryID, e := range m.entries {
			if e.ScheduleID == id {
				delete(m.entries, entryID)
			}
		}
		delete(m.schedules, id)
	}
	delete(m.events, eventID)
	return nil
}

type mockScheduleStore struct {
	events *mockEventStore
}

func (m *mockScheduleStore) GetByID(_ context.Context, id string) (scheduleDomain.Schedule, error) {
	s, ok := m.events.schedules[id]
	if !ok {
		return scheduleDomain.Schedule{}, scheduleDomain.ErrNotFound
	}
	return s, nil
}

func (m *mockScheduleStore) GetByEventID(_ context.Context, eventID string) (scheduleDomain.Schedule, error) {
	for _, s := range m.events.schedules {
		if s.EventID == eventID {
			return s, nil
		}
	}
	return scheduleDomain.Schedule{}, scheduleDomain.ErrNotFound
}

func (m *mockScheduleStore) Save(_ context.Context, s scheduleDomain.Schedule) error {
	m.events.schedules[s.ID] = s
	return nil
}

func (m *mockScheduleStore) Delete(_ context.Context, id string) error {
	delete(m.events.schedules, id)
	return nil
}

func (m *mockScheduleStore) ListTemplates(_ context.Context) ([]scheduleDomain.Schedule, error) {
	var out []scheduleDomain.Schedule
	for _, s := range m.events.schedules {
		if s.IsTemplate {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

type mockEntryStore struct {
	events *mockEventStore
}

func (m *mockEntryStore) GetByID(_ context.Context, id string) (entryDomain.Entry, error) {
	e, ok := m.events.entries[id]
	if !ok {
		return entryDomain.Entry{}, entryDomain.ErrNotFound
	}
	return e, nil
}

func (m *mockEntryStore) Save(_ context.Context, e entryDomain.Entry) error {
	m.events.entries[e.ID] = e
	return nil
}

func (m *mockEntryStore) Delete(_ context.Context, id string) error {
	delete(m.events.entries, id)
	return nil
}

func (m *mockEntryStore) ListByScheduleID(_ context.Context, scheduleID string) ([]entryDomain.Entry, error) {
	var out []entryDomain.Entry
	for _, e := range m.events.entries {
		if e.ScheduleID == scheduleID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type mockJobTypeStore struct {
	jobTypes map[string]jobtypeDomain.JobType
}

func (m *mockJobTypeStore) GetByID(_ context.Context, id string) (jobtypeDomain.JobType, error) {
	jt, ok := m.jobTypes[id]
	if !ok {
		return jobtypeDomain.JobType{}, errors.New("job type not found")
	}
	return jt, nil
}

func (m *mockJobTypeStore) Save(_ context.Context, jt jobtypeDomain.JobType) error {
	m.jobTypes[jt.ID] = jt
	return nil
}

func (m *mockJobTypeStore) List(_ context.Context) ([]jobtypeDomain.JobType, error) {
	var out []jobtypeDomain.JobType
	for _, jt := range m.jobTypes {
		out = append(out, jt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *mockJobTypeStore) ListActive(_ context.Context) ([]jobtypeDomain.JobType, error) {
	all, _ := m.List(context.Background())
	var out []jobtypeDomain.JobType
	for _, jt := range all {
		if !jt.Archived {
			out = append(out, jt)
		}
	}
	return out, nil
}

type mockPersonStore struct {
	persons map[string]personDomain.Person
}

func (m *mockPersonStore) GetByID(_ context.Context, id string) (personDomain.Person, error) {
	p, ok := m.persons[id]
	if !ok {
		return personDomain.Person{}, personDomain.ErrNotFound
	}
	return p, nil
}

func (m *mockPersonStore) Save(_ context.Context, p personDomain.Person) error {
	m.persons[p.ID] = p
	return nil
}

func (m *mockPersonStore) List(_ context.Context) ([]personDomain.Person, error) {
	var out []personDomain.Person
	for _, p := range m.persons {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPersonStore) ListEligible(_ context.Context, _ time.Time) ([]personDomain.Person, error) {
	return m.List(context.Background())
}

type mockClubStore struct {
	clubs map[string]clubDomain.Club
}

func (m *mockClubStore) GetByID(_ context.Context, id string) (clubDomain.Club, error) {
	c, ok := m.clubs[id]
	if !ok {
		return clubDomain.Club{}, errors.New("club not found")
	}
	return c, nil
}

func (m *mockClubStore) Save(_ context.Context, c clubDomain.Club) error {
	m.clubs[c.ID] = c
	return nil
}

func (m *mockClubStore) List(_ context.Context) ([]clubDomain.Club, error) {
	var out []clubDomain.Club
	for _, c := range m.clubs {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockClubStore) Count(_ context.Context) (int, error) {
	return len(m.clubs), nil
}

type mockPlaceStore struct {
	places map[string]placeDomain.Place
}

func (m *mockPlaceStore) GetByID(_ context.Context, id string) (placeDomain.Place, error) {
	p, ok := m.places[id]
	if !ok {
		return placeDomain.Place{}, placeDomain.ErrNotFound
	}
	return p, nil
}

func (m *mockPlaceStore) GetByTitle(_ context.Context, title string) (placeDomain.Place, error) {
	for _, p := range m.places {
		if p.Title == title {
			return p, nil
		}
	}
	return placeDomain.Place{}, placeDomain.ErrNotFound
}

func (m *mockPlaceStore) Save(_ context.Context, p placeDomain.Place) error {
	m.places[p.ID] = p
	return nil
}

func (m *mockPlaceStore) List(_ context.Context) ([]placeDomain.Place, error) {
	var out []placeDomain.Place
	for _, p := range m.places {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// newTestStores builds Stores backed by in-memory mocks with common fixtures.
func newTestStores() (*Stores, *mockEventStore) {
	events := newMockEventStore()
	s := &Stores{
		AccountStore:  &mockAccountStore{accounts: make(map[string]accountDomain.Account)},
		EventStore:    events,
		ScheduleStore: &mockScheduleStore{events: events},
		EntryStore:    &mockEntryStore{events: events},
		JobTypeStore: &mockJobTypeStore{jobTypes: map[string]jobtypeDomain.JobType{
			"job-theke": {ID: "job-theke", Title: "Theke"},
		}},
		PersonStore: &mockPersonStore{persons: map[string]personDomain.Person{
			"person-1": {ID: "person-1", LdapID: "1001", Name: "Anna", Status: personDomain.StatusActive, ClubID: "club-1"},
		}},
		ClubStore: &mockClubStore{clubs: map[string]clubDomain.Club{
			"club-1": {ID: "club-1", Title: "bc-Club"},
		}},
		PlaceStore: &mockPlaceStore{places: map[string]placeDomain.Place{
			"place-1": {ID: "place-1", Title: "Clubhaus"},
		}},
	}
	return s, events
}

// setupHandlerTest wires the package globals for direct handler tests,
// bypassing the CSRF middleware.
func setupHandlerTest(s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	flashes = middleware.NewFlashCodec([]byte("0123456789abcdef0123456789abcdef"))
	personsCache = cache.New()
	appLocation = time.UTC
	emailSender = nil
	notifyAddress = ""

	mux := http.NewServeMux()
	registerRoutes(mux)
	return mux
}

// requestWithSession attaches a session to the request context.
func requestWithSession(r *http.Request, sess middleware.Session) *http.Request {
	return r.WithContext(middleware.ContextWithSession(r.Context(), sess))
}

// flashFromRecorder extracts the flash set on a response, if any.
func flashFromRecorder(cookies []*http.Cookie, fc *middleware.FlashCodec) (middleware.Flash, bool) {
	for _, c := range cookies {
		if c.Name == "clubplan_flash" && c.Value != "" {
			req, _ := http.NewRequest("GET", "/", nil)
			req.AddCookie(c)
			return fc.Take(discardWriter{}, req)
		}
	}
	return middleware.Flash{}, false
}

type discardWriter struct{}

func (discardWriter) Header() http.Header         { return http.Header{} }
func (discardWriter) Write(b []byte) (int, error) { return len(b), nil }
func (discardWriter) WriteHeader(int)             {}
