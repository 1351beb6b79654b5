package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"clubplan/internal/adapters/email"
	"clubplan/internal/adapters/http/middleware"
	"clubplan/internal/adapters/http/perf"
	accountStore "clubplan/internal/adapters/storage/account"
	clubStore "clubplan/internal/adapters/storage/club"
	eventStore "clubplan/internal/adapters/storage/clubevent"
	jobTypeStore "clubplan/internal/adapters/storage/jobtype"
	personStore "clubplan/internal/adapters/storage/person"
	placeStore "clubplan/internal/adapters/storage/place"
	scheduleStore "clubplan/internal/adapters/storage/schedule"
	entryStore "clubplan/internal/adapters/storage/scheduleentry"
	"clubplan/internal/application/cache"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore  accountStore.Store
	EventStore    eventStore.Store
	ScheduleStore scheduleStore.Store
	EntryStore    entryStore.Store
	JobTypeStore  jobTypeStore.Store
	PersonStore   personStore.Store
	ClubStore     clubStore.Store
	PlaceStore    placeStore.Store
}

// loadCSRFKey reads the CSRF secret from CLUBPLAN_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("CLUBPLAN_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("CLUBPLAN_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("CLUBPLAN_ENV") == "production" {
		log.Fatal("CLUBPLAN_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set CLUBPLAN_CSRF_KEY for production.")
	return key
}

// loadLocation resolves the display time zone from CLUBPLAN_TZ.
func loadLocation() *time.Location {
	name := os.Getenv("CLUBPLAN_TZ")
	if name == "" {
		name = "Europe/Berlin"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("WARNING: unknown time zone %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global flash codec (set by NewMux, signed with the CSRF key)
var flashes *middleware.FlashCodec

// Global person-dropdown cache
var personsCache = cache.New()

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// notifyAddress receives "event created" notifications.
var notifyAddress string

// appLocation is the zone event dates are parsed and displayed in.
var appLocation = time.UTC

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, notifyTo string) {
	emailSender = sender
	notifyAddress = notifyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	appLocation = loadLocation()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var, doubles as the
	// flash-cookie signing key
	csrfKey := loadCSRFKey()
	flashes = middleware.NewFlashCodec(csrfKey)

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
