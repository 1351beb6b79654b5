package browser_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	web "clubplan/internal/adapters/http"
	"clubplan/internal/adapters/http/middleware"
	"clubplan/internal/adapters/http/perf"
	"clubplan/internal/adapters/storage"
	accountStore "clubplan/internal/adapters/storage/account"
	clubStore "clubplan/internal/adapters/storage/club"
	clubeventStore "clubplan/internal/adapters/storage/clubevent"
	jobtypeStore "clubplan/internal/adapters/storage/jobtype"
	personStore "clubplan/internal/adapters/storage/person"
	placeStore "clubplan/internal/adapters/storage/place"
	scheduleStore "clubplan/internal/adapters/storage/schedule"
	scheduleentryStore "clubplan/internal/adapters/storage/scheduleentry"
	"clubplan/internal/application/orchestrators"
)

const (
	adminEmail    = "leitung@test.example"
	adminPassword = "testpasswort-lang-genug"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
	tmpDir  string
}

// newTestApp creates a fully wired app with a temp SQLite DB and starts an HTTP server.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init test DB: %v", err)
	}

	acctStore := accountStore.NewSQLiteStore(db)
	clubs := clubStore.NewSQLiteStore(db)
	jobTypes := jobtypeStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:  acctStore,
		EventStore:    clubeventStore.NewSQLiteStore(db),
		ScheduleStore: scheduleStore.NewSQLiteStore(db),
		EntryStore:    scheduleentryStore.NewSQLiteStore(db),
		JobTypeStore:  jobTypes,
		PersonStore:   personStore.NewSQLiteStore(db),
		ClubStore:     clubs,
		PlaceStore:    placeStore.NewSQLiteStore(db),
	}

	// Seed reference data plus an admin account to log in with
	ctx := context.Background()
	err = orchestrators.ExecuteSeed(ctx, orchestrators.SeedDeps{
		AccountStore:  acctStore,
		ClubStore:     clubs,
		JobTypeStore:  jobTypes,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	})
	if err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	collector := perf.NewCollector(perf.DefaultRingSize)
	mux := web.NewMux("static", stores, collector)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
		tmpDir:  tmpDir,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login navigates to the login page and logs in as the seeded admin.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=email]").Fill(adminEmail); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill(adminPassword); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	// Login redirects to the current month page
	if err := page.WaitForURL(a.BaseURL+"/calendar/**", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to the calendar: %v", err)
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
