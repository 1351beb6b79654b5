package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"clubplan/internal/adapters/http/middleware"
	"clubplan/internal/application/orchestrators"
	"clubplan/internal/domain/clubevent"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// clientIP extracts the requester's address for the revision log.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// actorFromRequest maps the session onto the acting identity; no session
// means guest.
func actorFromRequest(r *http.Request) orchestrators.Actor {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		return orchestrators.Actor{}
	}
	return orchestrators.Actor{
		ID:    sess.AccountID,
		Name:  sess.Name,
		Group: sess.Group,
		Club:  sess.ClubTitle,
	}
}

// redirectToCurrentMonth is the safe default target after access failures.
func redirectToCurrentMonth(w http.ResponseWriter, r *http.Request) {
	now := timeNow().In(appLocation)
	http.Redirect(w, r, monthPath(now.Year(), int(now.Month())), http.StatusSeeOther)
}

// templatesDir resolves against the process working directory at render
// time; tests run from the package directory, the server from the repo root.
func templatesDir() string {
	if _, err := os.Stat("internal/adapters/http/templates"); err == nil {
		return "internal/adapters/http/templates"
	}
	return "templates"
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())

	if data == nil {
		data = map[string]any{}
	}
	if flash, ok := flashes.Take(w, r); ok {
		data["Flash"] = flash
	}

	funcMap := template.FuncMap{
		"csrfToken":       func() string { return csrf.Token(r) },
		"isLoggedIn":      func() bool { return loggedIn },
		"currentName":     func() string { return sess.Name },
		"currentGroup":    func() string { return sess.Group },
		"canManageEvents": func() bool { return loggedIn && sess.CanManageEvents() },
		"eventTypeLabel": func(code int) string {
			if label, ok := clubevent.TypeLabels[code]; ok {
				return label
			}
			return clubevent.TypeLabels[clubevent.TypeSpecial]
		},
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	dir := templatesDir()
	layoutPath := filepath.Join(dir, "layout.html")
	pagePath := filepath.Join(dir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}
