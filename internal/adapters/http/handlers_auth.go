package web

import (
	"errors"
	"net/http"

	"clubplan/internal/adapters/http/middleware"
	"clubplan/internal/application/orchestrators"
)

// handleLoginForm renders the login page.
func handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.IsAuthenticated(r.Context()) {
		redirectToCurrentMonth(w, r)
		return
	}
	renderTemplate(w, r, "login.html", nil)
}

// handleLogin validates credentials and creates a session.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}, orchestrators.LoginDeps{AccountStore: stores.AccountStore})
	if errors.Is(err, orchestrators.ErrInvalidCredentials) {
		flashes.Set(w, message("login-failed"), middleware.FlashDanger)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	token, err := sessions.Create(result.AccountID, result.Name, result.Group, result.ClubTitle)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)

	flashes.Set(w, message("login-ok"), middleware.FlashSuccess)
	redirectToCurrentMonth(w, r)
}

// handleLogout ends the session.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)

	flashes.Set(w, message("logout-ok"), middleware.FlashSuccess)
	redirectToCurrentMonth(w, r)
}
