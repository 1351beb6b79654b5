package middleware

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

// Flash severities, mapped straight to Bootstrap alert classes.
const (
	FlashDanger  = "danger"
	FlashSuccess = "success"
)

const flashCookieName = "clubplan_flash"

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Message string
	Type    string // danger or success
}

// FlashCodec signs flash cookies so clients cannot forge messages.
type FlashCodec struct {
	codec *securecookie.SecureCookie
}

// NewFlashCodec creates a codec with the given signing key.
// PRE: hashKey is 32 or 64 bytes
func NewFlashCodec(hashKey []byte) *FlashCodec {
	sc := securecookie.New(hashKey, nil)
	sc.MaxAge(300) // flashes outliving their redirect are stale
	return &FlashCodec{codec: sc}
}

// Set stores a flash message for the next rendered page.
// POST: A signed one-shot cookie is set on the response
func (fc *FlashCodec) Set(w http.ResponseWriter, message, flashType string) {
	encoded, err := fc.codec.Encode(flashCookieName, Flash{Message: message, Type: flashType})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   300,
	})
}

// Take reads and clears the pending flash message, if any.
// POST: The flash cookie is expired on the response; tampered cookies read
// as no flash
func (fc *FlashCodec) Take(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return Flash{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})

	var flash Flash
	if err := fc.codec.Decode(flashCookieName, cookie.Value, &flash); err != nil {
		return Flash{}, false
	}
	return flash, true
}
