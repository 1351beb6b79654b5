package web

// messagesDE is the localized message catalog. Keys are the stable lookup
// ids used by handlers; values are the user-facing German strings.
var messagesDE = map[string]string{
	"password-mismatch":  "Die beiden Passwörter stimmen nicht überein.",
	"access-denied":      "Du hast leider keinen Zugriff auf diese Seite.",
	"event-doesnt-exist": "Diese Veranstaltung existiert nicht.",
	"event-delete-ok":    "Die Veranstaltung wurde gelöscht.",
	"login-failed":       "E-Mail-Adresse oder Passwort ist falsch.",
	"login-ok":           "Willkommen zurück!",
	"logout-ok":          "Du wurdest abgemeldet.",
}

// message resolves a catalog key; unknown keys come back verbatim so a
// missing translation is visible instead of silent.
func message(key string) string {
	if msg, ok := messagesDE[key]; ok {
		return msg
	}
	return key
}
