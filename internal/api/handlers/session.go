package handlers

import (
	"logistichub-console/internal/services"
	"net/http"

	"github.com/google/uuid"
)

const SessionCookie = "lh_session"

// sessionFor returns the caller's session, issuing a new session cookie when
// the request carries none or an unparsable one.
func sessionFor(w http.ResponseWriter, r *http.Request, store *services.SessionStore) *services.Session {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return store.Get(id.String())
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return store.Get(id)
}
