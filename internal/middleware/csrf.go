package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

const (
	// CSRFCookieName holds the double-submit token. The cookie is
	// readable from script: the editor frontend copies it into the
	// request header.
	CSRFCookieName = "pd_csrf"

	// CSRFHeaderName is the header mutating requests must echo the
	// token in. There is no form-field fallback; the admin client is
	// JavaScript.
	CSRFHeaderName = "X-CSRF-Token"
)

// CSRF implements double-submit cookie protection for the admin API.
// Every response carries the token cookie; POST, PUT, PATCH and DELETE
// requests must repeat the cookie value in the X-CSRF-Token header.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ensureToken(w, r)
		if !ok {
			denyJSON(w, http.StatusInternalServerError, "internal error")
			return
		}

		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(CSRFHeaderName)
		if subtle.ConstantTimeCompare([]byte(token), []byte(header)) != 1 {
			denyJSON(w, http.StatusForbidden, "csrf token mismatch")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ensureToken returns the request's CSRF token, minting and setting a
// fresh one when the cookie is absent.
func ensureToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(CSRFCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", false
	}
	token := hex.EncodeToString(b)

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteStrictMode,
	})
	return token, true
}
