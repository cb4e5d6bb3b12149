// Package i18n selects the UI language (English or German) for each
// request and translates user-facing notice messages.
//
// Language resolution order: explicit ?lang= switch, then the lang
// cookie, then the Accept-Language header. The result is stored in the
// request context by Middleware and read back with Lang(r).
package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
)

// Supported language codes.
const (
	EN = "en"
	DE = "de"
)

// CookieName is the cookie that pins a visitor's language choice.
const CookieName = "academy-lang"

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.German,
})

type ctxKey struct{}

// Lang returns the request's resolved language code ("en" or "de").
// Requests that did not pass through Middleware get English.
func Lang(r *http.Request) string {
	if v, ok := r.Context().Value(ctxKey{}).(string); ok {
		return v
	}
	return EN
}

// WithLang returns a copy of the request carrying the given language.
// Intended for tests.
func WithLang(r *http.Request, lang string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, lang))
}

// Middleware resolves the request language and stores it in context.
// A ?lang=en|de query parameter switches the language and persists the
// choice in a cookie.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := resolve(r)
		if q := normalize.Lang(r.URL.Query().Get("lang")); q != "" {
			lang = q
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    lang,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HttpOnly: false,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, lang)))
	})
}

func resolve(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if lang := normalize.Lang(c.Value); lang != "" {
			return lang
		}
	}
	tag, _ := language.MatchStrings(matcher, r.Header.Get("Accept-Language"))
	base, _ := tag.Base()
	if base.String() == "de" {
		return DE
	}
	return EN
}

// T translates a message key into the given language. Unknown keys
// return the key itself so a missing entry is visible rather than
// silent.
func T(lang, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if lang == DE && m.de != "" {
		return m.de
	}
	return m.en
}
