package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/goji/httpauth"
	"github.com/gorilla/securecookie"
	"github.com/msteinert/pam"
)

const (
	cookieName  = "playground-auth"
	cookieValue = "authenticated"
)

// AuthFunc checks a username and password.
type AuthFunc func(user, pass string, r *http.Request) bool

type AuthMiddleware struct {
	sc   *securecookie.SecureCookie
	opts httpauth.AuthOptions
}

// Setup new middleware for authenticating requests, uses PAM if check is nil.
func NewAuthMiddleware(check AuthFunc) AuthMiddleware {
	if check == nil {
		check = authPam
	}
	return AuthMiddleware{
		sc:   securecookie.New(securecookie.GenerateRandomKey(32), securecookie.GenerateRandomKey(32)),
		opts: httpauth.AuthOptions{Realm: "Playground", AuthFunc: check},
	}
}

// If session cookie is not present then use basic auth to login and set a cookie.
func (mw AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if mw.hasCookie(r) {
			next.ServeHTTP(w, r)
			return
		}
		httpauth.BasicAuth(mw.opts)(mw.setCookie(next)).ServeHTTP(w, r)
	})
}

func (mw AuthMiddleware) hasCookie(r *http.Request) bool {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return false
	}
	var value string
	return mw.sc.Decode(cookieName, cookie.Value, &value) == nil && value == cookieValue
}

func (mw AuthMiddleware) setCookie(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if encoded, err := mw.sc.Encode(cookieName, cookieValue); err == nil {
			http.SetCookie(w, &http.Cookie{Name: cookieName, Value: encoded, Path: "/", HttpOnly: true})
		} else {
			log.Println("auth: error encoding cookie:", err)
		}
		h.ServeHTTP(w, r)
	})
}

func authPam(user, pass string, r *http.Request) bool {
	t, err := pam.StartFunc("", "", func(s pam.Style, msg string) (string, error) {
		switch s {
		case pam.PromptEchoOn:
			return user, nil
		case pam.PromptEchoOff:
			return pass, nil
		default:
			return "", errors.New("unexpected style")
		}
	})
	if err != nil {
		log.Println("auth: pam error:", err)
		return false
	}
	ok := t.Authenticate(0) == nil
	log.Println("auth:", user, ok)
	return ok
}
