package web

import (
	"embed"
	"fmt"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
)

//go:embed assets
var assets embed.FS

const sessionName = "playground"

// Static files served under /static/
func Static() http.Handler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// Template and main menu definition
type Templates struct {
	*template.Template
	Menu    []Link
	Options []Link
	store   sessions.Store
}

type Link struct {
	Url      string
	Name     string
	Selected bool
	Submit   bool
}

var funcs = template.FuncMap{
	"add":   func(a, b int) int { return a + b },
	"loss":  func(v float64) string { return fmt.Sprintf("%.3f", v) },
	"title": func(v interface{}) string { return cases.Title(language.English).String(fmt.Sprint(v)) },
}

// Load and parse templates and initialise main menu
func NewTemplates() (*Templates, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(assets, "assets/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	t := &Templates{Template: tmpl}
	t.AddMenuItem(Link{Name: "playground", Url: "/play"})
	t.AddMenuItem(Link{Name: "settings", Url: "/config"})
	t.store = sessions.NewCookieStore(securecookie.GenerateRandomKey(32))
	return t, nil
}

func (t *Templates) Clone() *Templates {
	return &Templates{
		Template: t.Template,
		Menu:     append([]Link{}, t.Menu...),
		Options:  append([]Link{}, t.Options...),
		store:    t.store,
	}
}

func (t *Templates) Select(url string) *Templates {
	for i, key := range t.Menu {
		t.Menu[i].Selected = strings.HasPrefix(key.Url, url)
	}
	return t
}

func (t *Templates) AddMenuItem(l Link) *Templates {
	t.Menu = append(t.Menu, l)
	return t
}

func (t *Templates) AddOption(l Link) *Templates {
	t.Options = append(t.Options, l)
	return t
}

// Flash saves a message in the session to be shown on the next page.
func (t *Templates) Flash(w http.ResponseWriter, r *http.Request, format string, args ...interface{}) {
	sess, err := t.store.Get(r, sessionName)
	if err != nil {
		log.Println("session error:", err)
	}
	sess.AddFlash(fmt.Sprintf(format, args...))
	if err := sess.Save(r, w); err != nil {
		log.Println("session save error:", err)
	}
}

// Flashes removes and returns any pending messages from the session.
func (t *Templates) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess, err := t.store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	var msgs []string
	for _, msg := range sess.Flashes() {
		msgs = append(msgs, fmt.Sprint(msg))
	}
	if len(msgs) > 0 {
		sess.Save(r, w)
	}
	return msgs
}

// Exec renders the named template, on error a 500 status is returned.
func (t *Templates) Exec(w http.ResponseWriter, name string, data interface{}) {
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logError(w, err)
	}
}

func logError(w http.ResponseWriter, err error) {
	log.Println(err)
	http.Error(w, fmt.Sprint(err), http.StatusInternalServerError)
}
