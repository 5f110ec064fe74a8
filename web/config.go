package web

import (
	"fmt"
	"github.com/jnb666/playground/nnet"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"
)

type ConfigPage struct {
	*Templates
	Fields  []Field
	Flashes []string
	conf    nnet.Config
	file    string
	pg      *nnet.Playground
	sync.Mutex
}

type Field struct {
	Name    string
	Value   string
	Error   string
	Boolean bool
	On      bool
}

// Base data for handler functions to view and update the session config.
// Saved settings are written to file and applied to the playground.
func NewConfigPage(t *Templates, pg *nnet.Playground, conf nnet.Config, file string) *ConfigPage {
	p := &ConfigPage{pg: pg, conf: conf, file: file}
	p.Templates = t.Select("/config")
	p.AddOption(Link{Name: "save", Url: "/config/save", Submit: true})
	p.AddOption(Link{Name: "current", Url: "/config/current"})
	p.AddOption(Link{Name: "reset", Url: "/config/reset"})
	p.Fields = getFields(conf)
	return p
}

// Handler function for the config template
func (p *ConfigPage) Base() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Lock()
		defer p.Unlock()
		p.Flashes = p.Templates.Flashes(w, r)
		p.Exec(w, "config", p)
	}
}

// Handler function for the config form save action
func (p *ConfigPage) Save() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Lock()
		defer p.Unlock()
		r.ParseForm()
		haveErrors := false
		conf := p.conf
		for i, fld := range p.Fields {
			val := r.Form.Get(fld.Name)
			var err error
			if fld.Boolean {
				p.Fields[i].On = (val == "true")
				conf, err = conf.SetBool(fld.Name, p.Fields[i].On)
			} else {
				p.Fields[i].Value = val
				conf, err = conf.SetString(fld.Name, val)
			}
			p.Fields[i].Error = ""
			if err != nil {
				p.Fields[i].Error = "invalid syntax"
				haveErrors = true
			}
		}
		if val := r.Form.Get("Hidden"); val != "" {
			if hidden, err := parseInts(val); err == nil {
				conf.Hidden = hidden
			} else {
				haveErrors = true
				p.Flash(w, r, "invalid hidden layers: %s", val)
			}
		}
		if _, ok := r.Form["Features"]; ok {
			conf.Features = strings.Fields(r.Form.Get("Features"))
		}
		if !haveErrors {
			if err := p.apply(w, r, conf); err != nil {
				logError(w, err)
				return
			}
		}
		http.Redirect(w, r, "/config", http.StatusFound)
	}
}

// Handler function to copy the current playground settings to the config
func (p *ConfigPage) Current() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Lock()
		defer p.Unlock()
		p.conf = p.pg.State().Config(p.conf)
		p.Fields = getFields(p.conf)
		if p.file != "" {
			if err := p.conf.Save(p.file); err != nil {
				logError(w, err)
				return
			}
		}
		p.Flash(w, r, "current settings saved")
		http.Redirect(w, r, "/config", http.StatusFound)
	}
}

// Handler function to restore the default config
func (p *ConfigPage) Reset() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Lock()
		defer p.Unlock()
		conf := nnet.DefaultConfig()
		conf.RandSeed = p.conf.RandSeed
		if err := p.apply(w, r, conf); err != nil {
			logError(w, err)
			return
		}
		http.Redirect(w, r, "/config", http.StatusFound)
	}
}

// save the config if we have a file and reload the playground
func (p *ConfigPage) apply(w http.ResponseWriter, r *http.Request, conf nnet.Config) error {
	if p.file != "" {
		if err := conf.Save(p.file); err != nil {
			return err
		}
	}
	p.conf = conf
	p.Fields = getFields(conf)
	p.pg.Load(conf)
	p.Flash(w, r, "settings applied")
	return nil
}

func (p *ConfigPage) Heading() template.HTML {
	if p.file == "" {
		return template.HTML("settings: not saved")
	}
	return template.HTML("settings: " + template.HTMLEscapeString(p.file))
}

func (p *ConfigPage) Hidden() string {
	return strings.Trim(fmt.Sprint(p.conf.Hidden), "[]")
}

func (p *ConfigPage) Features() string {
	return strings.Join(p.conf.Features, " ")
}

func getFields(conf nnet.Config) []Field {
	var flds []Field
	for _, key := range conf.Fields() {
		f := Field{Name: key, Value: fmt.Sprint(conf.Get(key))}
		f.On, f.Boolean = conf.Get(key).(bool)
		flds = append(flds, f)
	}
	return flds
}

func parseInts(s string) ([]int, error) {
	res := []int{}
	for _, field := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		var n int
		if _, err := fmt.Sscan(field, &n); err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		res = append(res, n)
	}
	return res, nil
}
