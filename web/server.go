// Package web has a browser interface to the playground: the controls, the
// decision boundary image, the network diagram and the loss plot.
package web

import (
	"github.com/gorilla/mux"
	"github.com/jnb666/playground/nnet"
	"net/http"
)

// NewRouter sets up the page handlers for the playground. If configFile is
// not blank then saved settings are written to it.
func NewRouter(pg *nnet.Playground, conf nnet.Config, configFile string) (*mux.Router, error) {
	t, err := NewTemplates()
	if err != nil {
		return nil, err
	}
	playPage := NewPlayPage(t.Clone(), pg)
	configPage := NewConfigPage(t.Clone(), pg, conf, configFile)

	r := mux.NewRouter()
	r.Handle("/", http.RedirectHandler("/play", http.StatusFound))
	r.PathPrefix("/static/").Handler(Static())

	r.HandleFunc("/play", playPage.Base())
	r.HandleFunc("/play/{cmd:(?:start|stop|step|reset|regenerate)}", playPage.Base())
	r.HandleFunc("/set", playPage.Set()).Methods("POST")
	r.HandleFunc("/layers/{cmd:(?:add|remove)}", playPage.Layers())
	r.HandleFunc("/layers/{id}/{neurons:[0-9]+}", playPage.Layers())
	r.HandleFunc("/features/{id}", playPage.Features())
	r.HandleFunc("/img/boundary", playPage.Boundary())
	r.HandleFunc("/svg/network", playPage.Network())
	r.HandleFunc("/svg/loss", playPage.Loss())
	r.HandleFunc("/ws", playPage.Websocket())

	r.HandleFunc("/config", configPage.Base())
	r.HandleFunc("/config/save", configPage.Save()).Methods("POST")
	r.HandleFunc("/config/current", configPage.Current())
	r.HandleFunc("/config/reset", configPage.Reset())
	return r, nil
}
