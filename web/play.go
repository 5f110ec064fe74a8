package web

import (
	"fmt"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jnb666/playground/dataset"
	"github.com/jnb666/playground/nnet"
	"github.com/jnb666/playground/stats"
	"html/template"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync"
)

const (
	boundarySize = 300
	plotWidth    = 420
	plotHeight   = 180
	historyRows  = 8
	smoothEpochs = 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type PlayPage struct {
	*Templates
	pg    *nnet.Playground
	conns map[*websocket.Conn]bool
	sync.Mutex
}

// Data passed to the play template for a single request
type playView struct {
	nnet.State
	Menu    []Link
	Options []Link
	Flashes []string
}

// Base data for handler functions to control and display the playground
func NewPlayPage(t *Templates, pg *nnet.Playground) *PlayPage {
	p := &PlayPage{pg: pg, conns: map[*websocket.Conn]bool{}}
	p.Templates = t.Select("/play")
	for _, name := range []string{"start", "stop", "step", "reset", "regenerate"} {
		p.AddOption(Link{Name: name, Url: "/play/" + name})
	}
	pg.Subscribe(p.notify)
	return p
}

// Handler function for the main page and the playback commands
func (p *PlayPage) Base() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd := mux.Vars(r)["cmd"]
		switch cmd {
		case "start":
			p.pg.Dispatch(nnet.SetTraining{On: true})
			p.Flash(w, r, "training started")
		case "stop":
			s := p.pg.Dispatch(nnet.SetTraining{On: false})
			p.Flash(w, r, "training paused at epoch %d", s.Epoch)
		case "step":
			s := p.pg.Step()
			p.Flash(w, r, "epoch %d: train loss %.3f", s.Epoch, s.TrainLoss)
		case "reset":
			p.pg.Dispatch(nnet.Reset{})
			p.Flash(w, r, "network reset")
		case "regenerate":
			p.pg.Dispatch(nnet.Regenerate{})
			p.Flash(w, r, "new data set generated")
		default:
			v := playView{State: p.pg.State(), Menu: p.Menu, Options: p.Options, Flashes: p.Flashes(w, r)}
			p.Exec(w, "play", v)
			return
		}
		http.Redirect(w, r, "/play", http.StatusFound)
	}
}

// Handler function for the settings form
func (p *PlayPage) Set() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			logError(w, err)
			return
		}
		actions, err := formActions(r, p.pg.State())
		if err != nil {
			p.Flash(w, r, "%s", err)
		}
		if len(actions) > 0 {
			s := p.pg.Dispatch(actions...)
			log.Println("set:", s)
		}
		http.Redirect(w, r, "/play", http.StatusFound)
	}
}

// Handler function to add, remove or resize hidden layers
func (p *PlayPage) Layers() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var a nnet.Action
		switch vars["cmd"] {
		case "add":
			a = nnet.NewLayer()
		case "remove":
			// remove the given layer or else the last one
			id := r.FormValue("id")
			if s := p.pg.State(); id == "" && len(s.Hidden) > 0 {
				id = s.Hidden[len(s.Hidden)-1].ID
			}
			a = nnet.RemoveHiddenLayer{ID: id}
		default:
			neurons, err := strconv.Atoi(vars["neurons"])
			if err != nil {
				http.Error(w, "invalid neuron count", http.StatusBadRequest)
				return
			}
			a = nnet.UpdateHiddenLayer{ID: vars["id"], Neurons: neurons}
		}
		s := p.pg.Dispatch(a)
		log.Printf("layers: %v\n", s.HiddenWidths())
		http.Redirect(w, r, "/play", http.StatusFound)
	}
}

// Handler function to toggle an input feature
func (p *PlayPage) Features() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		s := p.pg.Dispatch(nnet.ToggleFeature{ID: mux.Vars(r)["id"]})
		log.Printf("features: %d enabled\n", s.InputWidth())
		http.Redirect(w, r, "/play", http.StatusFound)
	}
}

// Handler function for the decision boundary image
func (p *PlayPage) Boundary() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		s := p.pg.State()
		img := BoundaryImage(p.pg.Heatmap(), p.pg.Points(), s.ShowTestData, boundarySize)
		w.Header().Set("Content-type", "image/png")
		if err := png.Encode(w, img); err != nil {
			log.Println("boundary: error encoding image", err)
		}
	}
}

// Handler function for the network diagram
func (p *PlayPage) Network() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		s, net, particles := p.pg.Snapshot()
		w.Header().Set("Content-type", "image/svg+xml")
		width, height := p.pg.CanvasSize()
		if err := NetworkSVG(w, net, particles, s, width, height); err != nil {
			logError(w, err)
		}
	}
}

// Handler function for the loss history plot
func (p *PlayPage) Loss() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-type", "image/svg+xml")
		if err := LossPlot(w, p.pg.State().History, plotWidth, plotHeight); err != nil {
			logError(w, err)
		}
	}
}

// Handler function for websocket connection
func (p *PlayPage) Websocket() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("websocket: upgrade error", err)
			return
		}
		p.Lock()
		p.conns[conn] = true
		p.Unlock()
		// read until the client goes away
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					p.Lock()
					delete(p.conns, conn)
					p.Unlock()
					conn.Close()
					return
				}
			}
		}()
	}
}

// send epoch:train:test to each connected client
func (p *PlayPage) notify(s nnet.State) {
	msg := []byte(fmt.Sprintf("%d:%.4f:%.4f", s.Epoch, s.TrainLoss, s.TestLoss))
	p.Lock()
	defer p.Unlock()
	for conn := range p.conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Println("notify: error writing to websocket", err)
			delete(p.conns, conn)
			conn.Close()
		}
	}
}

func (v playView) Heading() template.HTML {
	s := fmt.Sprintf(`epoch <span id="epoch">%d</span> train loss <span id="train">%.3f</span> test loss <span id="test">%.3f</span>`,
		v.Epoch, v.TrainLoss, v.TestLoss)
	return template.HTML(s)
}

func (v playView) Families() []dataset.Family { return dataset.Families() }

func (v playView) Activations() []nnet.Activation { return nnet.Activations }

func (v playView) Regularizations() []nnet.Regularization { return nnet.Regularizations }

func (v playView) ProblemTypes() []nnet.ProblemType { return nnet.ProblemTypes }

func (v playView) CanAddLayer() bool { return len(v.Hidden) < nnet.MaxHiddenLayers }

func (v playView) LatestStats() []stats.Entry { return v.History.Latest(historyRows) }

func (v playView) Gap() template.HTML { return v.History.Gap().HTML() }

// smoothed losses over the recent history
func (v playView) Smoothed() template.HTML {
	if len(v.History) == 0 {
		return template.HTML("-")
	}
	train, test := v.History.Smoothed(smoothEpochs)
	return template.HTML(fmt.Sprintf("train %.3f test %.3f", train, test))
}
