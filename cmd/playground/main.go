package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/jnb666/playground/nnet"
	"github.com/jnb666/playground/web"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"
)

func main() {
	log.SetFlags(0)
	var addr, configFile string
	var seed int64
	var auth bool
	flag.StringVar(&addr, "addr", ":8080", "address to listen on")
	flag.StringVar(&configFile, "config", "playground.json", "settings file, loaded at startup if it exists")
	flag.Int64Var(&seed, "seed", 0, "random number seed, 0 to use the time")
	flag.BoolVar(&auth, "auth", false, "require login with basic auth and pam")
	flag.Parse()

	conf, err := nnet.LoadConfig(configFile)
	if errors.Is(err, os.ErrNotExist) {
		log.Println("no config file - using defaults")
		conf, err = nnet.DefaultConfig(), nil
	}
	nnet.CheckErr(err)
	if seed != 0 {
		conf.RandSeed = seed
	}
	pg := nnet.NewPlayground(conf)
	defer pg.Close()

	r, err := web.NewRouter(pg, conf, configFile)
	nnet.CheckErr(err)
	var handler http.Handler = r
	if auth {
		handler = web.NewAuthMiddleware(nil).Middleware(r)
	}

	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		log.Println("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()
	fmt.Printf("serving web page at http://localhost%s\n", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		nnet.CheckErr(err)
	}
}
