package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fulldump/box"

	"github.com/sortlab/sortlab/api"
	"github.com/sortlab/sortlab/configuration"
	"github.com/sortlab/sortlab/session"
)

var VERSION = "dev"

// Bootstrap wires a session behind the HTTP API and returns the start and
// stop functions of the server. SIGINT/SIGTERM trigger stop.
func Bootstrap(c *configuration.Configuration, s *session.Session) (start, stop func()) {

	b := api.Build(s, VERSION)
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		server.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {
		err := server.Serve(ln)
		if err != nil && err != http.ErrServerClosed {
			fmt.Println(err.Error())
		}
	}

	return
}
