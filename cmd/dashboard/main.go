package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"

	"github.com/neurobridge/dashboard/audit"
	"github.com/neurobridge/dashboard/auth"
	"github.com/neurobridge/dashboard/authclient"
	"github.com/neurobridge/dashboard/cases"
	"github.com/neurobridge/dashboard/institutions"
	"github.com/neurobridge/dashboard/internal/config"
	"github.com/neurobridge/dashboard/messaging"
	"github.com/neurobridge/dashboard/server"
	"github.com/neurobridge/dashboard/session"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running dashboard: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Dashboard stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("config.New: %w", err)
	}
	displayAppname(cfg.AppName)

	trail := audit.NewLog()
	store := session.NewFileStore(cfg.SessionFile)
	client := authclient.New(cfg.APIBaseURL)

	manager, err := auth.NewManager(client, store, auth.WithAuditLog(trail))
	if err != nil {
		return fmt.Errorf("auth.NewManager: %w", err)
	}

	repos := server.Repos{
		Institutions: institutions.NewInMemoryRepo(),
		Cases:        cases.NewInMemoryRepo(),
		Threads:      messaging.NewInMemoryRepo(),
	}
	dashboard, err := server.New(cfg, manager, repos, trail)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: cfg.ListenAddr, Handler: dashboard}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Printf("Dashboard listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
