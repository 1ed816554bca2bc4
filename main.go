package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "busfinder/internal/config"
	router "busfinder/internal/http"
	"busfinder/internal/http/handlers"
	"busfinder/internal/repositories"
	"busfinder/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	if env.SessionSecret == "" {
		log.Println("warning: SESSION_SECRET not set, sessions will not survive a restart")
	}

	sessions, err := session.NewManager(env.SessionSecret, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to set up sessions: %v", err)
	}
	sessions.SetSecure(gin.Mode() == gin.ReleaseMode)

	provider := intconfig.NewConnectionProvider(env.DB)
	r := router.NewRouter(env, handlers.Handler{
		Routes:   repositories.RouteRepository{Conn: provider},
		Buses:    repositories.BusRepository{Conn: provider},
		Conn:     provider,
		Sessions: sessions,
		Fatal:    intconfig.FatalConnection,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running at http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped.")
}
