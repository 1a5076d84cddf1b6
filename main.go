package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "github.com/SiddharthDaryani/Bus-booking-system/internal/config"
	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	router "github.com/SiddharthDaryani/Bus-booking-system/internal/http"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	// Startup probe: one throwaway unit of work to confirm the store is
	// reachable and the schema is in place. Requests still open their own
	// connection each.
	probe := intdb.New(env.DB)
	if h, err := probe.Acquire(); err != nil {
		log.Printf("warning: database not reachable at startup: %v", err)
	} else if missing := intdb.MissingTables(h); len(missing) > 0 {
		log.Printf("warning: schema incomplete, missing tables: %v", missing)
	}
	probe.Release()

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
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

	log.Println("Server stopped cleanly.")
}
