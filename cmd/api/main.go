package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vibechef/vibechef/internal/adapters/openai"
	"github.com/vibechef/vibechef/internal/adapters/rest"
	"github.com/vibechef/vibechef/internal/adapters/spotify"
	"github.com/vibechef/vibechef/internal/adapters/sqlite"
	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/core/ports"
	"github.com/vibechef/vibechef/internal/core/services"
	"github.com/vibechef/vibechef/internal/worker"
)

func main() {
	// Configuration comes from the environment; crash early on anything
	// required.
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("FATAL: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}

	dbPath := os.Getenv("VIBECHEF_DB")
	if dbPath == "" {
		dbPath = "vibechef.db"
	}
	addr := os.Getenv("VIBECHEF_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	repo, err := sqlite.NewAdapter(dbPath)
	if err != nil {
		log.Fatalf("FATAL: failed to initialize database: %v", err)
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := spotify.NewFromCredentials(ctx, clientID, clientSecret)
	if err != nil {
		log.Fatalf("FATAL: failed to initialize Spotify client: %v", err)
	}

	// The generative path is optional: with no API key (or when disabled)
	// every request takes the deterministic keyword path.
	var generator ports.SpecGenerator
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" && os.Getenv("VIBECHEF_DISABLE_LLM") == "" {
		generator = openai.NewClient(apiKey, os.Getenv("OPENAI_BASE_URL"))
	} else {
		log.Println("generative path disabled; using keyword fallback only")
	}

	interpreter := services.NewInterpreter(generator, domain.DefaultKeywordTable())
	curator := services.NewCurator(catalog, repo)

	pool := worker.NewPool(repo, 100)
	pool.Start(2)
	defer pool.Stop()

	handler := rest.NewHandler(interpreter, curator, pool)

	log.Printf("VibeChef API listening on %s", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
