package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/api"
	"github.com/spacesedan/brandpulse/internal/collectors"
	"github.com/spacesedan/brandpulse/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.AnalysisFromEnv()

	handler := api.NewHandler(cfg,
		collectors.NewGoogleNewsCollector(),
		collectors.NewSampleCollector(nil))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      api.NewServer(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	slog.Info("[Main] Starting server", slog.String("port", port))
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("[Main] Server stopped",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
