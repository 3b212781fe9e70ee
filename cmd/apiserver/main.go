package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"arduchat/internal/api"
	"arduchat/internal/config"
	"arduchat/internal/llm"
)

func main() {
	var listenAddr string
	var configPath string

	flag.StringVar(&listenAddr, "listen-address", "", "The address the API server binds to (overrides config).")
	flag.StringVar(&configPath, "config", "config.yaml", "The path to the configuration file.")
	flag.Parse()

	// Use Zap for structured logging
	zapLog, _ := zap.NewDevelopment()
	log := zapr.NewLogger(zapLog)
	setupLog := log.WithName("setup")

	// Pull API keys from a local .env file when present. The file is
	// optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		setupLog.Error(err, "unable to load configuration")
		os.Exit(1)
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	router, err := llm.NewRouterFromConfig(cfg)
	if err != nil {
		setupLog.Error(err, "unable to build provider router")
		os.Exit(1)
	}

	// Startup validation: a keyless deployment still serves health and
	// discovery, but every chat request will fail, so say so loudly.
	var ready []string
	for _, info := range router.Providers() {
		if info.Configured {
			ready = append(ready, info.Name)
		}
	}
	if len(ready) == 0 {
		setupLog.Info("WARNING: no AI providers configured; set GROQ_API_KEY or OPENROUTER_API_KEY in your environment or .env file")
	} else {
		setupLog.Info("providers ready", "providers", ready, "default", router.DefaultProvider())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(cfg, router, log.WithName("api-server"))
	if err := server.Start(ctx); err != nil {
		setupLog.Error(err, "problem running api server")
		os.Exit(1)
	}
}
