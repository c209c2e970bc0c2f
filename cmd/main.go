package main

import (
	"YcrudAPI/internal/config"
	"YcrudAPI/internal/db"
	"YcrudAPI/internal/handler"
	"YcrudAPI/internal/logger"
	"YcrudAPI/internal/model"
	"YcrudAPI/internal/router"
	"YcrudAPI/internal/store"
	"flag"
	"log"
	"net/http"

	"fmt"
	"os"
)

func main() {
	debugFlag := flag.Bool("d", false, "enable debug logging")
	flag.Parse()

	cfg := config.LoadConfig()
	if err := logger.Init("."); err != nil {
		fmt.Fprintf(os.Stderr, "log init failed: %v\n", err)
		os.Exit(1)
	}
	logger.SetDebug(*debugFlag)

	// PostgreSQL

	if err := db.InitPostgres(cfg.PostgresDSN); err != nil {
		logger.Error("postgres_init_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer db.ClosePostgres()
	logger.Info("postgres_connected", nil)

	// Initialize registry
	reg, err := model.InitRegistry(cfg.ModelsDir)
	if err != nil {
		logger.Error("registry_init_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	logger.Info("models_initialized", nil)

	// Initialize routes: item-маршруты через RegisterResource,
	// list подключаем вручную на коллекционный путь
	pg := store.NewPgStore(db.Pool)
	r := router.New(cfg)
	for _, m := range reg.Models() {
		d, err := handler.New(reg, pg, m.ResourceName(), handler.Options{MaxItems: cfg.MaxItems})
		if err != nil {
			logger.Error("router_init_failed", map[string]any{"resource": m.ResourceName(), "error": err.Error()})
			os.Exit(1)
		}
		router.RegisterResource(r, d)
		r.Method(http.MethodGet, "/"+m.ResourceName(), router.Wrap(d.Handle(http.MethodGet, false)))
		logger.Info("resource_registered", map[string]any{"resource": m.ResourceName(), "model": m.Name})
	}

	// Start HTTP server
	logger.Info("server_start", map[string]any{"port": cfg.Port})
	log.Printf("🚀 Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("server_error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
