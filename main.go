package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"WooWithErp/internal/config"
	"WooWithErp/internal/database"
	"WooWithErp/internal/handlers/httphandler"
	"WooWithErp/internal/handlers/woo"
	"WooWithErp/internal/telegram"
	"WooWithErp/internal/version"
	"WooWithErp/pkg/logging"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the INI config file")
	catalogPath := flag.String("catalog", "", "JSON file with template items and warehouses to import at start-up")
	flag.Parse()

	logger := logging.GetLogger()
	logger.Info("Start Main")
	defer logger.Info("End Main")
	logger.Infof("Version %s", version.GetVersion().String())

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("failed config.Load, %v", err)
	}
	if err := logging.Configure(cfg.LOG.Dir, cfg.LOG.Debug != 0); err != nil {
		logger.Fatalf("failed logging.Configure, %v", err)
	}

	store, err := database.Open(cfg.DBSQLITE.DB)
	if err != nil {
		logger.Fatalf("%s, %v", cfg.DBSQLITE.DB, err)
	}
	defer store.Close()

	settings := func() (woo.Settings, error) {
		return woo.NewSettings(cfg)
	}
	if _, err := settings(); err != nil {
		logger.Fatalf("failed woo.NewSettings, %v", err)
	}

	if *catalogPath != "" {
		s, _ := settings()
		catalog, err := woo.LoadCatalog(*catalogPath)
		if err != nil {
			logger.Fatalf("failed woo.LoadCatalog, %v", err)
		}
		if err := woo.ImportCatalog(context.Background(), store, s, catalog); err != nil {
			logger.Fatalf("failed woo.ImportCatalog, %v", err)
		}
	}

	var notifier telegram.Notifier = telegram.Nop{}
	if cfg.TELEGRAM.BotToken != "" {
		bot, err := telegram.NewBot(cfg.TELEGRAM.BotToken, cfg.TELEGRAM.ChatID, cfg.TELEGRAM.Debug != 0)
		if err != nil {
			logger.Errorf("failed telegram.NewBot, alerts disabled: %v", err)
		} else {
			notifier = bot
		}
	}

	handler := httphandler.NewHandler(store, settings, notifier, cfg.SERVICE.MaxBodyBytes)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.SERVICE.PORT),
		Handler:      handler.Router(),
		ReadTimeout:  time.Duration(cfg.SERVICE.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.SERVICE.WriteTimeout) * time.Second,
	}
	logger.Infof("listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Errorf("failed ListenAndServe, %v", err)
	}
}
