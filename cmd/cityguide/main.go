package main

import (
	"log"
	"os"

	"github.com/ykushnir/cityguide/internal/config"
	"github.com/ykushnir/cityguide/internal/guide"
	"github.com/ykushnir/cityguide/internal/idgen"
	"github.com/ykushnir/cityguide/internal/logging"
	"github.com/ykushnir/cityguide/internal/mapview"
	"github.com/ykushnir/cityguide/internal/menu"
	"github.com/ykushnir/cityguide/internal/storage"
	"github.com/ykushnir/cityguide/internal/storage/jsonfile"
	"github.com/ykushnir/cityguide/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	var store storage.Storage
	switch cfg.StorageBackend {
	case "sqlite":
		s, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open sqlite storage", "path", cfg.DBPath, "error", err)
			return
		}
		defer func() {
			if err := s.Close(); err != nil {
				logger.Error("failed to close sqlite storage", "error", err)
			}
		}()
		store = s
	default:
		store = jsonfile.New(cfg.DataPath)
	}

	mapView, err := mapview.New(cfg.MapRows, cfg.MapCols)
	if err != nil {
		logger.Error("invalid map configuration", "error", err)
		return
	}

	g := guide.New(mapView, idgen.New(), logger)

	doc, err := store.Load()
	if err != nil {
		logger.Error("failed to load state", "error", err)
		return
	}
	if err := g.ImportState(doc); err != nil {
		logger.Error("failed to import state", "error", err)
		return
	}
	if err := g.SeedIfEmpty(); err != nil {
		logger.Error("failed to seed sample data", "error", err)
		return
	}

	menu.New(g, os.Stdin, os.Stdout, logger).Run()

	if err := store.Save(g.ExportState()); err != nil {
		logger.Error("failed to save state", "error", err)
	}
}
