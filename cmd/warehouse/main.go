package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/config"
	"github.com/mamadbah2/warehouse/internal/console"
	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/repository/xmlfile"
	"github.com/mamadbah2/warehouse/internal/scheduler"
	"github.com/mamadbah2/warehouse/internal/service/reporting"
	"github.com/mamadbah2/warehouse/internal/service/warehouse"
	"github.com/mamadbah2/warehouse/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	path := cfg.Storage.FilePath
	store := warehouse.New(
		warehouse.WithLogger(baseLogger.Named("svc.warehouse")),
		warehouse.WithRepository(xmlfile.NewFileRepository(baseLogger.Named("repo.xmlfile"))),
	)

	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		if err := store.Load(path); err != nil {
			baseLogger.Fatal("failed to load warehouse file", zap.String("path", path), zap.Error(err))
		}
	case errors.Is(statErr, os.ErrNotExist) && cfg.Storage.SeedDemo:
		seedDemo(store, baseLogger)
	case !errors.Is(statErr, os.ErrNotExist):
		baseLogger.Fatal("cannot access warehouse file", zap.String("path", path), zap.Error(statErr))
	}

	autosave, err := scheduler.NewAutosaver(cfg.Storage.AutosaveCron, store, path, time.Now(), baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init autosave", zap.Error(err))
	}

	reportingSvc := reporting.NewService(baseLogger.Named("svc.reporting"))
	session := console.NewSession(store, reportingSvc, autosave, path, os.Stdin, os.Stdout, baseLogger.Named("console"))

	if err := session.Run(); err != nil {
		baseLogger.Error("console session ended with error", zap.Error(err))
	}

	if err := store.Save(path); err != nil {
		baseLogger.Fatal("final save failed", zap.String("path", path), zap.Error(err))
	}
}

// seedDemo fills an empty warehouse with five sample articles.
func seedDemo(store *warehouse.Warehouse, log *zap.Logger) {
	for i := 1; i <= 5; i++ {
		_, err := store.AddArticle(models.ArticleParams{
			Name:         fmt.Sprintf("Article%d", i),
			Brand:        fmt.Sprintf("Brand%d", i),
			BuyingPrice:  decimal.NewFromInt(int64(randomInt(1, 100))),
			SellingPrice: decimal.NewFromInt(int64(randomInt(10, 100))),
			Units:        randomInt(50, 500),
		})
		if err != nil {
			log.Warn("demo article rejected", zap.Int("index", i), zap.Error(err))
		}
	}
}

func randomInt(lo, hi int) int {
	return lo + rand.Intn(hi-lo)
}
