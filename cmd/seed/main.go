package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/validation"
	"github.com/murkotick/bookstore-catalog-service/internal/bootstrap"
	"github.com/murkotick/bookstore-catalog-service/internal/config"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
	"github.com/murkotick/bookstore-catalog-service/internal/seed"
)

// Seeds the configured store from SEED_FILE (default testdata/seed.json).
func main() {
	config.LoadEnvFiles()
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := bootstrap.NewLogger(os.Stderr, cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	f, err := os.Open(cfg.Seed.File)
	if err != nil {
		log.Fatalf("open seed file: %v", err)
	}
	defer f.Close()

	fixture, err := seed.Decode(f)
	if err != nil {
		log.Fatalf("%v", err)
	}

	catalog, err := bootstrap.NewCatalog(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	defer catalog.Close()

	res, err := seed.Run(ctx, catalog, validation.New(clock.RealClock{}), fixture, logger)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("Seeded %d publishers, %d authors, %d books (%d already present)",
		res.Publishers, res.Authors, res.Books, res.SkippedBooks)
}
