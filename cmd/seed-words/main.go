package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"gematria/internal/ingest"
	"gematria/internal/words"
	"gematria/pkg/database"
)

func main() {
	var (
		wordsIn = flag.String("words", "data/words.txt", "input word list, one word per line")
		timeout = flag.Duration("timeout", 5*time.Minute, "overall ingestion timeout")
	)
	flag.Parse()

	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db, cfg.Driver); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := words.NewRepo(db)
	report, err := ingest.File(ctx, repo, *wordsIn)
	if err != nil {
		log.Fatalf("ingest failed after %d lines: %v", report.Lines, err)
	}

	log.Printf("✅ ingested %s: %d lines, %d inserted, %d skipped (no Hebrew letters), %d duplicates",
		*wordsIn, report.Lines, report.Inserted, report.SkippedEmpty, report.Duplicates)
}
