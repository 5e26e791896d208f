package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"gematria/internal/words"
	"gematria/pkg/database"
)

func main() {
	var (
		out = flag.String("out", "data/gematria_words.csv", "output CSV path")
	)
	flag.Parse()

	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db, cfg.Driver); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportWords(ctx, words.NewRepo(db), *out); err != nil {
		log.Fatalf("export words failed: %v", err)
	}

	log.Printf("✅ exported words to %s", *out)
}

func exportWords(ctx context.Context, repo *words.Repo, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "text", "normalized", "gematria", "created_at"}); err != nil {
		return err
	}

	items, err := repo.All(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := w.Write([]string{
			strconv.FormatInt(item.ID, 10),
			item.Text,
			item.Normalized,
			strconv.Itoa(item.Gematria),
			item.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
