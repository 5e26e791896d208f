package words

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"gematria/pkg/database"
)

func setupTestRepo(t *testing.T) *Repo {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Single connection so every query sees the same in-memory DB.
	db.SetMaxOpenConns(1)

	if err := database.Migrate(db, database.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(db)
}

func TestInsertUniqueNormalized(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	id1, inserted, err := repo.Insert(ctx, "בְּרֵאשִׁית", "בראשית", 913)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !inserted || id1 == 0 {
		t.Fatalf("expected first insert to succeed, got inserted=%v id=%d", inserted, id1)
	}

	// same normalized form, different original text
	_, inserted, err = repo.Insert(ctx, "בראשית", "בראשית", 913)
	if err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}
	if inserted {
		t.Fatal("expected duplicate normalized form to be rejected")
	}

	total, err := repo.CountByValue(ctx, 913)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 stored word, got %d", total)
	}
}

func TestGetByNormalized(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if _, _, err := repo.Insert(ctx, "שלום", "שלום", 376); err != nil {
		t.Fatalf("insert: %v", err)
	}

	w, err := repo.GetByNormalized(ctx, "שלום")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if w == nil || w.Gematria != 376 {
		t.Fatalf("unexpected word: %+v", w)
	}

	missing, err := repo.GetByNormalized(ctx, "אור")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing word, got %+v", missing)
	}
}

func TestTopByValueOrderAndLimit(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	// two words scoring 913 plus one unrelated word
	for _, w := range []struct {
		text, normalized string
		value            int
	}{
		{"בראשית", "בראשית", 913},
		{"תתקיג", "תתקיג", 913},
		{"יהוה", "יהוה", 26},
	} {
		if _, _, err := repo.Insert(ctx, w.text, w.normalized, w.value); err != nil {
			t.Fatalf("insert %s: %v", w.text, err)
		}
	}

	total, err := repo.CountByValue(ctx, 913)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected count 2, got %d", total)
	}

	items, err := repo.TopByValue(ctx, 913, 1)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item with limit 1, got %d", len(items))
	}
	if items[0].Normalized != "תתקיג" {
		t.Fatalf("expected most recent insert first, got %q", items[0].Normalized)
	}
}

func TestTopByValueNoMatches(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	total, err := repo.CountByValue(ctx, 999)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0, got %d", total)
	}

	items, err := repo.TopByValue(ctx, 999, 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestAllNewestFirst(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if _, _, err := repo.Insert(ctx, "אור", "אור", 207); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, _, err := repo.Insert(ctx, "שלום", "שלום", 376); err != nil {
		t.Fatalf("insert: %v", err)
	}

	items, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Normalized != "שלום" {
		t.Fatalf("expected newest first, got %q", items[0].Normalized)
	}
}
