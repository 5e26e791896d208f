package ingest

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"gematria/internal/words"
	"gematria/pkg/database"
)

func setupTestRepo(t *testing.T) *words.Repo {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	if err := database.Migrate(db, database.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return words.NewRepo(db)
}

func TestReader(t *testing.T) {
	repo := setupTestRepo(t)

	input := strings.Join([]string{
		"בְּרֵאשִׁית", // inserted, niqqud stripped in normalized form
		"",            // blank: skipped
		"hello world", // no Hebrew letters: skipped
		"שלום",        // inserted
		"בראשית",      // duplicate of the first line's normalized form
		"  יהוה  ",    // inserted, surrounding whitespace trimmed
	}, "\n")

	rep, err := Reader(context.Background(), repo, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	want := Report{Lines: 6, Inserted: 3, SkippedEmpty: 2, Duplicates: 1}
	if rep != want {
		t.Fatalf("report = %+v, want %+v", rep, want)
	}

	// the duplicate did not create a second row
	total, err := repo.CountByValue(context.Background(), 913)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 word with value 913, got %d", total)
	}

	// trimmed original text is what got stored
	w, err := repo.GetByNormalized(context.Background(), "יהוה")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if w == nil || w.Text != "יהוה" || w.Gematria != 26 {
		t.Fatalf("unexpected stored word: %+v", w)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	repo := setupTestRepo(t)

	rep, err := Reader(context.Background(), repo, strings.NewReader(""))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if rep != (Report{}) {
		t.Fatalf("expected zero report, got %+v", rep)
	}
}
