// Package ingest loads line-oriented word lists into the lookup
// store. One candidate word per line; each line is normalized and
// scored independently.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gematria/internal/gematria"
	"gematria/internal/words"
)

// Report accounts for every input line, so a batch never silently
// loses data: Lines == Inserted + SkippedEmpty + Duplicates.
type Report struct {
	Lines        int
	Inserted     int
	SkippedEmpty int
	Duplicates   int
}

// File ingests the word list at path. See Reader.
func File(ctx context.Context, repo *words.Repo, path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Reader(ctx, repo, f)
}

// Reader ingests one word per line from r. Lines that normalize to
// empty (blank lines, no Hebrew letters) are skipped; lines whose
// normalized form is already stored count as duplicates and do not
// create a second row. Any store error aborts the batch.
func Reader(ctx context.Context, repo *words.Repo, r io.Reader) (Report, error) {
	var rep Report

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rep.Lines++

		line := strings.TrimSpace(sc.Text())
		normalized := gematria.Normalize(line)
		if normalized == "" {
			rep.SkippedEmpty++
			continue
		}

		_, inserted, err := repo.Insert(ctx, line, normalized, gematria.Value(normalized))
		if err != nil {
			return rep, fmt.Errorf("line %d (%q): %w", rep.Lines, line, err)
		}
		if !inserted {
			rep.Duplicates++
			continue
		}
		rep.Inserted++
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("scan word list: %w", err)
	}

	return rep, nil
}
