package models

import "time"

// Word is one row of the gematria_words table. Normalized is unique
// across all rows; Gematria is always the Mispar Gadol value of
// Normalized. Rows are append-only: created once by ingestion, never
// updated or deleted.
type Word struct {
	ID         int64     `json:"id"`
	Text       string    `json:"word"`
	Normalized string    `json:"normalized"`
	Gematria   int       `json:"gematria"`
	CreatedAt  time.Time `json:"created_at"`
}
