package database

import (
	"fmt"
	"log"
)

// seedWord is a starter vocabulary entry inserted on first boot
type seedWord struct {
	word       string
	definition string
	difficulty string
}

var starterWords = []seedWord{
	{"Ephemeral", "Lasting for a very short time.", "Advanced"},
	{"Ubiquitous", "Present, appearing, or found everywhere.", "Intermediate"},
	{"Mellifluous", "(Of a voice or words) sweet or musical; pleasant to hear.", "Advanced"},
	{"Serendipity", "The occurrence and development of events by chance in a happy or beneficial way.", "Intermediate"},
	{"Happy", "Feeling or showing pleasure or contentment.", "Beginner"},
	{"Run", "Move at a speed faster than a walk, never having both or all the feet on the ground at the same time.", "Beginner"},
}

// SeedWords populates the words table with the starter vocabulary.
// Skipped when any words already exist, so user-added words are never mixed
// with a re-seed.
func (db *DB) SeedWords() error {
	// Check if words already exist
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM words").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check words count: %w", err)
	}

	if count > 0 {
		log.Printf("Words table already populated with %d words", count)
		return nil
	}

	// Start transaction for bulk insert
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := "INSERT INTO words (word, definition, difficulty_level) VALUES (?, ?, ?)"

	for _, w := range starterWords {
		if _, err := tx.Exec(insertQuery, w.word, w.definition, w.difficulty); err != nil {
			return fmt.Errorf("failed to insert word %q: %w", w.word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	log.Printf("Seeded %d starter words", len(starterWords))
	return nil
}
