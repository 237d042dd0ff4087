package repository

import (
	"database/sql"
	"math/rand"

	"vocabpractice/internal/database"
	"vocabpractice/internal/models"
)

// WordRepository handles vocabulary word database operations
type WordRepository struct {
	db database.DBTX
}

// NewWordRepository creates a new word repository
func NewWordRepository(db database.DBTX) *WordRepository {
	return &WordRepository{db: db}
}

// Create inserts a new word and returns the stored row
func (r *WordRepository) Create(word, definition, difficultyLevel string) (*models.Word, error) {
	query := `
		INSERT INTO words (word, definition, difficulty_level)
		VALUES (?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, word, definition, difficultyLevel)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// GetByID retrieves a word by ID
func (r *WordRepository) GetByID(id int64) (*models.Word, error) {
	query := `
		SELECT id, word, definition, difficulty_level, created_at
		FROM words
		WHERE id = ?
	`

	return r.scanWord(r.db.QueryRow(query, id))
}

// GetByText retrieves a word by its (unique) text
func (r *WordRepository) GetByText(word string) (*models.Word, error) {
	query := `
		SELECT id, word, definition, difficulty_level, created_at
		FROM words
		WHERE word = ?
	`

	return r.scanWord(r.db.QueryRow(query, word))
}

// GetAll retrieves all words ordered by ID
func (r *WordRepository) GetAll() ([]models.Word, error) {
	query := `
		SELECT id, word, definition, difficulty_level, created_at
		FROM words
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var word models.Word
		var definition sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(&word.ID, &word.Word, &definition, &word.DifficultyLevel, &createdAt)
		if err != nil {
			return nil, err
		}

		word.Definition = definition.String
		if createdAt.Valid {
			word.CreatedAt = createdAt.Time
		}

		words = append(words, word)
	}

	return words, rows.Err()
}

// GetRandom retrieves a uniformly random word.
// Returns sql.ErrNoRows when the table is empty.
func (r *WordRepository) GetRandom() (*models.Word, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&count); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, sql.ErrNoRows
	}

	// OFFSET with a random index instead of ORDER BY RANDOM(), which is not
	// portable across the supported dialects
	query := `
		SELECT id, word, definition, difficulty_level, created_at
		FROM words
		ORDER BY id ASC
		LIMIT 1 OFFSET ?
	`

	return r.scanWord(r.db.QueryRow(query, rand.Intn(count)))
}

// scanWord reads a single word row
func (r *WordRepository) scanWord(row *sql.Row) (*models.Word, error) {
	word := &models.Word{}
	var definition sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(&word.ID, &word.Word, &definition, &word.DifficultyLevel, &createdAt)
	if err != nil {
		return nil, err
	}

	word.Definition = definition.String
	if createdAt.Valid {
		word.CreatedAt = createdAt.Time
	}

	return word, nil
}
