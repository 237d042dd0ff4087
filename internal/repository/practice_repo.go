package repository

import (
	"database/sql"
	"time"

	"vocabpractice/internal/database"
	"vocabpractice/internal/models"
)

// timestampLayout is the wall-clock layout stored in practiced_at. Values
// are civil time in the configured zone, stored without an offset.
const timestampLayout = "2006-01-02 15:04:05"

// PracticeRepository handles practice session database operations
type PracticeRepository struct {
	db database.DBTX
}

// NewPracticeRepository creates a new practice repository
func NewPracticeRepository(db database.DBTX) *PracticeRepository {
	return &PracticeRepository{db: db}
}

// CreateSession records a scored practice session
func (r *PracticeRepository) CreateSession(wordID int64, userSentence string, score float64, feedback, correctedSentence string, practicedAt time.Time) (*models.PracticeSession, error) {
	query := `
		INSERT INTO practice_sessions (word_id, user_sentence, score, feedback, corrected_sentence, practiced_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, wordID, userSentence, score, feedback, correctedSentence, practicedAt.Format(timestampLayout))
	if err != nil {
		return nil, err
	}

	return r.GetSessionByID(id)
}

// GetSessionByID retrieves a practice session by ID
func (r *PracticeRepository) GetSessionByID(sessionID int64) (*models.PracticeSession, error) {
	query := `
		SELECT id, word_id, user_sentence, score, feedback, corrected_sentence, practiced_at
		FROM practice_sessions
		WHERE id = ?
	`

	session := &models.PracticeSession{}
	var score sql.NullFloat64
	var feedback, corrected sql.NullString
	var practicedAt sql.NullTime

	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.WordID,
		&session.UserSentence,
		&score,
		&feedback,
		&corrected,
		&practicedAt,
	)

	if err != nil {
		return nil, err
	}

	if score.Valid {
		session.Score = &score.Float64
	}
	session.Feedback = feedback.String
	session.CorrectedSentence = corrected.String
	if practicedAt.Valid {
		session.PracticedAt = practicedAt.Time
	}

	return session, nil
}

// GetDistinctPracticeDates returns the distinct calendar dates on which a
// practice session was recorded, as YYYY-MM-DD strings, newest first.
func (r *PracticeRepository) GetDistinctPracticeDates() ([]string, error) {
	dateExpr := r.db.GetDialect().DateString("practiced_at")
	query := `
		SELECT DISTINCT ` + dateExpr + ` AS practice_date
		FROM practice_sessions
		WHERE practiced_at IS NOT NULL
		ORDER BY practice_date DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}

	return dates, rows.Err()
}

// CountSessions returns the total number of practice sessions
func (r *PracticeRepository) CountSessions() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM practice_sessions").Scan(&count)
	return count, err
}

// AverageScore returns the mean of all non-null scores, 0 when there are none
func (r *PracticeRepository) AverageScore() (float64, error) {
	var avg float64
	err := r.db.QueryRow("SELECT COALESCE(AVG(score), 0) FROM practice_sessions").Scan(&avg)
	return avg, err
}

// CountDistinctWords returns the number of distinct words ever practiced
func (r *PracticeRepository) CountDistinctWords() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(DISTINCT word_id) FROM practice_sessions").Scan(&count)
	return count, err
}

// LevelDistribution returns session counts grouped by the practiced word's
// difficulty tier. Sessions whose word no longer exists are excluded by the
// inner join.
func (r *PracticeRepository) LevelDistribution() (map[string]int, error) {
	query := `
		SELECT w.difficulty_level, COUNT(ps.id)
		FROM words w
		JOIN practice_sessions ps ON w.id = ps.word_id
		GROUP BY w.difficulty_level
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := make(map[string]int)
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		distribution[level] = count
	}

	return distribution, rows.Err()
}

// GetPracticeHistory retrieves the most recent sessions joined with word
// details. Ties on practiced_at are broken by id, newest insert first.
func (r *PracticeRepository) GetPracticeHistory(limit int) ([]models.PracticeHistoryEntry, error) {
	query := `
		SELECT ps.id, w.word, w.difficulty_level, ps.score, ps.user_sentence, ps.feedback, ps.practiced_at
		FROM practice_sessions ps
		JOIN words w ON ps.word_id = w.id
		ORDER BY ps.practiced_at DESC, ps.id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.PracticeHistoryEntry
	for rows.Next() {
		var entry models.PracticeHistoryEntry
		var score sql.NullFloat64
		var feedback sql.NullString
		var practicedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.Word,
			&entry.DifficultyLevel,
			&score,
			&entry.UserSentence,
			&feedback,
			&practicedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.Score = score.Float64
		entry.Feedback = feedback.String
		if practicedAt.Valid {
			formatted := practicedAt.Time.Format("2006-01-02T15:04:05")
			entry.PracticedAt = &formatted
		}

		history = append(history, entry)
	}

	return history, rows.Err()
}

// GetHistory retrieves the narrow history view of the most recent sessions
func (r *PracticeRepository) GetHistory(limit int) ([]models.HistoryEntry, error) {
	query := `
		SELECT ps.id, w.word, ps.user_sentence, ps.score, ps.feedback, ps.practiced_at
		FROM practice_sessions ps
		JOIN words w ON ps.word_id = w.id
		ORDER BY ps.practiced_at DESC, ps.id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		var score sql.NullFloat64
		var feedback sql.NullString
		var practicedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.Word,
			&entry.UserSentence,
			&score,
			&feedback,
			&practicedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.Score = score.Float64
		entry.Feedback = feedback.String
		if practicedAt.Valid {
			entry.PracticedAt = practicedAt.Time
		}

		history = append(history, entry)
	}

	return history, rows.Err()
}
