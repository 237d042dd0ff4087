package repository

import (
	"testing"
	"time"
)

var testZone = time.FixedZone("UTC+7", 7*3600)

func TestGetDistinctPracticeDates(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database-backed test in short mode")
	}

	db := newTestDB(t)
	wordRepo := NewWordRepository(db)
	repo := NewPracticeRepository(db)

	word, err := wordRepo.Create("happy", "", "Beginner")
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	// Two sessions on the 10th, one each on the 9th and 7th, inserted out
	// of order
	times := []time.Time{
		time.Date(2024, time.June, 9, 8, 0, 0, 0, testZone),
		time.Date(2024, time.June, 10, 7, 30, 0, 0, testZone),
		time.Date(2024, time.June, 7, 22, 0, 0, 0, testZone),
		time.Date(2024, time.June, 10, 23, 59, 0, 0, testZone),
	}
	for _, at := range times {
		if _, err := repo.CreateSession(word.ID, "sentence", 5.0, "", "sentence", at); err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
	}

	dates, err := repo.GetDistinctPracticeDates()
	if err != nil {
		t.Fatalf("GetDistinctPracticeDates failed: %v", err)
	}

	want := []string{"2024-06-10", "2024-06-09", "2024-06-07"}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates %v, want %d", len(dates), dates, len(want))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}

func TestPracticeHistoryTieBreak(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database-backed test in short mode")
	}

	db := newTestDB(t)
	wordRepo := NewWordRepository(db)
	repo := NewPracticeRepository(db)

	word, err := wordRepo.Create("run", "", "Beginner")
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	// Same timestamp for all three; order must fall back to id descending
	at := time.Date(2024, time.June, 10, 12, 0, 0, 0, testZone)
	var ids []int64
	for i := 0; i < 3; i++ {
		session, err := repo.CreateSession(word.ID, "sentence", 5.0, "", "sentence", at)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		ids = append(ids, session.ID)
	}

	history, err := repo.GetHistory(10)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d entries, want 3", len(history))
	}
	for i, entry := range history {
		if want := ids[len(ids)-1-i]; entry.ID != want {
			t.Errorf("history[%d].ID = %d, want %d", i, entry.ID, want)
		}
	}
}

func TestAggregateQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database-backed test in short mode")
	}

	db := newTestDB(t)
	wordRepo := NewWordRepository(db)
	repo := NewPracticeRepository(db)

	word, err := wordRepo.Create("happy", "", "Beginner")
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	t.Run("empty aggregates are zero", func(t *testing.T) {
		count, err := repo.CountSessions()
		if err != nil || count != 0 {
			t.Errorf("CountSessions = %d, %v; want 0, nil", count, err)
		}
		avg, err := repo.AverageScore()
		if err != nil || avg != 0 {
			t.Errorf("AverageScore = %v, %v; want 0, nil", avg, err)
		}
		distinct, err := repo.CountDistinctWords()
		if err != nil || distinct != 0 {
			t.Errorf("CountDistinctWords = %d, %v; want 0, nil", distinct, err)
		}
	})

	at := time.Date(2024, time.June, 10, 12, 0, 0, 0, testZone)
	for _, score := range []float64{8.0, 6.0, 10.0} {
		if _, err := repo.CreateSession(word.ID, "sentence", score, "", "sentence", at); err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
	}

	t.Run("populated aggregates", func(t *testing.T) {
		count, err := repo.CountSessions()
		if err != nil || count != 3 {
			t.Errorf("CountSessions = %d, %v; want 3, nil", count, err)
		}
		avg, err := repo.AverageScore()
		if err != nil || avg != 8.0 {
			t.Errorf("AverageScore = %v, %v; want 8.0, nil", avg, err)
		}
		distinct, err := repo.CountDistinctWords()
		if err != nil || distinct != 1 {
			t.Errorf("CountDistinctWords = %d, %v; want 1, nil", distinct, err)
		}

		dist, err := repo.LevelDistribution()
		if err != nil {
			t.Fatalf("LevelDistribution failed: %v", err)
		}
		if dist["Beginner"] != 3 || len(dist) != 1 {
			t.Errorf("LevelDistribution = %v, want map[Beginner:3]", dist)
		}
	})
}

func TestGetSessionByID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database-backed test in short mode")
	}

	db := newTestDB(t)
	wordRepo := NewWordRepository(db)
	repo := NewPracticeRepository(db)

	word, err := wordRepo.Create("serendipity", "", "Intermediate")
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	at := time.Date(2024, time.June, 10, 14, 30, 0, 0, testZone)
	created, err := repo.CreateSession(word.ID, "Serendipity brought us together", 9.1, "Nice sentence", "Serendipity brought us together.", at)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	loaded, err := repo.GetSessionByID(created.ID)
	if err != nil {
		t.Fatalf("GetSessionByID failed: %v", err)
	}

	if loaded.UserSentence != "Serendipity brought us together" {
		t.Errorf("sentence = %q", loaded.UserSentence)
	}
	if loaded.Score == nil || *loaded.Score != 9.1 {
		t.Errorf("score = %v, want 9.1", loaded.Score)
	}
	if loaded.Feedback != "Nice sentence" {
		t.Errorf("feedback = %q", loaded.Feedback)
	}
	if got := loaded.PracticedAt.Format("2006-01-02 15:04:05"); got != "2024-06-10 14:30:00" {
		t.Errorf("practiced_at = %q, want the stored civil time", got)
	}
}
