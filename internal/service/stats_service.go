package service

import (
	"fmt"
	"math"
	"time"

	"vocabpractice/internal/models"
	"vocabpractice/internal/repository"
)

const (
	dateLayout = "2006-01-02"

	// DefaultPracticeHistoryLimit caps the wide history view
	DefaultPracticeHistoryLimit = 50
	// DefaultHistoryLimit caps the narrow history view
	DefaultHistoryLimit = 10
)

// StatsService computes streaks, aggregates, and history views over the
// recorded practice sessions. Everything is recomputed per call; nothing is
// cached.
type StatsService struct {
	practiceRepo *repository.PracticeRepository
	timeZone     *time.Location
	now          func() time.Time
}

// NewStatsService creates a new statistics service. The time zone fixes the
// calendar-date boundaries used for "today" and the streak walk.
func NewStatsService(practiceRepo *repository.PracticeRepository, timeZone *time.Location) *StatsService {
	return &StatsService{
		practiceRepo: practiceRepo,
		timeZone:     timeZone,
		now:          time.Now,
	}
}

// Dashboard computes the day streak and total learning time.
// One practice session counts as one minute of learning time.
func (s *StatsService) Dashboard() (*models.DashboardStats, error) {
	rawDates, err := s.practiceRepo.GetDistinctPracticeDates()
	if err != nil {
		return nil, err
	}
	dates := s.parseDates(rawDates)

	today := s.today()

	totalMinutes, err := s.practiceRepo.CountSessions()
	if err != nil {
		return nil, err
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	return &models.DashboardStats{
		DayStreak:      dayStreak(dates, today),
		TotalMinutes:   totalMinutes,
		Hours:          hours,
		Minutes:        minutes,
		TimeDisplay:    timeDisplay(hours, minutes),
		PracticedToday: len(dates) > 0 && dates[0].Equal(today),
	}, nil
}

// timeDisplay formats learning time, omitting the hour part when zero
func timeDisplay(hours, minutes int) string {
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Summary computes the overall practice statistics
func (s *StatsService) Summary() (*models.Summary, error) {
	totalPractices, err := s.practiceRepo.CountSessions()
	if err != nil {
		return nil, err
	}

	avgScore, err := s.practiceRepo.AverageScore()
	if err != nil {
		return nil, err
	}

	totalWords, err := s.practiceRepo.CountDistinctWords()
	if err != nil {
		return nil, err
	}

	distribution, err := s.practiceRepo.LevelDistribution()
	if err != nil {
		return nil, err
	}

	return &models.Summary{
		TotalPractices:      totalPractices,
		AverageScore:        math.Round(avgScore*10) / 10,
		TotalWordsPracticed: totalWords,
		LevelDistribution:   distribution,
	}, nil
}

// PracticeHistory returns the wide history view, newest first.
// A non-positive limit falls back to the default of 50.
func (s *StatsService) PracticeHistory(limit int) ([]models.PracticeHistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultPracticeHistoryLimit
	}

	history, err := s.practiceRepo.GetPracticeHistory(limit)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.PracticeHistoryEntry{}
	}
	return history, nil
}

// History returns the narrow history view, newest first.
// A non-positive limit falls back to the default of 10.
func (s *StatsService) History(limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	history, err := s.practiceRepo.GetHistory(limit)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.HistoryEntry{}
	}
	return history, nil
}

// today returns midnight of the current date in the configured zone
func (s *StatsService) today() time.Time {
	now := s.now().In(s.timeZone)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.timeZone)
}

// parseDates converts the repository's date strings to midnights in the
// configured zone, preserving order. Unparseable values (pre-convention
// rows) are skipped.
func (s *StatsService) parseDates(raw []string) []time.Time {
	dates := make([]time.Time, 0, len(raw))
	for _, value := range raw {
		date, err := time.ParseInLocation(dateLayout, value, s.timeZone)
		if err != nil {
			continue
		}
		dates = append(dates, date)
	}
	return dates
}

// dayStreak counts consecutive practice days ending at today or yesterday.
// Dates must be distinct midnights sorted descending. The walk stops at the
// first gap and never resumes, even if an older consecutive run exists.
func dayStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	yesterday := today.AddDate(0, 0, -1)
	if !dates[0].Equal(today) && !dates[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	current := dates[0]
	for _, date := range dates[1:] {
		if !date.Equal(current.AddDate(0, 0, -1)) {
			break
		}
		streak++
		current = date
	}

	return streak
}
