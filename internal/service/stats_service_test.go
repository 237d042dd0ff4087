package service

import (
	"testing"
	"time"
)

var testZone = time.FixedZone("UTC+7", 7*3600)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, testZone)
}

func TestDayStreak(t *testing.T) {
	today := day(2024, time.June, 10)

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name:  "no practice dates",
			dates: nil,
			want:  0,
		},
		{
			name:  "three consecutive days ending today",
			dates: []time.Time{day(2024, time.June, 10), day(2024, time.June, 9), day(2024, time.June, 8)},
			want:  3,
		},
		{
			name:  "last practice two days ago",
			dates: []time.Time{day(2024, time.June, 8)},
			want:  0,
		},
		{
			name:  "yesterday present but chain breaks immediately",
			dates: []time.Time{day(2024, time.June, 9), day(2024, time.June, 7)},
			want:  1,
		},
		{
			name:  "streak anchored at yesterday",
			dates: []time.Time{day(2024, time.June, 9), day(2024, time.June, 8), day(2024, time.June, 7)},
			want:  3,
		},
		{
			name: "gap stops the walk even with an older run",
			dates: []time.Time{
				day(2024, time.June, 10), day(2024, time.June, 9),
				day(2024, time.June, 6), day(2024, time.June, 5), day(2024, time.June, 4),
			},
			want: 2,
		},
		{
			name:  "only today",
			dates: []time.Time{day(2024, time.June, 10)},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dayStreak(tt.dates, today); got != tt.want {
				t.Errorf("dayStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeDisplay(t *testing.T) {
	tests := []struct {
		totalMinutes int
		want         string
	}{
		{0, "0m"},
		{45, "45m"},
		{59, "59m"},
		{60, "1h 0m"},
		{75, "1h 15m"},
		{125, "2h 5m"},
	}

	for _, tt := range tests {
		if got := timeDisplay(tt.totalMinutes/60, tt.totalMinutes%60); got != tt.want {
			t.Errorf("timeDisplay for %d minutes = %q, want %q", tt.totalMinutes, got, tt.want)
		}
	}
}

func TestParseDatesSkipsMalformedValues(t *testing.T) {
	s := &StatsService{timeZone: testZone}

	dates := s.parseDates([]string{"2024-06-10", "not-a-date", "2024-06-09"})

	if len(dates) != 2 {
		t.Fatalf("got %d dates, want 2", len(dates))
	}
	if !dates[0].Equal(day(2024, time.June, 10)) || !dates[1].Equal(day(2024, time.June, 9)) {
		t.Errorf("unexpected dates: %v", dates)
	}
}
