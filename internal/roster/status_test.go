package roster

import (
	"testing"
	"time"
)

func TestResolveStatus(t *testing.T) {
	now := time.Date(2026, time.March, 14, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		eventDate time.Time
		want      Status
	}{
		{
			name:      "today at midnight is active even though the instant passed",
			eventDate: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local),
			want:      StatusActive,
		},
		{
			name:      "today late evening is active",
			eventDate: time.Date(2026, time.March, 14, 23, 59, 0, 0, time.Local),
			want:      StatusActive,
		},
		{
			name:      "tomorrow is upcoming",
			eventDate: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local),
			want:      StatusUpcoming,
		},
		{
			name:      "next month is upcoming",
			eventDate: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.Local),
			want:      StatusUpcoming,
		},
		{
			name:      "yesterday is past",
			eventDate: time.Date(2026, time.March, 13, 0, 0, 0, 0, time.Local),
			want:      StatusPast,
		},
		{
			name:      "same day last year is past",
			eventDate: time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local),
			want:      StatusPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStatus(tt.eventDate, now); got != tt.want {
				t.Errorf("ResolveStatus(%v) = %v, want %v", tt.eventDate, got, tt.want)
			}
		})
	}
}

func TestResolveStatus_MidnightBoundary(t *testing.T) {
	// One second before midnight the event day has not arrived yet; one second
	// after, the event is active for the whole day.
	eventDate := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)

	before := time.Date(2026, time.March, 13, 23, 59, 59, 0, time.Local)
	if got := ResolveStatus(eventDate, before); got != StatusUpcoming {
		t.Errorf("just before midnight: got %v, want %v", got, StatusUpcoming)
	}

	after := time.Date(2026, time.March, 14, 0, 0, 1, 0, time.Local)
	if got := ResolveStatus(eventDate, after); got != StatusActive {
		t.Errorf("just after midnight: got %v, want %v", got, StatusActive)
	}
}
