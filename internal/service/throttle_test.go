package service

import (
	"testing"
	"time"
)

func TestProfileUpdateThrottle(t *testing.T) {
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)

	daysAgo := func(d int) *time.Time {
		t := now.AddDate(0, 0, -d)
		return &t
	}

	tests := []struct {
		name          string
		lastChange    *time.Time
		wantThrottled bool
		wantRemaining int
	}{
		{"never edited", nil, false, 0},
		{"ten days ago", daysAgo(10), true, 21},
		{"thirty days ago", daysAgo(30), true, 1},
		{"thirty-one days ago", daysAgo(31), false, 0},
		{"just edited", daysAgo(0), true, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, throttled := profileUpdateThrottle(tt.lastChange, now)
			if throttled != tt.wantThrottled {
				t.Errorf("throttled = %v, want %v", throttled, tt.wantThrottled)
			}
			if remaining != tt.wantRemaining {
				t.Errorf("daysRemaining = %d, want %d", remaining, tt.wantRemaining)
			}
		})
	}
}

func TestProfileUpdateThrottleClockSkew(t *testing.T) {
	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	remaining, throttled := profileUpdateThrottle(&future, now)
	if !throttled {
		t.Fatal("throttled = false, want true when last change is in the future")
	}
	if remaining < 1 {
		t.Errorf("daysRemaining = %d, must never go below 1", remaining)
	}
}
