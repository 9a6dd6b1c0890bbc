package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		count int32
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{1000, "1.0K"},
		{1250, "1.3K"},
		{890, "890"},
		{2340, "2.3K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{1_500_000, "1.5M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.count), "FormatCount(%d)", tt.count)
	}
}

func TestFormatCountNegativeClampsToZero(t *testing.T) {
	assert.Equal(t, "0", FormatCount(-5))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 1, 21, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{30 * time.Minute, "now"},
		{59 * time.Minute, "now"},
		{time.Hour, "1h"},
		{5 * time.Hour, "5h"},
		{23*time.Hour + 59*time.Minute, "23h"},
		{24 * time.Hour, "1d"},
		{48 * time.Hour, "2d"},
		{6 * 24 * time.Hour, "6d"},
		{7 * 24 * time.Hour, "1w"},
		{10 * 24 * time.Hour, "1w"},
		{15 * 24 * time.Hour, "2w"},
	}

	for _, tt := range tests {
		got := FormatRelativeTime(now.Add(-tt.elapsed), now)
		assert.Equal(t, tt.want, got, "elapsed %s", tt.elapsed)
	}
}

func TestFormatRelativeTimeFutureTimestamp(t *testing.T) {
	now := time.Date(2025, 1, 21, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "now", FormatRelativeTime(now.Add(time.Hour), now))
}
