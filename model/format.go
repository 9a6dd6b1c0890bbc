package models

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatCount renders a counter the way the profile and search screens show
// follower and post totals: plain below a thousand, then "X.YK" and "X.YM"
// with one decimal, rounded half up (1250 -> "1.3K").
func FormatCount(count int32) string {
	if count < 0 {
		count = 0
	}
	switch {
	case count >= 1_000_000:
		return formatScaled(count, 1_000_000) + "M"
	case count >= 1_000:
		return formatScaled(count, 1_000) + "K"
	default:
		return strconv.FormatInt(int64(count), 10)
	}
}

func formatScaled(count int32, unit int32) string {
	scaled := math.Floor(float64(count)/float64(unit)*10+0.5) / 10
	return strconv.FormatFloat(scaled, 'f', 1, 64)
}

// FormatRelativeTime renders the age of an entity for timeline rows:
// "now" under an hour, then whole hours, days and weeks, floor-divided.
func FormatRelativeTime(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		elapsed = 0
	}

	hours := int64(elapsed.Hours())
	switch {
	case hours < 1:
		return "now"
	case hours < 24:
		return fmt.Sprintf("%dh", hours)
	case hours < 24*7:
		return fmt.Sprintf("%dd", hours/24)
	default:
		return fmt.Sprintf("%dw", hours/(24*7))
	}
}
