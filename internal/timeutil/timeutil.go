// ABOUTME: Time utility functions for date range calculations
// ABOUTME: Provides helpers for smart views like today, this week, this month

package timeutil

import "time"

// StartOfToday returns midnight (00:00:00) of the current day in local time
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// StartOfYesterday returns midnight (00:00:00) of yesterday in local time
func StartOfYesterday() time.Time {
	return StartOfToday().AddDate(0, 0, -1)
}

// EndOfYesterday returns the last instant of yesterday in local time
func EndOfYesterday() time.Time {
	return StartOfToday().Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the most recent Sunday in local time
// Note: Week starts on Sunday
func StartOfWeek() time.Time {
	today := StartOfToday()
	weekday := int(today.Weekday())
	return today.AddDate(0, 0, -weekday)
}

// StartOfMonth returns midnight of the first day of the current month in local time
func StartOfMonth() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// PeriodRange converts a period string to an inclusive [start, end]
// range suitable for entry date filters.
// Supported values: "today", "yesterday", "week", "month"
func PeriodRange(period string) (start, end time.Time, ok bool) {
	switch period {
	case "today":
		return StartOfToday(), time.Now(), true
	case "yesterday":
		return StartOfYesterday(), EndOfYesterday(), true
	case "week":
		return StartOfWeek(), time.Now(), true
	case "month":
		return StartOfMonth(), time.Now(), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
