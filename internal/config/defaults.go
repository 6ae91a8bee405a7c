// ABOUTME: Centralized configuration defaults for chronicle
// ABOUTME: Contains magic numbers and hardcoded values for display output

package config

// Display settings
const (
	DefaultListLimit = 20
	DisplayIDLength  = 8
	SeparatorWidth   = 60
	DateFormatShort  = "02 Jan 06 15:04"
	DateFormatLong   = "Mon, 02 Jan 2006 15:04"
)
