package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 40

	// SweepWidth is the preferred width of the seconds sweep bar.
	SweepWidth = 30

	// MinSweepWidth is the narrowest sweep bar worth drawing.
	MinSweepWidth = 8
)

// Display limits.
const (
	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
