package config

// Layout constants.
const (
	// DefaultWidth is used until the first window size message arrives.
	DefaultWidth = 80

	// MinItemWidth is the narrowest a result card is rendered.
	MinItemWidth = 30

	// InputWidth is the width of each filter text input.
	InputWidth = 24
)

// Display limits.
const (
	// MaxVisibleTeachers limits result cards shown before scrolling.
	MaxVisibleTeachers = 5

	// MaxBioLines limits how many wrapped bio lines a card shows.
	MaxBioLines = 2

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	MaxSubjectLength = 60
	MaxWeekDayLength = 16
	MaxTimeLength    = 5
)
