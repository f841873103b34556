package consts

const (
	// PreviewLimit is the maximum preview length in characters before the
	// ellipsis is appended.
	PreviewLimit = 500

	// DefaultReadingTime is the view cool-down in minutes for posts
	// without an explicit reading time.
	DefaultReadingTime = 10

	// MetricsTopN bounds the top-liked / top-commented dashboards.
	MetricsTopN = 5
)

const (
	MimePrefixImage = "image"
)
