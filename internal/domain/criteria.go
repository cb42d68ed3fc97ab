package domain

// YearBucket is a coarse release-period partition.
type YearBucket string

const (
	YearAll        YearBucket = "all"
	YearBefore1980 YearBucket = "before1980"
	Year1980s      YearBucket = "1980s"
	Year1990s      YearBucket = "1990s"
	Year2000s      YearBucket = "2000s"
	Year2010s      YearBucket = "2010s"
	Year2020s      YearBucket = "2020s"
)

// Contains reports whether a release year falls inside the bucket.
// Unrecognized buckets match nothing (fail closed).
func (b YearBucket) Contains(year int) bool {
	switch b {
	case YearAll:
		return true
	case YearBefore1980:
		return year < 1980
	case Year1980s:
		return year >= 1980 && year < 1990
	case Year1990s:
		return year >= 1990 && year < 2000
	case Year2000s:
		return year >= 2000 && year < 2010
	case Year2010s:
		return year >= 2010 && year < 2020
	case Year2020s:
		return year >= 2020
	default:
		return false
	}
}

// Label returns the display name for the bucket.
func (b YearBucket) Label() string {
	switch b {
	case YearAll:
		return "All Years"
	case YearBefore1980:
		return "Before 1980"
	default:
		return string(b)
	}
}

// SortKey selects the result ordering.
type SortKey string

const (
	SortRating           SortKey = "rating"
	SortYearNewest       SortKey = "year-new"
	SortYearOldest       SortKey = "year-old"
	SortDurationShortest SortKey = "duration-short"
	SortDurationLongest  SortKey = "duration-long"
)

// Label returns the display name for the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortRating:
		return "Highest Rating"
	case SortYearNewest:
		return "Newest First"
	case SortYearOldest:
		return "Oldest First"
	case SortDurationShortest:
		return "Shortest First"
	case SortDurationLongest:
		return "Longest First"
	default:
		return "Unknown"
	}
}

// GenreAny means no genre constraint.
const GenreAny = ""

// Slider bounds for the adjustable criteria.
const (
	MinAvailableTime = 60
	MaxAvailableTime = 240
	TimeStep         = 5

	MinRatingFloor = 1.0
	MinRatingCeil  = 10.0
	RatingStep     = 0.1
)

// Criteria holds the user-adjustable filter and sort parameters.
type Criteria struct {
	Genre       string // GenreAny or one enumerated genre
	MaxDuration int    // minutes, 60-240
	MinRating   float64
	YearBucket  YearBucket
	Language    string // required, exactly one
	SortKey     SortKey
}

// DefaultCriteria returns the documented defaults: any genre, two hours of
// available time, 7.0 minimum rating, all years, English, best rated first.
func DefaultCriteria() Criteria {
	return Criteria{
		Genre:       GenreAny,
		MaxDuration: 120,
		MinRating:   7.0,
		YearBucket:  YearAll,
		Language:    "English",
		SortKey:     SortRating,
	}
}
