package domain

import "time"

// Default engine parameters, applied at the call boundary when a request
// does not override them
const (
	DefaultAppointmentIntervalMinutes = 30
	DefaultPaddingMinutes             = 0
	DefaultLeadTimeMinutes            = 60
	DefaultMaxMinutesAhead            = 720
	DefaultMaxMinutesBefore           = 720
)

// DefaultDurations кандидатные длительности для мультидлительного кеша
var DefaultDurations = []int{30, 60, 90, 120}

// ConflictWindow размер окна выборки конфликтующих событий вокруг якорного
// события. Фиксированные 24 часа: окно НЕ расширяется, даже если
// maxMinutesAhead/Before вместе с длительностью выходит за его пределы
const ConflictWindow = 24 * time.Hour

// CacheTTL мягкий срок свежести мультидлительного кеша (advisory only)
const CacheTTL = 5 * time.Minute

// Fallback location for slots without a derivable location
const (
	PlaceholderCity    = "Los Angeles"
	PlaceholderZipCode = "90210"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
