package domain

// Default policy values, mirrored by the seed configuration row
const (
	DefaultAdvanceWindowDays     = 7
	DefaultMaxActiveReservations = 1
	DefaultMaxDurationHours      = 4
	DefaultOpeningTime           = "08:00"
	DefaultClosingTime           = "22:00"
)

// Business validation constants
const (
	MinAdvanceWindowDays     = 0
	MaxAdvanceWindowDays     = 365 // 1 year
	MinActiveReservations    = 1
	MaxActiveReservationsCap = 100
	MinDurationHours         = 1
	MaxDurationHoursCap      = 24
	MaxReasonLength          = 500
	MaxDescriptionLength     = 1000
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04:05" // stored timestamps
)

// Audited table names (Spanish, legacy schema)
const (
	TableReservations  = "reservas"
	TableSpaces        = "espacios"
	TableIncidents     = "incidencias"
	TableConfiguration = "configuraciones"
)
