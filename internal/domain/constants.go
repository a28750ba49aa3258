package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultSearchWindowHours   = 24
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480 // 8 hours

	MaxBayNumberLength = 16
	MaxTeamNameLength  = 128
	MaxEquipmentTags   = 32

	MaxServiceRadiusKM = 500
)

// Time format constants
const (
	// TimestampFormat формат временных меток во внешнем API (ISO-8601)
	TimestampFormat = "2006-01-02T15:04:05Z07:00"
)
