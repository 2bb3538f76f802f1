package domain

// Default configuration values
const (
	// SlotStepMinutes шаг генерации слотов
	SlotStepMinutes = 15

	// MinBookingNoticeMinutes минимальное время до начала бронирования
	MinBookingNoticeMinutes = 60 // 1 hour

	// MaxServicesPerBooking максимальное количество услуг в одном бронировании
	// Ограничивает размер корзины и количество блоков в поиске назначений
	MaxServicesPerBooking = 3
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Неактивные бронирования не занимают время сотрудников
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByStore,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
// Используется для фильтрации при проверке конфликтов расписания
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
