package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusInProgress       BookingStatus = "in_progress"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByStore BookingStatus = "cancelled_by_store"
	StatusNoShow           BookingStatus = "no_show"
)

// Booking represents a single service booking in the system.
// Each service of a multi-service checkout is persisted as its own booking
// with sequential start instants.
type Booking struct {
	ID      int64
	UserID  int64
	StoreID int64

	// EmployeeEmail назначенный сотрудник; nil = бронирование без назначения.
	// Бронирования без сотрудника не занимают ничьё личное расписание
	// и не участвуют в проверке конфликтов.
	EmployeeEmail *string

	// Profession требуемая специализация услуги (категория сотрудника)
	Profession string

	// DateTime момент начала (UTC instant)
	DateTime time.Time

	// ServiceDurationMinutes длительность услуги в минутах
	ServiceDurationMinutes int

	Status BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// End returns the effective end instant: start + duration
func (b *Booking) End() time.Time {
	return b.DateTime.Add(time.Duration(b.ServiceDurationMinutes) * time.Minute)
}

// IsAssignedTo returns true if the booking occupies the given employee's calendar
func (b *Booking) IsAssignedTo(employeeEmail string) bool {
	return b.EmployeeEmail != nil && *b.EmployeeEmail == employeeEmail
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByStore &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking can be updated
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByStore
}

// IsCompleted returns true if the booking is completed or was a no-show
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow
}

// StoreBookingsFilter фильтр для получения бронирований салона
type StoreBookingsFilter struct {
	StoreID         int64          // Обязательный параметр
	EmployeeEmail   *string        // Фильтр по сотруднику (опционально)
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, no-show)
}
