package create_booking

import "errors"

var (
	// ErrStoreNotFound возвращается, когда салон не найден
	ErrStoreNotFound = errors.New("create_booking: store not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStoreClosed возвращается, когда салон закрыт в запрошенную дату
	ErrStoreClosed = errors.New("create_booking: store is closed on this date")

	// ErrTooLateToBook возвращается, когда до начала осталось меньше минимального времени
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("create_booking: invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
