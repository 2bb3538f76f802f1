package get_available_slots

import "errors"

var (
	// ErrStoreNotFound возвращается, когда салон не найден
	ErrStoreNotFound = errors.New("get_available_slots: store not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("get_available_slots: invalid service duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
