package store

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание салона не найдено
	ErrScheduleNotFound = errors.New("store.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("store.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("store.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("store.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации расписания
	ErrEncode = errors.New("store.repository: failed to encode schedule")

	// ErrDecode возвращается при ошибке десериализации расписания
	ErrDecode = errors.New("store.repository: failed to decode schedule")
)
