package storeservice

import "errors"

var (
	// ErrStoreNotFound возвращается, когда салон не найден
	ErrStoreNotFound = errors.New("storeservice: store not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("storeservice: service not found")

	// ErrInvalidResponse возвращается при некорректном ответе StoreService
	ErrInvalidResponse = errors.New("storeservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("storeservice: internal error")
)
