package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/storeservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByStoreWithFilter получает бронирования салона за период
	GetByStoreWithFilter(ctx context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписаний салонов
type ScheduleRepository interface {
	Get(ctx context.Context, storeID int64) (*domain.StoreSchedule, error)
}

// StoreServiceClient интерфейс клиента для StoreService
type StoreServiceClient interface {
	GetService(ctx context.Context, storeID, serviceID int64) (*storeservice.Service, error)
	GetEmployees(ctx context.Context, storeID int64) ([]storeservice.Employee, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
