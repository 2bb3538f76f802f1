package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/storeservice"
)

// ScheduleRepository интерфейс репозитория расписаний салонов
type ScheduleRepository interface {
	Get(ctx context.Context, storeID int64) (*domain.StoreSchedule, error)
	Upsert(ctx context.Context, schedule *domain.StoreSchedule) (*domain.StoreSchedule, error)
}

// StoreServiceClient интерфейс клиента для StoreService
type StoreServiceClient interface {
	GetStore(ctx context.Context, storeID int64) (*storeservice.Store, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
