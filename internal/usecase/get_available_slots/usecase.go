package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/store"
	"github.com/m04kA/SMC-SalonService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	storeClient  StoreServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	storeClient StoreServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		storeClient:  storeClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: store=%d, services=%v, date=%s",
		req.StoreID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем расписание салона (таймзона, рабочие часы, закрытия)
	schedule, err := uc.scheduleRepo.Get(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: schedule for store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule for store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	loc, err := schedule.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid timezone %q for store id=%d: %v",
			schedule.Timezone, req.StoreID, err)
		return nil, fmt.Errorf("%w: invalid store timezone: %v", ErrInternal, err)
	}

	// 4. Валидация даты: прошедшие дни не предлагаются
	if scheduling.IsDateInPast(req.Date, now, loc) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 5. Собираем корзину услуг в порядке запроса
	services, err := uc.fetchServices(ctx, req.StoreID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// 6. Получаем состав сотрудников
	roster, err := uc.storeClient.GetEmployees(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeservice.ErrStoreNotFound) {
			uc.logger.Warn("GetAvailableSlots: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get employees for store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
	}
	employees := storeservice.ToDomainEmployees(roster)

	// 7. Снапшот активных бронирований салона на запрошенный день
	dayStart := scheduling.StartOfDay(req.Date, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	filter := domain.StoreBookingsFilter{
		StoreID:   req.StoreID,
		StartDate: &dayStart,
		EndDate:   &dayEnd,
	}

	bookings, err := uc.bookingRepo.GetByStoreWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Генерируем слоты
	slots, err := scheduling.GenerateSlots(scheduling.SlotQuery{
		Date:      dayStart,
		Rule:      schedule.RuleForWeekday(dayStart.Weekday()),
		Services:  services,
		Employees: employees,
		Bookings:  bookings,
		Closures:  schedule.Closures,
		Now:       now,
		Location:  loc,
	})
	if err != nil {
		var durErr *scheduling.DurationError
		if errors.As(err, &durErr) {
			uc.logger.Warn("GetAvailableSlots: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for store=%d, date=%s",
		len(slots), req.StoreID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		StoreID:  req.StoreID,
		Timezone: schedule.Timezone,
		Slots:    slots,
	}, nil
}

// fetchServices загружает услуги корзины, сохраняя порядок запроса
func (uc *UseCase) fetchServices(ctx context.Context, storeID int64, serviceIDs []int64) ([]domain.ServiceRequirement, error) {
	services := make([]domain.ServiceRequirement, 0, len(serviceIDs))

	for _, serviceID := range serviceIDs {
		service, err := uc.storeClient.GetService(ctx, storeID, serviceID)
		if err != nil {
			if errors.Is(err, storeservice.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", serviceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		services = append(services, service.ToRequirement())
	}

	return services, nil
}
