package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/store"
	"github.com/m04kA/SMC-SalonService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case для создания записи в салон
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	storeClient  StoreServiceClient
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	storeClient StoreServiceClient,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		storeClient:  storeClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции, чтобы параллельные клиенты не заняли один слот дважды.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, store=%d, services=%v, date=%s, time=%s",
		req.UserID, req.StoreID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем расписание салона
	schedule, err := uc.scheduleRepo.Get(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateBooking: schedule for store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CreateBooking: failed to get schedule for store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	loc, err := schedule.Location()
	if err != nil {
		uc.logger.Error("CreateBooking: invalid timezone %q for store id=%d: %v",
			schedule.Timezone, req.StoreID, err)
		return nil, fmt.Errorf("%w: invalid store timezone: %v", ErrInternal, err)
	}

	start, err := scheduling.CombineDateTime(req.Date, req.Time, loc)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time: %v", err)
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	// 3. Проверяем минимальное время до начала записи
	if start.Before(now.Add(domain.MinBookingNoticeMinutes * time.Minute)) {
		uc.logger.Warn("CreateBooking: too late to book slot %s for store id=%d", start, req.StoreID)
		return nil, ErrTooLateToBook
	}

	// 4. Проверяем, что салон работает в эту дату и время
	rule := schedule.RuleForWeekday(start.Weekday())
	dateKey := scheduling.DateKey(start, loc)

	if !rule.Enabled || schedule.Closures.IsStoreClosed(dateKey) {
		uc.logger.Warn("CreateBooking: store id=%d is closed on %s", req.StoreID, dateKey)
		return nil, ErrStoreClosed
	}

	// 5. Собираем корзину услуг в порядке запроса
	services, err := uc.fetchServices(ctx, req.StoreID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	totalMinutes := domain.TotalDurationMinutes(services)
	if err := uc.checkWorkHours(&rule, req.Time, totalMinutes); err != nil {
		uc.logger.Warn("CreateBooking: sequence %s+%dmin outside working hours of store id=%d",
			req.Time, totalMinutes, req.StoreID)
		return nil, err
	}

	// 6. Получаем состав сотрудников, исключая закрытых в эту дату
	roster, err := uc.storeClient.GetEmployees(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeservice.ErrStoreNotFound) {
			uc.logger.Warn("CreateBooking: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CreateBooking: failed to get employees for store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
	}
	allEmployees := storeservice.ToDomainEmployees(roster)
	employees := scheduling.AvailableEmployees(allEmployees, schedule.Closures, dateKey)

	// Каждую требуемую специализацию должен закрывать хотя бы один
	// доступный в эту дату сотрудник (зеркалит пре-фильтр подбора слотов)
	if !scheduling.ProfessionsCovered(services, allEmployees, employees) {
		uc.logger.Warn("CreateBooking: no available employee for required professions, store id=%d, date=%s",
			req.StoreID, dateKey)
		return nil, ErrSlotNotAvailable
	}

	// 7. Проверка доступности и вставка в сериализуемой транзакции
	var created []*domain.Booking

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = nil

		// Перечитываем бронирования дня внутри транзакции
		dayStart := scheduling.StartOfDay(start, loc)
		dayEnd := dayStart.AddDate(0, 0, 1)
		filter := domain.StoreBookingsFilter{
			StoreID:   req.StoreID,
			StartDate: &dayStart,
			EndDate:   &dayEnd,
		}

		bookings, err := uc.bookingRepo.GetByStoreWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Проверяем выполнимость всей последовательности целиком
		ok, err := scheduling.CanBookServicesAtTime(start, services, employees, bookings)
		if err != nil {
			var durErr *scheduling.DurationError
			if errors.As(err, &durErr) {
				return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
			}
			return fmt.Errorf("%w: feasibility check failed: %v", ErrInternal, err)
		}
		if !ok {
			return ErrSlotNotAvailable
		}

		// Назначаем исполнителей последовательно: каждая следующая услуга
		// видит бронирования, созданные для предыдущих
		cursor := start
		for _, svc := range services {
			booking := uc.buildBooking(req, svc, cursor, employees, bookings)

			saved, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			created = append(created, saved)
			bookings = append(bookings, saved)
			cursor = cursor.Add(time.Duration(svc.DurationMinutes) * time.Minute)
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot %s is not available for store id=%d", start, req.StoreID)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(txErr, ErrInvalidDuration) {
			return nil, txErr
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", txErr)
		if errors.Is(txErr, ErrInternal) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, txErr)
	}

	uc.logger.Info("CreateBooking: created %d bookings for user=%d, store=%d, start=%s",
		len(created), req.UserID, req.StoreID, start)

	return &Response{Bookings: created}, nil
}

// buildBooking собирает бронирование одной услуги с подбором исполнителя.
// Если свободного сотрудника нужной специализации нет, бронирование
// создается без назначения.
func (uc *UseCase) buildBooking(
	req *Request,
	svc domain.ServiceRequirement,
	start time.Time,
	employees []domain.Employee,
	bookings []*domain.Booking,
) *domain.Booking {
	var employeeEmail *string
	if emp := scheduling.GetAvailableEmployee(svc.Profession, start, svc.DurationMinutes, employees, bookings); emp != nil {
		employeeEmail = &emp.Email
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	return &domain.Booking{
		UserID:                 req.UserID,
		StoreID:                req.StoreID,
		EmployeeEmail:          employeeEmail,
		Profession:             svc.Profession,
		DateTime:               start,
		ServiceDurationMinutes: svc.DurationMinutes,
		Status:                 domain.StatusPending,
		ServiceName:            svc.Name,
		ServicePrice:           svc.Price,
		Notes:                  notes,
	}
}

// fetchServices загружает услуги корзины, сохраняя порядок запроса
func (uc *UseCase) fetchServices(ctx context.Context, storeID int64, serviceIDs []int64) ([]domain.ServiceRequirement, error) {
	services := make([]domain.ServiceRequirement, 0, len(serviceIDs))

	for _, serviceID := range serviceIDs {
		service, err := uc.storeClient.GetService(ctx, storeID, serviceID)
		if err != nil {
			if errors.Is(err, storeservice.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found", serviceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		services = append(services, service.ToRequirement())
	}

	return services, nil
}

// checkWorkHours проверяет, что вся последовательность услуг укладывается
// в один из рабочих интервалов дня
func (uc *UseCase) checkWorkHours(rule *domain.WorkDayRule, start types.TimeString, totalMinutes int) error {
	end, err := start.AddMinutes(totalMinutes)
	if err != nil {
		return fmt.Errorf("%w: sequence does not fit into the day: %v", ErrStoreClosed, err)
	}

	if !start.IsBefore(rule.Start) && !end.IsAfter(rule.End) {
		return nil
	}

	if rule.HasSecondInterval() && !start.IsBefore(*rule.Start2) && !end.IsAfter(*rule.End2) {
		return nil
	}

	return ErrStoreClosed
}
