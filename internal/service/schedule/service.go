package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/store"
	storeClient "github.com/m04kA/SMC-SalonService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями салонов
type Service struct {
	scheduleRepo ScheduleRepository
	storeClient  StoreServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	storeClient StoreServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		storeClient:  storeClient,
		logger:       logger,
	}
}

// GetSchedule получает расписание салона.
// Публичная операция - расписание нужно виджету записи для любого клиента.
func (s *Service) GetSchedule(ctx context.Context, storeID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for store=%d", storeID)

	schedule, err := s.scheduleRepo.Get(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetSchedule: schedule for store id=%d not found", storeID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetSchedule: repository error for store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched schedule for store=%d", storeID)
	return models.FromDomainSchedule(schedule), nil
}

// UpdateSchedule обновляет расписание салона
// Доступно только менеджерам салона
func (s *Service) UpdateSchedule(ctx context.Context, storeID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for store=%d by user=%d", storeID, req.UserID)

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, storeID, req.UserID); err != nil {
		return nil, err
	}

	// Валидируем расписание
	if err := validateScheduleRequest(req); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed for store=%d: %v", storeID, err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, req.ToDomainSchedule(storeID))
	if err != nil {
		s.logger.Error("UpdateSchedule: repository error for store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for store=%d", storeID)
	return models.FromDomainSchedule(saved), nil
}

// checkManagerAccess проверяет, что пользователь является менеджером салона
func (s *Service) checkManagerAccess(ctx context.Context, storeID int64, userID int64) error {
	store, err := s.storeClient.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeClient.ErrStoreNotFound) {
			s.logger.Warn("checkManagerAccess: store id=%d not found", storeID)
			return ErrStoreNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get store id=%d: %v", storeID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get store: %v", ErrInternal, err)
	}

	for _, managerID := range store.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of store=%d", userID, storeID)
	return ErrAccessDenied
}

// validateScheduleRequest валидирует запрос обновления расписания
func validateScheduleRequest(req *models.UpdateScheduleRequest) error {
	if req.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", ErrInvalidInput)
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.Timezone)
	}

	seen := make(map[string]struct{}, len(req.WorkDays))
	for _, rule := range req.WorkDays {
		if !validWeekday(rule.Day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, rule.Day)
		}
		if _, ok := seen[rule.Day]; ok {
			return fmt.Errorf("%w: duplicate weekday %q", ErrInvalidInput, rule.Day)
		}
		seen[rule.Day] = struct{}{}

		if !rule.Enabled {
			continue
		}

		if err := rule.Start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time for %s: %v", ErrInvalidInput, rule.Day, err)
		}
		if err := rule.End.Validate(); err != nil {
			return fmt.Errorf("%w: invalid end time for %s: %v", ErrInvalidInput, rule.Day, err)
		}
		if !rule.Start.IsBefore(rule.End) {
			return fmt.Errorf("%w: start must be before end for %s", ErrInvalidInput, rule.Day)
		}

		// Второй интервал задаётся только парой и строго после первого
		if (rule.Start2 == nil) != (rule.End2 == nil) {
			return fmt.Errorf("%w: second interval for %s must set both start and end", ErrInvalidInput, rule.Day)
		}
		if rule.Start2 != nil {
			if err := rule.Start2.Validate(); err != nil {
				return fmt.Errorf("%w: invalid second start time for %s: %v", ErrInvalidInput, rule.Day, err)
			}
			if err := rule.End2.Validate(); err != nil {
				return fmt.Errorf("%w: invalid second end time for %s: %v", ErrInvalidInput, rule.Day, err)
			}
			if !rule.Start2.IsBefore(*rule.End2) {
				return fmt.Errorf("%w: second interval start must be before end for %s", ErrInvalidInput, rule.Day)
			}
			if rule.Start2.IsBefore(rule.End) {
				return fmt.Errorf("%w: second interval for %s must start after the first ends", ErrInvalidInput, rule.Day)
			}
		}
	}

	for _, closure := range req.Closures {
		if _, err := time.Parse(domain.DateFormat, closure.Date); err != nil {
			return fmt.Errorf("%w: invalid closure date %q", ErrInvalidInput, closure.Date)
		}
	}

	return nil
}

// validWeekday проверяет каноническое имя дня недели
func validWeekday(day string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if day == domain.WeekdayName(d) {
			return true
		}
	}
	return false
}
