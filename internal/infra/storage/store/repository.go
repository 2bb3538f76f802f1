package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий настроек расписания салонов
//
// Рабочие часы и закрытия хранятся JSONB-колонками. Список закрытий
// сохраняется в историческом смешанном формате (строки и объекты) -
// его нормализация выполняется при декодировании в domain.ClosureList.
type Repository struct {
	db DBExecutor

	// defaultTimezone подставляется салонам без собственной настройки таймзоны
	defaultTimezone string
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor, defaultTimezone string) *Repository {
	return &Repository{db: db, defaultTimezone: defaultTimezone}
}

// Get получает расписание салона
func (r *Repository) Get(ctx context.Context, storeID int64) (*domain.StoreSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"store_id",
		"timezone",
		"work_days",
		"closures",
		"created_at",
		"updated_at",
	).
		From("store_schedules").
		Where(squirrel.Eq{"store_id": storeID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.StoreSchedule
	var timezone sql.NullString
	var workDaysRaw, closuresRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.StoreID,
		&timezone,
		&workDaysRaw,
		&closuresRaw,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan schedule: %v", ErrScanRow, err)
	}

	schedule.Timezone = timezone.String
	if schedule.Timezone == "" {
		schedule.Timezone = r.defaultTimezone
	}

	if err := json.Unmarshal(workDaysRaw, &schedule.WorkDays); err != nil {
		return nil, fmt.Errorf("%w: Get - decode work days: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(closuresRaw, &schedule.Closures); err != nil {
		return nil, fmt.Errorf("%w: Get - decode closures: %v", ErrDecode, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// Upsert создает или обновляет расписание салона
func (r *Repository) Upsert(ctx context.Context, schedule *domain.StoreSchedule) (*domain.StoreSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workDaysRaw, err := json.Marshal(schedule.WorkDays)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode work days: %v", ErrEncode, err)
	}

	closuresRaw, err := json.Marshal(schedule.Closures)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode closures: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("store_schedules").
		Columns("store_id", "timezone", "work_days", "closures").
		Values(schedule.StoreID, schedule.Timezone, workDaysRaw, closuresRaw).
		Suffix(`ON CONFLICT (store_id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			work_days = EXCLUDED.work_days,
			closures = EXCLUDED.closures,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}
