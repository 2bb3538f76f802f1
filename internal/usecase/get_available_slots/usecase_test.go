package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/store"
	"github.com/m04kA/SMC-SalonService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// --- фейки зависимостей ---

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.StoreBookingsFilter
	err        error
}

func (f *fakeBookingRepo) GetByStoreWithFilter(_ context.Context, filter domain.StoreBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeScheduleRepo struct {
	schedule *domain.StoreSchedule
	err      error
}

func (f *fakeScheduleRepo) Get(_ context.Context, _ int64) (*domain.StoreSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

type fakeStoreClient struct {
	services  map[int64]*storeservice.Service
	employees []storeservice.Employee
	err       error
}

func (f *fakeStoreClient) GetService(_ context.Context, _ int64, serviceID int64) (*storeservice.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, storeservice.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeStoreClient) GetEmployees(_ context.Context, _ int64) ([]storeservice.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// --- фикстуры ---

// 2025-06-16 - понедельник
var testDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func testSchedule() *domain.StoreSchedule {
	return &domain.StoreSchedule{
		StoreID:  1,
		Timezone: "UTC",
		WorkDays: []domain.WorkDayRule{
			{Day: "monday", Enabled: true, Start: "10:00", End: "12:00"},
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, schedules *fakeScheduleRepo, client *fakeStoreClient) *UseCase {
	uc := NewUseCase(bookings, schedules, client, nopLogger{})
	// За сутки до запрошенной даты, чтобы минимальное время до записи не мешало
	uc.timeProvider = &fixedTimeProvider{now: testDate.AddDate(0, 0, -1).Add(12 * time.Hour)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	schedules := &fakeScheduleRepo{schedule: testSchedule()}
	client := &fakeStoreClient{
		services: map[int64]*storeservice.Service{
			10: {ID: 10, Name: "Haircut", Profession: "Barber", DurationMinutes: 30, Price: ptr.Ptr(25.0)},
		},
		employees: []storeservice.Employee{
			{ID: 1, Email: "alice@salon.io", Name: "Alice", Category: "Barber", Role: "employee"},
		},
	}

	uc := newTestUseCase(bookings, schedules, client)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceIDs: []int64{10}, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.StoreID)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.Equal(t, []types.TimeString{
		"10:00", "10:15", "10:30", "10:45", "11:00", "11:15", "11:30",
	}, resp.Slots)
}

func TestExecute_DayBookingsFilter(t *testing.T) {
	bookings := &fakeBookingRepo{}
	schedules := &fakeScheduleRepo{schedule: testSchedule()}
	client := &fakeStoreClient{
		services: map[int64]*storeservice.Service{
			10: {ID: 10, Name: "Haircut", Profession: "Barber", DurationMinutes: 30},
		},
		employees: []storeservice.Employee{
			{ID: 1, Email: "alice@salon.io", Category: "Barber"},
		},
	}

	uc := newTestUseCase(bookings, schedules, client)

	_, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceIDs: []int64{10}, Date: testDate})
	require.NoError(t, err)

	// Снапшот бронирований ограничен запрошенным днём в таймзоне салона
	require.NotNil(t, bookings.lastFilter.StartDate)
	require.NotNil(t, bookings.lastFilter.EndDate)
	assert.Equal(t, testDate, *bookings.lastFilter.StartDate)
	assert.Equal(t, testDate.AddDate(0, 0, 1), *bookings.lastFilter.EndDate)
	assert.Equal(t, int64(1), bookings.lastFilter.StoreID)
}

func TestExecute_ExistingBookingRemovesSlots(t *testing.T) {
	email := "alice@salon.io"
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:                     100,
				StoreID:                1,
				EmployeeEmail:          &email,
				Profession:             "Barber",
				DateTime:               time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC),
				ServiceDurationMinutes: 60,
				Status:                 domain.StatusConfirmed,
			},
		},
	}
	schedules := &fakeScheduleRepo{schedule: testSchedule()}
	client := &fakeStoreClient{
		services: map[int64]*storeservice.Service{
			10: {ID: 10, Name: "Haircut", Profession: "Barber", DurationMinutes: 30},
		},
		employees: []storeservice.Employee{
			{ID: 1, Email: email, Category: "Barber"},
		},
	}

	uc := newTestUseCase(bookings, schedules, client)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceIDs: []int64{10}, Date: testDate})
	require.NoError(t, err)

	// Единственный барбер занят 10:00-11:00
	assert.Equal(t, []types.TimeString{"11:00", "11:15", "11:30"}, resp.Slots)
}

func TestExecute_ScheduleNotFound(t *testing.T) {
	schedules := &fakeScheduleRepo{err: storeRepo.ErrScheduleNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, schedules, &fakeStoreClient{})

	_, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceIDs: []int64{10}, Date: testDate})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	schedules := &fakeScheduleRepo{schedule: testSchedule()}
	client := &fakeStoreClient{services: map[int64]*storeservice.Service{}}
	uc := newTestUseCase(&fakeBookingRepo{}, schedules, client)

	_, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceIDs: []int64{99}, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_DateInPast(t *testing.T) {
	schedules := &fakeScheduleRepo{schedule: testSchedule()}
	uc := newTestUseCase(&fakeBookingRepo{}, schedules, &fakeStoreClient{})
	uc.timeProvider = &fixedTimeProvider{now: testDate.AddDate(0, 0, 3)}

	_, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceIDs: []int64{10}, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidDuration(t *testing.T) {
	schedules := &fakeScheduleRepo{schedule: testSchedule()}
	client := &fakeStoreClient{
		services: map[int64]*storeservice.Service{
			10: {ID: 10, Name: "Broken", Profession: "Barber", DurationMinutes: 0},
		},
		employees: []storeservice.Employee{
			{ID: 1, Email: "alice@salon.io", Category: "Barber"},
		},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, schedules, client)

	_, err := uc.Execute(context.Background(), &Request{StoreID: 1, ServiceIDs: []int64{10}, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeStoreClient{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero store id", &Request{StoreID: 0, ServiceIDs: []int64{10}, Date: testDate}},
		{"empty cart", &Request{StoreID: 1, ServiceIDs: nil, Date: testDate}},
		{"too many services", &Request{StoreID: 1, ServiceIDs: []int64{1, 2, 3, 4}, Date: testDate}},
		{"negative service id", &Request{StoreID: 1, ServiceIDs: []int64{-5}, Date: testDate}},
		{"zero date", &Request{StoreID: 1, ServiceIDs: []int64{10}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
