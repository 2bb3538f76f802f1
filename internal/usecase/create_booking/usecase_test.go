package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// --- фейки зависимостей ---

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	nextID    int64
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	saved := *booking
	saved.ID = f.nextID
	f.bookings = append(f.bookings, &saved)
	return &saved, nil
}

func (f *fakeBookingRepo) GetByStoreWithFilter(_ context.Context, _ domain.StoreBookingsFilter) ([]*domain.Booking, error) {
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
}

func (f *fakeStoreClient) GetService(_ context.Context, _ int64, serviceID int64) (*storeservice.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, storeservice.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeStoreClient) GetEmployees(_ context.Context, _ int64) ([]storeservice.Employee, error) {
	return f.employees, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
			{Day: "monday", Enabled: true, Start: "10:00", End: "18:00"},
		},
	}
}

func testClient() *fakeStoreClient {
	return &fakeStoreClient{
		services: map[int64]*storeservice.Service{
			10: {ID: 10, Name: "Haircut", Profession: "Barber", DurationMinutes: 30, Price: ptr.Ptr(25.0)},
			20: {ID: 20, Name: "Coloring", Profession: "Colorist", DurationMinutes: 45, Price: ptr.Ptr(60.0)},
		},
		employees: []storeservice.Employee{
			{ID: 1, Email: "alice@salon.io", Name: "Alice", Category: "Barber"},
			{ID: 2, Email: "bob@salon.io", Name: "Bob", Category: "Colorist"},
		},
	}
}

func newTestUseCase(repo *fakeBookingRepo, schedules *fakeScheduleRepo, client *fakeStoreClient) *UseCase {
	uc := NewUseCase(repo, schedules, client, fakeTxManager{}, nopLogger{})
	// За сутки до запрошенной даты, чтобы минимальное время до записи не мешало
	uc.timeProvider = &fixedTimeProvider{now: testDate.AddDate(0, 0, -1).Add(12 * time.Hour)}
	return uc
}

func TestExecute_SingleService(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeScheduleRepo{schedule: testSchedule()}, testClient())

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "10:00",
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	b := resp.Bookings[0]
	assert.Equal(t, int64(7), b.UserID)
	assert.Equal(t, "Barber", b.Profession)
	assert.Equal(t, time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC), b.DateTime)
	assert.Equal(t, 30, b.ServiceDurationMinutes)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "Haircut", b.ServiceName)
	assert.Equal(t, 25.0, b.ServicePrice)
	require.NotNil(t, b.EmployeeEmail)
	assert.Equal(t, "alice@salon.io", *b.EmployeeEmail)
}

func TestExecute_SequentialCart(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeScheduleRepo{schedule: testSchedule()}, testClient())

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10, 20}, Date: testDate, Time: "10:00",
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	// Вторая услуга начинается сразу после первой
	assert.Equal(t, time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC), resp.Bookings[0].DateTime)
	assert.Equal(t, time.Date(2025, 6, 16, 10, 30, 0, 0, time.UTC), resp.Bookings[1].DateTime)
	require.NotNil(t, resp.Bookings[0].EmployeeEmail)
	require.NotNil(t, resp.Bookings[1].EmployeeEmail)
	assert.Equal(t, "alice@salon.io", *resp.Bookings[0].EmployeeEmail)
	assert.Equal(t, "bob@salon.io", *resp.Bookings[1].EmployeeEmail)
}

func TestExecute_SlotTaken(t *testing.T) {
	email := "alice@salon.io"
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID: 100, StoreID: 1, EmployeeEmail: &email, Profession: "Barber",
				DateTime:               time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC),
				ServiceDurationMinutes: 60,
				Status:                 domain.StatusConfirmed,
			},
		},
		nextID: 100,
	}
	uc := newTestUseCase(repo, &fakeScheduleRepo{schedule: testSchedule()}, testClient())

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "10:30",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	// Бронирование не создано
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_NoQualifiedEmployee_UnassignedBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	client := testClient()
	// В салоне нет сотрудников со специализациями вообще
	client.employees = []storeservice.Employee{
		{ID: 3, Email: "admin@salon.io", Name: "Admin", Category: ""},
	}
	uc := newTestUseCase(repo, &fakeScheduleRepo{schedule: testSchedule()}, client)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "10:00",
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	// Запись без исполнителя: подбор строгий, выполнимость - нет
	assert.Nil(t, resp.Bookings[0].EmployeeEmail)
}

func TestExecute_EmployeeClosedOnDate(t *testing.T) {
	schedule := testSchedule()
	schedule.Closures = domain.ClosureList{
		{Date: "2025-06-16", EmployeeEmail: "alice@salon.io"},
	}
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeScheduleRepo{schedule: schedule}, testClient())

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "10:00",
	})
	// Единственный барбер закрыт, а колорист есть - специализация Barber
	// в составе присутствует, значит строгий пре-фильтр даёт отказ
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_StoreClosed(t *testing.T) {
	schedule := testSchedule()
	schedule.Closures = domain.ClosureList{{Date: "2025-06-16"}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{schedule: schedule}, testClient())

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestExecute_DisabledDay(t *testing.T) {
	schedule := testSchedule()
	schedule.WorkDays[0].Enabled = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{schedule: schedule}, testClient())

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestExecute_OutsideWorkHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{schedule: testSchedule()}, testClient())

	// 17:45 + 30 минут выходит за закрытие в 18:00
	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "17:45",
	})
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestExecute_TooLateToBook(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{schedule: testSchedule()}, testClient())
	// За 30 минут до начала при минимальном уведомлении в час
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 16, 9, 30, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{schedule: testSchedule()}, testClient())

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero user id", &Request{StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "10:00"}},
		{"zero store id", &Request{UserID: 7, ServiceIDs: []int64{10}, Date: testDate, Time: "10:00"}},
		{"empty cart", &Request{UserID: 7, StoreID: 1, Date: testDate, Time: "10:00"}},
		{"too many services", &Request{UserID: 7, StoreID: 1, ServiceIDs: []int64{1, 2, 3, 4}, Date: testDate, Time: "10:00"}},
		{"bad time", &Request{UserID: 7, StoreID: 1, ServiceIDs: []int64{10}, Date: testDate, Time: "25:99"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
