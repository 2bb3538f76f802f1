package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeScheduleRepo struct {
	saved *domain.StoreSchedule
}

func (f *fakeScheduleRepo) Get(_ context.Context, _ int64) (*domain.StoreSchedule, error) {
	return f.saved, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, schedule *domain.StoreSchedule) (*domain.StoreSchedule, error) {
	f.saved = schedule
	return schedule, nil
}

type fakeStoreClient struct {
	store *storeservice.Store
}

func (f *fakeStoreClient) GetStore(_ context.Context, _ int64) (*storeservice.Store, error) {
	if f.store == nil {
		return nil, storeservice.ErrStoreNotFound
	}
	return f.store, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:   42,
		Timezone: "Europe/Moscow",
		WorkDays: []models.WorkDayRuleDTO{
			{Day: "monday", Enabled: true, Start: "10:00", End: "13:00",
				Start2: ptr.Ptr(types.TimeString("14:00")), End2: ptr.Ptr(types.TimeString("19:00"))},
			{Day: "sunday", Enabled: false},
		},
		Closures: []models.ClosureDTO{
			{Date: "2025-12-25"},
			{Date: "2025-07-01", EmployeeEmail: "alice@salon.io"},
		},
	}
}

func newTestService(repo *fakeScheduleRepo) *Service {
	client := &fakeStoreClient{store: &storeservice.Store{ID: 1, ManagerIDs: []int64{42}}}
	return NewService(repo, client, nopLogger{})
}

func TestUpdateSchedule_Success(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo)

	resp, err := svc.UpdateSchedule(context.Background(), 1, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.StoreID)
	assert.Equal(t, "Europe/Moscow", resp.Timezone)
	require.Len(t, repo.saved.WorkDays, 2)
	assert.True(t, repo.saved.WorkDays[0].HasSecondInterval())
	require.Len(t, repo.saved.Closures, 2)
	assert.True(t, repo.saved.Closures[0].IsStoreWide())
	assert.False(t, repo.saved.Closures[1].IsStoreWide())
}

func TestUpdateSchedule_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	req := validRequest()
	req.UserID = 99

	_, err := svc.UpdateSchedule(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateSchedule_Validation(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	cases := []struct {
		name   string
		mutate func(req *models.UpdateScheduleRequest)
	}{
		{"empty timezone", func(req *models.UpdateScheduleRequest) {
			req.Timezone = ""
		}},
		{"unknown timezone", func(req *models.UpdateScheduleRequest) {
			req.Timezone = "Mars/Olympus"
		}},
		{"unknown weekday", func(req *models.UpdateScheduleRequest) {
			req.WorkDays[0].Day = "someday"
		}},
		{"duplicate weekday", func(req *models.UpdateScheduleRequest) {
			req.WorkDays[1].Day = "monday"
		}},
		{"start after end", func(req *models.UpdateScheduleRequest) {
			req.WorkDays[0].Start = "15:00"
			req.WorkDays[0].End = "10:00"
			req.WorkDays[0].Start2 = nil
			req.WorkDays[0].End2 = nil
		}},
		{"half second interval", func(req *models.UpdateScheduleRequest) {
			req.WorkDays[0].End2 = nil
		}},
		{"second interval overlaps first", func(req *models.UpdateScheduleRequest) {
			req.WorkDays[0].Start2 = ptr.Ptr(types.TimeString("12:00"))
		}},
		{"bad closure date", func(req *models.UpdateScheduleRequest) {
			req.Closures[0].Date = "25.12.2025"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := svc.UpdateSchedule(context.Background(), 1, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetSchedule(t *testing.T) {
	repo := &fakeScheduleRepo{
		saved: &domain.StoreSchedule{
			StoreID:  1,
			Timezone: "UTC",
			WorkDays: []domain.WorkDayRule{{Day: "monday", Enabled: true, Start: "09:00", End: "18:00"}},
		},
	}
	svc := newTestService(repo)

	resp, err := svc.GetSchedule(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "UTC", resp.Timezone)
	require.Len(t, resp.WorkDays, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.WorkDays[0].Start)
}
