package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модели

// WorkDayRuleDTO правило рабочего дня в API
type WorkDayRuleDTO struct {
	Day     string            `json:"day"`
	Enabled bool              `json:"enabled"`
	Start   types.TimeString  `json:"startTime"`
	End     types.TimeString  `json:"endTime"`
	Start2  *types.TimeString `json:"startTime2,omitempty"`
	End2    *types.TimeString `json:"endTime2,omitempty"`
}

// ClosureDTO закрытие салона или сотрудника в API
type ClosureDTO struct {
	Date          string `json:"date"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
}

// UpdateScheduleRequest запрос на обновление расписания салона
type UpdateScheduleRequest struct {
	UserID   int64            `json:"userId"`
	Timezone string           `json:"timezone"`
	WorkDays []WorkDayRuleDTO `json:"workDays"`
	Closures []ClosureDTO     `json:"closures"`
}

// ToDomainSchedule конвертирует request в domain модель
func (r *UpdateScheduleRequest) ToDomainSchedule(storeID int64) *domain.StoreSchedule {
	schedule := &domain.StoreSchedule{
		StoreID:  storeID,
		Timezone: r.Timezone,
		WorkDays: make([]domain.WorkDayRule, len(r.WorkDays)),
		Closures: make(domain.ClosureList, len(r.Closures)),
	}

	for i, rule := range r.WorkDays {
		schedule.WorkDays[i] = domain.WorkDayRule{
			Day:     rule.Day,
			Enabled: rule.Enabled,
			Start:   rule.Start,
			End:     rule.End,
			Start2:  rule.Start2,
			End2:    rule.End2,
		}
	}

	for i, closure := range r.Closures {
		schedule.Closures[i] = domain.Closure{
			Date:          closure.Date,
			EmployeeEmail: closure.EmployeeEmail,
		}
	}

	return schedule
}

// Response модели

// ScheduleResponse ответ с расписанием салона
type ScheduleResponse struct {
	StoreID  int64            `json:"storeId"`
	Timezone string           `json:"timezone"`
	WorkDays []WorkDayRuleDTO `json:"workDays"`
	Closures []ClosureDTO     `json:"closures"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.StoreSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		StoreID:   s.StoreID,
		Timezone:  s.Timezone,
		WorkDays:  make([]WorkDayRuleDTO, len(s.WorkDays)),
		Closures:  make([]ClosureDTO, len(s.Closures)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	for i, rule := range s.WorkDays {
		resp.WorkDays[i] = WorkDayRuleDTO{
			Day:     rule.Day,
			Enabled: rule.Enabled,
			Start:   rule.Start,
			End:     rule.End,
			Start2:  rule.Start2,
			End2:    rule.End2,
		}
	}

	for i, closure := range s.Closures {
		resp.Closures[i] = ClosureDTO{
			Date:          closure.Date,
			EmployeeEmail: closure.EmployeeEmail,
		}
	}

	return resp
}
