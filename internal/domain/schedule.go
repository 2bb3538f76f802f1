package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// WorkDayRule represents working hours for one weekday.
// A day may carry a second open interval (e.g. split by a lunch break).
type WorkDayRule struct {
	// Day название дня недели в нижнем регистре: "monday" ... "sunday"
	Day     string           `json:"day"`
	Enabled bool             `json:"enabled"`
	Start   types.TimeString `json:"startTime"`
	End     types.TimeString `json:"endTime"`

	// Второй интервал (опционально, после перерыва)
	Start2 *types.TimeString `json:"startTime2,omitempty"`
	End2   *types.TimeString `json:"endTime2,omitempty"`
}

// HasSecondInterval returns true if the day is split into two open intervals
func (r *WorkDayRule) HasSecondInterval() bool {
	return r.Start2 != nil && r.End2 != nil
}

// WeekdayName возвращает каноническое имя дня недели для WorkDayRule.Day
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// StoreSchedule настройки расписания салона: таймзона, рабочие часы и закрытия
type StoreSchedule struct {
	StoreID  int64
	Timezone string
	WorkDays []WorkDayRule
	Closures ClosureList

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RuleForWeekday возвращает правило рабочего дня для дня недели.
// Если правило не задано, день считается выходным.
func (s *StoreSchedule) RuleForWeekday(d time.Weekday) WorkDayRule {
	name := WeekdayName(d)
	for _, rule := range s.WorkDays {
		if strings.ToLower(rule.Day) == name {
			return rule
		}
	}
	return WorkDayRule{Day: name, Enabled: false}
}

// Location возвращает *time.Location таймзоны салона
func (s *StoreSchedule) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
