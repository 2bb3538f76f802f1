package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// StartOfDay возвращает полночь даты t в локации loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// StartOfMonth возвращает полночь первого числа месяца даты t в локации loc
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}

// CombineDateTime собирает момент времени из календарной даты и локального
// времени суток в таймзоне салона
func CombineDateTime(date time.Time, t types.TimeString, loc *time.Location) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(date, loc).Add(time.Duration(minutes) * time.Minute), nil
}

// DateKey возвращает дату в формате YYYY-MM-DD в таймзоне салона
// Используется как ключ для сравнения с датами закрытий
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.DateFormat)
}

// SameDay проверяет, что два момента относятся к одному календарному дню
// в локации loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	y1, m1, d1 := a.In(loc).Date()
	y2, m2, d2 := b.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что календарный день даты date уже прошёл
// относительно now в локации loc
func IsDateInPast(date, now time.Time, loc *time.Location) bool {
	return StartOfDay(date, loc).Before(StartOfDay(now, loc))
}
