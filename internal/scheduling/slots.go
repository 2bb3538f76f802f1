package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SlotQuery снапшот данных салона для генерации слотов на одну дату.
// Собирается вызывающим кодом; генератор не ходит за данными сам.
type SlotQuery struct {
	// Date любой момент интересующего календарного дня
	Date time.Time

	// Rule правило рабочего дня для дня недели даты Date
	Rule domain.WorkDayRule

	// Services упорядоченная корзина услуг
	Services []domain.ServiceRequirement

	// Employees полный состав сотрудников салона
	Employees []domain.Employee

	// Bookings активные бронирования салона (снапшот)
	Bookings []*domain.Booking

	// Closures закрытия салона и сотрудников
	Closures domain.ClosureList

	// Now текущий момент, от него отсчитывается минимальное время до записи
	Now time.Time

	// Location таймзона салона
	Location *time.Location
}

// GenerateSlots перечисляет все локальные времена начала (HH:MM), в которые
// выполнима запись всей последовательности услуг в указанную дату.
//
// Поведение:
//   - выходной день или закрытие всего салона → пустой список;
//   - сотрудники, закрытые в эту дату, исключаются из рассмотрения;
//   - если для какой-то требуемой специализации нет ни одного доступного
//     сотрудника, список пуст сразу (быстрый пре-фильтр). Исключение: в
//     салоне вообще нет сотрудников со специализациями - тогда пре-фильтр
//     пропускается и каждый слот оценивается отдельно, разрешая записи
//     без исполнителя;
//   - по каждому рабочему интервалу (их может быть два, например до и после
//     перерыва) перебор идёт с шагом SlotStepMinutes от открытия до
//     последнего старта, при котором последовательность успевает до закрытия;
//   - слоты раньше Now + MinBookingNoticeMinutes не предлагаются.
//
// Результат детерминирован: одинаковые входы дают одинаковый список.
// Ошибка возвращается только при неположительной длительности услуги.
func GenerateSlots(q SlotQuery) ([]types.TimeString, error) {
	totalMinutes := 0
	for _, svc := range q.Services {
		if svc.DurationMinutes <= 0 {
			return nil, &DurationError{Minutes: svc.DurationMinutes}
		}
		totalMinutes += svc.DurationMinutes
	}

	slots := make([]types.TimeString, 0)

	if !q.Rule.Enabled {
		return slots, nil
	}

	dateKey := DateKey(q.Date, q.Location)
	if q.Closures.IsStoreClosed(dateKey) {
		return slots, nil
	}

	available := AvailableEmployees(q.Employees, q.Closures, dateKey)

	if !ProfessionsCovered(q.Services, q.Employees, available) {
		return slots, nil
	}

	minStart := q.Now.Add(domain.MinBookingNoticeMinutes * time.Minute)

	intervals := [][2]types.TimeString{{q.Rule.Start, q.Rule.End}}
	if q.Rule.HasSecondInterval() {
		intervals = append(intervals, [2]types.TimeString{*q.Rule.Start2, *q.Rule.End2})
	}

	for _, interval := range intervals {
		open, err := CombineDateTime(q.Date, interval[0], q.Location)
		if err != nil {
			return nil, err
		}
		close, err := CombineDateTime(q.Date, interval[1], q.Location)
		if err != nil {
			return nil, err
		}

		// Последний допустимый старт: вся последовательность должна
		// уложиться до закрытия интервала
		lastStart := close.Add(-time.Duration(totalMinutes) * time.Minute)

		for tick := open; !tick.After(lastStart); tick = tick.Add(domain.SlotStepMinutes * time.Minute) {
			if tick.Before(minStart) {
				continue
			}

			ok, err := CanBookServicesAtTime(tick, q.Services, available, q.Bookings)
			if err != nil {
				return nil, err
			}
			if ok {
				slots = append(slots, types.NewTimeString(tick.In(q.Location)))
			}
		}
	}

	return slots, nil
}

// AvailableEmployees исключает сотрудников, закрытых в указанную дату
func AvailableEmployees(employees []domain.Employee, closures domain.ClosureList, dateKey string) []domain.Employee {
	result := make([]domain.Employee, 0, len(employees))
	for _, emp := range employees {
		if closures.IsEmployeeClosed(emp.Email, dateKey) {
			continue
		}
		result = append(result, emp)
	}
	return result
}

// ProfessionsCovered проверяет, что каждую требуемую специализацию корзины
// может закрыть хотя бы один доступный сотрудник. Для салонов вообще без
// специализированных сотрудников проверка пропускается - там каждая запись
// разрешена без исполнителя.
func ProfessionsCovered(services []domain.ServiceRequirement, allEmployees, available []domain.Employee) bool {
	if !hasAnyCategory(allEmployees) {
		return true
	}
	for _, profession := range distinctProfessions(services) {
		if len(filterByCategory(available, profession)) == 0 {
			return false
		}
	}
	return true
}

// hasAnyCategory проверяет, есть ли в салоне хотя бы один сотрудник
// с заполненной специализацией
func hasAnyCategory(employees []domain.Employee) bool {
	for _, emp := range employees {
		if emp.Category != "" {
			return true
		}
	}
	return false
}

// distinctProfessions возвращает уникальные специализации корзины,
// сохраняя порядок первого вхождения
func distinctProfessions(services []domain.ServiceRequirement) []string {
	seen := make(map[string]struct{}, len(services))
	var result []string
	for _, svc := range services {
		if _, ok := seen[svc.Profession]; ok {
			continue
		}
		seen[svc.Profession] = struct{}{}
		result = append(result, svc.Profession)
	}
	return result
}
