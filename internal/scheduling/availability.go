// Package scheduling ядро планирования записи: проверка занятости сотрудников,
// подбор исполнителей для последовательности услуг и генерация свободных слотов.
//
// Все функции пакета чистые: работают над снапшотом данных салона, который
// собрал вызывающий код, не ходят в БД и не имеют состояния.
package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Overlaps проверяет пересечение двух полуоткрытых интервалов [s1,e1) и [s2,e2).
// Интервалы пересекаются, только если один начинается СТРОГО раньше конца другого.
// Граничащие интервалы (e1 == s2) пересечением не считаются:
//   - Бронирование 10:00-10:30 и кандидат 10:30-11:00 → НЕТ пересечения
//   - Бронирование 10:00-10:30 и кандидат 10:15-10:45 → ЕСТЬ пересечение
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// IsEmployeeAvailable проверяет, свободен ли сотрудник в интервале
// [start, start+duration).
//
// Учитываются только активные бронирования, назначенные на этого сотрудника.
// Бронирования без назначенного сотрудника не принадлежат ничьему личному
// расписанию и никогда не блокируют время (неназначенные бронирования
// считаются предварительными - политика, а не упущение).
func IsEmployeeAvailable(employeeEmail string, start time.Time, durationMinutes int, bookings []*domain.Booking) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, booking := range bookings {
		if !booking.IsAssignedTo(employeeEmail) {
			continue
		}
		if !booking.IsActive() {
			continue
		}

		if Overlaps(start, end, booking.DateTime, booking.End()) {
			return false
		}
	}

	return true
}

// IsAnyEmployeeAvailable проверяет, свободен ли хотя бы один сотрудник
// с нужной специализацией в интервале [start, start+duration).
//
// Если в салоне нет ни одного сотрудника с такой специализацией, запись
// разрешается безусловно: бронирование останется без исполнителя, и
// администратор назначит его вручную. Это сознательная политика, не ошибка.
func IsAnyEmployeeAvailable(profession string, start time.Time, durationMinutes int, employees []domain.Employee, bookings []*domain.Booking) bool {
	qualified := filterByCategory(employees, profession)
	if len(qualified) == 0 {
		return true
	}

	for _, emp := range qualified {
		if IsEmployeeAvailable(emp.Email, start, durationMinutes, bookings) {
			return true
		}
	}

	return false
}

// filterByCategory возвращает сотрудников с указанной специализацией,
// сохраняя порядок исходного списка
func filterByCategory(employees []domain.Employee, profession string) []domain.Employee {
	var result []domain.Employee
	for _, emp := range employees {
		if emp.HasCategory(profession) {
			result = append(result, emp)
		}
	}
	return result
}
