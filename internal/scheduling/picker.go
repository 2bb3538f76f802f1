package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// GetAvailableEmployee возвращает первого свободного сотрудника с нужной
// специализацией или nil, если такого нет.
//
// В отличие от проверок выполнимости (IsAnyEmployeeAvailable,
// CanBookServicesAtTime) эта функция СТРОГАЯ: отсутствие специализации в
// салоне даёт nil, а не разрешение. Асимметрия сознательная - на этапе
// подбора слотов достаточно бита "выполнимо", а при оформлении нужен
// конкретный исполнитель либо явно пустое поле сотрудника.
func GetAvailableEmployee(profession string, start time.Time, durationMinutes int, employees []domain.Employee, bookings []*domain.Booking) *domain.Employee {
	for _, emp := range filterByCategory(employees, profession) {
		if IsEmployeeAvailable(emp.Email, start, durationMinutes, bookings) {
			found := emp
			return &found
		}
	}
	return nil
}
