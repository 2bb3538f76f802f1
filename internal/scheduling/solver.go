package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// workBlock непрерывный отрезок работы одной специализации.
// Соседние услуги одной специализации без зазора склеиваются в один блок,
// чтобы один сотрудник выполнял их подряд без искусственного разрыва.
type workBlock struct {
	profession string
	start      time.Time
	end        time.Time
}

// durationMinutes длительность блока в минутах
func (b workBlock) durationMinutes() int {
	return int(b.end.Sub(b.start) / time.Minute)
}

// buildWorkBlocks раскладывает упорядоченный список услуг по времени
// и склеивает соседние блоки.
//
// Услуги идут строго встык: конец одной является началом следующей,
// без зазоров и без переупорядочивания. Склейка - один проход слева
// направо: блок сливается только с непосредственно предыдущим, если
// совпадает специализация и конец предыдущего равен началу текущего.
func buildWorkBlocks(start time.Time, services []domain.ServiceRequirement) ([]workBlock, error) {
	blocks := make([]workBlock, 0, len(services))
	cursor := start

	for _, svc := range services {
		if svc.DurationMinutes <= 0 {
			return nil, &DurationError{Minutes: svc.DurationMinutes}
		}

		end := cursor.Add(time.Duration(svc.DurationMinutes) * time.Minute)

		if n := len(blocks); n > 0 &&
			blocks[n-1].profession == svc.Profession &&
			blocks[n-1].end.Equal(cursor) {
			blocks[n-1].end = end
		} else {
			blocks = append(blocks, workBlock{
				profession: svc.Profession,
				start:      cursor,
				end:        end,
			})
		}

		cursor = end
	}

	return blocks, nil
}

// CanBookServicesAtTime проверяет, выполнима ли запись последовательности услуг
// с началом в start: существует ли назначение сотрудников на блоки работы,
// при котором ни один сотрудник не занят дважды.
//
// Поиск ведётся бэктрекингом по блокам в порядке следования. Кандидаты
// перебираются в порядке исходного списка сотрудников - это tie-break,
// а не критерий оптимальности: выигрывает первое полное назначение.
// Блоки, специализацию которых не имеет ни один сотрудник, считаются
// выполненными автоматически (см. IsAnyEmployeeAvailable).
//
// Пустой список услуг выполним тривиально.
// Ошибка возвращается только при неположительной длительности услуги.
func CanBookServicesAtTime(start time.Time, services []domain.ServiceRequirement, employees []domain.Employee, bookings []*domain.Booking) (bool, error) {
	blocks, err := buildWorkBlocks(start, services)
	if err != nil {
		return false, err
	}

	assignment := make(map[int]string, len(blocks))
	return assignBlocks(0, blocks, employees, bookings, assignment), nil
}

// assignBlocks рекурсивно подбирает сотрудника для блока k и всех последующих.
// assignment хранит уже принятые (предварительные) назначения блоков 0..k-1
// и откатывается при неудаче ветки.
func assignBlocks(k int, blocks []workBlock, employees []domain.Employee, bookings []*domain.Booking, assignment map[int]string) bool {
	if k == len(blocks) {
		return true
	}

	block := blocks[k]
	qualified := filterByCategory(employees, block.profession)

	// Нет сотрудников с такой специализацией - блок остаётся без
	// исполнителя, запись всё равно разрешается
	if len(qualified) == 0 {
		return assignBlocks(k+1, blocks, employees, bookings, assignment)
	}

	for _, emp := range qualified {
		// Занятость кандидата: подтверждённые бронирования плюс блоки,
		// уже предварительно назначенные ему в этом же решении
		candidateBookings := withTentativeAssignments(bookings, blocks, assignment, emp.Email)

		if !IsEmployeeAvailable(emp.Email, block.start, block.durationMinutes(), candidateBookings) {
			continue
		}

		assignment[k] = emp.Email
		if assignBlocks(k+1, blocks, employees, bookings, assignment) {
			return true
		}
		delete(assignment, k)
	}

	return false
}

// withTentativeAssignments дополняет список бронирований синтетическими
// записями для блоков, уже назначенных указанному сотруднику в текущем решении
func withTentativeAssignments(bookings []*domain.Booking, blocks []workBlock, assignment map[int]string, employeeEmail string) []*domain.Booking {
	result := make([]*domain.Booking, len(bookings), len(bookings)+len(assignment))
	copy(result, bookings)

	for idx, assigned := range assignment {
		if assigned != employeeEmail {
			continue
		}

		block := blocks[idx]
		email := employeeEmail
		result = append(result, &domain.Booking{
			EmployeeEmail:          &email,
			Profession:             block.profession,
			DateTime:               block.start,
			ServiceDurationMinutes: block.durationMinutes(),
			Status:                 domain.StatusConfirmed,
		})
	}

	return result
}
