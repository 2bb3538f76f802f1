package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestBuildWorkBlocks(t *testing.T) {
	t.Run("consecutive same profession services merge into one block", func(t *testing.T) {
		services := []domain.ServiceRequirement{
			{Profession: "Nail Technician", DurationMinutes: 30},
			{Profession: "Nail Technician", DurationMinutes: 45},
		}

		blocks, err := buildWorkBlocks(at(14, 0), services)
		require.NoError(t, err)

		require.Len(t, blocks, 1)
		assert.Equal(t, "Nail Technician", blocks[0].profession)
		assert.Equal(t, at(14, 0), blocks[0].start)
		assert.Equal(t, at(15, 15), blocks[0].end)
		assert.Equal(t, 75, blocks[0].durationMinutes())
	})

	t.Run("different professions stay separate", func(t *testing.T) {
		services := []domain.ServiceRequirement{
			{Profession: "Barber", DurationMinutes: 30},
			{Profession: "Nail Technician", DurationMinutes: 30},
			{Profession: "Barber", DurationMinutes: 15},
		}

		blocks, err := buildWorkBlocks(at(10, 0), services)
		require.NoError(t, err)

		require.Len(t, blocks, 3)
		assert.Equal(t, at(10, 0), blocks[0].start)
		assert.Equal(t, at(10, 30), blocks[1].start)
		assert.Equal(t, at(11, 0), blocks[2].start)
		assert.Equal(t, at(11, 15), blocks[2].end)
	})

	t.Run("non positive duration rejected", func(t *testing.T) {
		services := []domain.ServiceRequirement{
			{Profession: "Barber", DurationMinutes: 0},
		}

		_, err := buildWorkBlocks(at(10, 0), services)

		var durErr *DurationError
		require.ErrorAs(t, err, &durErr)
		assert.Equal(t, 0, durErr.Minutes)
	})
}

func TestCanBookServicesAtTime(t *testing.T) {
	t.Run("empty services trivially bookable", func(t *testing.T) {
		ok, err := CanBookServicesAtTime(at(10, 0), nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("merged block assigned to single employee", func(t *testing.T) {
		// Две услуги Nail Technician подряд склеиваются в блок 75 минут,
		// единственный свободный мастер покрывает его целиком
		employees := []domain.Employee{
			{Email: "n@salon.ru", Category: "Nail Technician"},
		}
		services := []domain.ServiceRequirement{
			{Profession: "Nail Technician", DurationMinutes: 30},
			{Profession: "Nail Technician", DurationMinutes: 45},
		}

		ok, err := CanBookServicesAtTime(at(14, 0), services, employees, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("backtracks to second qualified employee", func(t *testing.T) {
		// A занят 09:00-10:00, B свободен: перебор пробует A, откатывается
		// и назначает B
		employees := []domain.Employee{
			{Email: "a@salon.ru", Category: "Hairstylist"},
			{Email: "b@salon.ru", Category: "Hairstylist"},
		}
		bookings := []*domain.Booking{
			booking("a@salon.ru", at(9, 0), 60),
		}
		services := []domain.ServiceRequirement{
			{Profession: "Hairstylist", DurationMinutes: 30},
		}

		ok, err := CanBookServicesAtTime(at(9, 15), services, employees, bookings)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("single employee cannot cover two separated blocks at once", func(t *testing.T) {
		// Один мастер, между двумя его блоками вклинивается блок другой
		// специализации - но второй блок мастера начинается, когда первый
		// ещё не закончился бы у другого исполнителя. Здесь блоки мастера
		// не пересекаются между собой, поэтому запись выполнима.
		employees := []domain.Employee{
			{Email: "n@salon.ru", Category: "Nail Technician"},
			{Email: "b@salon.ru", Category: "Barber"},
		}
		services := []domain.ServiceRequirement{
			{Profession: "Nail Technician", DurationMinutes: 30},
			{Profession: "Barber", DurationMinutes: 30},
			{Profession: "Nail Technician", DurationMinutes: 30},
		}

		ok, err := CanBookServicesAtTime(at(10, 0), services, employees, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("tentative assignment blocks same employee overlap", func(t *testing.T) {
		// Сценарий с конфликтом внутри решения: у мастера N уже есть
		// бронирование, перекрывающее второй блок, поэтому последовательность
		// невыполнима - другой кандидатуры нет
		employees := []domain.Employee{
			{Email: "n@salon.ru", Category: "Nail Technician"},
		}
		bookings := []*domain.Booking{
			booking2("n@salon.ru", "Nail Technician", at(10, 30), 30),
		}
		services := []domain.ServiceRequirement{
			{Profession: "Nail Technician", DurationMinutes: 30},
			{Profession: "Nail Technician", DurationMinutes: 30},
		}

		ok, err := CanBookServicesAtTime(at(10, 0), services, employees, bookings)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown profession auto satisfied", func(t *testing.T) {
		employees := []domain.Employee{
			{Email: "b@salon.ru", Category: "Barber"},
		}
		services := []domain.ServiceRequirement{
			{Profession: "Barber", DurationMinutes: 30},
			{Profession: "Massage Therapist", DurationMinutes: 60},
		}

		ok, err := CanBookServicesAtTime(at(10, 0), services, employees, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("soundness of found assignment", func(t *testing.T) {
		// Если решение найдено, прямой подбор исполнителей тем же порядком
		// не должен встретить конфликт
		employees := []domain.Employee{
			{Email: "a@salon.ru", Category: "Hairstylist"},
			{Email: "b@salon.ru", Category: "Hairstylist"},
		}
		bookings := []*domain.Booking{
			booking("a@salon.ru", at(9, 0), 60),
		}
		services := []domain.ServiceRequirement{
			{Profession: "Hairstylist", DurationMinutes: 30},
			{Profession: "Hairstylist", DurationMinutes: 30},
		}

		ok, err := CanBookServicesAtTime(at(9, 30), services, employees, bookings)
		require.NoError(t, err)
		require.True(t, ok)

		// Воспроизводим назначение пошагово через picker
		accumulated := bookings
		cursor := at(9, 30)
		for _, svc := range services {
			emp := GetAvailableEmployee(svc.Profession, cursor, svc.DurationMinutes, employees, accumulated)
			require.NotNil(t, emp)
			accumulated = append(accumulated, booking2(emp.Email, svc.Profession, cursor, svc.DurationMinutes))
			cursor = cursor.Add(time.Duration(svc.DurationMinutes) * time.Minute)
		}
	})
}

func TestGetAvailableEmployee(t *testing.T) {
	employees := []domain.Employee{
		{Email: "a@salon.ru", Category: "Hairstylist"},
		{Email: "b@salon.ru", Category: "Hairstylist"},
	}

	t.Run("first free employee in roster order", func(t *testing.T) {
		emp := GetAvailableEmployee("Hairstylist", at(9, 15), 30, employees, nil)
		require.NotNil(t, emp)
		assert.Equal(t, "a@salon.ru", emp.Email)
	})

	t.Run("busy first candidate skipped", func(t *testing.T) {
		bookings := []*domain.Booking{
			booking("a@salon.ru", at(9, 0), 60),
		}
		emp := GetAvailableEmployee("Hairstylist", at(9, 15), 30, employees, bookings)
		require.NotNil(t, emp)
		assert.Equal(t, "b@salon.ru", emp.Email)
	})

	t.Run("nil when everyone busy", func(t *testing.T) {
		bookings := []*domain.Booking{
			booking("a@salon.ru", at(9, 0), 60),
			booking("b@salon.ru", at(9, 0), 60),
		}
		assert.Nil(t, GetAvailableEmployee("Hairstylist", at(9, 15), 30, employees, bookings))
	})

	t.Run("nil when profession unknown, unlike feasibility checks", func(t *testing.T) {
		assert.Nil(t, GetAvailableEmployee("Massage Therapist", at(9, 0), 30, employees, nil))
	})
}

// booking2 создает активное бронирование с указанной специализацией
func booking2(email, profession string, start time.Time, durationMinutes int) *domain.Booking {
	b := booking(email, start, durationMinutes)
	b.Profession = profession
	return b
}
