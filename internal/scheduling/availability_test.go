package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// at собирает момент времени в тестовый день
func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
}

// booking создает активное бронирование, назначенное на сотрудника
func booking(email string, start time.Time, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		EmployeeEmail:          ptr.Ptr(email),
		Profession:             "Barber",
		DateTime:               start,
		ServiceDurationMinutes: durationMinutes,
		Status:                 domain.StatusConfirmed,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		s1, e1   time.Time
		s2, e2   time.Time
		expected bool
	}{
		{
			name: "partial overlap",
			s1:   at(10, 0), e1: at(11, 0),
			s2: at(10, 30), e2: at(11, 30),
			expected: true,
		},
		{
			name: "contained interval",
			s1:   at(10, 0), e1: at(12, 0),
			s2: at(10, 30), e2: at(11, 0),
			expected: true,
		},
		{
			name: "identical intervals",
			s1:   at(10, 0), e1: at(11, 0),
			s2: at(10, 0), e2: at(11, 0),
			expected: true,
		},
		{
			name: "touching intervals do not overlap",
			s1:   at(10, 0), e1: at(10, 30),
			s2: at(10, 30), e2: at(11, 0),
			expected: false,
		},
		{
			name: "disjoint intervals",
			s1:   at(9, 0), e1: at(9, 30),
			s2: at(11, 0), e2: at(11, 30),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))

			// Симметрия: overlap(A,B) == overlap(B,A)
			assert.Equal(t, tt.expected, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestIsEmployeeAvailable(t *testing.T) {
	// Сотрудник занят 10:00-10:30
	bookings := []*domain.Booking{
		booking("barber@salon.ru", at(10, 0), 30),
	}

	t.Run("conflict at same start", func(t *testing.T) {
		assert.False(t, IsEmployeeAvailable("barber@salon.ru", at(10, 0), 30, bookings))
	})

	t.Run("back to back booking allowed", func(t *testing.T) {
		assert.True(t, IsEmployeeAvailable("barber@salon.ru", at(10, 30), 30, bookings))
	})

	t.Run("booking ending at existing start allowed", func(t *testing.T) {
		assert.True(t, IsEmployeeAvailable("barber@salon.ru", at(9, 30), 30, bookings))
	})

	t.Run("other employee not affected", func(t *testing.T) {
		assert.True(t, IsEmployeeAvailable("other@salon.ru", at(10, 0), 30, bookings))
	})

	t.Run("unassigned booking never blocks", func(t *testing.T) {
		unassigned := []*domain.Booking{{
			Profession:             "Barber",
			DateTime:               at(10, 0),
			ServiceDurationMinutes: 30,
			Status:                 domain.StatusConfirmed,
		}}
		assert.True(t, IsEmployeeAvailable("barber@salon.ru", at(10, 0), 30, unassigned))
	})

	t.Run("cancelled booking never blocks", func(t *testing.T) {
		cancelled := booking("barber@salon.ru", at(10, 0), 30)
		cancelled.Status = domain.StatusCancelledByUser
		assert.True(t, IsEmployeeAvailable("barber@salon.ru", at(10, 0), 30, []*domain.Booking{cancelled}))
	})

	t.Run("no bookings at all", func(t *testing.T) {
		assert.True(t, IsEmployeeAvailable("barber@salon.ru", at(10, 0), 30, nil))
	})
}

func TestIsAnyEmployeeAvailable(t *testing.T) {
	employees := []domain.Employee{
		{Email: "a@salon.ru", Category: "Hairstylist"},
		{Email: "b@salon.ru", Category: "Hairstylist"},
		{Email: "n@salon.ru", Category: "Nail Technician"},
	}

	t.Run("free qualified employee found", func(t *testing.T) {
		bookings := []*domain.Booking{
			booking("a@salon.ru", at(9, 0), 60),
		}
		assert.True(t, IsAnyEmployeeAvailable("Hairstylist", at(9, 15), 30, employees, bookings))
	})

	t.Run("all qualified employees busy", func(t *testing.T) {
		bookings := []*domain.Booking{
			booking("a@salon.ru", at(9, 0), 60),
			booking("b@salon.ru", at(9, 0), 60),
		}
		assert.False(t, IsAnyEmployeeAvailable("Hairstylist", at(9, 15), 30, employees, bookings))
	})

	t.Run("no employee with profession permits booking", func(t *testing.T) {
		// Политика: специализации нет ни у кого - запись разрешена
		// безусловно, исполнителя назначат вручную
		assert.True(t, IsAnyEmployeeAvailable("Massage Therapist", at(9, 0), 300, employees, nil))
		assert.True(t, IsAnyEmployeeAvailable("Massage Therapist", at(23, 0), 30, nil, nil))
	})
}
