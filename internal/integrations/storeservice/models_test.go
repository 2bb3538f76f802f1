package storeservice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeUnmarshal(t *testing.T) {
	t.Run("camelCase fields", func(t *testing.T) {
		raw := `{"id": 1, "email": "a@salon.ru", "name": "Анна", "category": "Hairstylist", "role": "employee"}`

		var emp Employee
		require.NoError(t, json.Unmarshal([]byte(raw), &emp))

		assert.Equal(t, "a@salon.ru", emp.Email)
		assert.Equal(t, "Hairstylist", emp.Category)
	})

	t.Run("snake_case fields normalized", func(t *testing.T) {
		raw := `{"id": 1, "employee_email": "a@salon.ru", "profession_category": "Hairstylist", "role": "admin"}`

		var emp Employee
		require.NoError(t, json.Unmarshal([]byte(raw), &emp))

		assert.Equal(t, "a@salon.ru", emp.Email)
		assert.Equal(t, "Hairstylist", emp.Category)
		assert.Equal(t, "admin", emp.Role)
	})

	t.Run("camelCase wins when both present", func(t *testing.T) {
		raw := `{"email": "new@salon.ru", "employee_email": "old@salon.ru"}`

		var emp Employee
		require.NoError(t, json.Unmarshal([]byte(raw), &emp))

		assert.Equal(t, "new@salon.ru", emp.Email)
	})
}

func TestServiceUnmarshal(t *testing.T) {
	t.Run("snake_case fields normalized", func(t *testing.T) {
		raw := `{"id": 7, "name": "Стрижка", "profession_category": "Barber", "duration_minutes": 30, "service_price": 1500}`

		var svc Service
		require.NoError(t, json.Unmarshal([]byte(raw), &svc))

		assert.Equal(t, "Barber", svc.Profession)
		assert.Equal(t, 30, svc.DurationMinutes)
		require.NotNil(t, svc.Price)
		assert.Equal(t, 1500.0, *svc.Price)
	})

	t.Run("missing price converts to zero", func(t *testing.T) {
		raw := `{"id": 7, "name": "Стрижка", "profession": "Barber", "durationMinutes": 30}`

		var svc Service
		require.NoError(t, json.Unmarshal([]byte(raw), &svc))

		req := svc.ToRequirement()
		assert.Equal(t, 0.0, req.Price)
		assert.Equal(t, "Barber", req.Profession)
	})
}

func TestToDomainEmployeesKeepsOrder(t *testing.T) {
	employees := []Employee{
		{Email: "b@salon.ru", Category: "Barber"},
		{Email: "a@salon.ru", Category: "Barber"},
	}

	result := ToDomainEmployees(employees)

	require.Len(t, result, 2)
	assert.Equal(t, "b@salon.ru", result[0].Email)
	assert.Equal(t, "a@salon.ru", result[1].Email)
}
