package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosureListUnmarshal(t *testing.T) {
	t.Run("mixed string and object entries", func(t *testing.T) {
		raw := `["2025-12-25", {"employeeEmail": "e@salon.ru", "date": "2025-06-01"}]`

		var list ClosureList
		require.NoError(t, json.Unmarshal([]byte(raw), &list))

		require.Len(t, list, 2)
		assert.Equal(t, Closure{Date: "2025-12-25"}, list[0])
		assert.Equal(t, Closure{Date: "2025-06-01", EmployeeEmail: "e@salon.ru"}, list[1])
	})

	t.Run("snake_case object field accepted", func(t *testing.T) {
		raw := `[{"employee_email": "e@salon.ru", "date": "2025-06-01"}]`

		var list ClosureList
		require.NoError(t, json.Unmarshal([]byte(raw), &list))

		require.Len(t, list, 1)
		assert.Equal(t, "e@salon.ru", list[0].EmployeeEmail)
	})

	t.Run("stringified object entry decoded", func(t *testing.T) {
		raw := `["{\"employeeEmail\": \"e@salon.ru\", \"date\": \"2025-06-01\"}"]`

		var list ClosureList
		require.NoError(t, json.Unmarshal([]byte(raw), &list))

		require.Len(t, list, 1)
		assert.Equal(t, Closure{Date: "2025-06-01", EmployeeEmail: "e@salon.ru"}, list[0])
	})

	t.Run("malformed stringified json kept as opaque store closure", func(t *testing.T) {
		raw := `["{not-valid-json"]`

		var list ClosureList
		require.NoError(t, json.Unmarshal([]byte(raw), &list))

		require.Len(t, list, 1)
		assert.True(t, list[0].IsStoreWide())
		assert.Equal(t, "{not-valid-json", list[0].Date)
	})

	t.Run("roundtrip through canonical marshal", func(t *testing.T) {
		original := ClosureList{
			{Date: "2025-12-25"},
			{Date: "2025-06-01", EmployeeEmail: "e@salon.ru"},
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded ClosureList
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})
}

func TestClosureListLookups(t *testing.T) {
	list := ClosureList{
		{Date: "2025-12-25"},
		{Date: "2025-06-01", EmployeeEmail: "e@salon.ru"},
	}

	assert.True(t, list.IsStoreClosed("2025-12-25"))
	assert.False(t, list.IsStoreClosed("2025-06-01"))

	assert.True(t, list.IsEmployeeClosed("e@salon.ru", "2025-06-01"))
	assert.False(t, list.IsEmployeeClosed("e@salon.ru", "2025-06-02"))
	assert.False(t, list.IsEmployeeClosed("other@salon.ru", "2025-06-01"))
}
