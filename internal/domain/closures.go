package domain

import (
	"encoding/json"
	"strings"
)

// Closure закрытие на календарную дату.
// Пустой EmployeeEmail означает закрытие всего салона.
type Closure struct {
	Date          string
	EmployeeEmail string
}

// IsStoreWide returns true if the closure applies to the whole store
func (c Closure) IsStoreWide() bool {
	return c.EmployeeEmail == ""
}

// ClosureList список закрытий салона.
//
// Исторически список хранится в смешанном формате: строковые элементы -
// закрытия всего салона ("2025-12-25"), объекты {employeeEmail, date} -
// закрытия отдельных сотрудников. Обе формы могут встречаться дополнительно
// JSON-стрингифицированными внутри той же коллекции. Декодирование приводит
// всё к каноническому виду, чтобы планировщик не видел этой неоднозначности.
type ClosureList []Closure

// closureObject промежуточная форма объекта закрытия
// Поддерживает оба написания полей (schema drift: camelCase и snake_case)
type closureObject struct {
	EmployeeEmail      string `json:"employeeEmail"`
	EmployeeEmailSnake string `json:"employee_email"`
	Date               string `json:"date"`
}

func (o closureObject) toClosure() (Closure, bool) {
	email := o.EmployeeEmail
	if email == "" {
		email = o.EmployeeEmailSnake
	}
	if o.Date == "" {
		return Closure{}, false
	}
	return Closure{Date: o.Date, EmployeeEmail: email}, true
}

// UnmarshalJSON декодирует смешанный список закрытий
func (l *ClosureList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	closures := make(ClosureList, 0, len(raw))
	for _, entry := range raw {
		closures = append(closures, decodeClosureEntry(entry))
	}

	*l = closures
	return nil
}

// decodeClosureEntry декодирует один элемент списка закрытий
func decodeClosureEntry(entry json.RawMessage) Closure {
	// Объект {employeeEmail, date}
	var obj closureObject
	if err := json.Unmarshal(entry, &obj); err == nil {
		if closure, ok := obj.toClosure(); ok {
			return closure
		}
	}

	var s string
	if err := json.Unmarshal(entry, &s); err != nil {
		// Ни объект, ни строка - сохраняем как есть,
		// такой элемент никогда не совпадёт с реальной датой
		return Closure{Date: string(entry)}
	}

	// Строка может содержать стрингифицированный объект закрытия сотрудника.
	// Нераспарсившийся JSON трактуем как обычную строку-дату закрытия салона.
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") {
		var inner closureObject
		if err := json.Unmarshal([]byte(trimmed), &inner); err == nil {
			if closure, ok := inner.toClosure(); ok {
				return closure
			}
		}
	}

	return Closure{Date: s}
}

// MarshalJSON сериализует список в каноническом виде:
// строки для закрытий салона, объекты для закрытий сотрудников
func (l ClosureList) MarshalJSON() ([]byte, error) {
	out := make([]interface{}, 0, len(l))
	for _, c := range l {
		if c.IsStoreWide() {
			out = append(out, c.Date)
			continue
		}
		out = append(out, map[string]string{
			"employeeEmail": c.EmployeeEmail,
			"date":          c.Date,
		})
	}
	return json.Marshal(out)
}

// IsStoreClosed возвращает true, если салон целиком закрыт в указанную дату (YYYY-MM-DD)
func (l ClosureList) IsStoreClosed(date string) bool {
	for _, c := range l {
		if c.IsStoreWide() && c.Date == date {
			return true
		}
	}
	return false
}

// IsEmployeeClosed возвращает true, если сотрудник закрыт в указанную дату (YYYY-MM-DD)
func (l ClosureList) IsEmployeeClosed(employeeEmail, date string) bool {
	for _, c := range l {
		if c.EmployeeEmail == employeeEmail && c.Date == date {
			return true
		}
	}
	return false
}
