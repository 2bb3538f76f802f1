package scheduling

import "fmt"

// DurationError возвращается при неположительной длительности услуги.
// Неположительная длительность зациклила бы шаг генерации слотов,
// поэтому отклоняется явно до начала перебора.
type DurationError struct {
	Minutes int
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("scheduling: service duration must be positive, got %d minutes", e.Minutes)
}
