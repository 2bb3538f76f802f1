package domain

// EmployeeRole represents the role of a store employee
type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "employee"
	RoleAdmin    EmployeeRole = "admin"
	RoleOwner    EmployeeRole = "owner"
)

// Employee represents a store employee.
// Email is the identity key used in bookings and closures.
// An employee carries exactly one profession (Category).
type Employee struct {
	ID       int64
	Email    string
	Name     string
	Category string
	Role     EmployeeRole
}

// HasCategory returns true if the employee provides the given profession
func (e *Employee) HasCategory(profession string) bool {
	return e.Category == profession
}

// ServiceRequirement represents one cart line item to be scheduled.
// Order within a slice is significant: services are performed strictly
// back-to-back in the given order.
type ServiceRequirement struct {
	// Profession требуемая специализация сотрудника
	Profession string

	// DurationMinutes длительность услуги, строго положительная
	DurationMinutes int

	// Denormalized data for checkout
	Name  string
	Price float64
}

// TotalDurationMinutes возвращает суммарную длительность последовательности услуг
func TotalDurationMinutes(services []ServiceRequirement) int {
	total := 0
	for _, svc := range services {
		total += svc.DurationMinutes
	}
	return total
}
