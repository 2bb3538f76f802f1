package storeservice

import (
	"encoding/json"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Store салон в ответе StoreService
type Store struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ManagerIDs []int64 `json:"managerIds"`
}

// Service услуга салона в ответе StoreService
//
// Исторически API отдаёт поля то в camelCase, то в snake_case
// (schema drift между версиями). Нормализация выполняется здесь,
// дальше по коду живёт только каноническая форма.
type Service struct {
	ID              int64
	Name            string
	Profession      string
	DurationMinutes int
	Price           *float64
}

// serviceWire промежуточная форма с обоими написаниями полей
type serviceWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	Profession      string `json:"profession"`
	ProfessionSnake string `json:"profession_category"`

	DurationMinutes      int `json:"durationMinutes"`
	DurationMinutesSnake int `json:"duration_minutes"`

	Price      *float64 `json:"price"`
	PriceSnake *float64 `json:"service_price"`
}

// UnmarshalJSON нормализует оба написания полей услуги
func (s *Service) UnmarshalJSON(data []byte) error {
	var wire serviceWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	s.ID = wire.ID
	s.Name = wire.Name

	s.Profession = wire.Profession
	if s.Profession == "" {
		s.Profession = wire.ProfessionSnake
	}

	s.DurationMinutes = wire.DurationMinutes
	if s.DurationMinutes == 0 {
		s.DurationMinutes = wire.DurationMinutesSnake
	}

	s.Price = wire.Price
	if s.Price == nil {
		s.Price = wire.PriceSnake
	}

	return nil
}

// ToRequirement конвертирует услугу в требование планировщика
func (s *Service) ToRequirement() domain.ServiceRequirement {
	price := 0.0
	if s.Price != nil {
		price = *s.Price
	}
	return domain.ServiceRequirement{
		Profession:      s.Profession,
		DurationMinutes: s.DurationMinutes,
		Name:            s.Name,
		Price:           price,
	}
}

// Employee сотрудник салона в ответе StoreService
type Employee struct {
	ID       int64
	Email    string
	Name     string
	Category string
	Role     string
}

// employeeWire промежуточная форма с обоими написаниями полей
type employeeWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`

	Email      string `json:"email"`
	EmailSnake string `json:"employee_email"`

	Category      string `json:"category"`
	CategorySnake string `json:"profession_category"`
}

// UnmarshalJSON нормализует оба написания полей сотрудника
func (e *Employee) UnmarshalJSON(data []byte) error {
	var wire employeeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	e.ID = wire.ID
	e.Name = wire.Name
	e.Role = wire.Role

	e.Email = wire.Email
	if e.Email == "" {
		e.Email = wire.EmailSnake
	}

	e.Category = wire.Category
	if e.Category == "" {
		e.Category = wire.CategorySnake
	}

	return nil
}

// ToDomain конвертирует сотрудника в domain модель
func (e *Employee) ToDomain() domain.Employee {
	role := domain.EmployeeRole(e.Role)
	if role == "" {
		role = domain.RoleEmployee
	}
	return domain.Employee{
		ID:       e.ID,
		Email:    e.Email,
		Name:     e.Name,
		Category: e.Category,
		Role:     role,
	}
}

// ToDomainEmployees конвертирует список сотрудников, сохраняя порядок ответа.
// Порядок важен: он задаёт tie-break при подборе исполнителей.
func ToDomainEmployees(employees []Employee) []domain.Employee {
	result := make([]domain.Employee, len(employees))
	for i, e := range employees {
		result[i] = e.ToDomain()
	}
	return result
}
