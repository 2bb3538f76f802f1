package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StoreID     int64   `json:"storeId"`
	ServiceIDs  []int64 `json:"serviceIds"`  // Порядок значим
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Notes       string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		StoreID:    r.StoreID,
		ServiceIDs: r.ServiceIDs,
		Date:       date,
		Time:       startTime,
		Notes:      r.Notes,
	}, nil
}

// BookingResponse HTTP модель одного созданного бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	StoreID         int64   `json:"storeId"`
	EmployeeEmail   *string `json:"employeeEmail,omitempty"`
	Profession      string  `json:"profession"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model: бронирование на каждую услугу
type CreateBookingResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		Bookings: make([]BookingResponse, len(resp.Bookings)),
	}

	for i, b := range resp.Bookings {
		out.Bookings[i] = BookingResponse{
			ID:              b.ID,
			UserID:          b.UserID,
			StoreID:         b.StoreID,
			EmployeeEmail:   b.EmployeeEmail,
			Profession:      b.Profession,
			BookingDate:     b.DateTime.Format(domain.DateFormat),
			StartTime:       b.DateTime.Format(domain.TimeFormat),
			DurationMinutes: b.ServiceDurationMinutes,
			Status:          string(b.Status),
			ServiceName:     b.ServiceName,
			ServicePrice:    b.ServicePrice,
			Notes:           b.Notes,
		}
	}

	return out
}
