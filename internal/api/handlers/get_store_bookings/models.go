package get_store_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	storeID int64,
	userID int64,
	employeeEmail string,
	statusStr string,
	dateStr string,
	includeInactiveStr string,
) (*models.GetStoreBookingsRequest, error) {
	req := &models.GetStoreBookingsRequest{
		UserID:          userID,
		StoreID:         storeID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим employeeEmail если указан
	if employeeEmail != "" {
		req.EmployeeEmail = &employeeEmail
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим date если указана: границы дня, конец исключается
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		end := date.AddDate(0, 0, 1)
		req.StartDate = &date
		req.EndDate = &end
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
