package update_store_schedule

import (
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Timezone string                  `json:"timezone"`
	WorkDays []models.WorkDayRuleDTO `json:"workDays"`
	Closures []models.ClosureDTO     `json:"closures"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:   userID,
		Timezone: r.Timezone,
		WorkDays: r.WorkDays,
		Closures: r.Closures,
	}
}
