package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string   `json:"date"`
	StoreID  int64    `json:"storeId"`
	Timezone string   `json:"timezone"`
	Slots    []string `json:"slots"` // "HH:MM" в таймзоне салона
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		StoreID:  resp.StoreID,
		Timezone: resp.Timezone,
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(storeID int64, serviceIDs []int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StoreID:    storeID,
		ServiceIDs: serviceIDs,
		Date:       date,
	}, nil
}

// parseServiceIDs разбирает список ID услуг из query параметра.
// Порядок элементов сохраняется - он задаёт порядок выполнения услуг.
func parseServiceIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
