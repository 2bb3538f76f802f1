package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StoreID    int64     // ID салона
	ServiceIDs []int64   // Упорядоченная корзина услуг (порядок значим)
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time          // Дата, на которую запрашивались слоты
	StoreID  int64              // ID салона
	Timezone string             // Таймзона салона, в которой выражены слоты
	Slots    []types.TimeString // Времена начала, в которые выполнима вся корзина
}
