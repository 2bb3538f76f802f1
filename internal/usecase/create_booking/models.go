package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID     int64            // ID клиента (из заголовка аутентификации)
	StoreID    int64            // ID салона
	ServiceIDs []int64          // Упорядоченная корзина услуг (порядок значим)
	Date       time.Time        // Дата записи (без времени)
	Time       types.TimeString // Локальное время начала первой услуги
	Notes      string           // Комментарий клиента (опционально)
}

// Response модель ответа с созданными бронированиями.
// На каждую услугу корзины создается отдельное бронирование.
type Response struct {
	Bookings []*domain.Booking
}
