package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStoreID     = "некорректный ID салона"
	msgMissingServiceIDs  = "список ID услуг обязателен"
	msgInvalidServiceIDs  = "некорректный список ID услуг"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStoreNotFound      = "салон не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidBookingDate = "некорректная дата"
	msgInvalidDuration    = "некорректная длительность услуги"
	msgInvalidRequest     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/available-slots
// Query params: serviceIds (required, comma-separated, порядок значим),
// date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем storeId из URL
	storeIDStr := vars["storeId"]
	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/available-slots - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	// Извлекаем serviceIds из query параметров
	serviceIDsStr := r.URL.Query().Get("serviceIds")
	if serviceIDsStr == "" {
		h.logger.Warn("GET /stores/{id}/available-slots - Missing service IDs")
		handlers.RespondBadRequest(w, msgMissingServiceIDs)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stores/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом списка услуг и даты)
	serviceIDs, err := parseServiceIDs(serviceIDsStr)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/available-slots - Invalid service IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	useCaseReq, err := ToUseCaseRequest(storeID, serviceIDs, dateStr)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/available-slots - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /stores/{id}/available-slots - Service not found: store_id=%d, service_ids=%s",
				storeID, serviceIDsStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /stores/{id}/available-slots - Invalid date: store_id=%d, date=%s", storeID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /stores/{id}/available-slots - Invalid service duration: store_id=%d", storeID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/available-slots - Invalid input: store_id=%d, error=%v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /stores/{id}/available-slots - Failed to get slots: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stores/{id}/available-slots - Slots retrieved successfully: store_id=%d, date=%s, slots_count=%d",
		storeID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
