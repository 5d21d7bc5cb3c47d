package apply_gesture

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	applyGesture "github.com/m04kA/SMC-CalendarService/internal/usecase/apply_gesture"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgBookingNotFound = "бронирование не найдено"
	msgUpdateConflict  = "новое время пересекается с другим бронированием"
)

type Handler struct {
	useCase ApplyGestureUseCase
	logger  Logger
}

func NewHandler(useCase ApplyGestureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/gestures
// Body: GestureRequest (трасса указателя + целевое бронирование)
// Путь перенос/ресайз открыт только роли admin (X-User-Role)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body GestureRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /calendar/gestures - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	editable := middleware.IsAdmin(r.Context())

	useCaseReq, err := body.ToUseCaseRequest(editable)
	if err != nil {
		h.logger.Warn("POST /calendar/gestures - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, applyGesture.ErrInvalidInput):
			h.logger.Warn("POST /calendar/gestures - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, applyGesture.ErrBookingNotFound):
			h.logger.Warn("POST /calendar/gestures - Booking not found: workshop_id=%d", body.WorkshopID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, applyGesture.ErrUpdateConflict):
			h.logger.Warn("POST /calendar/gestures - Update conflict: workshop_id=%d, error=%v", body.WorkshopID, err)
			handlers.RespondConflict(w, msgUpdateConflict)

		default:
			h.logger.Error("POST /calendar/gestures - Failed: workshop_id=%d, error=%v", body.WorkshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/gestures - Resolved: workshop_id=%d, outcome=%s", body.WorkshopID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
