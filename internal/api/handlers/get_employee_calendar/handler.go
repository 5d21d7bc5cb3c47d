package get_employee_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	renderCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/render_calendar"
)

const (
	msgInvalidWorkshopID = "некорректный ID мастерской"
	msgInvalidUserID     = "некорректный ID сотрудника"
	msgMissingRange      = "параметры from и to обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeTooWide      = "слишком широкий диапазон дат"
	msgFetchFailed       = "не удалось получить данные календаря"
)

type Handler struct {
	useCase RenderCalendarUseCase
	logger  Logger
}

func NewHandler(useCase RenderCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workshops/{workshopId}/employees/{userId}/calendar
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD),
// includeCancelled (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workshopID, err := strconv.ParseInt(vars["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/employees/{id}/calendar - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/employees/{id}/calendar - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /workshops/{id}/employees/{id}/calendar - Missing date range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	includeCancelled, _ := strconv.ParseBool(r.URL.Query().Get("includeCancelled"))

	useCaseReq, err := ToUseCaseRequest(workshopID, userID, fromStr, toStr, includeCancelled)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/employees/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, renderCalendar.ErrInvalidInput):
			h.logger.Warn("GET /workshops/{id}/employees/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, renderCalendar.ErrRangeTooWide):
			h.logger.Warn("GET /workshops/{id}/employees/{id}/calendar - Range too wide: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, renderCalendar.ErrFetchFailed):
			h.logger.Error("GET /workshops/{id}/employees/{id}/calendar - Fetch failed: workshop_id=%d, user_id=%d, error=%v",
				workshopID, userID, err)
			handlers.RespondBadGateway(w, msgFetchFailed)

		default:
			h.logger.Error("GET /workshops/{id}/employees/{id}/calendar - Failed to render: workshop_id=%d, user_id=%d, error=%v",
				workshopID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workshops/{id}/employees/{id}/calendar - Rendered: workshop_id=%d, user_id=%d, chains=%d, overlays=%d, stale=%v",
		workshopID, userID, len(result.Chains), len(result.Overlays), result.Stale)
	handlers.RespondJSON(w, http.StatusOK, FromRenderModel(result))
}
