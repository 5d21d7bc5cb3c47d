package get_bay_calendar

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
	msgInvalidBayID      = "некорректный ID бокса"
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

// Handle GET /api/v1/workshops/{workshopId}/bays/{bayId}/calendar
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD),
// includeCancelled (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workshopID, err := strconv.ParseInt(vars["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/bays/{id}/calendar - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	bayID, err := strconv.ParseInt(vars["bayId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/bays/{id}/calendar - Invalid bay ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBayID)
		return
	}

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /workshops/{id}/bays/{id}/calendar - Missing date range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	includeCancelled, _ := strconv.ParseBool(r.URL.Query().Get("includeCancelled"))

	useCaseReq, err := ToUseCaseRequest(workshopID, bayID, fromStr, toStr, includeCancelled)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/bays/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, renderCalendar.ErrInvalidInput):
			h.logger.Warn("GET /workshops/{id}/bays/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, renderCalendar.ErrRangeTooWide):
			h.logger.Warn("GET /workshops/{id}/bays/{id}/calendar - Range too wide: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, renderCalendar.ErrFetchFailed):
			h.logger.Error("GET /workshops/{id}/bays/{id}/calendar - Fetch failed: workshop_id=%d, bay_id=%d, error=%v",
				workshopID, bayID, err)
			handlers.RespondBadGateway(w, msgFetchFailed)

		default:
			h.logger.Error("GET /workshops/{id}/bays/{id}/calendar - Failed to render: workshop_id=%d, bay_id=%d, error=%v",
				workshopID, bayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workshops/{id}/bays/{id}/calendar - Rendered: workshop_id=%d, bay_id=%d, chains=%d, stale=%v",
		workshopID, bayID, len(result.Chains), result.Stale)
	handlers.RespondJSON(w, http.StatusOK, FromRenderModel(result))
}
