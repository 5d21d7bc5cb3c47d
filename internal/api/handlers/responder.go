package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse единый формат тела ошибки API
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondBadRequest отвечает 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// RespondUnauthorized отвечает 401 с сообщением
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: message})
}

// RespondNotFound отвечает 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// RespondConflict отвечает 409 с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: message})
}

// RespondBadGateway отвечает 502 с сообщением
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadGateway, ErrorResponse{Error: message})
}

// RespondInternalError отвечает 500 с обезличенным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
