package httpsvc

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ecrs/internal/domain"
	"github.com/vladislavdragonenkov/ecrs/internal/schema"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeFieldErrors(w http.ResponseWriter, errs schema.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, fieldErrorsResponse{Errors: errs})
}

// respondError транслирует доменные ошибки в пары статус+JSON на границе
// HTTP-слоя. Всё неизвестное логируется и уходит наружу как 500 с
// обезличенным текстом.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case domain.IsRejected(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
