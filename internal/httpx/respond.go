package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeErr maps the error taxonomy onto status codes; anything unclassified is a 500.
func writeErr(w http.ResponseWriter, log *zap.Logger, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		log.Error("request failed", zap.Error(err))
		writeMsg(w, http.StatusInternalServerError, "internal error")
		return
	}
	switch ae.Kind {
	case apperr.KindValidation:
		writeMsg(w, http.StatusBadRequest, ae.Message)
	case apperr.KindConflict:
		writeMsg(w, http.StatusConflict, ae.Message)
	case apperr.KindNotFound:
		writeMsg(w, http.StatusNotFound, ae.Message)
	default:
		writeMsg(w, http.StatusInternalServerError, ae.Message)
	}
}

func decode(r *http.Request, v any) bool {
	return json.NewDecoder(r.Body).Decode(v) == nil
}
