package productionplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kilianp07/productionplan/core/logger"
	"github.com/kilianp07/productionplan/core/model"
)

// maxBodyBytes bounds the size of a request payload.
const maxBodyBytes = 1 << 20

// Planner computes a production plan from a request payload. It is
// implemented by dispatch.Manager.
type Planner interface {
	Plan(ctx context.Context, payload model.Payload) (model.Plan, []model.PlanEntry, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler returns the POST /productionplan handler. It answers with the
// list of {name, p} entries or a JSON error object.
func NewHandler(p Planner, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, log, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}
		var payload model.Payload
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&payload); err != nil {
			log.Warnf("invalid payload: %v", err)
			msg := fmt.Sprintf("invalid payload: %v", err)
			if errors.Is(err, model.ErrUnknownKind) {
				msg = err.Error()
			}
			writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: msg})
			return
		}
		_, entries, err := p.Plan(r.Context(), payload)
		switch {
		case errors.Is(err, model.ErrMissingData):
			writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: model.MissingDataMessage})
		case err != nil:
			log.Errorf("plan failed: %v", err)
			writeJSON(w, log, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		default:
			writeJSON(w, log, http.StatusOK, entries)
		}
	})
}

func writeJSON(w http.ResponseWriter, log logger.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("write response: %v", err)
	}
}
