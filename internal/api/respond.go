package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("error encoding response body")
	}
}

func writeError(w http.ResponseWriter, status int, code string, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}
