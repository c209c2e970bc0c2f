package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"YcrudAPI/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// writeNotFound — локальный 404 для show: {"message": "<Model> not found"}
func writeNotFound(w http.ResponseWriter, m *model.Model) error {
	return writeJSON(w, http.StatusNotFound, map[string]string{
		"message": fmt.Sprintf("%s not found", m.Name),
	})
}
