package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"YcrudAPI/internal/config"
	"YcrudAPI/internal/handler"
	"YcrudAPI/internal/logger"

	"github.com/go-chi/chi/v5"
)

// New собирает chi-роутер с цепочкой middleware
func New(cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(withLogging)
	r.Use(withCORS(cfg.CORS.AllowOrigin, cfg.CORS.AllowCredentials))
	return r
}

// RegisterResource регистрирует item-маршруты ресурса:
// GET/PATCH/PUT /{resource}/{pk}. Коллекционные маршруты (list)
// при необходимости подключаются вручную через d.Handle(method, false).
func RegisterResource(r chi.Router, d *handler.Dispatcher) {
	item := "/" + d.Model().ResourceName() + "/{" + d.Model().GetPrimaryKey() + "}"

	r.Method(http.MethodGet, item, Wrap(d.Handle(http.MethodGet, true)))
	r.Method(http.MethodPatch, item, Wrap(d.Handle(http.MethodPatch, true)))
	r.Method(http.MethodPut, item, Wrap(d.Handle(http.MethodPut, true)))
}

// Wrap — error-путь обработчиков: StatusError выбирает статус,
// всё остальное — 500. Тело — {"error": "..."}.
func Wrap(h handler.Func) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		status := http.StatusInternalServerError
		var se *handler.StatusError
		if errors.As(err, &se) {
			status = se.Code
		}

		logger.Error("request_failed", map[string]any{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     status,
			"error":      err.Error(),
			"request_id": RequestIDFromContext(r.Context()),
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
	})
}
