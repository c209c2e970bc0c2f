package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"YcrudAPI/internal/logger"
	"YcrudAPI/internal/model"
	"YcrudAPI/internal/store"

	"github.com/go-chi/chi/v5"
)

// Dispatcher обслуживает CRUD-запросы одного ресурса.
// Всё состояние фиксируется при создании и дальше только читается,
// поэтому параллельные запросы ничего не делят, кроме конфигурации.
type Dispatcher struct {
	model *model.Model
	store store.Store
	opts  Options
}

// New резолвит модель по сегменту ресурса один раз, на старте.
// Неизвестный ресурс — ошибка регистрации, а не падение посреди запроса.
func New(reg *model.Registry, st store.Store, resource string, opts Options) (*Dispatcher, error) {
	m, err := reg.Resolve(resource)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		model: m,
		store: st,
		opts:  opts.withDefaults(),
	}, nil
}

func (d *Dispatcher) Model() *model.Model {
	return d.model
}

// Handle возвращает обработчик для пары метод/форма маршрута.
// Классификация делается один раз при регистрации.
func (d *Dispatcher) Handle(method string, item bool) Func {
	kind := Classify(method, item)
	switch kind {
	case KindShow:
		return d.show
	case KindList:
		return d.list
	case KindUpdate:
		return d.update
	case KindCreate, KindDestroy:
		return func(w http.ResponseWriter, r *http.Request) error {
			return &StatusError{
				Code: http.StatusNotImplemented,
				Msg:  fmt.Sprintf("%s is not implemented for %s", kind, d.model.ResourceName()),
			}
		}
	default:
		return func(w http.ResponseWriter, r *http.Request) error {
			return &StatusError{
				Code: http.StatusMethodNotAllowed,
				Msg:  fmt.Sprintf("unknown request type: %s %s", r.Method, r.URL.Path),
			}
		}
	}
}

func (d *Dispatcher) show(w http.ResponseWriter, r *http.Request) error {
	where := buildConditions(d.model, r.URL.Query(), pathParams(r), d.opts.Transformers)

	record, err := d.store.FindOne(r.Context(), d.model, store.QueryOptions{Where: where})
	if errors.Is(err, store.ErrNotFound) {
		logger.Debug("record_not_found", map[string]any{"model": d.model.Name, "path": r.URL.Path})
		return writeNotFound(w, d.model)
	}
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, d.opts.Formatter(record))
}

func (d *Dispatcher) list(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	limit, offset := parsePagination(query, d.opts.MaxItems)

	records, err := d.store.FindAll(r.Context(), d.model, store.QueryOptions{
		Where:  buildConditions(d.model, query, pathParams(r), d.opts.Transformers),
		Order:  ParseOrder(d.model, query.Get("order")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	// пустой список сериализуем как [], а не null
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		out = append(out, d.opts.Formatter(rec))
	}
	return writeJSON(w, http.StatusOK, out)
}

func (d *Dispatcher) update(w http.ResponseWriter, r *http.Request) error {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return &StatusError{Code: http.StatusBadRequest, Msg: "invalid JSON body: " + err.Error()}
	}

	// Меняются только объявленные атрибуты — лишние ключи тела молча отбрасываются
	set := make(map[string]any, len(body))
	for k, v := range body {
		if col, ok := d.model.ResolveColumn(k); ok {
			set[col] = v
		}
	}

	where := buildConditions(d.model, r.URL.Query(), pathParams(r), d.opts.Transformers)

	// Пустой эффективный патч: менять нечего, возвращаем текущую запись
	if len(set) == 0 {
		record, err := d.store.FindOne(r.Context(), d.model, store.QueryOptions{Where: where})
		if err != nil {
			return err
		}
		return writeJSON(w, http.StatusOK, record)
	}

	record, err := d.store.UpdateOne(r.Context(), d.model, set, where)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, record)
}

// pathParams достаёт path-параметры текущего маршрута chi
func pathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}
	out := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		if k == "*" {
			continue
		}
		out[k] = rctx.URLParams.Values[i]
	}
	return out
}
