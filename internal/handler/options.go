package handler

import (
	"net/http"

	"github.com/Masterminds/squirrel"
)

// Func — обработчик, возвращающий ошибку наверх (её рендерит обёртка роутера)
type Func func(w http.ResponseWriter, r *http.Request) error

// Transformer превращает сырое значение параметра в фрагмент условия.
// nil-результат означает "пропустить параметр".
type Transformer func(value string) squirrel.Sqlizer

// Formatter преобразует запись перед сериализацией в ответ
type Formatter func(record map[string]any) map[string]any

const defaultMaxItems = 100

// Options — конфигурация диспетчера для одного ресурса.
// Заполняется при регистрации маршрутов и дальше только читается.
type Options struct {
	MaxItems         int                    // верхняя граница items, default 100
	Formatter        Formatter              // default: запись как есть
	Transformers     map[string]Transformer // ключ параметра -> трансформер
	LinkHeaderPaging bool                   // принимается для совместимости, не реализовано
}

func (o Options) withDefaults() Options {
	if o.MaxItems <= 0 {
		o.MaxItems = defaultMaxItems
	}
	if o.Formatter == nil {
		o.Formatter = func(record map[string]any) map[string]any { return record }
	}
	if o.Transformers == nil {
		o.Transformers = map[string]Transformer{}
	}
	return o
}
