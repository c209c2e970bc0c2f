package model

import (
	"strconv"
	"time"
)

// CoerceValue приводит строковое значение query-параметра к объявленному
// типу поля. Если привести не удалось, возвращаем сырую строку —
// ошибку типа сообщит сама БД при выполнении запроса.
func (f *Field) CoerceValue(raw string) any {
	switch f.Type {
	case "int":
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	case "float":
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	case "bool":
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	case "time":
		if v, err := time.Parse(time.RFC3339, raw); err == nil {
			return v
		}
		if v, err := time.Parse("2006-01-02", raw); err == nil {
			return v
		}
	}
	return raw
}
