package handler

import (
	"strings"

	"YcrudAPI/internal/model"
)

// ParseOrder: "-field" -> "column DESC", "field" -> "column".
// Неизвестный атрибут отбрасывается молча — сортировки просто не будет.
func ParseOrder(m *model.Model, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	desc := false
	if strings.HasPrefix(raw, "-") {
		desc = true
		raw = raw[1:]
	}

	col, ok := m.ResolveColumn(raw)
	if !ok {
		return ""
	}
	if desc {
		return col + " DESC"
	}
	return col
}
