package handler

import (
	"net/http"
	"strings"
)

// Kind — тип запроса, выводится из метода и формы маршрута
type Kind int

const (
	KindUnknown Kind = iota
	KindShow
	KindList
	KindUpdate
	KindCreate
	KindDestroy
)

func (k Kind) String() string {
	switch k {
	case KindShow:
		return "show"
	case KindList:
		return "list"
	case KindUpdate:
		return "update"
	case KindCreate:
		return "create"
	case KindDestroy:
		return "destroy"
	}
	return "unknown"
}

// Classify определяет операцию по HTTP-методу и форме маршрута.
// item — явный признак item-маршрута, фиксируется при регистрации,
// а не вычисляется из строки пути на каждом запросе.
func Classify(method string, item bool) Kind {
	switch method {
	case http.MethodGet:
		if item {
			return KindShow
		}
		return KindList
	case http.MethodPut, http.MethodPatch:
		if item {
			return KindUpdate
		}
	case http.MethodPost:
		if !item {
			return KindCreate
		}
	case http.MethodDelete:
		if item {
			return KindDestroy
		}
	}
	return KindUnknown
}

// IsItemPattern: маршрут считается item-маршрутом, если его последний
// сегмент — плейсхолдер (":id" или "{id}"). Используется при регистрации
// для вычисления признака item из шаблона.
func IsItemPattern(pattern string) bool {
	pattern = strings.TrimRight(pattern, "/")
	idx := strings.LastIndexByte(pattern, '/')
	last := pattern[idx+1:]
	if last == "" {
		return false
	}
	if strings.HasPrefix(last, ":") {
		return true
	}
	return strings.HasPrefix(last, "{") && strings.HasSuffix(last, "}")
}
