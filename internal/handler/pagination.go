package handler

import (
	"net/url"
	"strconv"
)

// parsePagination: items -> limit (с реальным клампом по maxItems),
// page (zero-based) * limit -> offset.
// Невалидный/нулевой items отключает и limit, и offset.
func parsePagination(query url.Values, maxItems int) (limit, offset uint64) {
	items, err := strconv.Atoi(query.Get("items"))
	if err != nil || items <= 0 {
		return 0, 0
	}
	if items > maxItems {
		items = maxItems
	}
	limit = uint64(items)

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 0 {
		return limit, 0
	}
	offset = uint64(page) * limit

	return limit, offset
}
