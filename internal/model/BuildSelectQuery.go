package model

import (
	"github.com/Masterminds/squirrel"
)

// BuildSelectQuery строит SELECT-запрос по модели
func (m *Model) BuildSelectQuery(
	where squirrel.Sqlizer, // условие (nil — без WHERE)
	order string,           // готовое выражение сортировки, например "created_at DESC"
	limit, offset uint64, // пагинация
) squirrel.SelectBuilder {

	sb := squirrel.SelectBuilder{}.PlaceholderFormat(squirrel.Dollar)

	// 1. Колонки в порядке объявления полей — скан строк рассчитывает на этот порядок
	sb = sb.Columns(m.Columns()...)

	// 2. FROM
	sb = sb.From(m.Table)

	// 3. WHERE
	if where != nil {
		sb = sb.Where(where)
	}

	// 4. ORDER BY
	if order != "" {
		sb = sb.OrderBy(order)
	}

	// 5. LIMIT / OFFSET
	if limit > 0 {
		sb = sb.Limit(limit)
	}
	if offset > 0 {
		sb = sb.Offset(offset)
	}

	return sb
}
