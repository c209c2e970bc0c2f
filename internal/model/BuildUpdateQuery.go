package model

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// BuildUpdateQuery строит UPDATE-запрос: SET по карте колонок,
// RETURNING — все колонки модели (обновлённая запись возвращается одним запросом).
func (m *Model) BuildUpdateQuery(
	set map[string]any, // колонка -> новое значение
	where squirrel.Sqlizer,
) (squirrel.UpdateBuilder, error) {

	ub := squirrel.UpdateBuilder{}.PlaceholderFormat(squirrel.Dollar)

	if len(set) == 0 {
		return ub, fmt.Errorf("empty update set for model '%s'", m.Name)
	}

	ub = ub.Table(m.Table).SetMap(set)
	if where != nil {
		ub = ub.Where(where)
	}
	ub = ub.Suffix("RETURNING " + strings.Join(m.Columns(), ", "))

	return ub, nil
}
