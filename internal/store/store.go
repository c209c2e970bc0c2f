package store

import (
	"context"
	"errors"

	"YcrudAPI/internal/model"

	"github.com/Masterminds/squirrel"
)

// ErrNotFound сигнализирует об отсутствии записи (show -> 404, update -> ошибка наверх)
var ErrNotFound = errors.New("record not found")

// QueryOptions — параметры одного запроса к хранилищу.
// Живут в пределах запроса и нигде не сохраняются.
type QueryOptions struct {
	Where  squirrel.Sqlizer // nil — без WHERE
	Order  string           // пустая строка — без ORDER BY
	Limit  uint64           // 0 — без LIMIT
	Offset uint64           // 0 — без OFFSET
}

// Store — слой данных, который потребляет диспетчер
type Store interface {
	FindOne(ctx context.Context, m *model.Model, opts QueryOptions) (map[string]any, error)
	FindAll(ctx context.Context, m *model.Model, opts QueryOptions) ([]map[string]any, error)
	UpdateOne(ctx context.Context, m *model.Model, set map[string]any, where squirrel.Sqlizer) (map[string]any, error)
}
