package store

import (
	"context"
	"fmt"

	"YcrudAPI/internal/logger"
	"YcrudAPI/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore — реализация Store поверх pgx-пула
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) FindAll(ctx context.Context, m *model.Model, opts QueryOptions) ([]map[string]any, error) {
	sb := m.BuildSelectQuery(opts.Where, opts.Order, opts.Limit, opts.Offset)

	sqlStr, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select for %s: %w", m.Name, err)
	}
	logger.Debug("sql_select", map[string]any{"model": m.Name, "sql": sqlStr, "args": args})

	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(m, rows)
}

func (s *PgStore) FindOne(ctx context.Context, m *model.Model, opts QueryOptions) (map[string]any, error) {
	// одной записи достаточно
	opts.Limit = 1
	opts.Offset = 0
	items, err := s.FindAll(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items[0], nil
}

func (s *PgStore) UpdateOne(ctx context.Context, m *model.Model, set map[string]any, where squirrel.Sqlizer) (map[string]any, error) {
	ub, err := m.BuildUpdateQuery(set, where)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update for %s: %w", m.Name, err)
	}
	logger.Debug("sql_update", map[string]any{"model": m.Name, "sql": sqlStr, "args": args})

	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanRows(m, rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		// UPDATE не нашёл запись — RETURNING пуст
		return nil, ErrNotFound
	}
	return items[0], nil
}

// scanRows читает строки позиционно в map по именам атрибутов модели.
// Список колонок SELECT/RETURNING параллелен списку атрибутов.
func scanRows(m *model.Model, rows pgx.Rows) ([]map[string]any, error) {
	keys := m.AttributeNames()

	out := make([]map[string]any, 0, 16)
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		// На всякий случай — берём минимум от фактических и ожидаемых колонок
		n := len(vals)
		if len(keys) < n {
			n = len(keys)
		}
		row := make(map[string]any, n)
		for i := 0; i < n; i++ {
			row[keys[i]] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
