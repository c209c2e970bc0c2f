package handler

import (
	"net/url"
	"sort"

	"YcrudAPI/internal/model"

	"github.com/Masterminds/squirrel"
)

// mergeParams сливает query-параметры и path-параметры в одну карту.
// Path-параметры выигрывают при коллизии ключей.
func mergeParams(query url.Values, path map[string]string) map[string][]string {
	merged := make(map[string][]string, len(query)+len(path))
	for k, vals := range query {
		if len(vals) == 0 {
			continue
		}
		merged[k] = vals
	}
	for k, v := range path {
		merged[k] = []string{v}
	}
	return merged
}

// filterUnknownConditions отбрасывает ключи, не являющиеся ни атрибутом
// модели, ни зарегистрированным трансформером. Это и есть защита от
// произвольных фильтров в query string.
func filterUnknownConditions(m *model.Model, conds map[string][]string, transformers map[string]Transformer) map[string][]string {
	out := make(map[string][]string, len(conds))
	for k, vals := range conds {
		if _, ok := transformers[k]; ok {
			out[k] = vals
			continue
		}
		if m.HasAttribute(k) {
			out[k] = vals
		}
	}
	return out
}

// buildConditions — пайплайн условий:
// merge -> filter -> transform -> equality -> AND.
// Пустой вход даёт nil (запрос без WHERE).
func buildConditions(m *model.Model, query url.Values, path map[string]string, transformers map[string]Transformer) squirrel.Sqlizer {
	conds := filterUnknownConditions(m, mergeParams(query, path), transformers)

	var exprs []squirrel.Sqlizer

	// 1. Трансформеры — в отсортированном порядке ключей, чтобы SQL был детерминирован
	keys := make([]string, 0, len(conds))
	for k := range conds {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	eq := squirrel.Eq{}
	for _, k := range keys {
		vals := conds[k]
		if tr, ok := transformers[k]; ok {
			// трансформер видит сырое значение; nil-фрагмент пропускаем
			if frag := tr(vals[0]); frag != nil {
				exprs = append(exprs, frag)
			}
			continue
		}
		// 2. Остальные ключи — равенство по колонке с приведением типа.
		// Несколько значений одного ключа дают IN.
		f := m.GetField(k)
		col := f.GetColumn()
		if len(vals) == 1 {
			eq[col] = f.CoerceValue(vals[0])
			continue
		}
		coerced := make([]any, len(vals))
		for i, v := range vals {
			coerced[i] = f.CoerceValue(v)
		}
		eq[col] = coerced
	}

	if len(eq) > 0 {
		exprs = append(exprs, eq)
	}
	if len(exprs) == 0 {
		return nil
	}

	return squirrel.And(exprs)
}
