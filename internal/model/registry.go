package model

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// Registry — явный реестр моделей: имя модели и сегмент ресурса -> схема.
// Собирается один раз на старте и дальше только читается.
type Registry struct {
	models    map[string]*Model
	resources map[string]*Model
}

func InitRegistry(dir string) (*Registry, error) {
	models, err := LoadModelsFromDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load error: %w", err)
	}
	reg := &Registry{
		models:    models,
		resources: make(map[string]*Model, len(models)),
	}
	for name, m := range models {
		res := m.ResourceName()
		if other, ok := reg.resources[res]; ok {
			return nil, fmt.Errorf("validation error: resource '%s' declared by both %s and %s", res, other.Name, name)
		}
		reg.resources[res] = m
	}
	return reg, nil
}

// Get возвращает модель по логическому имени
func (r *Registry) Get(name string) *Model {
	return r.models[name]
}

// Resolve возвращает модель по сегменту пути.
// Сначала точное совпадение ресурса, затем fallback:
// singularize + capitalize сегмента и поиск по имени модели.
func (r *Registry) Resolve(segment string) (*Model, error) {
	if m, ok := r.resources[segment]; ok {
		return m, nil
	}
	name := capitalize(inflection.Singular(strings.ToLower(segment)))
	if m, ok := r.models[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("no model registered for resource '%s'", segment)
}

// Models возвращает все модели, отсортированные по имени
func (r *Registry) Models() []*Model {
	out := make([]*Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
