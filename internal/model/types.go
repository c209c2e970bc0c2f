package model

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// Model описывает схему ресурса в конфигурации
type Model struct {
	Name       string  `yaml:"-"` // logical name of the model (из имени файла)
	Table      string  `yaml:"table"`
	Resource   string  `yaml:"resource"`    // сегмент пути, по умолчанию plural(lower(Name))
	PrimaryKey string  `yaml:"primary_key"` // optional, default "id"
	Fields     []Field `yaml:"fields"`      // порядок полей задаёт порядок колонок в SELECT

	// для runtime (не сериализуется)
	_fieldIndex map[string]*Field `yaml:"-"`
}

// Field описывает атрибут модели
type Field struct {
	Name   string `yaml:"name"`   // имя атрибута в API (ключи фильтров, order, тело update)
	Type   string `yaml:"type"`   // "int", "float", "string", "bool", "time" (default string)
	Column string `yaml:"column"` // optional override, default = Name
}

// NewModel собирает модель программно, минуя YAML (конфигурация в коде, тесты)
func NewModel(name, table string, fields ...Field) *Model {
	m := &Model{Name: name, Table: table, Fields: fields}
	m.buildFieldIndex()
	return m
}

// GetColumn возвращает имя SQL-колонки поля
func (f *Field) GetColumn() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Name
}

// GetPrimaryKey возвращает имя поля первичного ключа.
// Если не задано в конфиге, по умолчанию возвращает "id".
func (m *Model) GetPrimaryKey() string {
	if m.PrimaryKey != "" {
		return m.PrimaryKey
	}
	// fallback по умолчанию
	return "id"
}

// ResourceName возвращает сегмент пути ресурса
func (m *Model) ResourceName() string {
	if m.Resource != "" {
		return m.Resource
	}
	return inflection.Plural(strings.ToLower(m.Name))
}

// GetField возвращает поле по имени атрибута (nil, если не объявлено)
func (m *Model) GetField(name string) *Field {
	if m._fieldIndex == nil {
		return nil
	}
	return m._fieldIndex[name]
}

// HasAttribute проверяет, объявлен ли атрибут в модели
func (m *Model) HasAttribute(name string) bool {
	return m.GetField(name) != nil
}

// ResolveColumn: имя атрибута -> имя колонки
func (m *Model) ResolveColumn(name string) (string, bool) {
	f := m.GetField(name)
	if f == nil {
		return "", false
	}
	return f.GetColumn(), true
}

// AttributeNames возвращает имена атрибутов в порядке объявления
func (m *Model) AttributeNames() []string {
	names := make([]string, len(m.Fields))
	for i := range m.Fields {
		names[i] = m.Fields[i].Name
	}
	return names
}

// Columns возвращает SQL-колонки в порядке объявления полей.
// Список параллелен AttributeNames — на этом строится скан строк.
func (m *Model) Columns() []string {
	cols := make([]string, len(m.Fields))
	for i := range m.Fields {
		cols[i] = m.Fields[i].GetColumn()
	}
	return cols
}

// buildFieldIndex строит индекс атрибутов (вызывается после загрузки)
func (m *Model) buildFieldIndex() {
	m._fieldIndex = make(map[string]*Field, len(m.Fields))
	for i := range m.Fields {
		m._fieldIndex[m.Fields[i].Name] = &m.Fields[i]
	}
}
