package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadModelsFromDir(dir string) (map[string]*Model, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, err
	}

	models := make(map[string]*Model, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		// 1. Разбираем в yaml.Node для структурной валидации
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("YAML parse error in %s: %w", path, err)
		}

		// YAML всегда [0] - документ, [1] - root mapping
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("empty YAML in %s", path)
		}

		if err := validateYAMLNode(root.Content[0], "model"); err != nil {
			return nil, fmt.Errorf("validation error in %s: %w", path, err)
		}

		// 2. Теперь уже Unmarshal в модель
		var model Model
		if err := root.Decode(&model); err != nil {
			return nil, fmt.Errorf("unmarshal error in %s: %w", path, err)
		}

		// 3. Имя модели — из имени файла
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		model.Name = name
		if err := validateModel(&model); err != nil {
			return nil, fmt.Errorf("validation error in %s: %w", path, err)
		}
		model.buildFieldIndex()
		models[name] = &model
		fmt.Printf("✅ Модель %s загружена: %d полей\n", name, len(model.Fields))
	}
	return models, nil
}

// validateModel — инварианты схемы, проверяемые на старте
func validateModel(m *Model) error {
	if strings.TrimSpace(m.Table) == "" {
		return fmt.Errorf("model %s: table is required", m.Name)
	}
	if len(m.Fields) == 0 {
		return fmt.Errorf("model %s: at least one field is required", m.Name)
	}
	seen := make(map[string]bool, len(m.Fields))
	for _, f := range m.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("model %s: field without name", m.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("model %s: duplicate field '%s'", m.Name, f.Name)
		}
		seen[f.Name] = true
	}
	if m.PrimaryKey != "" && !seen[m.PrimaryKey] {
		return fmt.Errorf("model %s: primary_key '%s' is not a declared field", m.Name, m.PrimaryKey)
	}
	if m.PrimaryKey == "" && !seen["id"] {
		return fmt.Errorf("model %s: default primary key 'id' is not a declared field", m.Name)
	}
	return nil
}
