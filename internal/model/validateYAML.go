package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Разрешённые ключи для объектов
var allowedModelKeys = map[string]bool{
	"table":       true,
	"resource":    true,
	"primary_key": true,
	"fields":      true,
}

var allowedFieldKeys = map[string]bool{
	"name":   true,
	"type":   true,
	"column": true,
}

// Разрешённые значения для type в полях
var allowedFieldTypeValues = map[string]bool{
	"int":    true,
	"float":  true,
	"string": true,
	"bool":   true,
	"time":   true,
}

func validateYAMLNode(node *yaml.Node, context string) error {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := validateYAMLNode(child, "model"); err != nil {
				return err
			}
		}

	case yaml.MappingNode:
		var allowedKeys map[string]bool
		switch context {
		case "model":
			allowedKeys = allowedModelKeys
		case "field":
			allowedKeys = allowedFieldKeys
		default:
			allowedKeys = nil // свободная форма
		}

		for i := 0; i < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			valNode := node.Content[i+1]
			key := keyNode.Value

			if allowedKeys != nil && !allowedKeys[key] {
				return fmt.Errorf("unknown key '%s' in %s", key, context)
			}

			// Проверка допустимых значений для type в поле
			if context == "field" && key == "type" {
				if !allowedFieldTypeValues[valNode.Value] {
					return fmt.Errorf("unknown type value '%s' in field", valNode.Value)
				}
			}

			// Определяем новый контекст
			nextContext := context
			if context == "model" && key == "fields" {
				nextContext = "fields-seq"
			}

			if err := validateYAMLNode(valNode, nextContext); err != nil {
				return err
			}
		}

	case yaml.SequenceNode:
		if context == "fields-seq" {
			for _, item := range node.Content {
				if err := validateYAMLNode(item, "field"); err != nil {
					return err
				}
			}
		} else {
			for _, item := range node.Content {
				if err := validateYAMLNode(item, context); err != nil {
					return err
				}
			}
		}

	case yaml.ScalarNode:
		// скаляры не валидируем на ключи — они уже проверяются при разборе MappingNode
	}

	return nil
}
