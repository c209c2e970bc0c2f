package model

import (
	"testing"
)

func registryFixture(t *testing.T) *Registry {
	t.Helper()
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
table: users
fields:
  - name: id
    type: int
  - name: name
`)
	writeModelFile(t, dir, "Person.yml", `
table: people
resource: people
fields:
  - name: id
    type: int
`)

	reg, err := InitRegistry(dir)
	if err != nil {
		t.Fatalf("InitRegistry: %v", err)
	}
	return reg
}

func TestRegistryResolve_ExactResource(t *testing.T) {
	reg := registryFixture(t)

	m, err := reg.Resolve("people")
	if err != nil {
		t.Fatalf("Resolve(people): %v", err)
	}
	if m.Name != "Person" {
		t.Fatalf("expected Person, got %s", m.Name)
	}
}

func TestRegistryResolve_SingularizeFallback(t *testing.T) {
	reg := registryFixture(t)

	// "persons" не объявлен как resource: singularize+capitalize -> "Person"
	m, err := reg.Resolve("persons")
	if err != nil {
		t.Fatalf("Resolve(persons): %v", err)
	}
	if m.Name != "Person" {
		t.Fatalf("expected Person via fallback, got %s", m.Name)
	}

	// дефолтный resource тоже работает
	m, err = reg.Resolve("users")
	if err != nil {
		t.Fatalf("Resolve(users): %v", err)
	}
	if m.Name != "User" {
		t.Fatalf("expected User, got %s", m.Name)
	}
}

func TestRegistryResolve_UnknownSegment(t *testing.T) {
	reg := registryFixture(t)

	if _, err := reg.Resolve("invoices"); err == nil {
		t.Fatalf("expected error for unknown resource")
	}
}

func TestRegistryModels_SortedByName(t *testing.T) {
	reg := registryFixture(t)

	models := reg.Models()
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}
	if models[0].Name != "Person" || models[1].Name != "User" {
		t.Fatalf("models not sorted: %s, %s", models[0].Name, models[1].Name)
	}
}
