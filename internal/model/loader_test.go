package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeModelFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadModelsFromDir_Valid(t *testing.T) {
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
table: users
fields:
  - name: id
    type: int
  - name: name
  - name: createdAt
    type: time
    column: created_at
`)

	models, err := LoadModelsFromDir(dir)
	if err != nil {
		t.Fatalf("LoadModelsFromDir: %v", err)
	}
	m, ok := models["User"]
	if !ok {
		t.Fatalf("model User not loaded: %v", models)
	}
	if m.Name != "User" || m.Table != "users" {
		t.Fatalf("unexpected model identity: %+v", m)
	}
	if m.GetPrimaryKey() != "id" {
		t.Fatalf("default primary key must be id, got %q", m.GetPrimaryKey())
	}
	if m.ResourceName() != "users" {
		t.Fatalf("default resource must be users, got %q", m.ResourceName())
	}
	// column override учитывается, default column = name
	if col, _ := m.ResolveColumn("createdAt"); col != "created_at" {
		t.Fatalf("column override ignored: %q", col)
	}
	if col, _ := m.ResolveColumn("name"); col != "name" {
		t.Fatalf("default column must equal attribute name: %q", col)
	}
	if m.HasAttribute("created_at") {
		t.Fatalf("column name must not be an attribute")
	}
}

func TestLoadModelsFromDir_UnknownKeyRejected(t *testing.T) {
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
table: users
relations:
  owner:
    model: Person
fields:
  - name: id
    type: int
`)

	_, err := LoadModelsFromDir(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown key 'relations'") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadModelsFromDir_UnknownFieldKeyRejected(t *testing.T) {
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
table: users
fields:
  - name: id
    type: int
    formatter: "{id}"
`)

	_, err := LoadModelsFromDir(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown key 'formatter'") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadModelsFromDir_UnknownTypeRejected(t *testing.T) {
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
table: users
fields:
  - name: id
    type: uuid
`)

	_, err := LoadModelsFromDir(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown type value 'uuid'") {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestLoadModelsFromDir_MissingTable(t *testing.T) {
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
fields:
  - name: id
    type: int
`)

	_, err := LoadModelsFromDir(dir)
	if err == nil || !strings.Contains(err.Error(), "table is required") {
		t.Fatalf("expected table error, got %v", err)
	}
}

func TestLoadModelsFromDir_DuplicateField(t *testing.T) {
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
table: users
fields:
  - name: id
    type: int
  - name: id
    type: string
`)

	_, err := LoadModelsFromDir(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate field 'id'") {
		t.Fatalf("expected duplicate field error, got %v", err)
	}
}

func TestLoadModelsFromDir_PrimaryKeyMustBeDeclared(t *testing.T) {
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
table: users
primary_key: uid
fields:
  - name: id
    type: int
`)

	_, err := LoadModelsFromDir(dir)
	if err == nil || !strings.Contains(err.Error(), "primary_key 'uid'") {
		t.Fatalf("expected primary_key error, got %v", err)
	}
}

func TestInitRegistry_DuplicateResourceRejected(t *testing.T) {
	dir := t.TempDir()
	writeModelFile(t, dir, "User.yml", `
table: users
resource: accounts
fields:
  - name: id
    type: int
`)
	writeModelFile(t, dir, "Account.yml", `
table: accounts
fields:
  - name: id
    type: int
`)

	_, err := InitRegistry(dir)
	if err == nil || !strings.Contains(err.Error(), "resource 'accounts'") {
		t.Fatalf("expected duplicate resource error, got %v", err)
	}
}
