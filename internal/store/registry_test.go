package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestRegistry(t *testing.T) *ComponentRegistry {
	t.Helper()
	return NewComponentRegistry(filepath.Join(t.TempDir(), "components.json"))
}

// readPersisted reads the registry file directly, bypassing the store.
func readPersisted(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read registry file: %v", err)
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		t.Fatalf("Failed to parse registry file: %v", err)
	}
	return names
}

func TestRegistryEmptyWhenFileMissing(t *testing.T) {
	registry := newTestRegistry(t)

	names, err := registry.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected empty registry, got %v", names)
	}
}

// TestRegistryPersistedMatchesMemory verifies the store after each mutation
// exactly matches the in-memory list (save/load round-trip identity).
func TestRegistryPersistedMatchesMemory(t *testing.T) {
	registry := newTestRegistry(t)

	steps := []func() error{
		func() error { return registry.Add("Bracket-A") },
		func() error { return registry.Add("Housing-Front") },
		func() error { return registry.Add("Shaft-12") },
		func() error { return registry.Rename("Housing-Front", "Housing-Rear") },
		func() error { return registry.Remove("Bracket-A") },
	}

	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}

		inMemory, err := registry.List()
		if err != nil {
			t.Fatalf("List after step %d failed: %v", i, err)
		}
		persisted := readPersisted(t, registry.path)
		if !reflect.DeepEqual(inMemory, persisted) {
			t.Errorf("Step %d: persisted %v does not match in-memory %v", i, persisted, inMemory)
		}
	}
}

func TestRegistryDuplicateAdd(t *testing.T) {
	registry := newTestRegistry(t)

	if err := registry.Add("Bracket-A"); err != nil {
		t.Fatalf("First add failed: %v", err)
	}
	err := registry.Add("Bracket-A")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}

	names, err := registry.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Bracket-A" {
		t.Errorf("Expected exactly one Bracket-A entry, got %v", names)
	}
}

func TestRegistryBlankAdd(t *testing.T) {
	registry := newTestRegistry(t)

	if err := registry.Add("   "); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("Expected blank name rejection, got %v", err)
	}
}

func TestRegistryRenameKeepsPosition(t *testing.T) {
	registry := newTestRegistry(t)

	for _, name := range []string{"A", "B", "C"} {
		if err := registry.Add(name); err != nil {
			t.Fatalf("Add %s failed: %v", name, err)
		}
	}

	if err := registry.Rename("B", "B2"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	names, _ := registry.List()
	if !reflect.DeepEqual(names, []string{"A", "B2", "C"}) {
		t.Errorf("Expected [A B2 C], got %v", names)
	}
}

func TestRegistryRenameToExistingName(t *testing.T) {
	registry := newTestRegistry(t)

	registry.Add("A")
	registry.Add("B")

	if err := registry.Rename("A", "B"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

// TestRegistryRenameSelf verifies renaming a name to itself still checks
// the name exists.
func TestRegistryRenameSelf(t *testing.T) {
	registry := newTestRegistry(t)

	if err := registry.Rename("ghost", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if err := registry.Add("A"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := registry.Rename("A", "A"); err != nil {
		t.Errorf("Self-rename of an existing name should be a no-op, got %v", err)
	}
	names, _ := registry.List()
	if !reflect.DeepEqual(names, []string{"A"}) {
		t.Errorf("Expected [A], got %v", names)
	}
}

func TestRegistryRenameTrimsNames(t *testing.T) {
	registry := newTestRegistry(t)

	registry.Add("A")
	if err := registry.Rename("  A  ", " A2 "); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	names, _ := registry.List()
	if !reflect.DeepEqual(names, []string{"A2"}) {
		t.Errorf("Expected [A2], got %v", names)
	}
}

func TestRegistryRemoveMissing(t *testing.T) {
	registry := newTestRegistry(t)

	if err := registry.Remove("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
