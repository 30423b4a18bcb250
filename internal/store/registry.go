// registry.go
//
// A flat-file quality audit desk service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qadesk.
// qadesk is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qadesk is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qadesk.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// ComponentRegistry is the ordered catalog of auditable component names,
// persisted as a JSON array of strings. Names are unique; order is
// insertion order and user-visible. Deleting a component does not touch
// historical audit rows that reference its name.
type ComponentRegistry struct {
	mu   sync.Mutex
	path string
}

// NewComponentRegistry creates a registry backed by the given file path.
func NewComponentRegistry(path string) *ComponentRegistry {
	return &ComponentRegistry{path: path}
}

// List returns the component names in persisted order. A missing backing
// file reads as an empty registry.
func (r *ComponentRegistry) List() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Add appends a new name and persists. Blank and duplicate names are
// rejected and leave the store untouched.
func (r *ComponentRegistry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: component name is blank", ErrInvalidRecord)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.load()
	if err != nil {
		return err
	}
	for _, existing := range names {
		if existing == name {
			return fmt.Errorf("%w: component %q already exists", ErrDuplicateName, name)
		}
	}

	return r.save(append(names, name))
}

// Rename replaces the first occurrence of oldName with newName in place,
// keeping the entry's position, and persists. The new name is held to the
// same uniqueness invariant as Add.
func (r *ComponentRegistry) Rename(oldName, newName string) error {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: component name is blank", ErrInvalidRecord)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.load()
	if err != nil {
		return err
	}

	idx := -1
	for i, existing := range names {
		if existing == newName && newName != oldName {
			return fmt.Errorf("%w: component %q already exists", ErrDuplicateName, newName)
		}
		if idx < 0 && existing == oldName {
			idx = i
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: component %q", ErrNotFound, oldName)
	}
	if newName == oldName {
		return nil
	}

	names[idx] = newName
	return r.save(names)
}

// Remove deletes the first occurrence of name and persists.
func (r *ComponentRegistry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.load()
	if err != nil {
		return err
	}

	for i, existing := range names {
		if existing == name {
			return r.save(append(names[:i], names[i+1:]...))
		}
	}
	return fmt.Errorf("%w: component %q", ErrNotFound, name)
}

func (r *ComponentRegistry) load() ([]string, error) {
	data, err := readStoreFile(r.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to parse component registry %s: %w", r.path, err)
	}
	return names, nil
}

func (r *ComponentRegistry) save(names []string) error {
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode component registry: %w", err)
	}
	return writeStoreFile(r.path, append(data, '\n'))
}
