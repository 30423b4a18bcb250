// users.go
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
	"sync"

	"github.com/localnerve/qadesk/internal/models"
)

// UserStore is the read-only allow-list of users (users.json). It is never
// written by the service.
type UserStore struct {
	mu   sync.Mutex
	path string
}

// NewUserStore creates a store backed by the given file path.
func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// List returns all users. A missing file reads as an empty allow-list,
// which locks everyone out rather than letting everyone in.
func (s *UserStore) List() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := readStoreFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse user store %s: %w", s.path, err)
	}
	return users, nil
}

// FindByEmail returns the user with the given email.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	users, err := s.List()
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: user %q", ErrNotFound, email)
}
