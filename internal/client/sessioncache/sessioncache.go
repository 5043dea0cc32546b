// Package sessioncache persists the last-known authenticated user for
// clients of the API. It is a single durable slot: written on every
// credential change, cleared on logout, read once at client startup to seed
// in-memory state. No expiry check happens here; the server-side token
// expiry is the sole enforcement point.
package sessioncache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wisteria-dev/taskboard-api/internal/dto"
)

// Cache is a file-backed session slot.
type Cache struct {
	path string
}

// New creates a Cache persisting to the given file path.
func New(path string) *Cache {
	return &Cache{path: path}
}

// Load reads the cached user. A missing file means no cached session and
// returns (nil, nil). A corrupt file is an error; callers typically clear
// and continue anonymous.
func (c *Cache) Load() (*dto.UserDTO, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session cache: %w", err)
	}

	var user dto.UserDTO
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session cache: %w", err)
	}

	return &user, nil
}

// Store writes the user to the slot. A nil user clears it. The write goes
// through a temp file and rename so a crash never leaves a half-written
// slot.
func (c *Cache) Store(user *dto.UserDTO) error {
	if user == nil {
		return c.Clear()
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session cache: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create session cache: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write session cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write session cache: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace session cache: %w", err)
	}

	return nil
}

// Clear removes the slot. Clearing an empty slot is a no-op.
func (c *Cache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session cache: %w", err)
	}
	return nil
}
