// ABOUTME: Identity provider yielding the current authenticated user.
// ABOUTME: Backed by a local profile file under the XDG config directory.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrUnauthenticated is returned when an operation requires a current
// user and none is logged in.
var ErrUnauthenticated = errors.New("not logged in")

// Account identifies the authenticated user.
type Account struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
}

// Identity yields the current authenticated account, or
// ErrUnauthenticated when there is none.
type Identity interface {
	CurrentUser() (*Account, error)
}

// FileProvider reads and writes the account profile on disk.
type FileProvider struct {
	path string
}

var _ Identity = (*FileProvider)(nil)

// NewFileProvider creates a provider over the given profile path.
// An empty path uses the default location.
func NewFileProvider(path string) *FileProvider {
	if path == "" {
		path = DefaultProfilePath()
	}
	return &FileProvider{path: path}
}

// DefaultProfilePath returns the profile path following XDG spec.
func DefaultProfilePath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "splitfit", "profile.json")
}

// CurrentUser returns the logged-in account or ErrUnauthenticated.
func (p *FileProvider) CurrentUser() (*Account, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var acct Account
	if err := json.Unmarshal(data, &acct); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if acct.UserID == uuid.Nil || acct.Email == "" {
		return nil, ErrUnauthenticated
	}
	return &acct, nil
}

// Login records the account as the current user.
func (p *FileProvider) Login(acct *Account) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(acct, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// Logout removes the stored profile. Logging out while logged out is
// not an error.
func (p *FileProvider) Logout() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove profile: %w", err)
	}
	return nil
}

// StaticProvider returns a fixed account. Used by tests.
type StaticProvider struct {
	Account *Account
}

var _ Identity = (*StaticProvider)(nil)

// CurrentUser returns the fixed account or ErrUnauthenticated when nil.
func (p *StaticProvider) CurrentUser() (*Account, error) {
	if p.Account == nil {
		return nil, ErrUnauthenticated
	}
	return p.Account, nil
}
