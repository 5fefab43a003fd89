package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/commercia/backoffice/internal/domain/user"
)

// File is a session store persisted to a JSON state file, so a session
// survives console restarts until logout. It mirrors the two durable
// keys the web console kept in browser storage: token and user.
type File struct {
	mu    sync.RWMutex
	path  string
	state fileState
}

type fileState struct {
	Token  string        `json:"token"`
	User   *user.Profile `json:"user,omitempty"`
	Active bool          `json:"-"`
}

// NewFile opens the session file at path, loading any existing session.
// A missing file is an empty session, not an error.
func NewFile(path string) (*File, error) {
	f := &File{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(data, &f.state); err != nil {
		// A corrupt state file behaves like no session at all.
		f.state = fileState{}
		return f, nil
	}
	f.state.Active = f.state.User != nil
	return f, nil
}

func (f *File) Token() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state.Token
}

func (f *File) User() (user.Profile, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.state.User == nil {
		return user.Profile{}, false
	}
	return *f.state.User, f.state.Active
}

func (f *File) SetCredentials(token string, profile user.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = fileState{Token: token, User: &profile, Active: true}
	return f.persist()
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = fileState{}
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (f *File) persist() error {
	data, err := json.Marshal(f.state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
