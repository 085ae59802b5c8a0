package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrConfigCorrupt means the state file exists but could not be decoded.
	ErrConfigCorrupt = errors.New("state file is corrupt")
	// ErrPersistence means a save could not be completed.
	ErrPersistence = errors.New("failed to persist state")
)

// Store owns the persisted BotConfig document. All access is serialized
// behind one in-process lock: a save started by a command handler must not
// interleave with one started by the sweeper.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the state file. A missing file yields the default config; an
// unreadable or undecodable file fails with ErrConfigCorrupt so operators
// repair it instead of the bot silently starting from scratch.
func (s *Store) Load() (*BotConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfigCorrupt, s.path, err)
	}

	cfg := &BotConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrConfigCorrupt, s.path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the full document to a temporary file in the target
// directory and renames it into place, so a crash mid-write never leaves a
// truncated state file behind.
func (s *Store) Save(cfg *BotConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", ErrPersistence, dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: closing %s: %v", ErrPersistence, tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replacing %s: %v", ErrPersistence, s.path, err)
	}
	return nil
}
