package store

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"relearn/searcher"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
)

const Permissions = 0755

var ErrPolicyNotCached = errors.New("policy not cached")

// DefaultDirectory is where policies are cached when no directory is configured.
var DefaultDirectory = filepath.Join(xdg.CacheHome, "relearn")

// Store keeps learned min-max policies on disk, one gob file per game.
type Store struct {
	dir string
}

// New returns a store rooted at dir, or at DefaultDirectory when dir is empty. The
// directory is created on the first Save.
func New(dir string) *Store {
	if dir == "" {
		dir = DefaultDirectory
	}
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Path is the file holding the policy of the named game.
func (s *Store) Path(game string) string {
	return filepath.Join(s.dir, game+".minmax.gob")
}

func (s *Store) Save(policy *searcher.Policy) (string, error) {
	if err := os.MkdirAll(s.dir, Permissions); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	path := s.Path(policy.Game)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create policy file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(policy); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to encode %s policy: %w", policy.Game, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write policy file: %w", err)
	}

	// Readers never see a partly written policy.
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to store policy file: %w", err)
	}

	log.Debug().Str("path", path).Int("states", policy.Len()).Msg("policy saved")
	return path, nil
}

func (s *Store) Load(game string) (*searcher.Policy, error) {
	path := s.Path(game)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (run learn first)", ErrPolicyNotCached, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open policy file: %w", err)
	}
	defer f.Close()

	var policy searcher.Policy
	if err := gob.NewDecoder(f).Decode(&policy); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if policy.Game != game {
		return nil, fmt.Errorf("%s holds a policy for %s, not %s", path, policy.Game, game)
	}

	log.Debug().Str("path", path).Int("states", policy.Len()).Msg("policy loaded")
	return &policy, nil
}
