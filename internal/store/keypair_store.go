package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"zrtpkey/internal/domain"
	"zrtpkey/internal/util/memzero"
)

const keyFileSuffix = ".key.enc"

var (
	// ErrKeyPairNotFound is returned when no key pair is stored under a name.
	ErrKeyPairNotFound = errors.New("key pair not found")

	// ErrInvalidName is returned for names that are not safe file names.
	ErrInvalidName = errors.New("invalid key pair name")

	validName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// KeyPairFileStore persists passphrase-encrypted key pairs to disk.
type KeyPairFileStore struct {
	dir    string
	params scryptParams
	mu     sync.Mutex
}

// NewKeyPairFileStore returns a KeyPairFileStore rooted at dir.
func NewKeyPairFileStore(dir string) *KeyPairFileStore {
	return &KeyPairFileStore{dir: dir, params: scryptParamsDefault()}
}

// SaveKeyPair encrypts kp and writes it under name, replacing any existing
// key pair of that name.
func (s *KeyPairFileStore) SaveKeyPair(passphrase, name string, kp domain.KeyPair) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(kp)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	ct, err := seal(passphrase, name, raw, s.params)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(path, ct, 0o600)
}

// LoadKeyPair reads and decrypts the key pair stored under name.
func (s *KeyPairFileStore) LoadKeyPair(passphrase, name string) (domain.KeyPair, error) {
	path, err := s.path(name)
	if err != nil {
		return domain.KeyPair{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.KeyPair{}, fmt.Errorf("%w: %s", ErrKeyPairNotFound, name)
	}
	if err != nil {
		return domain.KeyPair{}, err
	}
	pt, err := open(passphrase, name, b)
	if err != nil {
		return domain.KeyPair{}, err
	}
	defer memzero.Zero(pt)

	var kp domain.KeyPair
	if err := json.Unmarshal(pt, &kp); err != nil {
		return domain.KeyPair{}, err
	}
	return kp, nil
}

func (s *KeyPairFileStore) path(name string) (string, error) {
	if !validName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name+keyFileSuffix), nil
}

// Compile-time assertion that KeyPairFileStore implements domain.KeyPairStore.
var _ domain.KeyPairStore = (*KeyPairFileStore)(nil)
