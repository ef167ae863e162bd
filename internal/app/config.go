package app

import (
	"os"
	"path/filepath"

	"zrtpkey/internal/crypto"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string // key directory, e.g. $HOME/.zrtpkey
	Hash      string // ZRTP hash type, e.g. "S256"
	Agreement string // ZRTP key agreement type, e.g. "DH3k"

	// StrictSubgroup rejects finite-field peer values outside the
	// prime-order subgroup.
	StrictSubgroup bool

	LogLevel string // logrus level name, e.g. "info"
	LogJSON  bool   // emit JSON log lines instead of text
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Hash:      crypto.DefaultHash,
		Agreement: crypto.DefaultAgreement,
		LogLevel:  "info",
	}
}

// DefaultHome returns ~/.zrtpkey.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".zrtpkey"), nil
}
