package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"zrtpkey/internal/crypto"
	"zrtpkey/internal/domain"
	"zrtpkey/internal/protocol/zrtp"
	"zrtpkey/internal/store"
)

// Wire bundles the resolved primitives, services and stores for the CLI.
type Wire struct {
	Config  Config
	Log     *logrus.Logger
	Suite   crypto.Suite
	Deriver *zrtp.Deriver
	Keys    domain.KeyPairStore
}

// NewWire constructs the dependency graph from cfg. Primitives are resolved
// here, once; an unknown algorithm fails with domain.ErrAlgorithmUnavailable.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if logOut == nil {
		logOut = os.Stderr
	}
	log, err := NewLogger(cfg, logOut)
	if err != nil {
		return nil, err
	}

	var opts []crypto.Option
	if cfg.StrictSubgroup {
		opts = append(opts, crypto.WithSubgroupCheck())
	}
	suite, err := crypto.Resolve(cfg.Hash, cfg.Agreement, opts...)
	if err != nil {
		log.WithField("hash", cfg.Hash).WithField("agreement", cfg.Agreement).Error("crypto suite unavailable")
		return nil, err
	}

	if cfg.Home == "" {
		if cfg.Home, err = DefaultHome(); err != nil {
			return nil, err
		}
	}

	return &Wire{
		Config:  cfg,
		Log:     log,
		Suite:   suite,
		Deriver: zrtp.NewDeriver(suite.Hash, suite.Agreement, log.WithField("component", "zrtp")),
		Keys:    store.NewKeyPairFileStore(cfg.Home),
	}, nil
}
