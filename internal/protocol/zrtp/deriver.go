package zrtp

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"zrtpkey/internal/domain"
	"zrtpkey/internal/util/memzero"
)

// Deriver computes ZRTP secrets with primitives resolved once at startup.
//
// It logs that a derivation happened, with the algorithm names and its
// duration. Inputs, outputs and intermediate values are never logged.
type Deriver struct {
	hash      domain.Hash
	agreement domain.Agreement
	log       logrus.FieldLogger
}

// NewDeriver returns a Deriver using h and a. A nil log discards output.
func NewDeriver(h domain.Hash, a domain.Agreement, log logrus.FieldLogger) *Deriver {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Deriver{hash: h, agreement: a, log: log}
}

// Hash returns the configured hash.
func (d *Deriver) Hash() domain.Hash { return d.hash }

// Agreement returns the configured key agreement.
func (d *Deriver) Agreement() domain.Agreement { return d.agreement }

// TotalHash hashes the handshake transcript.
func (d *Deriver) TotalHash(hello, commit, dhPart1, dhPart2 domain.Message) (domain.Digest, error) {
	return TotalHash(d.hash, hello, commit, dhPart1, dhPart2)
}

// DHSecret computes the raw DH result for kp and peerPublic.
func (d *Deriver) DHSecret(kp domain.KeyPair, peerPublic []byte) ([]byte, error) {
	return DHSecret(kp, peerPublic, d.agreement)
}

// SharedSecret derives s0 in single-secret mode.
func (d *Deriver) SharedSecret(dhResult []byte, totalHash domain.Digest, zidi, zidr domain.ZID) (domain.SharedSecret, error) {
	return SharedSecret(d.hash, dhResult, totalHash, zidi, zidr)
}

// Derive runs the full pipeline for one handshake. It returns s0 and the
// total hash; comparing the latter with any value asserted by the peer is
// the caller's job. The raw DH result is wiped before Derive returns.
func (d *Deriver) Derive(hs domain.Handshake) (s0 domain.SharedSecret, totalHash domain.Digest, err error) {
	start := time.Now()
	defer func() {
		d.logDerivation(time.Since(start), err)
	}()

	totalHash, err = d.TotalHash(hs.Hello, hs.Commit, hs.DHPart1, hs.DHPart2)
	if err != nil {
		return domain.SharedSecret{}, domain.Digest{}, err
	}

	dhResult, err := d.DHSecret(hs.Local, hs.PeerPublic)
	if err != nil {
		return domain.SharedSecret{}, domain.Digest{}, err
	}
	defer memzero.Zero(dhResult)

	s0, err = d.SharedSecret(dhResult, totalHash, hs.InitiatorZID, hs.ResponderZID)
	if err != nil {
		return domain.SharedSecret{}, domain.Digest{}, err
	}
	return s0, totalHash, nil
}

func (d *Deriver) logDerivation(elapsed time.Duration, err error) {
	entry := d.log.WithFields(logrus.Fields{
		"hash":      name(d.hash),
		"agreement": name(d.agreement),
		"duration":  elapsed,
	})
	if err != nil {
		entry.WithField("kind", ErrorKind(err)).Warn("shared secret derivation failed")
		return
	}
	entry.Debug("derived shared secret")
}

// ErrorKind names the class of a derivation error for logs and exit codes.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidPeerKey):
		return "invalid_peer_key"
	case errors.Is(err, domain.ErrEncodingUnavailable):
		return "encoding_unavailable"
	case errors.Is(err, domain.ErrAlgorithmUnavailable):
		return "algorithm_unavailable"
	case errors.Is(err, domain.ErrInvalidKeyPair):
		return "invalid_key_pair"
	case errors.Is(err, domain.ErrParameterMismatch):
		return "parameter_mismatch"
	case errors.Is(err, domain.ErrEmptyInput):
		return "empty_input"
	default:
		return "unknown"
	}
}

func name(p interface{ Name() string }) string {
	if p == nil {
		return "none"
	}
	return p.Name()
}
