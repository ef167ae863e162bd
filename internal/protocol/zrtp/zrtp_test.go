package zrtp_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
	"testing"

	"zrtpkey/internal/crypto"
	"zrtpkey/internal/domain"
)

// recordingHash is SHA-256 that keeps a copy of everything written to it.
type recordingHash struct {
	buf *bytes.Buffer
}

func (r recordingHash) Name() string { return "REC" }
func (r recordingHash) Size() int    { return sha256.Size }
func (r recordingHash) New() hash.Hash {
	r.buf.Reset()
	return &recorder{Hash: sha256.New(), buf: r.buf}
}

type recorder struct {
	hash.Hash
	buf *bytes.Buffer
}

func (r *recorder) Write(p []byte) (int, error) {
	r.buf.Write(p)
	return r.Hash.Write(p)
}

// brokenMessage cannot produce its encoding.
type brokenMessage struct{}

func (brokenMessage) MessageBytes() ([]byte, error) { return nil, errors.New("truncated packet") }

func mustHash(t *testing.T, name string) domain.Hash {
	t.Helper()
	h, err := crypto.ResolveHash(name)
	if err != nil {
		t.Fatalf("ResolveHash(%s): %v", name, err)
	}
	return h
}

func mustAgreement(t *testing.T, name string) domain.Agreement {
	t.Helper()
	a, err := crypto.ResolveAgreement(name)
	if err != nil {
		t.Fatalf("ResolveAgreement(%s): %v", name, err)
	}
	return a
}

func mustDigest(t *testing.T, s string) domain.Digest {
	t.Helper()
	var d domain.Digest
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(d) {
		t.Fatalf("bad digest %q: %v", s, err)
	}
	copy(d[:], b)
	return d
}

func messages() (hello, commit, dhPart1, dhPart2 domain.RawMessage) {
	return domain.RawMessage("hello"),
		domain.RawMessage("commit"),
		domain.RawMessage("dhpart1"),
		domain.RawMessage("dhpart2")
}

var (
	testZIDi = domain.ZID{'i', 'n', 'i', 't', 'i', 'a', 't', 'o', 'r', 'Z', 'I', 'D'}
	testZIDr = domain.ZID{'r', 'e', 's', 'p', 'o', 'n', 'd', 'e', 'r', 'Z', 'I', 'D'}
)
