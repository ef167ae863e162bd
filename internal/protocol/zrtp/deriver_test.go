package zrtp_test

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"zrtpkey/internal/crypto"
	"zrtpkey/internal/domain"
	"zrtpkey/internal/protocol/zrtp"
)

// endpoints returns the handshakes seen by the initiator and the responder
// of the same exchange.
func endpoints(t *testing.T, a domain.Agreement) (initiator, responder domain.Handshake) {
	t.Helper()
	kpI, err := a.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	kpR, err := a.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	hello, commit, p1, p2 := messages()
	base := domain.Handshake{
		Hello:        hello,
		Commit:       commit,
		DHPart1:      p1,
		DHPart2:      p2,
		InitiatorZID: testZIDi,
		ResponderZID: testZIDr,
	}

	initiator, responder = base, base
	initiator.Local, initiator.PeerPublic = kpI, kpR.Public
	responder.Local, responder.PeerPublic = kpR, kpI.Public
	return initiator, responder
}

func TestDeriver_EndpointsAgree(t *testing.T) {
	t.Parallel()

	for _, name := range crypto.AgreementNames() {
		s, err := crypto.Resolve(crypto.HashS256, name)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		d := zrtp.NewDeriver(s.Hash, s.Agreement, nil)
		initiator, responder := endpoints(t, s.Agreement)

		s0i, thi, err := d.Derive(initiator)
		if err != nil {
			t.Fatalf("%s initiator Derive: %v", name, err)
		}
		s0r, thr, err := d.Derive(responder)
		if err != nil {
			t.Fatalf("%s responder Derive: %v", name, err)
		}
		if thi != thr {
			t.Fatalf("%s: total hashes differ", name)
		}
		if s0i != s0r {
			t.Fatalf("%s: s0 differs", name)
		}
		if s0i == (domain.SharedSecret{}) {
			t.Fatalf("%s: s0 is zero", name)
		}
	}
}

func TestDeriver_ConcurrentUse(t *testing.T) {
	t.Parallel()

	s, err := crypto.Resolve(crypto.HashS256, crypto.AgreementX255)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	d := zrtp.NewDeriver(s.Hash, s.Agreement, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < cap(errs); i++ {
		initiator, responder := endpoints(t, s.Agreement)
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, _, err := d.Derive(initiator)
			if err != nil {
				errs <- err
				return
			}
			b, _, err := d.Derive(responder)
			if err != nil {
				errs <- err
				return
			}
			if a != b {
				errs <- errors.New("s0 differs")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestDeriver_LogsNoSecrets(t *testing.T) {
	t.Parallel()

	s, err := crypto.Resolve(crypto.HashS256, crypto.AgreementDH2k)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	d := zrtp.NewDeriver(s.Hash, s.Agreement, log)
	initiator, _ := endpoints(t, s.Agreement)

	s0, totalHash, err := d.Derive(initiator)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	dh, err := d.DHSecret(initiator.Local, initiator.PeerPublic)
	if err != nil {
		t.Fatalf("DHSecret: %v", err)
	}

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("want 1 log entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != logrus.DebugLevel || e.Message != "derived shared secret" {
		t.Fatalf("unexpected entry %v %q", e.Level, e.Message)
	}
	for _, k := range []string{"hash", "agreement", "duration"} {
		if _, ok := e.Data[k]; !ok {
			t.Fatalf("missing field %q", k)
		}
	}
	if len(e.Data) != 3 {
		t.Fatalf("unexpected fields %v", e.Data)
	}

	line, err := e.String()
	if err != nil {
		t.Fatalf("format entry: %v", err)
	}
	for name, secret := range map[string][]byte{
		"s0":         s0[:],
		"total hash": totalHash[:],
		"DH result":  dh,
		"private":    initiator.Local.Private,
	} {
		if strings.Contains(line, fmt.Sprintf("%x", secret)) {
			t.Fatalf("log line contains the %s", name)
		}
	}
}

func TestDeriver_FailureIsSurfaced(t *testing.T) {
	t.Parallel()

	s, err := crypto.Resolve(crypto.HashS256, crypto.AgreementDH3k)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	log, hook := test.NewNullLogger()
	d := zrtp.NewDeriver(s.Hash, s.Agreement, log)

	initiator, _ := endpoints(t, s.Agreement)
	initiator.PeerPublic = crypto.DH3k(false).Prime().Bytes()

	s0, totalHash, err := d.Derive(initiator)
	if !errors.Is(err, domain.ErrInvalidPeerKey) {
		t.Fatalf("want ErrInvalidPeerKey, got %v", err)
	}
	if s0 != (domain.SharedSecret{}) || totalHash != (domain.Digest{}) {
		t.Fatal("got output alongside the error")
	}

	e := hook.LastEntry()
	if e == nil || e.Level != logrus.WarnLevel {
		t.Fatalf("want a warning, got %v", e)
	}
	if kind := e.Data["kind"]; kind != "invalid_peer_key" {
		t.Fatalf("want kind invalid_peer_key, got %v", kind)
	}

	initiator.DHPart2 = nil
	if _, _, err := d.Derive(initiator); !errors.Is(err, domain.ErrEncodingUnavailable) {
		t.Fatalf("want ErrEncodingUnavailable, got %v", err)
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{domain.ErrAlgorithmUnavailable, "algorithm_unavailable"},
		{fmt.Errorf("x: %w", domain.ErrEmptyInput), "empty_input"},
		{errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		if got := zrtp.ErrorKind(tt.err); got != tt.want {
			t.Fatalf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
