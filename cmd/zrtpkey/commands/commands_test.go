package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeMessages(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for _, m := range []string{"hello", "commit", "dhpart1", "dhpart2"} {
		p := filepath.Join(dir, m)
		if err := os.WriteFile(p, []byte(m), 0o600); err != nil {
			t.Fatalf("write %s: %v", m, err)
		}
		paths = append(paths, p)
	}
	return paths
}

// field returns the value of a "key: value" line in out.
func field(t *testing.T, out, key string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, key+": "); ok {
			return v
		}
	}
	t.Fatalf("no %q in output %q", key, out)
	return ""
}

func TestTotalHashCmd(t *testing.T) {
	args := append([]string{"--home", t.TempDir(), "total-hash"}, writeMessages(t)...)
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("total-hash: %v", err)
	}
	if got := strings.TrimSpace(out); got != "d3032252bd766fdfc1f275bb4886868de02419ea69407b6ada402a7f6245e74a" {
		t.Fatalf("unexpected total hash %q", got)
	}
}

func TestTotalHashCmd_ThreeMessagesFails(t *testing.T) {
	args := append([]string{"--home", t.TempDir(), "total-hash"}, writeMessages(t)[:3]...)
	if _, err := run(t, args...); err == nil {
		t.Fatal("expected error with three messages")
	}
}

func TestUnknownAgreementFails(t *testing.T) {
	if _, err := run(t, "--home", t.TempDir(), "--agreement", "EC25", "pubkey", "-p", "x"); err == nil {
		t.Fatal("expected error for unknown agreement")
	}
}

func TestDeriveCmd_EndpointsAgree(t *testing.T) {
	home := t.TempDir()
	common := []string{"--home", home, "--agreement", "X255", "-p", "pass"}
	msgs := writeMessages(t)

	for _, name := range []string{"alice", "bob"} {
		if _, err := run(t, append(common, "keygen", "--name", name)...); err != nil {
			t.Fatalf("keygen %s: %v", name, err)
		}
	}
	alicePub, err := run(t, append(common, "pubkey", "--name", "alice")...)
	if err != nil {
		t.Fatalf("pubkey alice: %v", err)
	}
	bobPub, err := run(t, append(common, "pubkey", "--name", "bob")...)
	if err != nil {
		t.Fatalf("pubkey bob: %v", err)
	}

	zids := []string{"--zidi", "696e69746961746f725a4944", "--zidr", "726573706f6e6465725a4944"}
	derive := func(name, peer string) string {
		args := append(append([]string{}, common...), "derive", "--name", name, "--peer", strings.TrimSpace(peer))
		args = append(append(args, zids...), msgs...)
		out, err := run(t, args...)
		if err != nil {
			t.Fatalf("derive %s: %v", name, err)
		}
		return out
	}

	a := derive("alice", bobPub)
	b := derive("bob", alicePub)

	if field(t, a, "total_hash") != "d3032252bd766fdfc1f275bb4886868de02419ea69407b6ada402a7f6245e74a" {
		t.Fatalf("unexpected total hash in %q", a)
	}
	if field(t, a, "s0") != field(t, b, "s0") {
		t.Fatal("s0 differs between endpoints")
	}

	dhA, err := run(t, append(common, "dh", "--name", "alice", "--peer", strings.TrimSpace(bobPub))...)
	if err != nil {
		t.Fatalf("dh alice: %v", err)
	}
	dhB, err := run(t, append(common, "dh", "--name", "bob", "--peer", strings.TrimSpace(alicePub))...)
	if err != nil {
		t.Fatalf("dh bob: %v", err)
	}
	if field(t, dhA, "Fingerprint") != field(t, dhB, "Fingerprint") {
		t.Fatal("DH fingerprints differ between endpoints")
	}
}

func TestDeriveCmd_InvalidPeer(t *testing.T) {
	home := t.TempDir()
	common := []string{"--home", home, "--agreement", "X255", "-p", "pass"}
	if _, err := run(t, append(common, "keygen")...); err != nil {
		t.Fatalf("keygen: %v", err)
	}

	args := append(append([]string{}, common...), "derive",
		"--peer", strings.Repeat("00", 32),
		"--zidi", strings.Repeat("01", 12),
		"--zidr", strings.Repeat("02", 12))
	args = append(args, writeMessages(t)...)
	out, err := run(t, args...)
	if err == nil {
		t.Fatal("expected error for low-order peer value")
	}
	if strings.Contains(out, "s0") {
		t.Fatalf("secret printed despite failure: %q", out)
	}
}
