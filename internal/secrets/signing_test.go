package secrets

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

type memKeyring map[string]string

func (m memKeyring) Get(service, user string) (string, error) {
	v, ok := m[service+"/"+user]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return v, nil
}
func (m memKeyring) Set(service, user, pw string) error { m[service+"/"+user] = pw; return nil }
func (m memKeyring) Delete(service, user string) error {
	delete(m, service+"/"+user)
	return nil
}

func newTestStore(env string) (*Store, memKeyring) {
	kr := memKeyring{}
	return &Store{
		Backend: kr,
		Account: "careerguide:jwt",
		Getenv:  func(string) string { return env },
	}, kr
}

func TestSigningSecretPrefersEnv(t *testing.T) {
	t.Parallel()
	s, kr := newTestStore("from-env")
	kr[KeyringService+"/careerguide:jwt"] = "from-keyring"

	got, err := s.SigningSecret()
	if err != nil || got != "from-env" {
		t.Fatalf("got=%q err=%v want=from-env", got, err)
	}
}

func TestSigningSecretFallsBackToKeyring(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore("")
	if _, err := s.SigningSecret(); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("got=%v want=%v", err, ErrNoSecret)
	}
	if err := s.SetSigningSecret("kr"); err != nil {
		t.Fatal(err)
	}
	got, err := s.SigningSecret()
	if err != nil || got != "kr" {
		t.Fatalf("got=%q err=%v want=kr", got, err)
	}
	if err := s.DeleteSigningSecret(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SigningSecret(); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("after delete: got=%v want=%v", err, ErrNoSecret)
	}
}

func TestEnsureSigningSecretGeneratesOnce(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore("")
	first, generated, err := s.EnsureSigningSecret()
	if err != nil || !generated || len(first) != 64 {
		t.Fatalf("first: len=%d generated=%v err=%v", len(first), generated, err)
	}
	second, generated, err := s.EnsureSigningSecret()
	if err != nil || generated || second != first {
		t.Fatalf("second: generated=%v err=%v same=%v", generated, err, second == first)
	}
}

func TestSetRejectsEmpty(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore("")
	if err := s.SetSigningSecret("  "); err == nil {
		t.Fatal("expected error for empty secret")
	}
	s.Account = ""
	if err := s.SetSigningSecret("x"); err == nil {
		t.Fatal("expected error for empty account")
	}
}
