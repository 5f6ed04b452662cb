package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the engine's secrets in the OS keychain.
	KeyringService = "careerguide"

	EnvSigningSecret = "ENGINE_JWT_SECRET"
)

var ErrNoSecret = errors.New("jwt signing secret not found (set ENGINE_JWT_SECRET or store it in the keychain)")

// Backend is the slice of go-keyring the engine uses; tests swap it.
type Backend interface {
	Get(service, user string) (string, error)
	Set(service, user, password string) error
	Delete(service, user string) error
}

type osKeyring struct{}

func (osKeyring) Get(service, user string) (string, error) { return keyring.Get(service, user) }
func (osKeyring) Set(service, user, pw string) error        { return keyring.Set(service, user, pw) }
func (osKeyring) Delete(service, user string) error         { return keyring.Delete(service, user) }

type Store struct {
	Backend Backend
	Account string
	Getenv  func(string) string
}

func NewStore(account string) *Store {
	return &Store{Backend: osKeyring{}, Account: account, Getenv: os.Getenv}
}

// SigningSecret resolves the secret: environment first, then keychain.
func (s *Store) SigningSecret() (string, error) {
	if v := strings.TrimSpace(s.Getenv(EnvSigningSecret)); v != "" {
		return v, nil
	}
	if strings.TrimSpace(s.Account) != "" {
		v, err := s.Backend.Get(KeyringService, s.Account)
		if err == nil && strings.TrimSpace(v) != "" {
			return v, nil
		}
	}
	return "", ErrNoSecret
}

func (s *Store) SetSigningSecret(secret string) error {
	if strings.TrimSpace(s.Account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(secret) == "" {
		return errors.New("secret is empty")
	}
	return s.Backend.Set(KeyringService, s.Account, secret)
}

func (s *Store) DeleteSigningSecret() error {
	if strings.TrimSpace(s.Account) == "" {
		return errors.New("keyring account name is empty")
	}
	return s.Backend.Delete(KeyringService, s.Account)
}

// EnsureSigningSecret returns the configured secret, generating and storing
// a random one in the keychain on first run. generated reports whether a
// new secret was written.
func (s *Store) EnsureSigningSecret() (secret string, generated bool, err error) {
	if v, err := s.SigningSecret(); err == nil {
		return v, false, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", false, err
	}
	secret = hex.EncodeToString(buf)
	if err := s.SetSigningSecret(secret); err != nil {
		return "", false, err
	}
	return secret, true, nil
}
