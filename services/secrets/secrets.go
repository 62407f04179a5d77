package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/monibridge/core/utils/logger"
	"golang.org/x/crypto/scrypt"
)

const (
	encryptedPrefix = "enc:v1:"
	plainPrefix     = "plain:"
)

// The salt is fixed on purpose: the key must be derivable from the master
// secret alone, and the KDF cost is paid once per process.
var kdfSalt = []byte("monibridge/secret-store/v1")

var plainModeWarning sync.Once

// Store encrypts and decrypts provider credentials at rest using AES-GCM
// with a key derived once from a server-held master secret. Without a master
// secret the store degrades to a clearly-tagged reversible plain mode, which
// is only acceptable in development.
type Store struct {
	aead cipher.AEAD
}

// New derives the encryption key from masterSecret and returns a ready
// store. An empty masterSecret yields a plain-mode store and logs a warning
// once per process.
func New(masterSecret string) (*Store, error) {
	if masterSecret == "" {
		plainModeWarning.Do(func() {
			logger.Warnf("no master secret configured, secret store running in plain mode", nil)
		})
		return &Store{}, nil
	}

	key, err := scrypt.Key([]byte(masterSecret), kdfSalt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return &Store{aead: aead}, nil
}

// PlainMode reports whether the store holds no encryption key.
func (s *Store) PlainMode() bool {
	return s.aead == nil
}

// GuardProduction rejects the plain mode outside development. Call it at
// startup before any credential is written.
func (s *Store) GuardProduction(environment string) error {
	if s.PlainMode() && (environment == "production" || environment == "staging") {
		return fmt.Errorf("secret store is in plain mode, refusing to run in %s", environment)
	}
	return nil
}

// Encrypt seals plaintext into a self-describing envelope. In plain mode the
// envelope tags the value as reversible base64 so a reader can tell it apart
// from ciphertext.
func (s *Store) Encrypt(plaintext string) (string, error) {
	if s.PlainMode() {
		return plainPrefix + base64.StdEncoding.EncodeToString([]byte(plaintext)), nil
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return encryptedPrefix + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt opens an envelope produced by Encrypt. Malformed or foreign input
// is returned unchanged so the caller can detect and log corruption without
// crashing; the adapter's own IsConfigured check is the authoritative gate.
func (s *Store) Decrypt(envelope string) string {
	switch {
	case strings.HasPrefix(envelope, plainPrefix):
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(envelope, plainPrefix))
		if err != nil {
			logger.Warnf("secret store: malformed plain envelope", nil)
			return envelope
		}
		return string(decoded)

	case strings.HasPrefix(envelope, encryptedPrefix):
		if s.PlainMode() {
			logger.Warnf("secret store: encrypted envelope but no master secret configured", nil)
			return envelope
		}
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(envelope, encryptedPrefix))
		if err != nil || len(raw) < s.aead.NonceSize() {
			logger.Warnf("secret store: malformed encrypted envelope", nil)
			return envelope
		}
		nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
		plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
		if err != nil {
			logger.Warnf("secret store: decryption failed", nil)
			return envelope
		}
		return string(plaintext)

	default:
		// Legacy or corrupted value. Pass it through untouched.
		return envelope
	}
}
