package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/pbkdf2"
)

const (
	keySize   = 32
	nonceSize = 24

	defaultPBKDF2Iterations = 100000
)

// Tokenizer versions share a derivation salt so a passphrase always yields
// the same key.
var keyDerivationSalt = []byte("paytest-tokenizer-v1")

// ErrKeyMissing signals a detokenize attempt before any key was set.
var ErrKeyMissing = fmt.Errorf("encryption key not set")

// ErrInvalidToken signals a malformed or tampered token.
var ErrInvalidToken = fmt.Errorf("invalid or tampered token")

// Tokenizer reversibly encrypts payment payloads, yielding opaque tokens
// usable in place of the sensitive original.
type Tokenizer struct {
	key        *[keySize]byte
	iterations int
}

// NewTokenizer returns a tokenizer with no key set. Tokenize lazily generates
// a random key; Detokenize without a key fails with ErrKeyMissing.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{iterations: defaultPBKDF2Iterations}
}

// SetIterations overrides the PBKDF2 work factor for passphrase-derived keys.
func (t *Tokenizer) SetIterations(iterations int) {
	if iterations > 0 {
		t.iterations = iterations
	}
}

// SetPassphrase derives the encryption key from the supplied passphrase.
func (t *Tokenizer) SetPassphrase(passphrase string) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase cannot be empty")
	}

	iterations := t.iterations
	if iterations <= 0 {
		iterations = defaultPBKDF2Iterations
	}

	derived := pbkdf2.Key([]byte(passphrase), keyDerivationSalt, iterations, keySize, sha256.New)
	var key [keySize]byte
	copy(key[:], derived)
	t.key = &key
	return nil
}

// GenerateKey installs a fresh random key.
func (t *Tokenizer) GenerateKey() error {
	var key [keySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	t.key = &key
	return nil
}

// HasKey reports whether a key has been set or generated.
func (t *Tokenizer) HasKey() bool {
	return t.key != nil
}

// Tokenize serializes the payload and seals it with an authenticated cipher.
// A random key is generated on first use when none was set.
func (t *Tokenizer) Tokenize(payload any) (string, error) {
	if t.key == nil {
		if err := t.GenerateKey(); err != nil {
			return "", err
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serialize payload: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], raw, &nonce, t.key)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

// Detokenize opens the token and deserializes the payload into out. Tampered
// or garbage tokens fail with ErrInvalidToken.
func (t *Tokenizer) Detokenize(token string, out any) error {
	if t.key == nil {
		return ErrKeyMissing
	}

	sealed, err := base64.URLEncoding.DecodeString(token)
	if err != nil || len(sealed) < nonceSize {
		return ErrInvalidToken
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	opened, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, t.key)
	if !ok {
		return ErrInvalidToken
	}

	if err := json.Unmarshal(opened, out); err != nil {
		return ErrInvalidToken
	}
	return nil
}
