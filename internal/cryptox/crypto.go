// Package cryptox holds the key derivation and AEAD helpers used by every
// store backend.
//
// Keys are derived with argon2id and records are sealed with AES-256-GCM
// using a fresh random 12-byte nonce per call.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/json"
	"errors"

	"github.com/izm4457/password-manager/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the length of a derived master key (AES-256).
	KeySize = 32
	// SaltSize is the length of a freshly generated salt.
	SaltSize = 16
	// NonceSize is the GCM nonce length.
	NonceSize = 12
)

// ErrDecrypt is returned when a ciphertext cannot be opened, most often
// because the key came from a wrong password.
var ErrDecrypt = errors.New("decryption failed")

// NewSalt returns SaltSize random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveMasterKey derives a KeySize key from password and salt with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// MakeVerifier returns SHA-256 of the master key. Stores keep the verifier
// next to the salt to check a password without decrypting any record.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// Seal encrypts plaintext with AES-GCM under key.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(NonceSize)
	return aesgcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Open decrypts a ciphertext produced by Seal. Authentication failures are
// reported as ErrDecrypt.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, ErrDecrypt
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}

// EncryptEntry marshals entry to JSON and seals it.
//
//	ciphertext, nonce, err := EncryptEntry(cred, key)
func EncryptEntry(entry any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(entry)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(plaintext)

	return Seal(plaintext, key)
}

// DecryptEntry opens ciphertext and unmarshals the JSON into v.
func DecryptEntry(ciphertext, nonce, key []byte, v any) error {
	plaintext, err := Open(ciphertext, nonce, key)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(plaintext)

	return json.Unmarshal(plaintext, v)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
