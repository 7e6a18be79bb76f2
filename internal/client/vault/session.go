package vault

import (
	"crypto/subtle"
	"sync"

	"github.com/izm4457/password-manager/internal/common"
	"github.com/izm4457/password-manager/internal/cryptox"
)

// Session holds the master key derived for one unlocked store. Close wipes
// the key; any later Key call returns ErrLocked.
type Session struct {
	mu   sync.RWMutex
	key  []byte
	salt []byte
}

// NewSession derives the master key for password and salt.
func NewSession(password, salt []byte) *Session {
	return &Session{
		key:  cryptox.DeriveMasterKey(password, salt),
		salt: append([]byte(nil), salt...),
	}
}

// CreateSession derives a key under a freshly generated salt.
func CreateSession(password []byte) *Session {
	return NewSession(password, cryptox.NewSalt())
}

// Key returns a copy of the master key.
func (s *Session) Key() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return nil, ErrLocked
	}
	return append([]byte(nil), s.key...), nil
}

func (s *Session) Salt() []byte {
	return append([]byte(nil), s.salt...)
}

// Verifier returns the value stored next to the salt by the SQL backends.
func (s *Session) Verifier() ([]byte, error) {
	key, err := s.Key()
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)
	return cryptox.MakeVerifier(key), nil
}

// Verify compares the session's verifier with a stored one in constant time.
func (s *Session) Verify(stored []byte) error {
	v, err := s.Verifier()
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(v, stored) == 0 {
		return ErrWrongPassword
	}
	return nil
}

func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	common.WipeByteArray(s.key)
	s.key = nil
}
