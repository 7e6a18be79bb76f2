package vault

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/izm4457/password-manager/internal/client/models"
	"github.com/izm4457/password-manager/internal/common"
	"github.com/izm4457/password-manager/internal/cryptox"
)

var ErrMalformed = errors.New("malformed vault data")

type sealedBlob struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	Salt       string `json:"salt"`
}

// Seal encrypts records under the session key and returns the vault document.
func Seal(s *Session, records []models.Credential) ([]byte, error) {
	if records == nil {
		records = []models.Credential{}
	}
	plaintext, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	defer common.WipeByteArray(plaintext)

	key, err := s.Key()
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	ct, nonce, err := cryptox.Seal(plaintext, key)
	if err != nil {
		return nil, err
	}

	return json.Marshal(sealedBlob{
		Ciphertext: base64.StdEncoding.EncodeToString(ct),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Salt:       base64.StdEncoding.EncodeToString(s.Salt()),
	})
}

// Unseal derives the key from password and the blob's salt and decrypts the
// records. A failed GCM open is reported as ErrWrongPassword. On success the
// caller owns the returned session.
func Unseal(data, password []byte) (*Session, []models.Credential, error) {
	blob, err := parseBlob(data)
	if err != nil {
		return nil, nil, err
	}

	s := NewSession(password, blob.salt)
	records, err := open(s, blob.ciphertext, blob.nonce)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, records, nil
}

// unsealWith decrypts data with an already unlocked session.
func unsealWith(s *Session, data []byte) ([]models.Credential, error) {
	blob, err := parseBlob(data)
	if err != nil {
		return nil, err
	}
	return open(s, blob.ciphertext, blob.nonce)
}

type decodedBlob struct {
	ciphertext, nonce, salt []byte
}

func parseBlob(data []byte) (decodedBlob, error) {
	var blob sealedBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return decodedBlob{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var (
		d   decodedBlob
		err error
	)
	if d.ciphertext, err = base64.StdEncoding.DecodeString(blob.Ciphertext); err != nil {
		return decodedBlob{}, fmt.Errorf("%w: ciphertext: %v", ErrMalformed, err)
	}
	if d.nonce, err = base64.StdEncoding.DecodeString(blob.Nonce); err != nil {
		return decodedBlob{}, fmt.Errorf("%w: nonce: %v", ErrMalformed, err)
	}
	if d.salt, err = base64.StdEncoding.DecodeString(blob.Salt); err != nil {
		return decodedBlob{}, fmt.Errorf("%w: salt: %v", ErrMalformed, err)
	}
	if len(d.salt) == 0 {
		return decodedBlob{}, fmt.Errorf("%w: empty salt", ErrMalformed)
	}
	return d, nil
}

func open(s *Session, ct, nonce []byte) ([]models.Credential, error) {
	key, err := s.Key()
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	plaintext, err := cryptox.Open(ct, nonce, key)
	if err != nil {
		if errors.Is(err, cryptox.ErrDecrypt) {
			return nil, ErrWrongPassword
		}
		return nil, err
	}
	defer common.WipeByteArray(plaintext)

	var records []models.Credential
	if err := json.Unmarshal(plaintext, &records); err != nil {
		return nil, fmt.Errorf("%w: records: %v", ErrMalformed, err)
	}
	if records == nil {
		records = []models.Credential{}
	}
	return records, nil
}
