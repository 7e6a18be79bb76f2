// Package models defines the client-side data models of the password store.
package models

// Entry is one credential as persisted by the SQL stores: the JSON of a
// Credential sealed with AES-GCM under the session key.
type Entry struct {
	// Id equals the Credential Id, kept in clear so rows can be addressed.
	Id string

	// Position preserves the order of the collection.
	Position int

	// Details is the encrypted Credential JSON.
	Details []byte
	// NonceDetails is the AEAD nonce for Details.
	NonceDetails []byte
}
