// Package vault keeps the master-key session and the sealed-blob vault
// format shared by the file and S3 backends.
//
// A sealed vault is a JSON document
//
//	{"ciphertext": "<base64>", "nonce": "<base64>", "salt": "<base64>"}
//
// whose plaintext is the JSON array of every stored credential. The key is
// argon2id(password, salt); the cipher is AES-256-GCM. Every write re-seals
// the whole collection under a fresh nonce.
package vault
