package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher seals values kept in the client's local secret store.
//
// Every blob is bound to associated data (the store key it was written
// under), so a value copied from one key to another fails to open.
type Cipher interface {
	// Seal encrypts plaintext and returns nonce || ciphertext.
	Seal(plaintext, associated []byte) ([]byte, error)

	// Open reverses Seal. It fails when the blob was tampered with, was
	// sealed under other associated data, or under another device key.
	Open(blob, associated []byte) ([]byte, error)
}
