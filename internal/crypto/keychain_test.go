package crypto

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testArgonParams keeps key derivation cheap in tests.
var testArgonParams = argonParams{time: 1, memory: 64, threads: 1, keyLen: 32}

func testCipher(t *testing.T, key []byte) *deviceCipher {
	t.Helper()
	c, err := newDeviceCipher(key, testArgonParams)
	if err != nil {
		t.Fatalf("newDeviceCipher error: %v", err)
	}
	return c
}

func TestSealOpen_RoundTrip(t *testing.T) {
	c := testCipher(t, bytes.Repeat([]byte{0x01}, deviceKeySize))

	blob, err := c.Seal([]byte("1234"), []byte("pin:u1"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(blob, []byte("1234")) {
		t.Fatalf("blob contains plaintext")
	}

	got, err := c.Open(blob, []byte("pin:u1"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(got) != "1234" {
		t.Fatalf("Open = %q, want %q", got, "1234")
	}
}

func TestSeal_RandomNonce(t *testing.T) {
	c := testCipher(t, bytes.Repeat([]byte{0x01}, deviceKeySize))

	b1, _ := c.Seal([]byte("same"), nil)
	b2, _ := c.Seal([]byte("same"), nil)
	if bytes.Equal(b1, b2) {
		t.Fatalf("expected different blobs for the same plaintext")
	}
}

func TestOpen_WrongAssociatedData(t *testing.T) {
	c := testCipher(t, bytes.Repeat([]byte{0x01}, deviceKeySize))

	blob, _ := c.Seal([]byte("1234"), []byte("pin:u1"))
	if _, err := c.Open(blob, []byte("pin:u2")); err == nil {
		t.Fatalf("expected error when opening under another key")
	}
}

func TestOpen_WrongDeviceKey(t *testing.T) {
	c1 := testCipher(t, bytes.Repeat([]byte{0x01}, deviceKeySize))
	c2 := testCipher(t, bytes.Repeat([]byte{0x02}, deviceKeySize))

	blob, _ := c1.Seal([]byte("secret"), nil)
	if _, err := c2.Open(blob, nil); err == nil {
		t.Fatalf("expected error with another device key")
	}
}

func TestOpen_TooShort(t *testing.T) {
	c := testCipher(t, bytes.Repeat([]byte{0x01}, deviceKeySize))

	if _, err := c.Open([]byte{1, 2, 3}, nil); !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("Open error = %v, want ErrCiphertextTooShort", err)
	}
}

func TestNewDeviceCipher_InvalidKey(t *testing.T) {
	if _, err := NewDeviceCipher([]byte("short")); !errors.Is(err, ErrInvalidDeviceKey) {
		t.Fatalf("error = %v, want ErrInvalidDeviceKey", err)
	}
}

func TestLoadOrCreateDeviceKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vault.db.key")

	k1, err := LoadOrCreateDeviceKey(path)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if len(k1) != deviceKeySize {
		t.Fatalf("key length = %d, want %d", len(k1), deviceKeySize)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("key file mode = %v, want 0600", info.Mode().Perm())
	}

	k2, err := LoadOrCreateDeviceKey(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected the same key on reload")
	}
}

func TestLoadOrCreateDeviceKey_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db.key")
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrCreateDeviceKey(path); !errors.Is(err, ErrInvalidDeviceKey) {
		t.Fatalf("error = %v, want ErrInvalidDeviceKey", err)
	}
}
