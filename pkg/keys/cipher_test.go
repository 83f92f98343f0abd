package keys

import (
	"bytes"
	"strings"
	"testing"
)

func newTestCipher(t *testing.T) Cipher {
	t.Helper()
	masterKey, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey failed: %v", err)
	}
	c, err := NewMasterKeyCipher(masterKey)
	if err != nil {
		t.Fatalf("NewMasterKeyCipher failed: %v", err)
	}
	return c
}

func TestCipher_EncryptDecrypt(t *testing.T) {
	c := newTestCipher(t)
	secret := []byte("ya29.a0AfH6SMB-access-token")

	enc1, err := c.Encrypt(secret)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	enc2, err := c.Encrypt(secret)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if enc1 == enc2 {
		t.Error("two encryptions of the same secret should use different nonces")
	}
	if strings.Contains(enc1, string(secret)) {
		t.Error("ciphertext leaks plaintext")
	}

	got, err := c.Decrypt(enc1)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Errorf("expected %q, got %q", secret, got)
	}
}

func TestCipher_WrongKeyFails(t *testing.T) {
	enc, err := newTestCipher(t).Encrypt([]byte("refresh-token"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if _, err := newTestCipher(t).Decrypt(enc); err == nil {
		t.Error("expected decryption with another master key to fail")
	}
}

func TestCipher_RejectsBadInput(t *testing.T) {
	c := newTestCipher(t)

	if _, err := c.Encrypt(nil); err != ErrEmptyPlaintext {
		t.Errorf("expected ErrEmptyPlaintext, got %v", err)
	}
	if _, err := c.Decrypt("not base64!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, err := c.Decrypt("AAAA"); err == nil {
		t.Error("expected error for short ciphertext")
	}
}

func TestNewMasterKeyCipher_KeySize(t *testing.T) {
	if _, err := NewMasterKeyCipher(make([]byte, 16)); err == nil {
		t.Error("expected error for 16-byte master key")
	}
}

func TestMasterKeyBase64RoundTrip(t *testing.T) {
	key, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey failed: %v", err)
	}
	decoded, err := MasterKeyFromBase64(MasterKeyToBase64(key))
	if err != nil {
		t.Fatalf("MasterKeyFromBase64 failed: %v", err)
	}
	if !bytes.Equal(decoded, key) {
		t.Error("decoded key differs from original")
	}
	if _, err := MasterKeyFromBase64(MasterKeyToBase64(key[:8])); err == nil {
		t.Error("expected error for short key")
	}
}
