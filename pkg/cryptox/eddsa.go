// Package cryptox holds the key handling used by local development tooling.
package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// GenerateEd25519Key generates a new Ed25519 private key.
// Returns the private key in PEM format (PKCS8).
func GenerateEd25519Key() ([]byte, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate Ed25519 key: %w", err)
	}

	privateKeyBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to marshal PKCS8 key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privateKeyBytes}), nil
}

// LoadOrCreateEd25519Key reads a PEM key from path, generating and writing
// one (mode 0600) if the file does not exist yet.
func LoadOrCreateEd25519Key(path string) (pemKey []byte, created bool, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if _, err := ParseEd25519Key(data); err != nil {
			return nil, false, fmt.Errorf("cryptox: %s: %w", path, err)
		}
		return data, false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, false, fmt.Errorf("cryptox: read key: %w", err)
	}

	data, err = GenerateEd25519Key()
	if err != nil {
		return nil, false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, false, fmt.Errorf("cryptox: create key dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, false, fmt.Errorf("cryptox: write key: %w", err)
	}
	return data, true, nil
}

// ParseEd25519Key decodes a PKCS8 PEM private key.
func ParseEd25519Key(pemKey []byte) (ed25519.PrivateKey, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, errors.New("cryptox: expected PKCS8 PRIVATE KEY block")
	}
	k, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("cryptox: parse PKCS8: %w", err)
	}
	priv, ok := k.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("cryptox: not an Ed25519 key")
	}
	return priv, nil
}

// KeyID derives a stable key id from the public half of the key, so a
// restarted dev server keeps issuing tokens under the same kid.
func KeyID(pemKey []byte) (string, error) {
	priv, err := ParseEd25519Key(pemKey)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(priv.Public().(ed25519.PublicKey))
	return base64.RawURLEncoding.EncodeToString(sum[:12]), nil
}
