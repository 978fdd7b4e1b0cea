package renpho

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// publicKeyPEM is the fixed vendor key the mobile app encrypts account
// passwords with before sign-in. The cloud API rejects plaintext passwords.
const publicKeyPEM = `-----BEGIN PUBLIC KEY-----
MIGfMA0GCSqGSIb3DQEBAQUAA4GNADCBiQKBgQC+25I2upukpfQ7rIaaTZtVE744
u2zV+HaagrUhDOTq8fMVf9yFQvEZh2/HKxFudUxP0dXUa8F6X4XmWumHdQnum3zm
Jr04fz2b2WCcN0ta/rbF2nYAnMVAk2OJVZAMudOiMWhcxV1nNJiKgTNNr13de0EQ
IiOL2CUBzu+HmIfUbQIDAQAB
-----END PUBLIC KEY-----`

// EncryptPassword encrypts plaintext with the given PEM public key using RSA
// PKCS#1 v1.5 padding and returns the ciphertext base64-encoded, matching
// what the vendor's sign-in endpoint expects in the password field.
func EncryptPassword(publicKey, plaintext string) (string, error) {
	block, _ := pem.Decode([]byte(publicKey))
	if block == nil {
		return "", &EncryptionError{Err: fmt.Errorf("no PEM block in public key")}
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return "", &EncryptionError{Err: fmt.Errorf("parse public key: %w", err)}
	}

	rsaKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return "", &EncryptionError{Err: fmt.Errorf("public key is %T, want RSA", parsed)}
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, rsaKey, []byte(plaintext))
	if err != nil {
		return "", &EncryptionError{Err: err}
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
