package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltLength = 16

var saltCharset = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// HashPaymentData returns a salted SHA-256 digest in "hash:salt" form. A
// random 16-character salt is generated when none is supplied.
func HashPaymentData(data, salt string) (string, error) {
	if salt == "" {
		generated, err := randomSalt(saltLength)
		if err != nil {
			return "", err
		}
		salt = generated
	}

	sum := sha256.Sum256([]byte(data + salt))
	return hex.EncodeToString(sum[:]) + ":" + salt, nil
}

// VerifyPaymentHash checks data against an encoded "hash:salt" value using a
// constant-time comparison.
func VerifyPaymentHash(data, encoded string) bool {
	hashValue, salt, found := strings.Cut(encoded, ":")
	if !found {
		return false
	}

	sum := sha256.Sum256([]byte(data + salt))
	computed := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashValue)) == 1
}

func randomSalt(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	result := make([]rune, length)
	for i := 0; i < length; i++ {
		idx, err := randInt(len(saltCharset))
		if err != nil {
			return "", err
		}
		result[i] = saltCharset[idx]
	}
	return string(result), nil
}

func randInt(max int) (int, error) {
	if max <= 0 {
		return 0, fmt.Errorf("invalid max %d", max)
	}
	var buff = make([]byte, 1)
	if _, err := rand.Read(buff); err != nil {
		return 0, err
	}
	return int(buff[0]) % max, nil
}
