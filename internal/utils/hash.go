package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// signedCookiePrefix marks a signed cookie value, the same way
// cookie-parser based clients expect it.
const signedCookiePrefix = "s:"

// SignCookieValue returns "s:<value>.<signature>" where signature is the
// unpadded base64 of HMAC-SHA256(value, secret).
func SignCookieValue(value, secret string) string {
	return signedCookiePrefix + value + "." + sign(value, secret)
}

// UnsignCookieValue verifies a value produced by [SignCookieValue].
//
// It returns the original value and true when the signature matches. A
// value without the "s:" prefix is not a signed cookie and yields false.
func UnsignCookieValue(signed, secret string) (string, bool) {
	if !strings.HasPrefix(signed, signedCookiePrefix) {
		return "", false
	}
	signed = strings.TrimPrefix(signed, signedCookiePrefix)

	dot := strings.LastIndexByte(signed, '.')
	if dot < 0 {
		return "", false
	}

	value, mac := signed[:dot], signed[dot+1:]
	if !hmac.Equal([]byte(mac), []byte(sign(value, secret))) {
		return "", false
	}

	return value, true
}

// IsSignedCookieValue reports whether value carries the signed-cookie prefix.
func IsSignedCookieValue(value string) bool {
	return strings.HasPrefix(value, signedCookiePrefix)
}

func sign(value, secret string) string {
	return base64.RawStdEncoding.EncodeToString(hashString([]byte(value), secret))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
