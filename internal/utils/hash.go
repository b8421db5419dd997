package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 of data under hashKey and returns it
// hex-encoded.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// PinDigest is the value kept in the secret store for a user's PIN. The
// digest is keyed by the user id, so the same PIN gives different digests
// for different accounts on one device.
func PinDigest(userID, pin string) string {
	return HashString(pin, "docvault/pin/"+userID)
}

// PinMatches compares pin against a stored digest in constant time.
func PinMatches(userID, pin, digest string) bool {
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	return hmac.Equal(hashString([]byte(pin), "docvault/pin/"+userID), want)
}
