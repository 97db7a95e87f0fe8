package anydict

import (
	"crypto/sha256"
	"encoding/hex"
)

const fingerprintPrefix = "anydict:"

// Fingerprint returns a content identity for the Dict:
// "anydict:" + hex_lower(sha256(EncodeJSON(d, encodeValue))).
//
// Because the encoding is deterministic, two Dicts with the same entry set
// and the same value encodings fingerprint identically.
func Fingerprint[K, V any](d Dict[K, V], encodeValue func(V) ([]byte, error)) (string, error) {
	canon, err := EncodeJSON(d, encodeValue)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(canon)
	return fingerprintPrefix + hex.EncodeToString(h[:]), nil
}
