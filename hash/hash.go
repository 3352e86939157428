// Package hash collects the hash-function plumbing shared across the
// signature and key-exchange packages: BIP-340 tagged hashing, HMAC, and
// HKDF (RFC 5869). Grounded in mleku-p256k1/hash.go's SHA256/HMACSHA256
// wrappers and TaggedHash helper, extended beyond BIP-340's SHA-256 with
// SHA-512, SHA3-256 and BLAKE2b-256 helpers and RFC 9380's
// expand_message_xmd (expand.go).
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"io"
	"sync"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/hkdf"
)

var (
	tagPrefixes   = map[string][32]byte{}
	tagPrefixesMu sync.Mutex
)

func taggedPrefix(tag string) [32]byte {
	tagPrefixesMu.Lock()
	defer tagPrefixesMu.Unlock()
	if p, ok := tagPrefixes[tag]; ok {
		return p
	}
	p := sha256.Sum256([]byte(tag))
	tagPrefixes[tag] = p
	return p
}

// TaggedHash computes the BIP-340 tagged hash SHA256(SHA256(tag) ||
// SHA256(tag) || msg), using sha256-simd for the message-dependent pass
// (the tag prefix is cached after the first use of a given tag, mirroring
// mleku-p256k1's precomputed BIP-340 prefixes, but generalized to any tag
// string instead of three hardcoded constants).
func TaggedHash(tag string, msg ...[]byte) [32]byte {
	prefix := taggedPrefix(tag)
	h := sha256simd.New()
	h.Write(prefix[:])
	h.Write(prefix[:])
	for _, m := range msg {
		h.Write(m)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SHA256 hashes data with SHA-256 via the accelerated sha256-simd backend.
func SHA256(data ...[]byte) [32]byte {
	h := sha256simd.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HMACSHA256 computes HMAC-SHA256(key, data...).
func HMACSHA256(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha256simd.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}

// HKDFExtractAndExpand runs RFC 5869 HKDF over newHash, producing outLen
// bytes of key material for an ECDH shared-secret derivation step.
func HKDFExtractAndExpand(newHash func() hash.Hash, secret, salt, info []byte, outLen int) ([]byte, error) {
	r := hkdf.New(newHash, secret, salt, info)
	out := make([]byte, outLen)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
