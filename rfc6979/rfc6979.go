// Package rfc6979 implements the deterministic nonce generation procedure
// of RFC 6979 §3.2, parameterized over the hash function (via hash.Hash)
// rather than a single curve, matching the generic
// Rfc6979<C: Curve, D: Digest> shape in
// original_source/forge-ec-rng/src/rfc6979.rs. mleku-p256k1's
// RFC6979HMACSHA256 is the concrete HMAC-SHA256 instantiation this
// generalizes.
package rfc6979

import (
	"crypto/hmac"
	"hash"
)

// Generator holds the running HMAC-DRBG state from RFC 6979 §3.2 steps b-f.
type Generator struct {
	newHash func() hash.Hash
	v, k    []byte
}

// New initializes a Generator for the given hash constructor, private key
// bytes and message hash bytes (both already reduced to the curve's byte
// length), plus optional additional data appended per RFC 6979 §3.6.
func New(newHash func() hash.Hash, key, msgHash, extra []byte) *Generator {
	size := newHash().Size()
	g := &Generator{newHash: newHash, v: make([]byte, size), k: make([]byte, size)}

	for i := range g.v {
		g.v[i] = 0x01
	}
	for i := range g.k {
		g.k[i] = 0x00
	}

	g.k = g.hmac(g.k, g.v, []byte{0x00}, key, msgHash, extra)
	g.v = g.hmac(g.k, g.v)
	g.k = g.hmac(g.k, g.v, []byte{0x01}, key, msgHash, extra)
	g.v = g.hmac(g.k, g.v)
	return g
}

func (g *Generator) hmac(key []byte, parts ...[]byte) []byte {
	mac := hmac.New(g.newHash, key)
	for _, p := range parts {
		mac.Write(p)
	}
	return mac.Sum(nil)
}

// Generate fills out with the next candidate nonce bytes (RFC 6979 §3.2.h's
// "T" accumulation loop), re-deriving more output via V = HMAC_K(V) as
// needed when len(out) exceeds one hash block.
func (g *Generator) Generate(out []byte) {
	t := make([]byte, 0, len(out))
	for len(t) < len(out) {
		g.v = g.hmac(g.k, g.v)
		t = append(t, g.v...)
	}
	copy(out, t[:len(out)])
}

// Retry advances the generator state per RFC 6979 §3.2.h's rejection
// branch: K = HMAC_K(V || 0x00), V = HMAC_K(V). Call this when a generated
// candidate was rejected (out of range, or zero) before calling Generate
// again.
func (g *Generator) Retry() {
	g.k = g.hmac(g.k, g.v, []byte{0x00})
	g.v = g.hmac(g.k, g.v)
}

// Clear zeroizes the generator's internal HMAC state.
func (g *Generator) Clear() {
	for i := range g.v {
		g.v[i] = 0
	}
	for i := range g.k {
		g.k[i] = 0
	}
}
