package hash

import (
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	sha256simd "github.com/minio/sha256-simd"

	"curvekit.dev/ecc/core"
)

// SHA512 hashes the concatenation of data with SHA-512.
func SHA512(data ...[]byte) [64]byte {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SHA3_256 hashes data with SHA3-256 (Keccak's NIST-standardized sibling),
// wired for curve packages that instantiate hash-to-curve over SHA3 rather
// than SHA-2, per RFC 9380's suite-naming convention.
func SHA3_256(data ...[]byte) [32]byte {
	h := sha3.New256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Blake2b256 hashes data with BLAKE2b-256.
func Blake2b256(data ...[]byte) [32]byte {
	h, _ := blake2b.New256(nil)
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// ExpandMessageXMD implements expand_message_xmd from RFC 9380 section
// 5.3.1: it stretches msg under domain separation tag dst into lenInBytes
// of uniform pseudorandom output, using newHash (e.g. sha256simd.New or
// sha512.New) as the underlying hash function H.
//
// bInBytes and rInBytes are H's digest size and block size in bytes (32/64
// for SHA-256, 64/128 for SHA-512). The construction is grounded in
// wyf-ACCEPT-eth2030's expandMessageXMD (written there for SHA-256 against
// BLS12-381); this is the same algorithm generalized over the hash
// function so every curve package's hash-to-curve suite can reuse it,
// mirroring how Yawning-edwards25519-extra's h2c package calls a single
// shared ExpandMessageXMD from each of its curve-specific suites.
func ExpandMessageXMD(newHash func() hash.Hash, bInBytes, rInBytes int, dst, msg []byte, lenInBytes int) ([]byte, error) {
	if len(dst) == 0 || len(dst) > 255 {
		return nil, core.ErrDomainSeparationFailure
	}
	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 || lenInBytes > 65535 {
		return nil, core.ErrDomainSeparationFailure
	}

	dstPrime := make([]byte, len(dst)+1)
	copy(dstPrime, dst)
	dstPrime[len(dst)] = byte(len(dst))

	zPad := make([]byte, rInBytes)
	libStr := []byte{byte(lenInBytes >> 8), byte(lenInBytes)}

	h := newHash()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	b1 := h.Sum(nil)

	uniform := make([]byte, 0, ell*bInBytes)
	uniform = append(uniform, b1...)
	bPrev := b1

	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := 0; j < bInBytes; j++ {
			xored[j] = b0[j] ^ bPrev[j]
		}
		h.Reset()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi := h.Sum(nil)
		uniform = append(uniform, bi...)
		bPrev = bi
	}

	return uniform[:lenInBytes], nil
}

// ExpandMessageXMDSHA256 is ExpandMessageXMD instantiated with sha256-simd
// (b_in_bytes = 32, r_in_bytes = 64), the hash used by the secp256k1 and
// P-256 hash-to-curve suites.
func ExpandMessageXMDSHA256(dst, msg []byte, lenInBytes int) ([]byte, error) {
	return ExpandMessageXMD(func() hash.Hash { return sha256simd.New() }, 32, 64, dst, msg, lenInBytes)
}

// ExpandMessageXMDSHA512 is ExpandMessageXMD instantiated with SHA-512
// (b_in_bytes = 64, r_in_bytes = 128), the hash the edwards25519_XMD:SHA-512
// and curve25519_XMD:SHA-512 hash-to-curve suites use.
func ExpandMessageXMDSHA512(dst, msg []byte, lenInBytes int) ([]byte, error) {
	return ExpandMessageXMD(sha512.New, 64, 128, dst, msg, lenInBytes)
}
