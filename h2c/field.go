package h2c

import (
	"github.com/holiman/uint256"

	"curvekit.dev/ecc/hash"
)

// ReduceWide reduces a big-endian byte string of arbitrary length modulo
// modulus, processing it 32 bytes at a time: result = 0; for each chunk,
// result = result*2^(8*len(chunk)) + chunk, all mod modulus. This is the
// wide-reduction step hash_to_field needs to turn a 48- or 64-byte
// expand_message_xmd output into a uniformly distributed field element
// without the bias a plain truncation would introduce.
func ReduceWide(data []byte, modulus *uint256.Int) *uint256.Int {
	result := new(uint256.Int)
	for i := 0; i < len(data); i += 32 {
		end := i + 32
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]

		var shift uint256.Int
		shift.SetOne()
		shift.Lsh(&shift, uint(8*len(chunk)))
		var shiftMod uint256.Int
		shiftMod.Mod(&shift, modulus)

		var c uint256.Int
		c.SetBytes(chunk)

		result.MulMod(result, &shiftMod, modulus)
		result.AddMod(result, &c, modulus)
	}
	return result
}

// HashToField implements hash_to_field from RFC 9380 section 5.2,
// specialized to count*m == count field elements (m=1, i.e. a prime field
// rather than an extension field, which is all secp256k1/P-256/curve25519
// need). l is expand_message's output length per field element — RFC 9380
// recommends ceil((ceil(log2(p)) + k) / 8) for a k-bit security target,
// 48 bytes for the 128-bit-secure 256-bit-prime curves this module has.
func HashToField(expand func(dst, msg []byte, lenInBytes int) ([]byte, error), dst, msg []byte, count, l int, modulus *uint256.Int) ([]*uint256.Int, error) {
	if err := ValidateDST(dst); err != nil {
		return nil, err
	}
	uniform, err := expand(dst, msg, count*l)
	if err != nil {
		return nil, err
	}
	out := make([]*uint256.Int, count)
	for i := 0; i < count; i++ {
		out[i] = ReduceWide(uniform[i*l:(i+1)*l], modulus)
	}
	return out, nil
}

// HashToFieldSHA256 is HashToField instantiated with expand_message_xmd
// over SHA-256, the hash secp256k1's and P-256's RFC 9380 suites use.
func HashToFieldSHA256(dst, msg []byte, count, l int, modulus *uint256.Int) ([]*uint256.Int, error) {
	return HashToField(hash.ExpandMessageXMDSHA256, dst, msg, count, l, modulus)
}

// modExp computes base^exponent mod modulus via right-to-left
// square-and-multiply (least significant exponent bit first), entirely through uint256's fixed-width MulMod
// (uint256.Int.Exp wraps modulo 2^256, not an arbitrary modulus, so it
// cannot serve a prime-field modular exponentiation directly).
func modExp(base, exponent, modulus *uint256.Int) *uint256.Int {
	result := uint256.NewInt(1)
	b := new(uint256.Int).Mod(base, modulus)
	e := new(uint256.Int).Set(exponent)
	one := uint256.NewInt(1)

	for !e.IsZero() {
		var lsb uint256.Int
		lsb.And(e, one)
		if !lsb.IsZero() {
			result.MulMod(result, b, modulus)
		}
		b.MulMod(b, b, modulus)
		e.Rsh(e, 1)
	}
	return result
}

// modInverse computes the multiplicative inverse of a modulo the prime
// modulus via Fermat's little theorem (a^(p-2) mod p), following inv0's
// RFC 9380 convention that inv0(0) == 0.
func modInverse(a, modulus *uint256.Int) *uint256.Int {
	if a.IsZero() {
		return new(uint256.Int)
	}
	pMinus2 := new(uint256.Int).Sub(modulus, uint256.NewInt(2))
	return modExp(a, pMinus2, modulus)
}

// isSquare reports whether a is a nonzero quadratic residue mod the prime
// modulus, via Euler's criterion (a^((p-1)/2) == 1); zero is square by
// RFC 9380 convention.
func isSquare(a, modulus *uint256.Int) bool {
	if a.IsZero() {
		return true
	}
	exp := new(uint256.Int).Sub(modulus, uint256.NewInt(1))
	exp.Rsh(exp, 1)
	return modExp(a, exp, modulus).Eq(uint256.NewInt(1))
}

// sqrt3mod4 computes a square root of a mod a prime modulus congruent to 3
// mod 4 (true of both secp256k1's and P-256's field primes), via
// a^((p+1)/4). Callers must only call this when isSquare(a, modulus).
func sqrt3mod4(a, modulus *uint256.Int) *uint256.Int {
	exp := new(uint256.Int).Add(modulus, uint256.NewInt(1))
	exp.Rsh(exp, 2)
	return modExp(a, exp, modulus)
}

// sgn0 returns the RFC 9380 sgn0_le sign of a prime-field element: the
// parity of its least significant bit when represented canonically in
// [0, p).
func sgn0(a *uint256.Int) uint {
	return uint(a.Uint64() & 1)
}
