package secp256k1

import "math/bits"

// secp256k1 field constants used by Invert and Sqrt, expressed as the
// big-endian byte encoding of p-2 and (p+1)/4 respectively.
var (
	expPMinus2 = [32]byte{ // p - 2
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFE, 0xFF, 0xFF, 0xFC, 0x2D,
	}
	expPPlus1Over4 = [32]byte{ // (p + 1) / 4
		0x3F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xBF, 0xFF, 0xFF, 0x0C,
	}
)

// addLimb adds v to t[idx], rippling any 64-bit carry into the
// higher-indexed 52-bit-weighted slots of t.
func addLimb(t *[10]uint64, idx int, v uint64) {
	var carry uint64
	t[idx], carry = bits.Add64(t[idx], v, 0)
	for l := idx + 1; l < len(t) && carry != 0; l++ {
		t[l], carry = bits.Add64(t[l], 0, carry)
	}
}

// Mul sets r = a * b.
func (r *FieldElement) Mul(a, b *FieldElement) {
	var aNorm, bNorm FieldElement
	aNorm = *a
	bNorm = *b
	aNorm.normalize()
	bNorm.normalize()

	// Schoolbook multiply in base 2^52: after normalize, every limb of
	// aNorm/bNorm is strictly below 2^52 (2^48 for n[4]), so each partial
	// product aNorm.n[i]*bNorm.n[j] is below 2^104 and splits into exactly
	// two 52-bit-weighted pieces landing at t[i+j] and t[i+j+1]. A plain
	// bits.Mul64 hi:lo split divides the product at the 2^64 boundary
	// instead, which mis-weights the high half by a factor of 2^12 against
	// this 2^52-weighted accumulator — t[] must stay consistent with
	// reduceFromWide's "ten 52-bit limb" contract.
	var t [10]uint64
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			hi, lo := bits.Mul64(aNorm.n[i], bNorm.n[j])
			p0 := lo & limb0Max
			p1 := ((lo >> 52) | (hi << 12)) & limb0Max
			// hi>>40 is always 0 here: both factors are < 2^52, so the
			// product is < 2^104 and needs only these two limbs.
			k := i + j
			addLimb(&t, k, p0)
			addLimb(&t, k+1, p1)
		}
	}
	r.reduceFromWide(t)
}

// Sqr sets r = a^2.
func (r *FieldElement) Sqr(a *FieldElement) {
	r.Mul(a, a)
}

// reduceFromWide reduces a 520-bit (ten 52-bit limb) product modulo p,
// using 2^260 ≡ 16·(2^32 + 977) (mod p) to fold the high limbs into the low
// five, then finishing with a regular normalize.
func (r *FieldElement) reduceFromWide(t [10]uint64) {
	const M = uint64(0x1000003D1) // 2^32 + 977

	// Fold each high limb t[5..9] into the low limbs via repeated
	// multiply-accumulate at 52-bit granularity: limb i (i >= 5)
	// contributes t[i] * 2^(52*(i-5)) * 16 * M to the low part.
	var acc [6]uint64 // enough headroom above the 5 low limbs for carry
	copy(acc[:5], t[:5])

	for i := 5; i < 10; i++ {
		if t[i] == 0 {
			continue
		}
		hi, lo := bits.Mul64(t[i], 16*M)
		// Split (hi:lo) into 52-bit-weighted contributions starting at limb
		// (i-5); t[i] < 2^56 and 16*M < 2^37, so two limbs suffice.
		var contrib [3]uint64
		contrib[0] = lo & limb0Max
		contrib[1] = (lo >> 52) | (hi << 12)
		base := i - 5
		var carry uint64
		for j := 0; j < 3 && base+j < len(acc); j++ {
			acc[base+j], carry = bits.Add64(acc[base+j], contrib[j], carry)
		}
		for j := base + 3; j < len(acc) && carry != 0; j++ {
			acc[j], carry = bits.Add64(acc[j], 0, carry)
		}
	}

	// acc now holds a value with at most a handful of extra high bits above
	// the five 52-bit limbs; fold once more (acc[5] is always small).
	if acc[5] != 0 {
		hi, lo := bits.Mul64(acc[5], 16*M)
		var carry uint64
		acc[0], carry = bits.Add64(acc[0], lo&limb0Max, 0)
		acc[1], carry = bits.Add64(acc[1], (lo>>52)|(hi<<12), carry)
		for j := 2; j < 5 && carry != 0; j++ {
			acc[j], carry = bits.Add64(acc[j], 0, carry)
		}
		acc[5] = 0
	}

	r.n[0], r.n[1], r.n[2], r.n[3], r.n[4] = acc[0], acc[1], acc[2], acc[3], acc[4]
	r.magnitude = 8
	r.normalized = false
	r.normalize()
}

// Pow sets r = a^e mod p, where e is a 32-byte big-endian exponent, via
// constant-time left-to-right square-and-multiply (every iteration performs
// both a square and a multiply; the multiply's effect is masked in via CMov
// rather than skipped, so the instruction trace does not depend on e).
func (r *FieldElement) Pow(a *FieldElement, e []byte) {
	var result FieldElement
	result.SetInt(1)
	base := *a

	for _, byt := range e {
		for bit := 7; bit >= 0; bit-- {
			result.Sqr(&result)
			result.normalize()

			var candidate FieldElement
			candidate.Mul(&result, &base)
			candidate.normalize()

			flag := int((byt >> uint(bit)) & 1)
			result.CMov(&candidate, flag)
		}
	}
	*r = result
}

// Invert sets r = a^-1 mod p via Fermat's little theorem (a^(p-2)). On
// a == 0 the result is 0; callers needing a validity bit should check
// IsZero on a first.
func (r *FieldElement) Invert(a *FieldElement) {
	r.Pow(a, expPMinus2[:])
}

// Sqrt sets r to a square root of a and reports whether one exists. p ≡ 3
// (mod 4) for the secp256k1 field, so the candidate a^((p+1)/4) is verified
// by squaring rather than trusted blindly.
func (r *FieldElement) Sqrt(a *FieldElement) bool {
	var aNorm FieldElement
	aNorm = *a
	aNorm.normalize()
	if aNorm.IsZero() {
		r.SetInt(0)
		return true
	}

	var candidate FieldElement
	candidate.Pow(&aNorm, expPPlus1Over4[:])

	var check FieldElement
	check.Sqr(&candidate)
	check.normalize()
	candidate.normalize()

	if check.Equal(&aNorm) {
		*r = candidate
		return true
	}
	return false
}

// IsSquare reports whether a is a quadratic residue mod p.
func (a *FieldElement) IsSquare() bool {
	var r FieldElement
	return r.Sqrt(a)
}

// Half sets r = a / 2 mod p.
func (r *FieldElement) Half(a *FieldElement) {
	var t FieldElement
	t = *a
	t.normalize()

	if t.n[0]&1 == 0 {
		t.n[0] = (t.n[0] >> 1) | ((t.n[1] & 1) << 51)
		t.n[1] = (t.n[1] >> 1) | ((t.n[2] & 1) << 51)
		t.n[2] = (t.n[2] >> 1) | ((t.n[3] & 1) << 51)
		t.n[3] = (t.n[3] >> 1) | ((t.n[4] & 1) << 51)
		t.n[4] = t.n[4] >> 1
	} else {
		var carry uint64
		t.n[0], carry = t.n[0]+fieldModulusLimb0, 0
		if t.n[0] > limb0Max {
			carry = 1
			t.n[0] &= limb0Max
		}
		t.n[1] += fieldModulusLimb1 + carry
		carry = t.n[1] >> 52
		t.n[1] &= limb0Max
		t.n[2] += fieldModulusLimb2 + carry
		carry = t.n[2] >> 52
		t.n[2] &= limb0Max
		t.n[3] += fieldModulusLimb3 + carry
		carry = t.n[3] >> 52
		t.n[3] &= limb0Max
		t.n[4] += fieldModulusLimb4 + carry

		t.n[0] = (t.n[0] >> 1) | ((t.n[1] & 1) << 51)
		t.n[1] = (t.n[1] >> 1) | ((t.n[2] & 1) << 51)
		t.n[2] = (t.n[2] >> 1) | ((t.n[3] & 1) << 51)
		t.n[3] = (t.n[3] >> 1) | ((t.n[4] & 1) << 51)
		t.n[4] = t.n[4] >> 1
	}

	r.n = t.n
	r.magnitude = 1
	r.normalized = true
}
