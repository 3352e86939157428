package secp256k1

import (
	"crypto/subtle"
	"unsafe"

	"curvekit.dev/ecc/core"
)

// FieldElement represents a value in F_p for the secp256k1 field prime
// p = 2^256 - 2^32 - 977, stored as five 52-bit limbs (base 2^52), the same
// layout the reference libsecp256k1 "5x52" backend uses.
//
// A FieldElement additionally tracks a magnitude (how many additions it is
// away from being fully reduced) and a normalized flag. Add, Negate and
// MulInt leave the limbs unreduced and raise the magnitude; Mul and Sqr
// normalize both inputs and their result, and equality, byte encoding and
// square root require or perform a full normalize.
type FieldElement struct {
	n          [5]uint64
	magnitude  int
	normalized bool
}

const (
	fieldReductionConstant = 0x1000003D1 // 2^32 + 977

	limb0Max = 0xFFFFFFFFFFFFF // 2^52 - 1
	limb4Max = 0x0FFFFFFFFFFFF // 2^48 - 1

	fieldModulusLimb0 = 0xFFFFEFFFFFC2F
	fieldModulusLimb1 = 0xFFFFFFFFFFFFF
	fieldModulusLimb2 = 0xFFFFFFFFFFFFF
	fieldModulusLimb3 = 0xFFFFFFFFFFFFF
	fieldModulusLimb4 = 0x0FFFFFFFFFFFF
)

// FieldOne and FieldZero are the additive/multiplicative identities.
var (
	FieldOne  = FieldElement{n: [5]uint64{1, 0, 0, 0, 0}, magnitude: 1, normalized: true}
	FieldZero = FieldElement{n: [5]uint64{0, 0, 0, 0, 0}, magnitude: 0, normalized: true}
)

// NewFieldElement returns the zero element.
func NewFieldElement() *FieldElement {
	z := FieldZero
	return &z
}

// SetBytes sets r to the big-endian 32-byte value b, reduced modulo p.
// It satisfies core's FieldElement-shaped contract.
func (r *FieldElement) SetBytes(b []byte) error {
	if len(b) != 32 {
		return core.ErrInvalidEncoding
	}
	var d [4]uint64
	for i := 0; i < 4; i++ {
		d[i] = uint64(b[31-8*i]) | uint64(b[30-8*i])<<8 | uint64(b[29-8*i])<<16 | uint64(b[28-8*i])<<24 |
			uint64(b[27-8*i])<<32 | uint64(b[26-8*i])<<40 | uint64(b[25-8*i])<<48 | uint64(b[24-8*i])<<56
	}
	r.n[0] = d[0] & limb0Max
	r.n[1] = ((d[0] >> 52) | (d[1] << 12)) & limb0Max
	r.n[2] = ((d[1] >> 40) | (d[2] << 24)) & limb0Max
	r.n[3] = ((d[2] >> 28) | (d[3] << 36)) & limb0Max
	r.n[4] = (d[3] >> 16) & limb4Max
	r.magnitude = 1
	r.normalized = false
	r.normalize()
	return nil
}

// Bytes returns the canonical big-endian 32-byte encoding of r.
func (r *FieldElement) Bytes() [32]byte {
	var out [32]byte
	var normalized FieldElement
	normalized = *r
	normalized.normalize()

	var d [4]uint64
	d[0] = normalized.n[0] | (normalized.n[1] << 52)
	d[1] = (normalized.n[1] >> 12) | (normalized.n[2] << 40)
	d[2] = (normalized.n[2] >> 24) | (normalized.n[3] << 28)
	d[3] = (normalized.n[3] >> 36) | (normalized.n[4] << 16)

	for i := 0; i < 4; i++ {
		out[31-8*i] = byte(d[i])
		out[30-8*i] = byte(d[i] >> 8)
		out[29-8*i] = byte(d[i] >> 16)
		out[28-8*i] = byte(d[i] >> 24)
		out[27-8*i] = byte(d[i] >> 32)
		out[26-8*i] = byte(d[i] >> 40)
		out[25-8*i] = byte(d[i] >> 48)
		out[24-8*i] = byte(d[i] >> 56)
	}
	return out
}

// normalize reduces r to a canonical value in [0, p) with magnitude 1.
func (r *FieldElement) normalize() {
	t0, t1, t2, t3, t4 := r.n[0], r.n[1], r.n[2], r.n[3], r.n[4]

	x := t4 >> 48
	t4 &= limb4Max

	t0 += x * fieldReductionConstant
	t1 += t0 >> 52
	t0 &= limb0Max
	t2 += t1 >> 52
	t1 &= limb0Max
	m := t1
	t3 += t2 >> 52
	t2 &= limb0Max
	m &= t2
	t4 += t3 >> 52
	t3 &= limb0Max
	m &= t3

	needReduction := uint64(0)
	if t4 == limb4Max && m == limb0Max && t0 >= fieldModulusLimb0 {
		needReduction = 1
	}
	x = (t4 >> 48) | needReduction

	t0 += x * fieldReductionConstant
	t1 += t0 >> 52
	t0 &= limb0Max
	t2 += t1 >> 52
	t1 &= limb0Max
	t3 += t2 >> 52
	t2 &= limb0Max
	t4 += t3 >> 52
	t3 &= limb0Max
	t4 &= limb4Max

	r.n[0], r.n[1], r.n[2], r.n[3], r.n[4] = t0, t1, t2, t3, t4
	r.magnitude = 1
	r.normalized = true
}

// normalizeWeak brings r to magnitude 1 without the final conditional
// subtraction of p; cheaper than normalize when only overflow-free limbs
// are needed (e.g. before feeding r back into mul/sqr).
func (r *FieldElement) normalizeWeak() {
	t0, t1, t2, t3, t4 := r.n[0], r.n[1], r.n[2], r.n[3], r.n[4]

	x := t4 >> 48
	t4 &= limb4Max

	t0 += x * fieldReductionConstant
	t1 += t0 >> 52
	t0 &= limb0Max
	t2 += t1 >> 52
	t1 &= limb0Max
	t3 += t2 >> 52
	t2 &= limb0Max
	t4 += t3 >> 52
	t3 &= limb0Max

	r.n[0], r.n[1], r.n[2], r.n[3], r.n[4] = t0, t1, t2, t3, t4
	r.magnitude = 1
}

// IsZero reports whether r represents zero. r must be normalized.
func (r *FieldElement) IsZero() bool {
	if !r.normalized {
		panic("secp256k1: field element must be normalized")
	}
	return r.n[0] == 0 && r.n[1] == 0 && r.n[2] == 0 && r.n[3] == 0 && r.n[4] == 0
}

// IsOdd reports whether r, taken as a canonical integer, is odd.
func (r *FieldElement) IsOdd() bool {
	if !r.normalized {
		panic("secp256k1: field element must be normalized")
	}
	return r.n[0]&1 == 1
}

// normalizesToZeroVar reports whether r normalizes to zero. Variable-time;
// callers on a secret-dependent path must use IsZero on an already
// normalized value instead.
func (r *FieldElement) normalizesToZeroVar() bool {
	var t FieldElement
	t = *r
	t.normalize()
	return t.IsZero()
}

// Equal reports whether r and a hold the same field value, in constant
// time. Both must be normalized.
func (r *FieldElement) Equal(a *FieldElement) bool {
	if !r.normalized || !a.normalized {
		panic("secp256k1: field elements must be normalized for comparison")
	}
	return subtle.ConstantTimeCompare(
		(*[40]byte)(unsafe.Pointer(&r.n[0]))[:40],
		(*[40]byte)(unsafe.Pointer(&a.n[0]))[:40],
	) == 1
}

// SetInt sets r to the small non-negative integer a.
func (r *FieldElement) SetInt(a int) {
	if a < 0 || a > 0x7FFF {
		panic("secp256k1: value out of range")
	}
	r.n[0] = uint64(a)
	r.n[1], r.n[2], r.n[3], r.n[4] = 0, 0, 0, 0
	if a == 0 {
		r.magnitude = 0
	} else {
		r.magnitude = 1
	}
	r.normalized = true
}

// Clear zeroizes r so secret field material does not linger in memory.
func (r *FieldElement) Clear() {
	for i := range r.n {
		r.n[i] = 0
	}
	r.magnitude = 0
	r.normalized = true
}

// Negate sets r = -a, where a is known to have the given magnitude m.
func (r *FieldElement) Negate(a *FieldElement, m int) {
	if m < 0 || m > 31 {
		panic("secp256k1: magnitude out of range")
	}
	r.n[0] = (2*uint64(m)+1)*fieldModulusLimb0 - a.n[0]
	r.n[1] = (2*uint64(m)+1)*fieldModulusLimb1 - a.n[1]
	r.n[2] = (2*uint64(m)+1)*fieldModulusLimb2 - a.n[2]
	r.n[3] = (2*uint64(m)+1)*fieldModulusLimb3 - a.n[3]
	r.n[4] = (2*uint64(m)+1)*fieldModulusLimb4 - a.n[4]
	r.magnitude = m + 1
	r.normalized = false
}

// Add sets r += a.
func (r *FieldElement) Add(a *FieldElement) {
	r.n[0] += a.n[0]
	r.n[1] += a.n[1]
	r.n[2] += a.n[2]
	r.n[3] += a.n[3]
	r.n[4] += a.n[4]
	r.magnitude += a.magnitude
	r.normalized = false
}

// Sub sets r = a - b.
func (r *FieldElement) Sub(a, b *FieldElement) {
	var negB FieldElement
	negB.Negate(b, b.magnitude)
	*r = *a
	r.Add(&negB)
}

// MulInt sets r *= a for a small non-negative multiplier.
func (r *FieldElement) MulInt(a int) {
	if a < 0 || a > 32 {
		panic("secp256k1: multiplier out of range")
	}
	ua := uint64(a)
	r.n[0] *= ua
	r.n[1] *= ua
	r.n[2] *= ua
	r.n[3] *= ua
	r.n[4] *= ua
	r.magnitude *= a
	r.normalized = false
}

// CMov sets r = a if flag == 1, leaving r unchanged if flag == 0, without
// branching on flag.
func (r *FieldElement) CMov(a *FieldElement, flag int) {
	mask := uint64(-(int64(flag) & 1))
	r.n[0] ^= mask & (r.n[0] ^ a.n[0])
	r.n[1] ^= mask & (r.n[1] ^ a.n[1])
	r.n[2] ^= mask & (r.n[2] ^ a.n[2])
	r.n[3] ^= mask & (r.n[3] ^ a.n[3])
	r.n[4] ^= mask & (r.n[4] ^ a.n[4])
	if flag != 0 {
		r.magnitude = a.magnitude
		r.normalized = a.normalized
	}
}

// BatchInverse computes the modular inverse of every element of a, writing
// the results to out, using Montgomery's trick so only a single field
// inversion is performed regardless of len(a).
func BatchInverse(out []FieldElement, a []FieldElement) {
	n := len(a)
	if n == 0 {
		return
	}
	s := make([]FieldElement, n)
	s[0].SetInt(1)
	for i := 1; i < n; i++ {
		s[i].Mul(&s[i-1], &a[i-1])
	}

	var u FieldElement
	u.Mul(&s[n-1], &a[n-1])
	u.Invert(&u)

	for i := n - 1; i >= 0; i-- {
		out[i].Mul(&u, &s[i])
		u.Mul(&u, &a[i])
	}
}
