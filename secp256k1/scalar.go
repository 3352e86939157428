package secp256k1

import (
	"math/bits"

	"curvekit.dev/ecc/core"
)

// Scalar represents a value in F_n, the secp256k1 scalar field of order
// n = 0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141,
// stored as four 64-bit limbs (d[0] least significant).
type Scalar struct {
	d [4]uint64
}

// groupOrder is n, least-significant limb first.
var groupOrder = [4]uint64{
	0xBFD25E8CD0364141,
	0xBAAEDCE6AF48A03B,
	0xFFFFFFFFFFFFFFFE,
	0xFFFFFFFFFFFFFFFF,
}

// groupOrderHalf is floor(n/2), used by low-S normalization in ecdsa.
var groupOrderHalf = [4]uint64{
	0xDFE92F46681B20A0,
	0x5D576E7357A4501D,
	0xFFFFFFFFFFFFFFFF,
	0x7FFFFFFFFFFFFFFF,
}

var (
	ScalarZero = Scalar{}
	ScalarOne  = Scalar{d: [4]uint64{1, 0, 0, 0}}
)

// SetBytes sets r to the big-endian 32-byte value b reduced mod n, reporting
// via the bool whether b was already in [0, n).
func (r *Scalar) SetBytes(b []byte) (inRange bool, err error) {
	if len(b) != 32 {
		return false, core.ErrInvalidEncoding
	}
	var d [4]uint64
	for i := 0; i < 4; i++ {
		d[3-i] = beUint64(b[8*i : 8*i+8])
	}
	inRange = lessUint256(d, groupOrder)
	r.d = d
	if !inRange {
		r.reduceOnce()
	}
	return inRange, nil
}

// FromBytesReduced sets r to b interpreted as a big-endian integer, reduced
// mod n unconditionally. Used for hash outputs (e.g. message digests,
// RFC 6979 candidates) that are wider than or not guaranteed to fall inside
// [0, n).
func (r *Scalar) FromBytesReduced(b []byte) {
	// Process input 32 bytes at a time, most-significant chunk first:
	// acc = acc * 2^256 + chunk, each step reduced mod n via the same
	// wide-reduction helper used by Mul.
	var acc Scalar
	for off := 0; off < len(b); off += 32 {
		end := off + 32
		if end > len(b) {
			end = len(b)
		}
		chunk := make([]byte, 32)
		copy(chunk[32-(end-off):], b[off:end])

		var d [4]uint64
		for i := 0; i < 4; i++ {
			d[3-i] = beUint64(chunk[8*i : 8*i+8])
		}
		var chunkScalar Scalar
		chunkScalar.d = d
		if !lessUint256(d, groupOrder) {
			chunkScalar.reduceOnce()
		}

		if off == 0 {
			acc = chunkScalar
			continue
		}
		acc.shiftLeft256ModN()
		acc.Add(&acc, &chunkScalar)
	}
	*r = acc
}

// Bytes returns the canonical big-endian 32-byte encoding of r.
func (r *Scalar) Bytes() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		putBeUint64(out[8*i:8*i+8], r.d[3-i])
	}
	return out
}

// IsZero reports whether r is zero.
func (r *Scalar) IsZero() bool {
	return r.d[0] == 0 && r.d[1] == 0 && r.d[2] == 0 && r.d[3] == 0
}

// IsOdd reports whether r is odd.
func (r *Scalar) IsOdd() bool {
	return r.d[0]&1 == 1
}

// Equal reports whether r == a, in constant time.
func (r *Scalar) Equal(a *Scalar) bool {
	diff := (r.d[0] ^ a.d[0]) | (r.d[1] ^ a.d[1]) | (r.d[2] ^ a.d[2]) | (r.d[3] ^ a.d[3])
	return diff == 0
}

// Less reports whether r < a, as unsigned 256-bit integers, in constant
// time. Used by low-S checks.
func (r *Scalar) Less(a *Scalar) bool {
	return lessUint256(r.d, a.d)
}

// Clear zeroizes r.
func (r *Scalar) Clear() {
	r.d[0], r.d[1], r.d[2], r.d[3] = 0, 0, 0, 0
}

// CMov sets r = a if flag == 1, leaving r unchanged if flag == 0.
func (r *Scalar) CMov(a *Scalar, flag int) {
	mask := uint64(-(int64(flag) & 1))
	for i := range r.d {
		r.d[i] ^= mask & (r.d[i] ^ a.d[i])
	}
}

// Add sets r = a + b mod n.
func (r *Scalar) Add(a, b *Scalar) {
	var sum [4]uint64
	var carry uint64
	sum[0], carry = bits.Add64(a.d[0], b.d[0], 0)
	sum[1], carry = bits.Add64(a.d[1], b.d[1], carry)
	sum[2], carry = bits.Add64(a.d[2], b.d[2], carry)
	sum[3], carry = bits.Add64(a.d[3], b.d[3], carry)

	// Reduce: if there was a carry out of the top limb, or sum >= n,
	// subtract n once. Both conditions are folded into a single
	// constant-time conditional subtraction.
	reduced, borrow := subUint256(sum, groupOrder)
	needSub := carry != 0 || borrow == 0
	r.d = selectUint256(needSub, reduced, sum)
}

// Negate sets r = -a mod n (0 maps to 0).
func (r *Scalar) Negate(a *Scalar) {
	if a.IsZero() {
		r.d = [4]uint64{0, 0, 0, 0}
		return
	}
	diff, _ := subUint256(groupOrder, a.d)
	r.d = diff
}

// Sub sets r = a - b mod n.
func (r *Scalar) Sub(a, b *Scalar) {
	var negB Scalar
	negB.Negate(b)
	r.Add(a, &negB)
}

// reduceOnce subtracts n from r.d exactly once, assuming r.d < 2n.
func (r *Scalar) reduceOnce() {
	reduced, borrow := subUint256(r.d, groupOrder)
	if borrow == 0 {
		r.d = reduced
	}
}

// shiftLeft256ModN sets r = (r * 2^256) mod n, used to fold successive
// 256-bit big-endian chunks into a running reduced accumulator.
func (r *Scalar) shiftLeft256ModN() {
	// 2^256 mod n = 2^256 - n (since n < 2^256 < 2n).
	twoPow256ModN, _ := subUint256([4]uint64{0, 0, 0, 0}, groupOrder)
	// subUint256(0, n) with implicit borrow from the absent top limb gives
	// (2^256 - n) directly via two's-complement wraparound.
	var product Scalar
	product.Mul(r, &Scalar{d: twoPow256ModN})
	*r = product
}

// Mul sets r = a * b mod n via full 256x256-bit multiplication followed by
// reduceWide, an exact long-division-style reduction of the 512-bit product.
// This replaces mleku-p256k1's reduceWide, whose own comment admitted it
// discarded the high bits of the product ("mathematically incorrect but
// prevents infinite loops").
func (r *Scalar) Mul(a, b *Scalar) {
	var t [8]uint64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.d[i], b.d[j])
			k := i + j
			var carry uint64
			t[k], carry = bits.Add64(t[k], lo, 0)
			if k+1 < 8 {
				t[k+1], carry = bits.Add64(t[k+1], hi, carry)
				for l := k + 2; l < 8 && carry != 0; l++ {
					t[l], carry = bits.Add64(t[l], 0, carry)
				}
			}
		}
	}
	r.reduceWide(t)
}

// reduceWide reduces an eight-limb (512-bit) value modulo n. It processes
// the value one bit at a time from the most significant bit down, via the
// standard double-and-conditionally-subtract method (equivalent to long
// division), so the result is exactly `value mod n` rather than an
// approximation.
func (r *Scalar) reduceWide(t [8]uint64) {
	var acc Scalar
	for limb := 7; limb >= 0; limb-- {
		for bit := 63; bit >= 0; bit-- {
			acc.doubleModN()
			if (t[limb]>>uint(bit))&1 == 1 {
				acc.incrementModN()
			}
		}
	}
	*r = acc
}

// doubleModN sets r = 2r mod n.
func (r *Scalar) doubleModN() {
	var doubled [4]uint64
	var carry uint64
	doubled[0], carry = bits.Add64(r.d[0], r.d[0], 0)
	doubled[1], carry = bits.Add64(r.d[1], r.d[1], carry)
	doubled[2], carry = bits.Add64(r.d[2], r.d[2], carry)
	doubled[3], carry = bits.Add64(r.d[3], r.d[3], carry)

	reduced, borrow := subUint256(doubled, groupOrder)
	needSub := carry != 0 || borrow == 0
	r.d = selectUint256(needSub, reduced, doubled)
}

// incrementModN sets r = r + 1 mod n.
func (r *Scalar) incrementModN() {
	var one Scalar
	one.d = [4]uint64{1, 0, 0, 0}
	r.Add(r, &one)
}

// Invert sets r = a^-1 mod n via Fermat's little theorem (a^(n-2)),
// constant-time square-and-multiply.
func (r *Scalar) Invert(a *Scalar) {
	var result Scalar
	result.d = [4]uint64{1, 0, 0, 0}
	base := *a

	for _, byt := range scalarOrderMinus2Bytes {
		for bit := 7; bit >= 0; bit-- {
			result.Mul(&result, &result)

			var candidate Scalar
			candidate.Mul(&result, &base)

			flag := int((byt >> uint(bit)) & 1)
			result.CMov(&candidate, flag)
		}
	}
	*r = result
}

// scalarOrderMinus2Bytes is n-2, big-endian, for Scalar.Invert.
var scalarOrderMinus2Bytes = [32]byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE,
	0xBA, 0xAE, 0xDC, 0xE6, 0xAF, 0x48, 0xA0, 0x3B,
	0xBF, 0xD2, 0x5E, 0x8C, 0xD0, 0x36, 0x41, 0x3F,
}

// Random sets r to a uniformly random scalar read from rng, via rejection
// sampling against n.
func (r *Scalar) Random(fill func([]byte)) {
	var b [32]byte
	for {
		fill(b[:])
		if ok, _ := r.SetBytes(b[:]); ok && !r.IsZero() {
			return
		}
	}
}

func beUint64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

func putBeUint64(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// lessUint256 reports whether a < b for little-endian-limb 256-bit values,
// from the final borrow of a - b rather than a limb-by-limb early exit.
func lessUint256(a, b [4]uint64) bool {
	_, borrow := subUint256(a, b)
	return borrow == 1
}

// subUint256 returns a - b and the final borrow (0 if a >= b).
func subUint256(a, b [4]uint64) ([4]uint64, uint64) {
	var out [4]uint64
	var borrow uint64
	out[0], borrow = bits.Sub64(a[0], b[0], 0)
	out[1], borrow = bits.Sub64(a[1], b[1], borrow)
	out[2], borrow = bits.Sub64(a[2], b[2], borrow)
	out[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return out, borrow
}

// selectUint256 returns a if cond, else b, without branching on cond's
// underlying data dependency (cond itself may be a public carry/overflow
// flag derived from secret limbs, so the selection is still done via mask).
func selectUint256(cond bool, a, b [4]uint64) [4]uint64 {
	mask := uint64(0)
	if cond {
		mask = ^uint64(0)
	}
	var out [4]uint64
	for i := range out {
		out[i] = (a[i] & mask) | (b[i] &^ mask)
	}
	return out
}
