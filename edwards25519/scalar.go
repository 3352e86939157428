package edwards25519

import (
	"bytes"

	ed "filippo.io/edwards25519"

	"curvekit.dev/ecc/core"
)

// Scalar is a value in F_L, L = 2^252 + 27742317777372353535851937790883648493
// the prime order of the edwards25519 group, backed by
// filippo.io/edwards25519's constant-time Scalar implementation.
type Scalar struct {
	s ed.Scalar
}

var (
	ScalarZero = Scalar{}
	ScalarOne  = func() Scalar {
		var s Scalar
		one := [32]byte{1}
		if _, err := s.s.SetCanonicalBytes(one[:]); err != nil {
			panic("edwards25519: failed to build scalar one: " + err.Error())
		}
		return s
	}()
)

// SetCanonicalBytes sets r to the 32-byte little-endian canonical encoding
// of a scalar in [0, L), reporting an error if b is not a canonical
// encoding (length != 32, or value >= L).
func (r *Scalar) SetCanonicalBytes(b []byte) error {
	if _, err := r.s.SetCanonicalBytes(b); err != nil {
		return core.ErrInvalidEncoding
	}
	return nil
}

// SetClamped applies RFC 8032's buffer-pruning ("clamping") to the 32-byte
// seed expansion half and reduces the result mod L. Used when deriving the
// private scalar from a hashed seed; never used on a scalar obtained from
// wire data.
func (r *Scalar) SetClamped(b []byte) error {
	if _, err := r.s.SetBytesWithClamping(b); err != nil {
		return core.ErrInvalidEncoding
	}
	return nil
}

// SetUniformBytes reduces a 64-byte wide value mod L unconditionally. Used
// for hash outputs (the nonce digest and the challenge digest in Sign and
// Verify) that must be reduced rather than rejected.
func (r *Scalar) SetUniformBytes(b []byte) error {
	if len(b) != 64 {
		return core.ErrInvalidEncoding
	}
	if _, err := r.s.SetUniformBytes(b); err != nil {
		return core.ErrInvalidEncoding
	}
	return nil
}

// Bytes returns the 32-byte little-endian canonical encoding of r.
func (r *Scalar) Bytes() []byte {
	return r.s.Bytes()
}

// IsZero reports whether r is the zero scalar.
func (r *Scalar) IsZero() bool {
	return bytes.Equal(r.s.Bytes(), ScalarZero.s.Bytes())
}

// Equal reports whether r and a represent the same scalar.
func (r *Scalar) Equal(a *Scalar) bool {
	return r.s.Equal(&a.s) == 1
}

// Less reports r < a as unsigned little-endian integers. edwards25519
// signing never branches on scalar ordering (there is no low-S-style
// normalization in Ed25519); nothing outside this package's tests calls
// it.
func (r *Scalar) Less(a *Scalar) bool {
	rb, ab := r.Bytes(), a.Bytes()
	for i := 31; i >= 0; i-- {
		if rb[i] != ab[i] {
			return rb[i] < ab[i]
		}
	}
	return false
}

// Clear zeroizes r.
func (r *Scalar) Clear() {
	r.s = ed.Scalar{}
}

// Add sets r = a + b mod L.
func (r *Scalar) Add(a, b *Scalar) *Scalar {
	r.s.Add(&a.s, &b.s)
	return r
}

// Sub sets r = a - b mod L.
func (r *Scalar) Sub(a, b *Scalar) *Scalar {
	r.s.Subtract(&a.s, &b.s)
	return r
}

// Negate sets r = -a mod L.
func (r *Scalar) Negate(a *Scalar) *Scalar {
	r.s.Negate(&a.s)
	return r
}

// Mul sets r = a * b mod L.
func (r *Scalar) Mul(a, b *Scalar) *Scalar {
	r.s.Multiply(&a.s, &b.s)
	return r
}

// Invert sets r = a^-1 mod L. a must be nonzero.
func (r *Scalar) Invert(a *Scalar) *Scalar {
	r.s.Invert(&a.s)
	return r
}

// Random sets r to a uniformly random scalar, reducing 64 bytes read from
// fill mod L (rejection sampling is unnecessary here: a 64-byte value
// reduced mod the ~253-bit L is statistically indistinguishable from
// uniform).
func (r *Scalar) Random(fill func([]byte)) {
	var b [64]byte
	fill(b[:])
	if err := r.SetUniformBytes(b[:]); err != nil {
		panic("edwards25519: unreachable SetUniformBytes failure: " + err.Error())
	}
}
