package secp256k1

import "curvekit.dev/ecc/core"

// SEC1 point encoding: 0x04 || x || y uncompressed, 0x02/0x03 || x
// compressed, a single 0x00 byte for the point at infinity.

// EncodeUncompressed returns the 65-byte SEC1 uncompressed encoding of p.
func EncodeUncompressed(p *Affine) []byte {
	out := make([]byte, 65)
	if p.infinity {
		return []byte{0x00}
	}
	out[0] = 0x04
	xN, yN := p.x, p.y
	xN.normalize()
	yN.normalize()
	xb := xN.Bytes()
	yb := yN.Bytes()
	copy(out[1:33], xb[:])
	copy(out[33:65], yb[:])
	return out
}

// EncodeCompressed returns the 33-byte SEC1 compressed encoding of p.
func EncodeCompressed(p *Affine) []byte {
	if p.infinity {
		return []byte{0x00}
	}
	out := make([]byte, 33)
	xN, yN := p.x, p.y
	xN.normalize()
	yN.normalize()
	if yN.IsOdd() {
		out[0] = 0x03
	} else {
		out[0] = 0x02
	}
	xb := xN.Bytes()
	copy(out[1:], xb[:])
	return out
}

// DecodePoint parses a SEC1-encoded point (compressed, uncompressed, or the
// single-byte infinity encoding), validating that it lies on the curve.
func DecodePoint(b []byte) (*Affine, error) {
	if len(b) == 1 && b[0] == 0x00 {
		p := NewAffine()
		return p, nil
	}
	switch {
	case len(b) == 33 && (b[0] == 0x02 || b[0] == 0x03):
		var x FieldElement
		if err := x.SetBytes(b[1:]); err != nil {
			return nil, err
		}
		p := NewAffine()
		if !p.SetXOdd(&x, b[0] == 0x03) {
			return nil, core.ErrPointNotOnCurve
		}
		return p, nil

	case len(b) == 65 && b[0] == 0x04:
		var x, y FieldElement
		if err := x.SetBytes(b[1:33]); err != nil {
			return nil, err
		}
		if err := y.SetBytes(b[33:65]); err != nil {
			return nil, err
		}
		p := &Affine{x: x, y: y}
		if !p.IsOnCurve() {
			return nil, core.ErrPointNotOnCurve
		}
		return p, nil

	default:
		return nil, core.ErrInvalidEncoding
	}
}
