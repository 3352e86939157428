package encoding

import (
	goasn1 "encoding/asn1"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	asn1 "golang.org/x/crypto/cryptobyte/asn1"

	"curvekit.dev/ecc/core"
)

// SEC1/X9.62 object identifiers, per
// original_source/examples/openssl_interop.rs's use of the same OIDs for
// P-256 ("1.2.840.10045.3.1.7") and the RFC 5915 id-ecPublicKey ancestor
// ("1.2.840.10045.2.1"); secp256k1's OID is SEC2's "1.3.132.0.10".
var (
	oidECPublicKey = goasn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1   = goasn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidP256        = goasn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
)

func curveOID(curve Curve) (goasn1.ObjectIdentifier, error) {
	switch curve {
	case Secp256k1:
		return oidSecp256k1, nil
	case P256:
		return oidP256, nil
	default:
		return nil, core.ErrInvalidEncoding
	}
}

func oidToCurve(oid goasn1.ObjectIdentifier) (Curve, error) {
	switch {
	case oid.Equal(oidSecp256k1):
		return Secp256k1, nil
	case oid.Equal(oidP256):
		return P256, nil
	default:
		return 0, core.ErrInvalidEncoding
	}
}

// MarshalECPrivateKey encodes an RFC 5915 SEC1 ECPrivateKey:
//
//	ECPrivateKey ::= SEQUENCE {
//	  version        INTEGER { ecPrivkeyVer1(1) },
//	  privateKey     OCTET STRING,
//	  parameters [0] ECParameters OPTIONAL,
//	  publicKey  [1] BIT STRING OPTIONAL,
//	}
//
// scalar and publicKey are the curve-native big-endian scalar and the
// point's wire encoding (SEC1 compressed for the two Weierstrass curves
// this function supports). Only secp256k1 and P-256 carry SEC1 keys;
// Ed25519/X25519 use PKCS#8 in OpenSSL and have no SEC1 form, so
// MarshalECPrivateKey rejects those curves.
func MarshalECPrivateKey(curve Curve, scalar, publicKey []byte) ([]byte, error) {
	oid, err := curveOID(curve)
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		seq.AddASN1Int64(1)
		seq.AddASN1OctetString(scalar)
		seq.AddASN1(asn1.Tag(0).Constructed().ContextSpecific(), func(params *cryptobyte.Builder) {
			params.AddASN1ObjectIdentifier(oid)
		})
		seq.AddASN1(asn1.Tag(1).Constructed().ContextSpecific(), func(pub *cryptobyte.Builder) {
			pub.AddASN1BitString(publicKey)
		})
	})
	return b.Bytes()
}

// ParsedECPrivateKey is the result of decoding an RFC 5915 SEC1
// ECPrivateKey.
type ParsedECPrivateKey struct {
	Curve     Curve
	Scalar    []byte
	PublicKey []byte
}

// ParseECPrivateKey decodes an RFC 5915 SEC1 ECPrivateKey produced by
// MarshalECPrivateKey (or by a compatible SEC1 encoder such as OpenSSL's
// "openssl ecparam -genkey").
func ParseECPrivateKey(der []byte) (*ParsedECPrivateKey, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) {
		return nil, core.ErrInvalidEncoding
	}
	var version int64
	if !seq.ReadASN1Int64WithTag(&version, asn1.INTEGER) || version != 1 {
		return nil, core.ErrInvalidEncoding
	}
	var scalar []byte
	if !seq.ReadASN1Bytes(&scalar, asn1.OCTET_STRING) {
		return nil, core.ErrInvalidEncoding
	}

	var oid goasn1.ObjectIdentifier
	var paramsPresent bool
	var params cryptobyte.String
	if !seq.ReadOptionalASN1(&params, &paramsPresent, asn1.Tag(0).Constructed().ContextSpecific()) {
		return nil, core.ErrInvalidEncoding
	}
	if !paramsPresent || !params.ReadASN1ObjectIdentifier(&oid) {
		return nil, core.ErrInvalidEncoding
	}
	curve, err := oidToCurve(oid)
	if err != nil {
		return nil, err
	}

	var pubPresent bool
	var pubWrapper cryptobyte.String
	var pub []byte
	if !seq.ReadOptionalASN1(&pubWrapper, &pubPresent, asn1.Tag(1).Constructed().ContextSpecific()) {
		return nil, core.ErrInvalidEncoding
	}
	if pubPresent {
		var bitString goasn1.BitString
		if !pubWrapper.ReadASN1BitString(&bitString) {
			return nil, core.ErrInvalidEncoding
		}
		pub = bitString.Bytes
	}

	return &ParsedECPrivateKey{Curve: curve, Scalar: scalar, PublicKey: pub}, nil
}

// MarshalECPublicKey encodes an X.509 SubjectPublicKeyInfo for an EC
// public key:
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//	  algorithm SEQUENCE { id-ecPublicKey OBJECT IDENTIFIER, namedCurve OBJECT IDENTIFIER },
//	  subjectPublicKey BIT STRING,
//	}
func MarshalECPublicKey(curve Curve, publicKey []byte) ([]byte, error) {
	oid, err := curveOID(curve)
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(outer *cryptobyte.Builder) {
		outer.AddASN1(asn1.SEQUENCE, func(alg *cryptobyte.Builder) {
			alg.AddASN1ObjectIdentifier(oidECPublicKey)
			alg.AddASN1ObjectIdentifier(oid)
		})
		outer.AddASN1BitString(publicKey)
	})
	return b.Bytes()
}

// ParsedECPublicKey is the result of decoding an X.509
// SubjectPublicKeyInfo for an EC public key.
type ParsedECPublicKey struct {
	Curve     Curve
	PublicKey []byte
}

// ParseECPublicKey decodes a SubjectPublicKeyInfo produced by
// MarshalECPublicKey (or an equivalent DER/PEM "PUBLIC KEY" from OpenSSL).
func ParseECPublicKey(der []byte) (*ParsedECPublicKey, error) {
	input := cryptobyte.String(der)
	var outer cryptobyte.String
	if !input.ReadASN1(&outer, asn1.SEQUENCE) {
		return nil, core.ErrInvalidEncoding
	}
	var alg cryptobyte.String
	if !outer.ReadASN1(&alg, asn1.SEQUENCE) {
		return nil, core.ErrInvalidEncoding
	}
	var algOID, curveOIDValue goasn1.ObjectIdentifier
	if !alg.ReadASN1ObjectIdentifier(&algOID) || !algOID.Equal(oidECPublicKey) {
		return nil, core.ErrInvalidEncoding
	}
	if !alg.ReadASN1ObjectIdentifier(&curveOIDValue) {
		return nil, core.ErrInvalidEncoding
	}
	curve, err := oidToCurve(curveOIDValue)
	if err != nil {
		return nil, err
	}
	var bitString goasn1.BitString
	if !outer.ReadASN1BitString(&bitString) {
		return nil, core.ErrInvalidEncoding
	}
	return &ParsedECPublicKey{Curve: curve, PublicKey: bitString.Bytes}, nil
}

// MarshalECDSASignature encodes an ECDSA signature as the DER SEQUENCE{r,s}
// pair OpenSSL and every SEC1 verifier expect.
func MarshalECDSASignature(r, s []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		seq.AddASN1BigInt(new(big.Int).SetBytes(r))
		seq.AddASN1BigInt(new(big.Int).SetBytes(s))
	})
	return b.Bytes()
}

// ParseECDSASignature decodes a DER SEQUENCE{r,s} ECDSA signature into
// fixed 32-byte big-endian r and s values.
func ParseECDSASignature(der []byte) (r, s [32]byte, err error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) {
		return r, s, core.ErrInvalidEncoding
	}
	var rInt, sInt big.Int
	if !seq.ReadASN1Integer(&rInt) || !seq.ReadASN1Integer(&sInt) {
		return r, s, core.ErrInvalidEncoding
	}
	rInt.FillBytes(r[:])
	sInt.FillBytes(s[:])
	return r, s, nil
}
