package core

// FieldElement is the capability set every prime-field element in this
// module exposes, independent of its concrete limb representation.
type FieldElement[T any] interface {
	IsZero() bool
	Equal(other T) bool
	Bytes() [32]byte
}

// Scalar is FieldElement plus a less-than comparison of canonical values.
type Scalar[T any] interface {
	FieldElement[T]
	Less(other T) bool
}

// PointAffine is the affine representation of a point on some curve.
// Concrete curve packages implement this on their own affine point types;
// secp256k1 and p256 assert their Affine types against it at compile time.
type PointAffine interface {
	IsIdentity() bool
	IsOnCurve() bool
}

// RNG is the caller-supplied source of uniform randomness: a stream of
// uniform bytes of requested length. No fallibility is surfaced; a failing
// RNG is a program-termination condition for the caller, not something this
// library retries around.
type RNG interface {
	FillBytes(buf []byte)
	NextUint32() uint32
	NextUint64() uint64
}
