// Package rng supplies the RNG collaborator used throughout this module: a
// source of uniform bytes the core consumes but never seeds, reseeds, or
// validates. Grounded in original_source/forge-ec-rng/src/os_rng.rs, adapted
// to Go's crypto/rand.
package rng

import (
	"crypto/rand"
	"encoding/binary"

	"curvekit.dev/ecc/core"
)

// OS is an core.RNG backed by the operating system CSPRNG
// (crypto/rand.Reader). RNG failure here is treated as a program-termination
// condition: a caller-supplied RNG is never sanity-checked,
// and os.Reader errors are narrow enough (exhausted entropy source) that
// this package panics rather than threading a spurious error return through
// every constant-time primitive above it.
type OS struct{}

var _ core.RNG = OS{}

// FillBytes fills buf with cryptographically secure random bytes.
func (OS) FillBytes(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic("rng: OS entropy source failed: " + err.Error())
	}
}

// NextUint32 returns a single uniform random uint32.
func (o OS) NextUint32() uint32 {
	var b [4]byte
	o.FillBytes(b[:])
	return binary.BigEndian.Uint32(b[:])
}

// NextUint64 returns a single uniform random uint64.
func (o OS) NextUint64() uint64 {
	var b [8]byte
	o.FillBytes(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Default is the package-wide OS RNG instance; most call sites can pass
// rng.Default instead of constructing their own.
var Default = OS{}
