// Package ctutil collects constant-time primitives: masked conditional
// move, constant-time equality, and a zeroizing memory clear that the
// compiler is not permitted to elide. No other package in this module
// imports it; the field and scalar types carry their own equivalents.
package ctutil

import (
	"crypto/subtle"
	"unsafe"
)

// Mask64 returns ^uint64(0) if b == 1 and 0 if b == 0. b must be 0 or 1;
// any other value yields an undefined mask.
func Mask64(b int) uint64 {
	return -uint64(b & 1)
}

// CMov64 sets *r = a if flag == 1, leaving *r unchanged if flag == 0,
// without branching on flag.
func CMov64(r *uint64, a uint64, flag int) {
	mask := Mask64(flag)
	*r = (*r &^ mask) | (a & mask)
}

// Equal reports whether a and b hold identical bytes, in time independent
// of their contents.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zeroize overwrites buf with zeros using a write the compiler cannot prove
// dead, so secret material does not linger past its owner's lifetime.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Defeat dead-store elimination: touch the backing array through an
	// unsafe pointer read the optimizer cannot reason away.
	if len(buf) > 0 {
		_ = *(*byte)(unsafe.Pointer(&buf[0]))
	}
}

// ZeroizeUint64 clears a limb array holding secret field or scalar state.
func ZeroizeUint64(limbs []uint64) {
	for i := range limbs {
		limbs[i] = 0
	}
}

// SelectInt returns a if flag == 1, b if flag == 0. flag must be 0 or 1.
func SelectInt(flag, a, b int) int {
	mask := flag & 1
	return (a & -mask) | (b & ^-mask)
}
