package h2c

import "curvekit.dev/ecc/core"

// ValidateDST checks a domain separation tag against RFC 9380 section
// 3.1's size constraint: non-empty, and at most 255 bytes so its length
// fits in expand_message_xmd's one-byte I2OSP(len(DST), 1) encoding.
func ValidateDST(dst []byte) error {
	if len(dst) == 0 || len(dst) > 255 {
		return core.ErrDomainSeparationFailure
	}
	return nil
}
