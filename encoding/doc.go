// Package encoding collects the byte-level codecs shared across curves:
// SEC1/Ed25519/X25519 point formats, DER/PEM key and signature armor, and
// Base58Check, the way original_source/examples/openssl_interop.rs uses
// its own encoding crate as one shared codec layer sitting above several
// curve crates rather than duplicating serialization inside each one.
package encoding
