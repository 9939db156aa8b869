// Package curve's Curve/Scalar/Point contract is intentionally the
// entire surface pkg/dkg touches. Adding a new group requires only a
// new adapter implementing Curve, never a change to pkg/dkg.
//
// Only Secp256k1 is implemented here. Six further adapters named by
// the original protocol's per-curve hash_to_scalar domain-separation
// tags are left as future additions, each needing its own HashToScalar
// construction and DST, and the underlying arithmetic swapped in:
//
//	P-256:       "P256_XMD:SHA-256_RO_NUL_"
//	P-384:       "P384_XMD:SHA-384_RO_NUL_"
//	BLS12-381:   "BLS12381_XMD:SHA-256_RO_NUL_"
//	Ed25519:     wide SHA-512 reduction, no XMD expansion needed
//	Ed448:       "edwards448_XOF:SHAKE256_RO_NUL_" (expand_message_xof)
//	Jubjub:      "jubjub_XMD:BLAKE2b512_RO_NUL_"
package curve
