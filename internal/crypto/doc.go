// Package crypto resolves and implements the primitives used to derive ZRTP
// shared secrets.
//
// Contents
//
//   - Resolution of hash and key agreement primitives by their ZRTP
//     algorithm identifiers (Resolve, ResolveHash, ResolveAgreement)
//   - 256-bit hashes: S256 (SHA-256) and N256 (SHA3-256)
//   - Finite-field Diffie–Hellman over the RFC 3526 MODP groups (DH2k, DH3k)
//   - X25519 key generation, clamping and Diffie–Hellman (X255)
//   - Short public-value fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Primitives are resolved once at startup; an unknown identifier fails with
// domain.ErrAlgorithmUnavailable rather than falling back to a default.
// Peer public values are validated by the agreement before use and rejected
// with domain.ErrInvalidPeerKey. Shared secrets returned by an Agreement are
// sensitive; callers should wipe them with memzero.Zero once consumed.
package crypto
