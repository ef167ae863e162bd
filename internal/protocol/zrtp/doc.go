// Package zrtp derives the ZRTP shared secret s0 for a DH-mode handshake.
//
// # Overview
//
// Both endpoints compute s0 independently; it is never sent on the wire, so
// every byte fed to the hash must match the peer's exactly. Derivation runs
// as a strict linear pipeline:
//  1. TotalHash: hash of Hello || Commit || DHPart1 || DHPart2, the canonical
//     message encodings concatenated in protocol order.
//  2. DHSecret: the raw Diffie–Hellman result of the local key pair and the
//     peer's public value, at the agreement's fixed output size.
//  3. KDF: s0 = hash(counter || DHResult || "ZRTP-HMAC-KDF" || ZIDi || ZIDr ||
//     total_hash || len(s1) || len(s2) || len(s3)), where the counter is 1 and
//     every length is 0 in single-secret mode.
//
// Deriver runs the pipeline with injected primitives and wipes the raw DH
// result once s0 has been computed.
//
// # Errors
//
// domain.ErrEncodingUnavailable is returned when a transcript message is
// missing or cannot be encoded, domain.ErrInvalidPeerKey when the peer's
// public value is not a group element, and domain.ErrAlgorithmUnavailable
// when a primitive is missing or not 256-bit. None of them is recovered
// locally; the handshake must be aborted.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. A Deriver holds only
// immutable primitives and a logger.
package zrtp
