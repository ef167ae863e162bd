// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (identifiers, digests, key pairs), the capability
// contracts resolved at startup (Hash, Agreement, KeyPairStore) and the error
// kinds surfaced by secret derivation.
package domain
