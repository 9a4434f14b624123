package ports

import "go.trai.ch/equip/internal/core/domain"

// Digester defines the interface for computing plain message digests.
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Digester interface {
	// Digest returns the raw digest of data for one of the plain digest algorithms.
	Digest(algo domain.Algorithm, data []byte) ([]byte, error)
}

// PasswordHasher defines the interface for salted password hashing.
type PasswordHasher interface {
	// Hash returns the self-encoded hash of password using the given cost factor.
	Hash(password []byte, cost int) (string, error)

	// Compare returns nil when password matches the encoded hash. It is used to
	// verify hashes produced by Hash.
	Compare(hashed string, password []byte) error
}
