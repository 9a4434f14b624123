// Package bcrypt implements password hashing with golang.org/x/crypto/bcrypt.
package bcrypt

import (
	"fmt"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/crypto/bcrypt"
)

var _ ports.PasswordHasher = (*Hasher)(nil)

// Hasher implements ports.PasswordHasher.
type Hasher struct {
	logger ports.Logger
}

// NewHasher creates a new Hasher.
func NewHasher(logger ports.Logger) *Hasher {
	return &Hasher{logger: logger}
}

// Hash returns the bcrypt encoding of password at the given cost.
// Costs below bcrypt.MinCost are raised to it with a warning.
func (h *Hasher) Hash(password []byte, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		h.logger.Warn(fmt.Sprintf("bcrypt rounds %d raised to the minimum of %d", cost, bcrypt.MinCost))
		cost = bcrypt.MinCost
	}

	hashed, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return "", domain.Annotate(zerr.Wrap(err, domain.ErrDigestFailed.Error()), "rounds", cost)
	}
	return string(hashed), nil
}

// Compare returns nil when password matches hashed.
func (h *Hasher) Compare(hashed string, password []byte) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), password)
}
